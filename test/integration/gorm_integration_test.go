package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"notehub-be/internal/entity"
	"notehub-be/internal/repository/specification"
	"notehub-be/internal/repository/unitofwork"
	"notehub-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NotebookRepository())
	assert.NotNil(t, uow.NoteRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Note Lifecycle In Transaction", func(t *testing.T) {
		ctx := context.Background()
		userId := "integration-user-" + uuid.NewString()

		// Notes carry an FK to both user and notebook, so seed those first.
		user := &entity.User{
			Id:       userId,
			Name:     "Integration Test User",
			Settings: datatypes.JSON(`{}`),
		}
		err := uow.UserRepository().Create(ctx, user)
		require.NoError(t, err)

		notebook := &entity.Notebook{
			NotebookId: uuid.NewString(),
			UserId:     userId,
			Name:       "Integration Notebook",
			IsDefault:  true,
			CreatedAt:  time.Now().UTC(),
			UpdatedAt:  time.Now().UTC(),
		}
		err = uow.NotebookRepository().Create(ctx, notebook)
		require.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		require.NoError(t, err)
		defer uow.Rollback()

		note := &entity.Note{
			NoteId:     uuid.NewString(),
			NotebookId: notebook.NotebookId,
			UserId:     userId,
			Title:      "Integration Note",
			Content:    datatypes.JSON(`{}`),
			CreatedAt:  time.Now().UTC(),
			UpdatedAt:  time.Now().UTC(),
		}
		err = uow.NoteRepository().Create(ctx, note)
		require.NoError(t, err)

		found, err := uow.NoteRepository().FindOneDetailed(ctx,
			specification.ByNoteID{NoteID: note.NoteId},
			specification.NoteOwnedBy{UserID: userId},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Integration Note", found.Title)
		assert.Equal(t, "Integration Notebook", found.NotebookName)

		err = uow.NoteRepository().Delete(ctx, note.NoteId)
		require.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created, read back and deleted a Note in Transaction")
	})
}
