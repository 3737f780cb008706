package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"notehub-be/internal/entity"
	"notehub-be/internal/repository/specification"
	"notehub-be/internal/repository/unitofwork"
	"notehub-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Provisions a user row and its default notebook, mirroring what the auth
// provider's signup hook does in production. Useful for local development
// and for backfilling users created before the notebook hook existed.
func main() {
	userId := flag.String("user-id", "", "auth provider user id (required)")
	userName := flag.String("user-name", "Local Dev User", "display name")
	notebookName := flag.String("notebook-name", "My Notebook", "default notebook name")
	flag.Parse()

	if *userId == "" {
		log.Fatal("Error: -user-id is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
	if err != nil {
		log.Fatal("Error: Failed to look up user:", err)
	}
	if user == nil {
		user = &entity.User{
			Id:       *userId,
			Name:     *userName,
			Settings: datatypes.JSON([]byte(`{}`)),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			log.Fatal("Error: Failed to create user:", err)
		}
		log.Printf("Created user %s", user.Id)
	} else {
		log.Printf("User %s already exists", user.Id)
	}

	existing, err := uow.NotebookRepository().FindOne(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.DefaultNotebook{},
	)
	if err != nil {
		log.Fatal("Error: Failed to look up default notebook:", err)
	}
	if existing != nil {
		log.Printf("Default notebook %s already exists", existing.NotebookId)
		return
	}

	now := time.Now().UTC()
	notebook := entity.Notebook{
		NotebookId: uuid.NewString(),
		UserId:     user.Id,
		Name:       *notebookName,
		IsDefault:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		log.Fatal("Error: Failed to create default notebook:", err)
	}
	log.Printf("Created default notebook %s for user %s", notebook.NotebookId, user.Id)
}
