package main

import (
	"log"
	"os"

	"notehub-be/internal/model"
	"notehub-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Notebook{},
		&model.Note{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// 5. Post-Migration: constraints AutoMigrate cannot express.
	// The partial unique index holds the one-default-notebook-per-user
	// invariant; the foreign keys hold the ownership chain.
	log.Println("Step 3: Applying Constraints...")

	constraintSQL := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_notebooks_default_per_user
			ON notebooks (user_id) WHERE is_default;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_notebooks_user') THEN
			ALTER TABLE notebooks ADD CONSTRAINT fk_notebooks_user
				FOREIGN KEY (user_id) REFERENCES "user"(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_notes_user') THEN
			ALTER TABLE notes ADD CONSTRAINT fk_notes_user
				FOREIGN KEY (user_id) REFERENCES "user"(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_notes_notebook') THEN
			ALTER TABLE notes ADD CONSTRAINT fk_notes_notebook
				FOREIGN KEY (notebook_id) REFERENCES notebooks(notebook_id) ON DELETE CASCADE;
		END IF; END $$;`,
	}

	for _, sql := range constraintSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Fatal("Error: Failed to apply constraint:", err)
		}
	}

	log.Println("Migration completed successfully")
}
