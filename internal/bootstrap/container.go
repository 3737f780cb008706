package bootstrap

import (
	"notehub-be/internal/config"
	"notehub-be/internal/controller"
	"notehub-be/internal/pkg/logger"
	"notehub-be/internal/repository/unitofwork"
	"notehub-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController
	UserController controller.IUserController

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Services
	noteService := service.NewNoteService(uowFactory)
	userService := service.NewUserService(uowFactory)

	// 3. Controllers
	noteController := controller.NewNoteController(noteService)
	userController := controller.NewUserController(userService)

	return &Container{
		NoteController: noteController,
		UserController: userController,
		Logger:         sysLogger,
	}
}
