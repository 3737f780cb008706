package service

import (
	"context"
	"fmt"

	"notehub-be/internal/entity"
	"notehub-be/internal/guard"
	"notehub-be/internal/pkg/apperror"
	"notehub-be/internal/repository/specification"
	"notehub-be/internal/repository/unitofwork"

	"gorm.io/datatypes"
)

type IUserService interface {
	GetSettings(ctx context.Context, user *entity.User) (datatypes.JSON, error)
	UpdateSettings(ctx context.Context, user *entity.User, settings datatypes.JSON) (datatypes.JSON, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *guard.Guard
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
		guard:      guard.New(),
	}
}

func (s *userService) GetSettings(ctx context.Context, user *entity.User) (datatypes.JSON, error) {
	if err := s.guard.Authenticate(user, "access settings"); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	row, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch settings", err)
	}
	if row == nil {
		// A session always references a provisioned user row; a miss here
		// means corrupted state, not a client mistake.
		return nil, apperror.NewInternal("Failed to fetch settings", fmt.Errorf("user row missing for id %s", user.Id))
	}

	if len(row.Settings) == 0 {
		return datatypes.JSON([]byte(`{}`)), nil
	}
	return row.Settings, nil
}

func (s *userService) UpdateSettings(ctx context.Context, user *entity.User, settings datatypes.JSON) (datatypes.JSON, error) {
	if err := s.guard.Authenticate(user, "update settings"); err != nil {
		return nil, err
	}

	// Wholesale replace, no merge with the prior document.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().UpdateSettings(ctx, user.Id, settings); err != nil {
		return nil, apperror.NewInternal("Failed to update settings", err)
	}
	return settings, nil
}
