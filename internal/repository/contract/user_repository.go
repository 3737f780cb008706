package contract

import (
	"context"

	"notehub-be/internal/entity"
	"notehub-be/internal/repository/specification"

	"gorm.io/datatypes"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	// UpdateSettings replaces the settings document wholesale.
	UpdateSettings(ctx context.Context, userId string, settings datatypes.JSON) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
