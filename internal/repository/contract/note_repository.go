package contract

import (
	"context"

	"notehub-be/internal/entity"
	"notehub-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, noteId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	// FindOneDetailed and FindAllDetailed join notebooks to annotate each
	// note with its notebook's display name.
	FindOneDetailed(ctx context.Context, specs ...specification.Specification) (*entity.NoteDetail, error)
	FindAllDetailed(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteDetail, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
