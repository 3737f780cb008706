package service

import (
	"context"
	"time"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/guard"
	"notehub-be/internal/pkg/apperror"
	"notehub-be/internal/repository/specification"
	"notehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const defaultNoteTitle = "Untitled Note"

type INoteService interface {
	List(ctx context.Context, user *entity.User) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, user *entity.User, noteId string) (*dto.NoteResponse, error)
	Create(ctx context.Context, user *entity.User, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, user *entity.User, noteId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, user *entity.User, noteId string) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *guard.Guard
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		guard:      guard.New(),
	}
}

func (s *noteService) List(ctx context.Context, user *entity.User) ([]*dto.NoteResponse, error) {
	if err := s.guard.Authenticate(user, "access notes"); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAllDetailed(ctx,
		specification.NoteOwnedBy{UserID: user.Id},
		specification.OrderBy{Field: "notes.updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch notes", err)
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = toNoteResponse(&note.Note, note.NotebookName)
	}
	return res, nil
}

func (s *noteService) Show(ctx context.Context, user *entity.User, noteId string) (*dto.NoteResponse, error) {
	if err := s.guard.Authenticate(user, "access notes"); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOneDetailed(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.NoteOwnedBy{UserID: user.Id},
	)
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch note", err)
	}
	if note == nil || !s.guard.Authorize(user, note) {
		return nil, apperror.NewNotFound("Note not found")
	}

	return toNoteResponse(&note.Note, note.NotebookName), nil
}

func (s *noteService) Create(ctx context.Context, user *entity.User, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := s.guard.Authenticate(user, "create notes"); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// New notes always land in the caller's default notebook. Provisioning
	// happens alongside signup; the service never creates one.
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.DefaultNotebook{},
	)
	if err != nil {
		return nil, apperror.NewInternal("Failed to resolve default notebook", err)
	}
	if notebook == nil {
		return nil, apperror.NewNotFound("Default notebook not found. Create one first")
	}

	title := defaultNoteTitle
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}
	isArchived := false
	if req.IsArchived != nil {
		isArchived = *req.IsArchived
	}

	now := time.Now().UTC()
	note := entity.Note{
		NoteId:     uuid.NewString(),
		NotebookId: notebook.NotebookId,
		UserId:     user.Id,
		Title:      title,
		Content:    datatypes.JSON([]byte(`{}`)),
		IsArchived: isArchived,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.NewInternal("Failed to create note", err)
	}

	return toNoteResponse(&note, notebook.Name), nil
}

func (s *noteService) Update(ctx context.Context, user *entity.User, noteId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := s.guard.Authenticate(user, "edit notes"); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.NoteOwnedBy{UserID: user.Id},
	)
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch note", err)
	}
	if note == nil || !s.guard.Authorize(user, note) {
		return nil, apperror.NewNotFound("Note not found or not authorized")
	}

	// Partial-update semantics: omitted fields keep their stored values.
	// A literal JSON null retains too, same as an absent key.
	if req.Title != nil {
		note.Title = *req.Title
	}
	if len(req.Content) > 0 && string(req.Content) != "null" {
		note.Content = datatypes.JSON(req.Content)
	}
	if req.IsArchived != nil {
		note.IsArchived = *req.IsArchived
	}
	note.UpdatedAt = time.Now().UTC()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.NewInternal("Failed to update note", err)
	}

	return toNoteResponse(note, ""), nil
}

func (s *noteService) Delete(ctx context.Context, user *entity.User, noteId string) error {
	if err := s.guard.Authenticate(user, "delete notes"); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.NoteOwnedBy{UserID: user.Id},
	)
	if err != nil {
		return apperror.NewInternal("Failed to fetch note", err)
	}
	if note == nil || !s.guard.Authorize(user, note) {
		return apperror.NewNotFound("Note not found or not authorized")
	}

	// Hard delete: no tombstone, no soft-delete column.
	if err := uow.NoteRepository().Delete(ctx, note.NoteId); err != nil {
		return apperror.NewInternal("Failed to delete note", err)
	}
	return nil
}

func toNoteResponse(note *entity.Note, notebookName string) *dto.NoteResponse {
	content := note.Content
	if len(content) == 0 {
		content = datatypes.JSON([]byte(`{}`))
	}
	return &dto.NoteResponse{
		NoteId:       note.NoteId,
		NotebookId:   note.NotebookId,
		UserId:       note.UserId,
		Title:        note.Title,
		Content:      content,
		IsArchived:   note.IsArchived,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
		NotebookName: notebookName,
	}
}
