package service

import (
	"context"
	"sort"

	"notehub-be/internal/entity"
	"notehub-be/internal/repository/contract"
	"notehub-be/internal/repository/specification"
	"notehub-be/internal/repository/unitofwork"

	"gorm.io/datatypes"
)

// In-memory repository fakes. Specifications are interpreted by value so the
// services run against the same query shapes they issue in production.

type fakeStore struct {
	users     map[string]*entity.User
	notebooks map[string]*entity.Notebook
	notes     map[string]*entity.Note
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[string]*entity.User),
		notebooks: make(map[string]*entity.Notebook),
		notes:     make(map[string]*entity.Note),
	}
}

type fakeFactory struct {
	store *fakeStore
	// Calls counts unit-of-work creations; zero means the service never
	// reached the store.
	Calls int
}

func newFakeFactory(store *fakeStore) *fakeFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.Calls++
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) NotebookRepository() contract.NotebookRepository {
	return &fakeNotebookRepo{store: u.store}
}

func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

// --- note repository ---

type fakeNoteRepo struct {
	store *fakeStore
}

func matchNote(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByNoteID:
			if n.NoteId != s.NoteID {
				return false
			}
		case specification.NoteOwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		case specification.ByNotebookID:
			if n.NotebookId != s.NotebookID {
				return false
			}
		case specification.OrderBy:
			// ordering handled by the caller
		}
	}
	return true
}

func wantsUpdatedAtDesc(specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok {
			return s.Desc && s.Field == "notes.updated_at"
		}
	}
	return false
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	cp := *note
	r.store.notes[note.NoteId] = &cp
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	cp := *note
	r.store.notes[note.NoteId] = &cp
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, noteId string) error {
	delete(r.store.notes, noteId)
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if matchNote(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindOneDetailed(ctx context.Context, specs ...specification.Specification) (*entity.NoteDetail, error) {
	note, err := r.FindOne(ctx, specs...)
	if err != nil || note == nil {
		return nil, err
	}
	return r.annotate(note), nil
}

func (r *fakeNoteRepo) FindAllDetailed(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteDetail, error) {
	var out []*entity.NoteDetail
	for _, n := range r.store.notes {
		if matchNote(n, specs) {
			out = append(out, r.annotate(n))
		}
	}
	if wantsUpdatedAtDesc(specs) {
		sort.Slice(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	}
	return out, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, n := range r.store.notes {
		if matchNote(n, specs) {
			count++
		}
	}
	return count, nil
}

func (r *fakeNoteRepo) annotate(n *entity.Note) *entity.NoteDetail {
	cp := *n
	detail := &entity.NoteDetail{Note: cp}
	if nb, ok := r.store.notebooks[n.NotebookId]; ok {
		detail.NotebookName = nb.Name
	}
	return detail
}

// --- notebook repository ---

type fakeNotebookRepo struct {
	store *fakeStore
}

func matchNotebook(n *entity.Notebook, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		case specification.DefaultNotebook:
			if !n.IsDefault {
				return false
			}
		}
	}
	return true
}

func (r *fakeNotebookRepo) Create(ctx context.Context, notebook *entity.Notebook) error {
	cp := *notebook
	r.store.notebooks[notebook.NotebookId] = &cp
	return nil
}

func (r *fakeNotebookRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	for _, n := range r.store.notebooks {
		if matchNotebook(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNotebookRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, n := range r.store.notebooks {
		if matchNotebook(n, specs) {
			count++
		}
	}
	return count, nil
}

// --- user repository ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByID); ok && u.Id != s.ID {
				match = false
			}
		}
		if match {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateSettings(ctx context.Context, userId string, settings datatypes.JSON) error {
	if u, ok := r.store.users[userId]; ok {
		u.Settings = settings
	}
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}
