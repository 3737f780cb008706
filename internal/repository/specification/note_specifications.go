package specification

import "gorm.io/gorm"

// Note specifications qualify columns with the table name because list and
// show reads join notebooks onto notes.

type ByNoteID struct {
	NoteID string
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.note_id = ?", s.NoteID)
}

type NoteOwnedBy struct {
	UserID string
}

func (s NoteOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

type ByNotebookID struct {
	NotebookID string
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.notebook_id = ?", s.NotebookID)
}
