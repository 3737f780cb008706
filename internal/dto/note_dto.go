package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Pointer fields distinguish "omitted" from a zero value: nil retains the
// stored value, non-nil replaces it.

type CreateNoteRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=255"`
	IsArchived *bool   `json:"is_archived"`
}

type UpdateNoteRequest struct {
	Title      *string         `json:"title" validate:"omitempty,max=255"`
	Content    json.RawMessage `json:"content"`
	IsArchived *bool           `json:"is_archived"`
}

type NoteResponse struct {
	NoteId     string         `json:"note_id"`
	NotebookId string         `json:"notebook_id"`
	UserId     string         `json:"user_id"`
	Title      string         `json:"title"`
	Content    datatypes.JSON `json:"content"`
	IsArchived bool           `json:"is_archived"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	NotebookName string `json:"notebook_name,omitempty"`
}
