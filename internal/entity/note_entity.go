package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Note struct {
	NoteId     string
	NotebookId string
	UserId     string
	Title      string
	Content    datatypes.JSON
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerID satisfies guard.Owned.
func (n *Note) OwnerID() string {
	return n.UserId
}

// NoteDetail is a Note annotated with its notebook's display name,
// as returned by list/show reads.
type NoteDetail struct {
	Note
	NotebookName string
}
