package model

import (
	"time"

	"gorm.io/datatypes"
)

type Note struct {
	NoteId     string         `gorm:"type:text;primaryKey"`
	NotebookId string         `gorm:"type:text;not null;index"`
	UserId     string         `gorm:"type:text;not null;index"`
	Title      string         `gorm:"type:varchar(255);not null;default:'Untitled Note'"`
	Content    datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	IsArchived bool           `gorm:"not null;default:false"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

func (Note) TableName() string {
	return "notes"
}

// NoteDetail scans the notes/notebooks join used by list and show reads.
type NoteDetail struct {
	Note
	NotebookName string
}
