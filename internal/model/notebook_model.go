package model

import "time"

type Notebook struct {
	NotebookId string    `gorm:"type:text;primaryKey"`
	UserId     string    `gorm:"type:text;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
