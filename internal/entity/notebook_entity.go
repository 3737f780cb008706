package entity

import "time"

type Notebook struct {
	NotebookId string
	UserId     string
	Name       string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerID satisfies guard.Owned.
func (n *Notebook) OwnerID() string {
	return n.UserId
}
