package mapper

import (
	"notehub-be/internal/entity"
	"notehub-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		NoteId:     n.NoteId,
		NotebookId: n.NotebookId,
		UserId:     n.UserId,
		Title:      n.Title,
		Content:    n.Content,
		IsArchived: n.IsArchived,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		NoteId:     n.NoteId,
		NotebookId: n.NotebookId,
		UserId:     n.UserId,
		Title:      n.Title,
		Content:    n.Content,
		IsArchived: n.IsArchived,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToDetailEntity(n *model.NoteDetail) *entity.NoteDetail {
	if n == nil {
		return nil
	}

	return &entity.NoteDetail{
		Note:         *m.ToEntity(&n.Note),
		NotebookName: n.NotebookName,
	}
}

func (m *NoteMapper) ToDetailEntities(notes []*model.NoteDetail) []*entity.NoteDetail {
	entities := make([]*entity.NoteDetail, len(notes))
	for i, n := range notes {
		entities[i] = m.ToDetailEntity(n)
	}
	return entities
}
