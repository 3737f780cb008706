package mapper

import (
	"notehub-be/internal/entity"
	"notehub-be/internal/model"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}

	return &entity.Notebook{
		NotebookId: n.NotebookId,
		UserId:     n.UserId,
		Name:       n.Name,
		IsDefault:  n.IsDefault,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}

	return &model.Notebook{
		NotebookId: n.NotebookId,
		UserId:     n.UserId,
		Name:       n.Name,
		IsDefault:  n.IsDefault,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}
