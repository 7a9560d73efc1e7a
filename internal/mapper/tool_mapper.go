package mapper

import (
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/model"
)

type ToolMapper struct{}

func NewToolMapper() *ToolMapper {
	return &ToolMapper{}
}

func (m *ToolMapper) ToEntity(t *model.Tool) *entity.Tool {
	if t == nil {
		return nil
	}
	return &entity.Tool{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		Price:       t.Price,
		TrialDays:   t.TrialDays,
		Category:    t.Category,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *ToolMapper) ToModel(t *entity.Tool) *model.Tool {
	if t == nil {
		return nil
	}
	return &model.Tool{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		Price:       t.Price,
		TrialDays:   t.TrialDays,
		Category:    t.Category,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
