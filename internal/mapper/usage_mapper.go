package mapper

import (
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/model"
)

type UsageMapper struct{}

func NewUsageMapper() *UsageMapper {
	return &UsageMapper{}
}

func (m *UsageMapper) ToEntity(s *model.UsageStat) *entity.UsageStat {
	if s == nil {
		return nil
	}
	return &entity.UsageStat{
		Id:         s.Id,
		UserId:     s.UserId,
		ToolId:     s.ToolId,
		ActionType: entity.ActionType(s.ActionType),
		CreatedAt:  s.CreatedAt,
	}
}

func (m *UsageMapper) ToModel(s *entity.UsageStat) *model.UsageStat {
	if s == nil {
		return nil
	}
	return &model.UsageStat{
		Id:         s.Id,
		UserId:     s.UserId,
		ToolId:     s.ToolId,
		ActionType: string(s.ActionType),
		CreatedAt:  s.CreatedAt,
	}
}
