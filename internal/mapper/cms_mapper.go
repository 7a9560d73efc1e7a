package mapper

import (
	"encoding/json"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/model"

	"gorm.io/datatypes"
)

type CmsMapper struct{}

func NewCmsMapper() *CmsMapper {
	return &CmsMapper{}
}

func (m *CmsMapper) ToEntity(c *model.CmsContent) *entity.CmsContent {
	if c == nil {
		return nil
	}
	return &entity.CmsContent{
		Id:        c.Id,
		Section:   c.Section,
		Content:   json.RawMessage(c.Content),
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CmsMapper) ToModel(c *entity.CmsContent) *model.CmsContent {
	if c == nil {
		return nil
	}
	return &model.CmsContent{
		Id:        c.Id,
		Section:   c.Section,
		Content:   datatypes.JSON(c.Content),
		UpdatedAt: c.UpdatedAt,
	}
}
