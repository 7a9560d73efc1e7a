package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveSubscriptions keeps only rows with status = 'active'.
type ActiveSubscriptions struct{}

func (s ActiveSubscriptions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

type ForTool struct {
	ToolID uuid.UUID
}

func (s ForTool) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tool_id = ?", s.ToolID)
}

// ActiveTools keeps only tools still offered in the catalog.
type ActiveTools struct{}

func (s ActiveTools) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type BySection struct {
	Section string
}

func (s BySection) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section = ?", s.Section)
}
