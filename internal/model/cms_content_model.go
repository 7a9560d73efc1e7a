package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CmsContent struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Section   string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Content   datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (CmsContent) TableName() string {
	return "cms_content"
}
