package model

import (
	"time"

	"github.com/google/uuid"
)

type UsageStat struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	ToolId     uuid.UUID `gorm:"type:uuid;not null;index"`
	ActionType string    `gorm:"type:varchar(50);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	// Relations
	User *User `gorm:"foreignKey:UserId"`
	Tool *Tool `gorm:"foreignKey:ToolId"`
}

func (UsageStat) TableName() string {
	return "usage_stats"
}
