package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KeywordResearch struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	SeedKeyword string         `gorm:"type:varchar(255);not null"`
	Platforms   datatypes.JSON `gorm:"type:jsonb;not null"`
	Results     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`

	// Relations
	User *User `gorm:"foreignKey:UserId"`
}

func (KeywordResearch) TableName() string {
	return "keyword_researches"
}
