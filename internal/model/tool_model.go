package model

import (
	"time"

	"github.com/google/uuid"
)

type Tool struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	TrialDays   int       `gorm:"default:7"`
	Category    string    `gorm:"type:varchar(100);default:'keyword-research'"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Tool) TableName() string {
	return "tools"
}
