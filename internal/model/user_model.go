package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName         *string   `gorm:"type:varchar(255)"`
	LastName          *string   `gorm:"type:varchar(255)"`
	ProfileImageUrl   *string   `gorm:"type:varchar(500)"`
	Role              string    `gorm:"type:varchar(50);not null;default:'seller'"`
	Status            string    `gorm:"type:varchar(50);not null;default:'active'"`
	TrialStartDate    *time.Time
	TrialEndDate      *time.Time
	IsTrialActive     bool      `gorm:"default:true"`
	HasCompletedTrial bool      `gorm:"default:false"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
