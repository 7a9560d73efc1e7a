package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                uuid.UUID `gorm:"type:uuid;not null;index"`
	ToolId                uuid.UUID `gorm:"type:uuid;not null;index"`
	Status                string    `gorm:"type:varchar(50);not null;default:'active'"`
	SubscriptionType      string    `gorm:"type:varchar(50);not null;default:'trial'"`
	StartDate             time.Time `gorm:"not null"`
	EndDate               *time.Time
	PaymentSubscriptionId *string   `gorm:"type:varchar(255)"`
	PaymentOrderId        *string   `gorm:"type:varchar(255)"`
	Amount                *float64  `gorm:"type:decimal(10,2)"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`

	// Relations
	Tool *Tool `gorm:"foreignKey:ToolId"`
	User *User `gorm:"foreignKey:UserId"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
