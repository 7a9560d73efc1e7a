// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type SubscriptionType string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"

	SubscriptionTypeTrial SubscriptionType = "trial"
	SubscriptionTypePaid  SubscriptionType = "paid"
)

type Subscription struct {
	Id                    uuid.UUID
	UserId                uuid.UUID
	ToolId                uuid.UUID
	Status                SubscriptionStatus
	SubscriptionType      SubscriptionType
	StartDate             time.Time
	EndDate               *time.Time
	PaymentSubscriptionId *string
	PaymentOrderId        *string
	Amount                *float64
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Tool *Tool
}

// UserSubscriptionRow is the flattened row shape of the admin join over
// (users, subscriptions, tools), scanned directly from the query.
type UserSubscriptionRow struct {
	SubscriptionId   uuid.UUID
	UserId           uuid.UUID
	ToolId           uuid.UUID
	Status           SubscriptionStatus
	SubscriptionType SubscriptionType
	StartDate        time.Time
	EndDate          *time.Time
	Amount           *float64
	ToolName         string
	ToolPrice        float64
	ToolCategory     string
}
