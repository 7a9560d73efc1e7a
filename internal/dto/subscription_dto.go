// FILE: internal/dto/subscription_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubscriptionRequest struct {
	ToolId string `json:"toolId" validate:"required,uuid"`
}

type SubscriptionResponse struct {
	Id               uuid.UUID     `json:"id"`
	UserId           uuid.UUID     `json:"userId"`
	ToolId           uuid.UUID     `json:"toolId"`
	Status           string        `json:"status"`
	SubscriptionType string        `json:"subscriptionType"`
	StartDate        time.Time     `json:"startDate"`
	EndDate          *time.Time    `json:"endDate"`
	Amount           *float64      `json:"amount"`
	CreatedAt        time.Time     `json:"createdAt"`
	Tool             *ToolResponse `json:"tool,omitempty"`
}
