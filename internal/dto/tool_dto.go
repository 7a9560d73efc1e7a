// FILE: internal/dto/tool_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateToolRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	TrialDays   int     `json:"trialDays" validate:"omitempty,gte=0"`
	Category    string  `json:"category"`
}

// UpdateToolRequest carries a partial update; absent fields stay untouched.
type UpdateToolRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2"`
	Description *string  `json:"description"`
	Icon        *string  `json:"icon"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	TrialDays   *int     `json:"trialDays" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

type ToolResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Price       float64   `json:"price"`
	TrialDays   int       `json:"trialDays"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
