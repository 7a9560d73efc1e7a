// FILE: internal/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse mirrors the stored user row. Field names follow the frontend
// contract (camelCase).
type UserResponse struct {
	Id                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	FirstName         *string    `json:"firstName"`
	LastName          *string    `json:"lastName"`
	ProfileImageUrl   *string    `json:"profileImageUrl"`
	Role              string     `json:"role"`
	Status            string     `json:"status"`
	TrialStartDate    *time.Time `json:"trialStartDate"`
	TrialEndDate      *time.Time `json:"trialEndDate"`
	IsTrialActive     bool       `json:"isTrialActive"`
	HasCompletedTrial bool       `json:"hasCompletedTrial"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
