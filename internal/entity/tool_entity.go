package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tool struct {
	Id          uuid.UUID
	Name        string
	Description string
	Icon        string
	Price       float64
	TrialDays   int
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToolUpdate carries the mutable fields of a tool; nil means "leave as is".
type ToolUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	Price       *float64
	TrialDays   *int
	Category    *string
	IsActive    *bool
}
