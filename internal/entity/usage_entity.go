package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionTypeSearch  ActionType = "search"
	ActionTypeExport  ActionType = "export"
	ActionTypeApiCall ActionType = "api_call"
)

type UsageStat struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	ToolId     uuid.UUID
	ActionType ActionType
	CreatedAt  time.Time
}

// UsageSummary is the per-action aggregate returned to the dashboard.
type UsageSummary struct {
	Searches int
	Exports  int
	ApiCalls int
}
