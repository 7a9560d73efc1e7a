// FILE: internal/dto/admin_dto.go
package dto

import (
	"time"
)

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

// UserWithSubscriptionsResponse is the admin listing row: the user plus their
// active subscriptions and a derived account status.
type UserWithSubscriptionsResponse struct {
	UserResponse
	AccountStatus string                 `json:"accountStatus"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

type PlatformAnalyticsResponse struct {
	Mrr               int     `json:"mrr"`
	ActiveSubscribers int     `json:"activeSubscribers"`
	ChurnRate         float64 `json:"churnRate"`
	TotalSearches     int     `json:"totalSearches"`
	RevenueGrowth     float64 `json:"revenueGrowth"`
	SubscriberGrowth  float64 `json:"subscriberGrowth"`
}

type ToolAnalyticsResponse struct {
	Subscribers int     `json:"subscribers"`
	Revenue     float64 `json:"revenue"`
	Usage       int     `json:"usage"`
}

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}
