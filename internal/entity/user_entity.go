// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string
type AccountStatus string

const (
	UserRoleSeller UserRole = "seller"
	UserRoleAdmin  UserRole = "admin"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	// AccountStatus is derived from subscription history, never stored.
	AccountStatusActive  AccountStatus = "active"
	AccountStatusChurned AccountStatus = "churned"
	AccountStatusFree    AccountStatus = "free"
)

type User struct {
	Id                uuid.UUID
	Email             string
	FirstName         *string
	LastName          *string
	ProfileImageUrl   *string
	Role              UserRole
	Status            UserStatus
	TrialStartDate    *time.Time
	TrialEndDate      *time.Time
	IsTrialActive     bool
	HasCompletedTrial bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DeriveAccountStatus classifies a user by their subscription history:
// any active subscription wins, any subscription at all means churned,
// otherwise the account is free.
func DeriveAccountStatus(subs []*Subscription) AccountStatus {
	if len(subs) == 0 {
		return AccountStatusFree
	}
	for _, s := range subs {
		if s.Status == SubscriptionStatusActive {
			return AccountStatusActive
		}
	}
	return AccountStatusChurned
}
