package unitofwork

import (
	"context"

	"sellerkit-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ToolRepository() contract.ToolRepository
	SubscriptionRepository() contract.SubscriptionRepository
	ResearchRepository() contract.ResearchRepository
	UsageRepository() contract.UsageRepository
	CmsRepository() contract.CmsRepository
}
