package contract

import (
	"context"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	Update(ctx context.Context, sub *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	// FindAllWithTool preloads the Tool relation for each row.
	FindAllWithTool(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ListUserSubscriptionRows runs a single join over subscriptions and
	// tools, returning one flattened row per active subscription. Used by the
	// admin users listing to avoid one query per user.
	ListUserSubscriptionRows(ctx context.Context) ([]*entity.UserSubscriptionRow, error)

	// SumActiveMonthlyRevenue is the sum of tool.price / 12 over all active
	// subscriptions.
	SumActiveMonthlyRevenue(ctx context.Context) (float64, error)
}
