package contract

import (
	"context"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"
)

type UsageRepository interface {
	Create(ctx context.Context, stat *entity.UsageStat) error
	// CountByAction groups matching rows by action_type.
	CountByAction(ctx context.Context, specs ...specification.Specification) (map[entity.ActionType]int, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
