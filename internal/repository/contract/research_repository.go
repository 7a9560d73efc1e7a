package contract

import (
	"context"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"
)

type ResearchRepository interface {
	Create(ctx context.Context, research *entity.KeywordResearch) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KeywordResearch, error)
}
