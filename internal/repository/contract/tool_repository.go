package contract

import (
	"context"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ToolRepository interface {
	Create(ctx context.Context, tool *entity.Tool) error
	// UpdatePartial merges the non-nil fields of update into the row and
	// refreshes updated_at.
	UpdatePartial(ctx context.Context, id uuid.UUID, update *entity.ToolUpdate) (*entity.Tool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tool, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tool, error)
}
