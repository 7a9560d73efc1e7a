package contract

import (
	"context"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"
)

type UserRepository interface {
	// Upsert inserts a new user or updates all mutable fields of an existing
	// row matched by id, returning the resulting state through the pointer.
	Upsert(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
