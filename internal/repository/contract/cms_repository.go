package contract

import (
	"context"
	"encoding/json"

	"sellerkit-be/internal/entity"
)

type CmsRepository interface {
	FindBySection(ctx context.Context, section string) (*entity.CmsContent, error)
	// Upsert inserts or replaces the content of the unique section key.
	Upsert(ctx context.Context, section string, content json.RawMessage) (*entity.CmsContent, error)
}
