// FILE: internal/dto/research_dto.go
package dto

import (
	"time"

	"sellerkit-be/internal/entity"

	"github.com/google/uuid"
)

// KeywordResearchRequest intentionally has no validate tag on Platforms: an
// empty list is a valid request, only a missing or non-array value is
// rejected (checked in the controller since BodyParser leaves absent slices
// nil).
type KeywordResearchRequest struct {
	SeedKeyword string   `json:"seedKeyword" validate:"required"`
	Platforms   []string `json:"platforms"`
}

type ResearchHistoryResponse struct {
	Id          uuid.UUID              `json:"id"`
	SeedKeyword string                 `json:"seedKeyword"`
	Platforms   []string               `json:"platforms"`
	Results     entity.ResearchResults `json:"results"`
	CreatedAt   time.Time              `json:"createdAt"`
}
