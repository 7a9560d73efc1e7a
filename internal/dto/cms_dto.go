// FILE: internal/dto/cms_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type UpdateCmsRequest struct {
	Content json.RawMessage `json:"content" validate:"required"`
}

type CmsContentResponse struct {
	Id        uuid.UUID       `json:"id"`
	Section   string          `json:"section"`
	Content   json.RawMessage `json:"content"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
