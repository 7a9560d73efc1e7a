package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CmsContent struct {
	Id        uuid.UUID
	Section   string
	Content   json.RawMessage
	UpdatedAt time.Time
}
