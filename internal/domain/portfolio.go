package domain

import (
	"time"

	"github.com/google/uuid"

	"portfolio-builder/internal/model"
)

// Portfolio is the persisted unit: a content model plus ownership and
// timestamps. The renderers and generators only ever see the Content
// projection and must not depend on the rest.
type Portfolio struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Content   model.ContentModel `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
