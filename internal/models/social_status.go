package models

import (
	"time"

	"github.com/google/uuid"
)

type SocialStatus struct {
	Versioned

	ID               uuid.UUID `json:"id"`
	SocialStatusName string    `json:"social_status_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SocialStatus) GetID() string {
	return s.ID.String()
}
