package models

import (
	"time"

	"github.com/google/uuid"
)

type City struct {
	Versioned

	ID       uuid.UUID `json:"id"`
	CityName string    `json:"city_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *City) GetID() string {
	return c.ID.String()
}
