package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the core CRM record. City and social status are optional
// references to the corresponding lookup entities.
type Customer struct {
	Versioned

	ID         uuid.UUID  `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	MiddleName *string    `json:"middle_name,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`

	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`

	CityID         *uuid.UUID `json:"city_id,omitempty"`
	SocialStatusID *uuid.UUID `json:"social_status_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) GetID() string {
	return c.ID.String()
}
