package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and manage customer data.
type User struct {
	Versioned

	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize to JSON

	DisplayName string       `json:"display_name"`
	RoleName    UserRoleName `json:"role_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) GetID() string {
	return u.ID.String()
}

func (u *User) IsAdministrator() bool {
	return u.RoleName == UserRoleAdministrator
}
