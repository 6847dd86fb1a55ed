package dtos

import (
	"github.com/clienthub/customers-service/internal/models"
)

// User is the data transfer object for a user account, omitting the
// password hash.
type User struct {
	ID          string              `json:"id"`
	Username    string              `json:"username"`
	DisplayName string              `json:"display_name"`
	RoleName    models.UserRoleName `json:"role_name"`
	Version     int64               `json:"version"`
}

// NewUserFromModel creates a User DTO from a models.User.
func NewUserFromModel(user models.User) User {
	return User{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		RoleName:    user.RoleName,
		Version:     user.RowVersion,
	}
}

// UserPage is one page of a user listing.
type UserPage struct {
	Items      []User `json:"items"`
	TotalCount int    `json:"total_count"`
}

// ----------------------
// Requests
// ----------------------

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=200"`
	RoleName    string `json:"role_name" validate:"required,min=1,max=50"`
}

// UpdateUserRequest replaces the row as read at Version. A nil Password
// keeps the current one.
type UpdateUserRequest struct {
	ID          string  `json:"id" validate:"required,uuid"`
	Username    string  `json:"username" validate:"required,min=3,max=100"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	DisplayName string  `json:"display_name" validate:"required,min=1,max=200"`
	RoleName    string  `json:"role_name" validate:"required,min=1,max=50"`
	Version     int64   `json:"version" validate:"required,min=1"`
}

// UserRole mirrors the seeded role reference rows.
type UserRole struct {
	Name        models.UserRoleName `json:"name"`
	Description string              `json:"description"`
}

func NewUserRoleFromModel(role models.UserRole) UserRole {
	return UserRole{
		Name:        role.Name,
		Description: role.Description,
	}
}
