package models

type UserRoleName string

const (
	UserRoleAdministrator UserRoleName = "ADMINISTRATOR"
	UserRoleUser          UserRoleName = "USER"
)

// UserRole is reference data; rows are seeded by migration.
type UserRole struct {
	Name        UserRoleName `json:"name"`
	Description string       `json:"description"`
}
