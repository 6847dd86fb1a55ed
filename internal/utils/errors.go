package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrNotFound = errors.New("not_found")

	// Uniqueness pre-check failures.
	ErrUsernameExists         = errors.New("username_not_unique")
	ErrCityNameExists         = errors.New("city_name_not_unique")
	ErrSocialStatusNameExists = errors.New("social_status_name_not_unique")

	// For concurrency conflicts: the row was changed (or deleted) after the
	// caller read the version it is now presenting.
	ErrVersionConflict = errors.New("version_conflict")

	// Referential failures on customer writes and reference-data deletes.
	ErrUserRoleNotFound     = errors.New("user_role_not_found")
	ErrCityNotFound         = errors.New("city_not_found")
	ErrSocialStatusNotFound = errors.New("social_status_not_found")
	ErrCityInUse            = errors.New("city_in_use")
	ErrSocialStatusInUse    = errors.New("social_status_in_use")

	// Authentication failures.
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrSessionExpired     = errors.New("session_expired")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)
