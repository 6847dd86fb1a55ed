package graph

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/metrics"
	"github.com/clienthub/customers-service/internal/utils"
)

// RequestError is the error type every resolver ultimately returns. It
// carries a standard machine-readable code that ends up in the GraphQL
// error extensions, so clients can branch on `extensions.code` instead of
// parsing messages.
type RequestError struct {
	Code    string
	Message string
	Details any
}

func (e *RequestError) Error() string { return e.Message }

// Extensions satisfies gqlerrors.ExtendedError so the code (and details,
// when present) travel with the formatted GraphQL error.
func (e *RequestError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if e.Details != nil {
		ext["details"] = e.Details
	}
	return ext
}

func newRequestError(code, message string) *RequestError {
	return &RequestError{Code: code, Message: message}
}

// mapDomainError converts a service-layer error into the RequestError the
// client sees. Domain sentinels get their own code; anything unrecognized
// is logged and masked behind a generic internal error.
func mapDomainError(operation string, err error) *RequestError {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}

	switch {
	case errors.Is(err, utils.ErrNotFound):
		return newRequestError(utils.ErrCodeNotFound, "Resource not found")
	case errors.Is(err, utils.ErrVersionConflict):
		metrics.RecordVersionConflict(operation)
		return newRequestError(utils.ErrCodeVersionConflict,
			"The record was changed by another request; reload it and retry")
	case errors.Is(err, utils.ErrUsernameExists):
		return newRequestError(utils.ErrCodeUsernameNotUnique, "Username is already taken")
	case errors.Is(err, utils.ErrCityNameExists):
		return newRequestError(utils.ErrCodeCityNameNotUnique, "City name is already taken")
	case errors.Is(err, utils.ErrSocialStatusNameExists):
		return newRequestError(utils.ErrCodeSocialStatusNameNotUnique,
			"Social status name is already taken")
	case errors.Is(err, utils.ErrUserRoleNotFound):
		return newRequestError(utils.ErrCodeUserRoleNotFound, "Unknown user role")
	case errors.Is(err, utils.ErrCityNotFound):
		return newRequestError(utils.ErrCodeCityNotFound, "Referenced city does not exist")
	case errors.Is(err, utils.ErrSocialStatusNotFound):
		return newRequestError(utils.ErrCodeSocialStatusNotFound,
			"Referenced social status does not exist")
	case errors.Is(err, utils.ErrCityInUse):
		return newRequestError(utils.ErrCodeCityInUse, "City is still referenced by customers")
	case errors.Is(err, utils.ErrSocialStatusInUse):
		return newRequestError(utils.ErrCodeSocialStatusInUse,
			"Social status is still referenced by customers")
	case errors.Is(err, utils.ErrInvalidCredentials):
		return newRequestError(utils.ErrCodeInvalidCredentials, "Invalid username or password")
	case errors.Is(err, utils.ErrInvalidSession):
		return newRequestError(utils.ErrCodeInvalidSession, "Invalid session")
	case errors.Is(err, utils.ErrSessionExpired):
		return newRequestError(utils.ErrCodeSessionExpired, "Session expired, sign in again")
	case errors.Is(err, utils.ErrUnauthorized):
		return newRequestError(utils.ErrCodeUnauthorized, "Authentication required")
	case errors.Is(err, utils.ErrForbidden):
		return newRequestError(utils.ErrCodeForbidden, "Insufficient permissions")
	default:
		utils.Logger.WithError(err).Errorf("Unhandled error resolving %s", operation)
		return newRequestError(utils.ErrCodeInternal, "Internal server error")
	}
}

var validate = validator.New()

// validateStruct runs the tag validators on a request DTO and, on failure,
// returns a validation RequestError with per-field details.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return &RequestError{
			Code:    utils.ErrCodeValidation,
			Message: "Invalid input",
			Details: formatValidationErrors(vErrs),
		}
	}
	return err
}

// formatValidationErrors converts validator errors into a user-friendly format.
func formatValidationErrors(errs validator.ValidationErrors) []dtos.ValidationErrorDetail {
	var details []dtos.ValidationErrorDetail
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field '%s' must be a valid email address", err.Field())
		case "uuid":
			message = fmt.Sprintf("Field '%s' must be a valid UUID", err.Field())
		case "min":
			message = fmt.Sprintf("Field '%s' must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field '%s' must not exceed %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag",
				err.Field(), err.Tag())
		}
		details = append(details, dtos.ValidationErrorDetail{
			Field:   err.Field(),
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}
	return details
}
