package dtos

// ValidationErrorDetail is a structured per-field entry in the details of a
// validation error response.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
