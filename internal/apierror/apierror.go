// Package apierror provides the error body used outside the procedure
// envelope: authentication and request-shape failures answer with a bare
// message so internal details (stack traces, DB errors) never reach clients.
package apierror

// APIError is the canonical body for 401/403/404/429 responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Error de validación", Fields: fields}
}
