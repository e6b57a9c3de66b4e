package usecase

import "errors"

// Sentinel errors for use case layer. The HTTP controller maps these onto
// status codes.
var (
	// Validation errors (HTTP 400)
	ErrValidation = errors.New("validation failed")

	// Authentication errors (HTTP 401)
	ErrInvalidToken = errors.New("invalid or expired token")

	// Access control errors (HTTP 403)
	ErrForbidden = errors.New("operation not permitted for role")
)
