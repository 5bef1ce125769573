package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrMissingClaim):
		Unauthorized(w, "Token is missing required claims")

	// User domain errors
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
