// Package apperror defines the failure taxonomy shared by every usecase and
// the single point where failures become HTTP status codes. Nothing below
// the delivery layer knows about HTTP.
package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrNotFound covers both "resource absent" and "resource not owned by
	// the caller". The two must stay indistinguishable so that the existence
	// of another user's resources is never revealed.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthenticated covers missing, malformed and expired tokens as
	// well as bad login credentials.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrEmailTaken is raised when registering or changing to an email that
	// another account already uses.
	ErrEmailTaken = errors.New("email already registered")
)

// FieldError carries a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Fields[0].Field + " " + e.Fields[0].Message
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Write translates a usecase failure into an HTTP response. Uncategorized
// errors become a generic 500; their details are never serialized.
func Write(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "fields": verr.Fields})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
