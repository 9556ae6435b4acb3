package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"expensetrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one violated constraint in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated constraint of a request, not
// just the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// newValidationError converts a gin binding failure into field-level details.
func newValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Malformed JSON or a type mismatch: no per-field breakdown exists.
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
	ve := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Message: constraintMessage(fe)})
	}
	return ve
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q constraint", fe.Tag())
	}
}

// errorMiddleware converts any error pushed by a handler into the response
// for its taxonomy class. Unrecognized errors become logged 500s; their
// details are never echoed to the caller.
func (h *Handler) errorMiddleware(c *gin.Context) {
	c.Next()

	last := c.Errors.Last()
	if last == nil {
		return
	}
	err := last.Err

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "details": ve.Fields})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
	case errors.Is(err, service.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
	default:
		if h.log != nil {
			h.log.Errorw("unhandled_request_error",
				"method", c.Request.Method, "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
