package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
)

// HandleBindingError converts a gin binding failure into the standard 400
// envelope, with one entry per failed validation rule.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed", ValidationErrorDetails(err)...))
}

// ValidationErrorDetails renders validator errors as human-readable strings
func ValidationErrorDetails(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, formatValidationError(fieldErr))
	}
	return details
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
