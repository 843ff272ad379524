package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/pkg/apperrors"
	"github.com/ardiansetya/coursehub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers call it
// on every non-nil service error so the status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorMessage(err, "Validation failed")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))

	case errors.Is(err, apperrors.ErrPaymentRequired):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Payment required to access this account"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied"))

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))

	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Course not found"))

	case errors.Is(err, apperrors.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Category not found"))

	case errors.Is(err, apperrors.ErrContentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Content not found"))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))

	case errors.Is(err, apperrors.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Transaction not found"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorMessage(err, "Resource not found")))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already exists"))

	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Student already enrolled in this course"))

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(errorMessage(err, "Conflict")))

	case errors.Is(err, apperrors.ErrGateway):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(errorMessage(err, "Payment gateway error")))

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

// errorMessage prefers the message carried by a CustomError over the fallback
func errorMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
