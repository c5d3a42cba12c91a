package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
	"github.com/campusdesk/facultyhub/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors onto HTTP responses.
// Every error body is {"message": string}; wrapped CustomError messages
// reach the client, sentinel matching picks the status.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)
	message := messageFor(err, status)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotRecordOwner),
		errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrAccountNotApproved):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrRecordNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrNoExportData):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	// Internal details never leak to the client
	if status == http.StatusInternalServerError {
		return "Internal server error"
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, apperrors.ErrAccountNotApproved):
		return "Account pending admin approval"
	case errors.Is(err, apperrors.ErrNotRecordOwner):
		return "You do not have access to this record"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return "Permission denied"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return "Invalid token"
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		return "Faculty not found"
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		return "Department not found"
	case errors.Is(err, apperrors.ErrNoExportData):
		return "No data found for the given filters"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return "Email already exists"
	case errors.Is(err, apperrors.ErrRecordNotFound):
		return "Record not found"
	case errors.Is(err, apperrors.ErrValidationFailed):
		return "Validation failed"
	default:
		return err.Error()
	}
}
