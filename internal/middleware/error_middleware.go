package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/pkg/apperrors"
	"github.com/baris/collegehub/internal/pkg/logger"
)

// HandleAPIError translates a service error into the uniform envelope.
// Unknown errors collapse to 500 without leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")

	case errors.Is(err, apperrors.ErrAccountInactive):
		respondError(c, http.StatusForbidden, dto.ErrorCodeAccountInactive, "Account is not active")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid or expired token")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Access denied. Insufficient permissions.")

	case errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists),
		errors.Is(err, apperrors.ErrFacultyAlreadyExists),
		errors.Is(err, apperrors.ErrCourseAlreadyExists),
		errors.Is(err, apperrors.ErrStudentAlreadyExists),
		errors.Is(err, apperrors.ErrDuplicateKey):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, err.Error())

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError responds 400 with per-field binding messages
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.HandleValidationError(err)
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(errorDetail, errorDetail.Message, http.StatusBadRequest))
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	errorDetail := dto.NewErrorDetail(code, message)
	c.JSON(status, dto.NewErrorResponse(errorDetail, message, status))
}
