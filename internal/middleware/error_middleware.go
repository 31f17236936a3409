package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
	"github.com/alumlink/alumlink/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the uniform {"error": ...} body.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: messageOf(err)})

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.ErrEmailAlreadyExists.Error()})

	case errors.Is(err, apperrors.ErrJobNotFoundOrClosed):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: apperrors.ErrJobNotFoundOrClosed.Error()})

	case errors.Is(err, apperrors.ErrEventNotFoundOrCompleted):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: apperrors.ErrEventNotFoundOrCompleted.Error()})

	case errors.Is(err, apperrors.ErrEventFull):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.ErrEventFull.Error()})

	case errors.Is(err, apperrors.ErrInvalidMentor):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.ErrInvalidMentor.Error()})

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: messageOf(err)})

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: messageOf(err)})

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: messageOf(err)})

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// messageOf prefers the wrapped CustomError message when present.
func messageOf(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return err.Error()
}
