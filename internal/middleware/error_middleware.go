// Package middleware provides the gin middleware and the shared
// error-to-response mapping used by every controller.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Every
// controller funnels its failures through here so status codes stay
// consistent.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validationErr.Message).
			WithField(validationErr.Field)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))

	case apperrors.Is(err, apperrors.ErrUnauthorized, apperrors.ErrSessionNotFound, apperrors.ErrSessionExpired):
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrNotFound):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrUsernameTaken):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already exists").
			WithField("username")
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrEmailTaken):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").
			WithField("email")
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrConflict):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}

// HandleBindingError maps a gin binding failure to a 400 response
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
