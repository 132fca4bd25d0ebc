package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/pkg/response"
)

// fail translates service errors into HTTP statuses with stable machine
// codes. Anything unrecognized is logged and reported as a 500.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	var ve *application.ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", map[string]string{ve.Field: ve.Reason})
	case errors.Is(err, application.ErrDuplicateEmail):
		response.ErrorCode(c, http.StatusBadRequest, "DUPLICATE_EMAIL", "user with this email already exists", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.ErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password", nil)
	case errors.Is(err, application.ErrEmailNotVerified):
		response.ErrorCode(c, http.StatusForbidden, "EMAIL_NOT_VERIFIED", "email address not verified", nil)
	case errors.Is(err, application.ErrAlreadyVerified):
		response.ErrorCode(c, http.StatusBadRequest, "ALREADY_VERIFIED", "email already verified", nil)
	case errors.Is(err, application.ErrTokenExpired):
		response.ErrorCode(c, http.StatusBadRequest, "TOKEN_EXPIRED", "verification token expired", nil)
	case errors.Is(err, application.ErrTokenNotFound):
		response.ErrorCode(c, http.StatusBadRequest, "INVALID_TOKEN", "invalid verification token", nil)
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrAccountNotFound),
		errors.Is(err, application.ErrOrderNotFound):
		response.ErrorCode(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, application.ErrForbidden):
		response.ErrorCode(c, http.StatusForbidden, "FORBIDDEN", "not allowed", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
