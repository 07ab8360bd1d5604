package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/SellSage/biz_management_app/internal/dto"
	"github.com/SellSage/biz_management_app/internal/middleware"
)

// respondError maps service errors onto the uniform {"detail": ...} error
// body. Sentinel order matters: insufficient stock wraps validation, and the
// more specific message should win.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	detail := "internal server error"

	switch {
	case errors.Is(err, apperrors.ErrInsufficientStock):
		status = http.StatusBadRequest
		detail = "insufficient stock"
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		detail = "resource not found"
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		detail = "forbidden"
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
		detail = "resource already exists"
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		detail = err.Error()
	}

	if status == http.StatusInternalServerError {
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Detail: detail})
}

// bindError reports a request binding failure.
func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid request format: " + err.Error()})
}

// callerOrAbort resolves the authenticated user or writes a 401.
func callerOrAbort(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "unauthorized"})
	}
	return user, ok
}
