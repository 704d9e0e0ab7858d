// Package handler contains the HTTP handlers for the farm alert API.
package handler

import (
	"net/http"

	"herdwatch/internal/delivery/http/response"
	domainerrors "herdwatch/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// getFarmID extracts the authenticated farm scope set by the auth middleware.
func getFarmID(c echo.Context) (uuid.UUID, error) {
	farmIDVal := c.Get("farmID")
	farmID, ok := farmIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Farm scope missing from token")
	}

	return farmID, nil
}

// handleAppError renders an AppError envelope, or defers to the error
// middleware for anything else.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
