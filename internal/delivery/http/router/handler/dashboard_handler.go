package handler

import (
	"log/slog"
	"net/http"

	"herdwatch/internal/delivery/http/response"
	"herdwatch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler holds dependencies for dashboard handlers
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetOverview returns the farm's cached overview aggregate.
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	farmID, err := getFarmID(c)
	if err != nil {
		return err
	}

	overview, err := h.uc.GetOverview(c.Request().Context(), farmID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview, "Overview retrieved successfully")
}
