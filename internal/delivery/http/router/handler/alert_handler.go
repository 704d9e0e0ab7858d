package handler

import (
	"log/slog"
	"net/http"

	"herdwatch/internal/delivery/http/response"
	"herdwatch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AlertHandler holds dependencies for alert-related handlers
type AlertHandler struct {
	alertUC    usecase.AlertUsecase
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(alertUC usecase.AlertUsecase, scheduleUC usecase.ScheduleUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		alertUC:    alertUC,
		scheduleUC: scheduleUC,
		logger:     logger,
	}
}

// TriggerAlert runs the alert pipeline immediately for the caller's farm.
// Safe to call repeatedly: with per-day dedupe enabled a second trigger for
// the same day reuses the existing notification.
func (h *AlertHandler) TriggerAlert(c echo.Context) error {
	farmID, err := getFarmID(c)
	if err != nil {
		return err
	}

	result, err := h.alertUC.TriggerNow(c.Request().Context(), farmID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Alert cycle completed")
}

// GetSchedule returns the farm's configured daily alert time.
func (h *AlertHandler) GetSchedule(c echo.Context) error {
	farmID, err := getFarmID(c)
	if err != nil {
		return err
	}

	schedule, err := h.scheduleUC.GetSchedule(c.Request().Context(), farmID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule, "Schedule retrieved successfully")
}

// UpdateScheduleRequest represents the request body for changing the alert time
type UpdateScheduleRequest struct {
	FireAt string `json:"fire_at" validate:"required"`
}

// UpdateSchedule changes the farm's daily alert time and re-arms its timer.
func (h *AlertHandler) UpdateSchedule(c echo.Context) error {
	farmID, err := getFarmID(c)
	if err != nil {
		return err
	}

	var req UpdateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid schedule input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "fire_at is required")
	}

	schedule, err := h.scheduleUC.UpdateSchedule(c.Request().Context(), farmID, req.FireAt)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule, "Schedule updated successfully")
}
