package handler

import (
	"log/slog"
	"net/http"

	"herdwatch/internal/delivery/http/response"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CheckinHandler holds dependencies for check-in handlers
type CheckinHandler struct {
	uc      usecase.CheckinUsecase
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewCheckinHandler is the constructor for CheckinHandler
func NewCheckinHandler(uc usecase.CheckinUsecase, alertUC usecase.AlertUsecase, logger *slog.Logger) *CheckinHandler {
	return &CheckinHandler{
		uc:      uc,
		alertUC: alertUC,
		logger:  logger,
	}
}

// RecordCheckinRequest represents the request body for recording a check-in.
// A plain scan omits returned; an administrative correction can set
// returned=false with a reason.
type RecordCheckinRequest struct {
	AnimalID uuid.UUID `json:"animal_id" validate:"required"`
	Returned *bool     `json:"returned,omitempty"`
	Reason   *string   `json:"reason,omitempty"`
}

// RecordCheckin records a return event for the current farm-local day.
func (h *CheckinHandler) RecordCheckin(c echo.Context) error {
	farmID, err := getFarmID(c)
	if err != nil {
		return err
	}

	var req RecordCheckinRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "animal_id is required")
	}

	returned := true
	if req.Returned != nil {
		returned = *req.Returned
	}

	record, err := h.uc.RecordCheckin(c.Request().Context(), farmID, req.AnimalID, returned, req.Reason)
	if err != nil {
		return handleAppError(c, err)
	}

	// A scan gate can ask for an immediate re-evaluation so a pending alert
	// reflects the animal that just walked in. The check-in itself already
	// succeeded, so a failed evaluation is only logged.
	if c.QueryParam("evaluate") == "true" {
		if _, err := h.alertUC.TriggerNow(c.Request().Context(), farmID); err != nil {
			h.logger.Warn("post-checkin evaluation failed",
				slog.String("farmID", farmID.String()),
				slog.Any("error", err))
		}
	}

	return response.Success(c, http.StatusCreated, record, "Check-in recorded successfully")
}

// RevertCheckin deletes the animal's record for the current farm-local day.
func (h *CheckinHandler) RevertCheckin(c echo.Context) error {
	farmID, err := getFarmID(c)
	if err != nil {
		return err
	}

	animalID, err := uuid.Parse(c.Param("animalID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid animal ID")
	}

	if err := h.uc.RevertCheckin(c.Request().Context(), farmID, animalID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Check-in reverted successfully")
}
