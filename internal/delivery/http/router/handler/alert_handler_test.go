package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"herdwatch/internal/delivery/http/validator"
	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	mockUC "herdwatch/internal/mocks/usecase"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder, uuid.UUID) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	farmID := uuid.New()
	c.Set("farmID", farmID)
	c.Set("userID", uuid.New())

	return c, rec, farmID
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestAlertHandler_TriggerAlert_Success(t *testing.T) {
	c, rec, farmID := newTestContext(t, http.MethodPost, "/farm/alerts/trigger", "")

	alertUC := mockUC.NewMockAlertUsecase(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	h := NewAlertHandler(alertUC, scheduleUC, testLogger())

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	alertUC.EXPECT().TriggerNow(c.Request().Context(), farmID).
		Return(&usecase.CycleResult{FarmID: farmID, Day: day, EmailDelivered: true}, nil)

	require.NoError(t, h.TriggerAlert(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}

func TestAlertHandler_TriggerAlert_FarmNotFound(t *testing.T) {
	c, rec, farmID := newTestContext(t, http.MethodPost, "/farm/alerts/trigger", "")

	alertUC := mockUC.NewMockAlertUsecase(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	h := NewAlertHandler(alertUC, scheduleUC, testLogger())

	alertUC.EXPECT().TriggerNow(c.Request().Context(), farmID).
		Return(nil, domainerrors.ErrFarmNotFound)

	require.NoError(t, h.TriggerAlert(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestAlertHandler_UpdateSchedule_Success(t *testing.T) {
	c, rec, farmID := newTestContext(t, http.MethodPut, "/farm/alerts/schedule", `{"fire_at":"05:45"}`)

	alertUC := mockUC.NewMockAlertUsecase(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	h := NewAlertHandler(alertUC, scheduleUC, testLogger())

	scheduleUC.EXPECT().UpdateSchedule(c.Request().Context(), farmID, "05:45").
		Return(&entity.AlertSchedule{FarmID: farmID, FireAt: "05:45"}, nil)

	require.NoError(t, h.UpdateSchedule(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAlertHandler_UpdateSchedule_MissingFireAt(t *testing.T) {
	c, rec, _ := newTestContext(t, http.MethodPut, "/farm/alerts/schedule", `{}`)

	alertUC := mockUC.NewMockAlertUsecase(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	h := NewAlertHandler(alertUC, scheduleUC, testLogger())

	require.NoError(t, h.UpdateSchedule(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlertHandler_GetSchedule_Success(t *testing.T) {
	c, rec, farmID := newTestContext(t, http.MethodGet, "/farm/alerts/schedule", "")

	alertUC := mockUC.NewMockAlertUsecase(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	h := NewAlertHandler(alertUC, scheduleUC, testLogger())

	scheduleUC.EXPECT().GetSchedule(c.Request().Context(), farmID).
		Return(&entity.AlertSchedule{FarmID: farmID, FireAt: "21:00"}, nil)

	require.NoError(t, h.GetSchedule(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
