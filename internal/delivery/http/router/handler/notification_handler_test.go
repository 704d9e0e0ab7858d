package handler

import (
	"net/http"
	"testing"
	"time"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	mockUC "herdwatch/internal/mocks/usecase"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListNotifications_ParsesPagination(t *testing.T) {
	c, rec, farmID := newTestContext(t, http.MethodGet, "/farm/notifications?limit=5&offset=10", "")

	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, testLogger())

	uc.EXPECT().ListNotifications(c.Request().Context(), farmID, 5, 10).
		Return([]*entity.Notification{
			{ID: uuid.New(), FarmID: farmID, Title: "Animals did not return", CreatedAt: time.Now()},
		}, nil)

	require.NoError(t, h.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	id := uuid.New()
	c, rec, farmID := newTestContext(t, http.MethodPost, "/farm/notifications/"+id.String()+"/read", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, testLogger())

	uc.EXPECT().MarkRead(c.Request().Context(), farmID, id).
		Return(domainerrors.ErrNotificationNotFound)

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardHandler_GetOverview_Success(t *testing.T) {
	c, rec, farmID := newTestContext(t, http.MethodGet, "/farm/dashboard", "")

	uc := mockUC.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(uc, testLogger())

	uc.EXPECT().GetOverview(c.Request().Context(), farmID).
		Return(&usecase.DashboardOverview{
			FarmID:        farmID,
			Day:           "2026-03-14",
			RosterSize:    12,
			ReturnedToday: 10,
			MissingToday:  2,
		}, nil)

	require.NoError(t, h.GetOverview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
