package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	mockRepo "herdwatch/internal/mocks/repository"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	notificationSvc := NewNotificationService(logger, notificationRepo)

	return notificationSvc, notificationRepo
}

func TestNotificationService_ListNotifications_DefaultPagination(t *testing.T) {
	notificationSvc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	farmID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), FarmID: farmID, Title: "Animals did not return", CreatedAt: time.Now()},
	}

	notificationRepo.EXPECT().FindNotificationsByFarm(ctx, farmID, 20, 0).Return(expected, nil)

	notifications, err := notificationSvc.ListNotifications(ctx, farmID, 0, -5)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_ListNotifications_LimitClamped(t *testing.T) {
	notificationSvc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	farmID := uuid.New()

	notificationRepo.EXPECT().FindNotificationsByFarm(ctx, farmID, 100, 40).
		Return([]*entity.Notification{}, nil)

	notifications, err := notificationSvc.ListNotifications(ctx, farmID, 5000, 40)

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	notificationSvc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	farmID := uuid.New()
	id := uuid.New()

	notificationRepo.EXPECT().MarkNotificationRead(ctx, farmID, id).Return(nil)

	err := notificationSvc.MarkRead(ctx, farmID, id)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	notificationSvc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	farmID := uuid.New()
	id := uuid.New()

	notificationRepo.EXPECT().MarkNotificationRead(ctx, farmID, id).
		Return(repository.ErrNotificationNotFound)

	err := notificationSvc.MarkRead(ctx, farmID, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
