package usecase

import (
	"context"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase is the UI-facing read side of the notification store.
// The alert pipeline appends notifications; this is the only surface allowed
// to mutate read state.
type NotificationUsecase interface {
	// ListNotifications retrieves a farm's notifications, newest first.
	ListNotifications(ctx context.Context, farmID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips the read flag on one notification.
	MarkRead(ctx context.Context, farmID, id uuid.UUID) error
}
