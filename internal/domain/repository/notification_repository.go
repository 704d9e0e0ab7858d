package repository

import (
	"context"
	"errors"
	"time"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for the notification store.
// The alert pipeline only appends; list and read-state operations exist for
// the UI-facing delivery layer.
type NotificationRepository interface {
	// CreateNotification persists a new notification row.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByFarm retrieves notifications for a farm, newest
	// first, with pagination.
	FindNotificationsByFarm(ctx context.Context, farmID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// FindNotificationInWindow retrieves the most recent notification created
	// for a farm within [from, to). Used for per-day alert deduplication.
	FindNotificationInWindow(ctx context.Context, farmID uuid.UUID, from, to time.Time) (*entity.Notification, error)

	// MarkNotificationRead flips the read flag for a single notification.
	MarkNotificationRead(ctx context.Context, farmID, id uuid.UUID) error

	// CountUnreadByFarm returns the number of unread notifications for a farm.
	CountUnreadByFarm(ctx context.Context, farmID uuid.UUID) (int64, error)
}
