package impl

import (
	"context"
	"log/slog"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/errors"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates the notification read service.
func NewNotificationService(logger *slog.Logger, notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, farmID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.notificationRepo.FindNotificationsByFarm(ctx, farmID, limit, offset)
}

func (s *notificationService) MarkRead(ctx context.Context, farmID, id uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, farmID, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return err
	}

	return nil
}
