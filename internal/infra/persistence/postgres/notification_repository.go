package postgres

import (
	"context"
	"time"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification row.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFarmNotFound.WrapMessage("invalid farm or recipient reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByFarm retrieves notifications for a farm, newest first, with pagination.
func (repo *notificationRepository) FindNotificationsByFarm(ctx context.Context, farmID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by farm")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// FindNotificationInWindow retrieves the most recent notification created for
// a farm within [from, to). Returns ErrNotificationNotFound on a clean window.
func (repo *notificationRepository) FindNotificationInWindow(ctx context.Context, farmID uuid.UUID, from, to time.Time) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("farm_id = ? AND created_at >= ? AND created_at < ?", farmID, from, to).
		Order("created_at DESC").
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification in window")
	}

	return toNotificationDomain(&notificationM), nil
}

// MarkNotificationRead flips the read flag for a single notification.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, farmID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND farm_id = ?", id, farmID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// CountUnreadByFarm returns the number of unread notifications for a farm.
func (repo *notificationRepository) CountUnreadByFarm(ctx context.Context, farmID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("farm_id = ? AND is_read = false", farmID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:              data.ID,
		FarmID:          data.FarmID,
		RecipientUserID: data.RecipientUserID,
		Title:           data.Title,
		Message:         data.Message,
		IsRead:          data.IsRead,
		CreatedAt:       data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:              data.ID,
		FarmID:          data.FarmID,
		RecipientUserID: data.RecipientUserID,
		Title:           data.Title,
		Message:         data.Message,
		IsRead:          data.IsRead,
		CreatedAt:       data.CreatedAt,
	}
}
