package postgres

import (
	"context"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alertScheduleRepository implements the repository.AlertScheduleRepository interface.
type alertScheduleRepository struct {
	db *gorm.DB
}

// NewAlertScheduleRepository is the constructor for alertScheduleRepository.
func NewAlertScheduleRepository(db *gorm.DB) repository.AlertScheduleRepository {
	return &alertScheduleRepository{
		db: db,
	}
}

// FindScheduleByFarm retrieves a farm's schedule, or nil when none is stored.
func (repo *alertScheduleRepository) FindScheduleByFarm(ctx context.Context, farmID uuid.UUID) (*entity.AlertSchedule, error) {
	var scheduleM model.AlertScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find alert schedule by farm")
	}

	return toAlertScheduleDomain(&scheduleM), nil
}

// UpsertSchedule writes a farm's schedule, replacing any existing row.
func (repo *alertScheduleRepository) UpsertSchedule(ctx context.Context, schedule *entity.AlertSchedule) error {
	scheduleM := fromAlertScheduleDomain(schedule)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "farm_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fire_at", "updated_at"}),
		}).
		Create(scheduleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFarmNotFound.WrapMessage("invalid farm reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert alert schedule")
	}

	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAlertScheduleDomain converts a GORM AlertScheduleModel to a domain AlertSchedule entity.
func toAlertScheduleDomain(data *model.AlertScheduleModel) *entity.AlertSchedule {
	if data == nil {
		return nil
	}

	return &entity.AlertSchedule{
		FarmID:    data.FarmID,
		FireAt:    data.FireAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAlertScheduleDomain converts a domain AlertSchedule entity to a GORM AlertScheduleModel.
func fromAlertScheduleDomain(data *entity.AlertSchedule) *model.AlertScheduleModel {
	if data == nil {
		return nil
	}

	return &model.AlertScheduleModel{
		FarmID: data.FarmID,
		FireAt: data.FireAt,
	}
}
