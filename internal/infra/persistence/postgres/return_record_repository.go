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
	"gorm.io/gorm/clause"
)

// returnRecordRepository implements the repository.ReturnRecordRepository interface.
type returnRecordRepository struct {
	db *gorm.DB
}

// NewReturnRecordRepository is the constructor for returnRecordRepository.
func NewReturnRecordRepository(db *gorm.DB) repository.ReturnRecordRepository {
	return &returnRecordRepository{
		db: db,
	}
}

// FindRecordsByFarmAndDate retrieves all return records for a farm on a calendar day.
func (repo *returnRecordRepository) FindRecordsByFarmAndDate(ctx context.Context, farmID uuid.UUID, day time.Time) ([]*entity.ReturnRecord, error) {
	var recordModels []*model.ReturnRecordModel

	if err := repo.db.WithContext(ctx).
		Where("farm_id = ? AND date = ?", farmID, entity.Day(day)).
		Order("updated_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find return records by farm and date")
	}

	records := make([]*entity.ReturnRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toReturnRecordDomain(recordM))
	}

	return records, nil
}

// UpsertRecord writes a return record keyed on (farm, animal, day) using
// ON CONFLICT DO UPDATE, so two simultaneous scan events for the same animal
// and day resolve to a single row.
func (repo *returnRecordRepository) UpsertRecord(ctx context.Context, record *entity.ReturnRecord) error {
	recordM := fromReturnRecordDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "farm_id"},
				{Name: "animal_id"},
				{Name: "date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"returned", "reason", "updated_at"}),
		}).
		Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAnimalNotFound.WrapMessage("invalid farm or animal reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required return record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert return record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// DeleteRecord removes a record, reverting the day to "unknown".
func (repo *returnRecordRepository) DeleteRecord(ctx context.Context, farmID, animalID uuid.UUID, day time.Time) error {
	result := repo.db.WithContext(ctx).
		Where("farm_id = ? AND animal_id = ? AND date = ?", farmID, animalID, entity.Day(day)).
		Delete(&model.ReturnRecordModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete return record")
	}

	return nil
}

// --- Mapper Functions ---

// toReturnRecordDomain converts a GORM ReturnRecordModel to a domain ReturnRecord entity.
func toReturnRecordDomain(data *model.ReturnRecordModel) *entity.ReturnRecord {
	if data == nil {
		return nil
	}

	return &entity.ReturnRecord{
		FarmID:    data.FarmID,
		AnimalID:  data.AnimalID,
		Date:      data.Date,
		Returned:  data.Returned,
		Reason:    data.Reason,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReturnRecordDomain converts a domain ReturnRecord entity to a GORM ReturnRecordModel.
func fromReturnRecordDomain(data *entity.ReturnRecord) *model.ReturnRecordModel {
	if data == nil {
		return nil
	}

	return &model.ReturnRecordModel{
		FarmID:   data.FarmID,
		AnimalID: data.AnimalID,
		Date:     entity.Day(data.Date),
		Returned: data.Returned,
		Reason:   data.Reason,
	}
}
