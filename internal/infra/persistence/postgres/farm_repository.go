// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"herdwatch/internal/domain/entity"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmRepository implements the repository.FarmRepository interface.
type farmRepository struct {
	db *gorm.DB
}

// NewFarmRepository is the constructor for farmRepository.
func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{
		db: db,
	}
}

// FindFarmByID retrieves a farm by its unique ID.
func (repo *farmRepository) FindFarmByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	var farmM model.FarmModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&farmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm by ID")
	}

	return toFarmDomain(&farmM), nil
}

// ListFarms retrieves every farm.
func (repo *farmRepository) ListFarms(ctx context.Context) ([]*entity.Farm, error) {
	var farmModels []*model.FarmModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&farmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list farms")
	}

	farms := make([]*entity.Farm, 0, len(farmModels))
	for _, farmM := range farmModels {
		farms = append(farms, toFarmDomain(farmM))
	}

	return farms, nil
}

// --- Mapper Functions ---

// toFarmDomain converts a GORM FarmModel to a domain Farm entity.
func toFarmDomain(data *model.FarmModel) *entity.Farm {
	if data == nil {
		return nil
	}

	return &entity.Farm{
		ID:           data.ID,
		OwnerUserID:  data.OwnerUserID,
		Name:         data.Name,
		ContactEmail: data.ContactEmail,
		Timezone:     data.Timezone,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
