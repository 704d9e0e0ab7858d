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

// animalRepository implements the repository.AnimalRepository interface.
type animalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository is the constructor for animalRepository.
func NewAnimalRepository(db *gorm.DB) repository.AnimalRepository {
	return &animalRepository{
		db: db,
	}
}

// ListAnimalsByFarm retrieves the complete roster for a farm.
func (repo *animalRepository) ListAnimalsByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Animal, error) {
	var animalModels []*model.AnimalModel

	if err := repo.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("tag ASC").
		Find(&animalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list animals by farm")
	}

	animals := make([]*entity.Animal, 0, len(animalModels))
	for _, animalM := range animalModels {
		animals = append(animals, toAnimalDomain(animalM))
	}

	return animals, nil
}

// --- Mapper Functions ---

// toAnimalDomain converts a GORM AnimalModel to a domain Animal entity.
func toAnimalDomain(data *model.AnimalModel) *entity.Animal {
	if data == nil {
		return nil
	}

	return &entity.Animal{
		ID:        data.ID,
		FarmID:    data.FarmID,
		Name:      data.Name,
		Tag:       data.Tag,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
