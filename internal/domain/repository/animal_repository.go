package repository

import (
	"context"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// AnimalRepository defines the roster read used by the return evaluator.
// The full animal CRUD surface is owned by the record layer; the alert
// pipeline only needs the roster.
type AnimalRepository interface {
	// ListAnimalsByFarm retrieves the complete roster for a farm.
	// An empty roster is valid and returns an empty slice, not an error.
	ListAnimalsByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Animal, error)
}
