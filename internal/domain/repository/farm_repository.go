// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFarmNotFound is returned when a farm is not found.
var ErrFarmNotFound = errors.New("farm not found")

// FarmRepository defines the interface for farm-related database operations.
type FarmRepository interface {
	// FindFarmByID retrieves a farm by its unique ID.
	FindFarmByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error)

	// ListFarms retrieves every farm. Used by the scheduler to arm one timer
	// per farm at startup.
	ListFarms(ctx context.Context) ([]*entity.Farm, error)
}
