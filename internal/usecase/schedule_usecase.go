package usecase

import (
	"context"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleUsecase manages a farm's configured daily alert time.
type ScheduleUsecase interface {
	// GetSchedule returns the farm's schedule, synthesizing the default fire
	// time when nothing is stored.
	GetSchedule(ctx context.Context, farmID uuid.UUID) (*entity.AlertSchedule, error)

	// UpdateSchedule validates and persists a new "HH:MM" fire time, then
	// re-arms the farm's timer so the change takes effect without a restart.
	UpdateSchedule(ctx context.Context, farmID uuid.UUID, fireAt string) (*entity.AlertSchedule, error)
}
