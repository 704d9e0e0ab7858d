package repository

import (
	"context"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertScheduleRepository defines the schedule-setting storage. One row per
// farm with upsert semantics; an absent row means the default fire time.
type AlertScheduleRepository interface {
	// FindScheduleByFarm retrieves a farm's schedule, or nil when the farm
	// has never configured one.
	FindScheduleByFarm(ctx context.Context, farmID uuid.UUID) (*entity.AlertSchedule, error)

	// UpsertSchedule writes a farm's schedule, replacing any existing row.
	UpsertSchedule(ctx context.Context, schedule *entity.AlertSchedule) error
}
