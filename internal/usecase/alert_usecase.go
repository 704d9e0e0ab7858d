package usecase

import (
	"context"
	"time"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// CycleResult reports what one run of the alert pipeline did for one farm
// and one day.
type CycleResult struct {
	FarmID         uuid.UUID            `json:"farm_id"`
	Day            time.Time            `json:"day"`
	Missing        []*entity.Animal     `json:"missing"`
	Notification   *entity.Notification `json:"notification,omitempty"`
	Deduped        bool                 `json:"deduped"`         // An alert for this farm/day already existed.
	EmailDelivered bool                 `json:"email_delivered"` // Best-effort; false does not mean the cycle failed.
}

// AlertUsecase runs the Evaluate -> RecordAlert -> Invalidate -> Dispatch
// pipeline. Failures before the notification is durably written abort the
// cycle; failures after it are logged and swallowed.
type AlertUsecase interface {
	// RunCycle executes the pipeline for one farm and one farm-local day.
	// Called by the per-farm scheduler on every fire.
	RunCycle(ctx context.Context, farmID uuid.UUID, day time.Time) (*CycleResult, error)

	// TriggerNow executes the pipeline immediately for "today" in the farm's
	// timezone. Reentrant: with per-day dedupe enabled, a second call for the
	// same farm and day reuses the existing notification.
	TriggerNow(ctx context.Context, farmID uuid.UUID) (*CycleResult, error)
}

// Rescheduler is the scheduler surface the schedule usecase needs to re-arm
// a farm's timer after an admin changes the configured alert time.
type Rescheduler interface {
	// Reschedule cancels the farm's armed timer, if any, and arms a new one
	// at the given "HH:MM" farm-local time. A fire already in flight
	// completes on the old schedule. Unknown farms are a no-op.
	Reschedule(farmID uuid.UUID, fireAt string)

	// Unschedule cancels and removes the farm's timer.
	Unschedule(farmID uuid.UUID)
}
