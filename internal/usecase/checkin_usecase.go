package usecase

import (
	"context"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckinUsecase is the scan/correction ingestion path. It owns all writes
// to the return ledger; the evaluator never writes.
type CheckinUsecase interface {
	// RecordCheckin upserts the return record for the animal and the current
	// farm-local day. The scan path records returned=true; an administrative
	// correction may record returned=false with a reason. Affected cache
	// keys are invalidated best-effort.
	RecordCheckin(ctx context.Context, farmID, animalID uuid.UUID, returned bool, reason *string) (*entity.ReturnRecord, error)

	// RevertCheckin deletes the record for the current farm-local day,
	// returning the animal to "unknown". Administrative action only.
	RevertCheckin(ctx context.Context, farmID, animalID uuid.UUID) error
}
