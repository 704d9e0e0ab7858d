package repository

import (
	"context"
	"time"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ReturnRecordRepository defines the return-ledger operations. Reads serve
// the evaluator; the upsert serves the scan and correction paths only.
type ReturnRecordRepository interface {
	// FindRecordsByFarmAndDate retrieves all return records for a farm on a
	// calendar day, most recently updated first.
	FindRecordsByFarmAndDate(ctx context.Context, farmID uuid.UUID, day time.Time) ([]*entity.ReturnRecord, error)

	// UpsertRecord writes a return record keyed on (farm, animal, day).
	// A later write for the same key updates the existing row in place, so
	// the at-most-one invariant holds even under concurrent scan events.
	UpsertRecord(ctx context.Context, record *entity.ReturnRecord) error

	// DeleteRecord removes a record, reverting the day to "unknown". This is
	// an explicit administrative action; the evaluator never deletes.
	DeleteRecord(ctx context.Context, farmID, animalID uuid.UUID, day time.Time) error
}
