// Package usecase defines the application-facing interfaces implemented in impl.
package usecase

import (
	"context"
	"time"

	"herdwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ReturnStatusUsecase is the pure evaluation step of the alert pipeline.
type ReturnStatusUsecase interface {
	// Evaluate classifies a farm's roster for a calendar day and returns the
	// animals with no affirmative check-in (no record, or returned=false).
	// An empty roster yields an empty set. A pure function of the roster and
	// the return ledger: calling it twice with no intervening writes yields
	// the same result.
	Evaluate(ctx context.Context, farmID uuid.UUID, day time.Time) ([]*entity.Animal, error)
}
