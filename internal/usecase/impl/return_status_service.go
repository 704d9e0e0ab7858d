// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"time"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/errors"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
)

type returnStatusService struct {
	farmRepo   repository.FarmRepository
	animalRepo repository.AnimalRepository
	returnRepo repository.ReturnRecordRepository
}

// NewReturnStatusService creates the return-status evaluator.
func NewReturnStatusService(
	farmRepo repository.FarmRepository,
	animalRepo repository.AnimalRepository,
	returnRepo repository.ReturnRecordRepository,
) usecase.ReturnStatusUsecase {
	return &returnStatusService{
		farmRepo:   farmRepo,
		animalRepo: animalRepo,
		returnRepo: returnRepo,
	}
}

// Evaluate classifies a farm's roster for one calendar day. An animal counts
// as present only when a return record exists for the day with returned=true;
// everything else (no record, or returned=false) is missing. Read-only with
// respect to the ledger.
func (s *returnStatusService) Evaluate(ctx context.Context, farmID uuid.UUID, day time.Time) ([]*entity.Animal, error) {
	if _, err := s.farmRepo.FindFarmByID(ctx, farmID); err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve farm for evaluation")
	}

	roster, err := s.animalRepo.ListAnimalsByFarm(ctx, farmID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load roster for evaluation")
	}

	if len(roster) == 0 {
		return []*entity.Animal{}, nil
	}

	records, err := s.returnRepo.FindRecordsByFarmAndDate(ctx, farmID, day)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load return records for evaluation")
	}

	// Records arrive most recently updated first, so the first record seen
	// per animal wins if storage ever violates the one-row-per-key invariant.
	returned := make(map[uuid.UUID]bool, len(records))
	for _, record := range records {
		if _, seen := returned[record.AnimalID]; seen {
			continue
		}
		returned[record.AnimalID] = record.Returned
	}

	missing := make([]*entity.Animal, 0)
	for _, animal := range roster {
		if returned[animal.ID] {
			continue
		}
		missing = append(missing, animal)
	}

	return missing, nil
}
