package impl

import (
	"context"
	"log/slog"
	"time"

	"herdwatch/config"
	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/domain/service"
	"herdwatch/internal/errors"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
)

type checkinService struct {
	cfg        *config.AlertConfig
	logger     *slog.Logger
	farmRepo   repository.FarmRepository
	returnRepo repository.ReturnRecordRepository
	cacheStore service.CacheStore
	now        func() time.Time
}

// NewCheckinService creates the check-in ingestion service.
func NewCheckinService(
	cfg *config.Config,
	logger *slog.Logger,
	farmRepo repository.FarmRepository,
	returnRepo repository.ReturnRecordRepository,
	cacheStore service.CacheStore,
) usecase.CheckinUsecase {
	return &checkinService{
		cfg:        cfg.Alert,
		logger:     logger,
		farmRepo:   farmRepo,
		returnRepo: returnRepo,
		cacheStore: cacheStore,
		now:        time.Now,
	}
}

// RecordCheckin upserts the return record for the current farm-local day.
// The upsert is keyed on (farm, animal, day), so repeated scans for the same
// animal and day collapse into one row.
func (s *checkinService) RecordCheckin(ctx context.Context, farmID, animalID uuid.UUID, returned bool, reason *string) (*entity.ReturnRecord, error) {
	farm, err := s.resolveFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}

	day := entity.Day(s.now().In(farm.Location()))
	record := &entity.ReturnRecord{
		FarmID:   farmID,
		AnimalID: animalID,
		Date:     day,
		Returned: returned,
		Reason:   reason,
	}

	if err := s.returnRepo.UpsertRecord(ctx, record); err != nil {
		return nil, err
	}

	s.invalidate(ctx, farmID, day)

	return record, nil
}

// RevertCheckin deletes the record for the current farm-local day, reverting
// the animal to "unknown".
func (s *checkinService) RevertCheckin(ctx context.Context, farmID, animalID uuid.UUID) error {
	farm, err := s.resolveFarm(ctx, farmID)
	if err != nil {
		return err
	}

	day := entity.Day(s.now().In(farm.Location()))
	if err := s.returnRepo.DeleteRecord(ctx, farmID, animalID, day); err != nil {
		return err
	}

	s.invalidate(ctx, farmID, day)

	return nil
}

func (s *checkinService) invalidate(ctx context.Context, farmID uuid.UUID, day time.Time) {
	cacheCtx, cancel := context.WithTimeout(ctx, s.cfg.CacheTimeout)
	defer cancel()

	keys := []string{
		service.DashboardOverviewKey(farmID),
		service.ReturnsKey(farmID, day),
	}
	if err := s.cacheStore.Delete(cacheCtx, keys...); err != nil {
		s.logger.Warn("Cache invalidation failed after check-in",
			slog.String("farm_id", farmID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *checkinService) resolveFarm(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, domainerrors.ErrStoreUnavailable.WithDetails(err.Error())
	}

	return farm, nil
}
