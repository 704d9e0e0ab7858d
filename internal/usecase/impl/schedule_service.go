package impl

import (
	"context"
	"log/slog"
	"time"

	"herdwatch/config"
	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/errors"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
)

type scheduleService struct {
	cfg          *config.AlertConfig
	logger       *slog.Logger
	farmRepo     repository.FarmRepository
	scheduleRepo repository.AlertScheduleRepository
	rescheduler  usecase.Rescheduler
	now          func() time.Time
}

// NewScheduleService creates the alert schedule admin service.
func NewScheduleService(
	cfg *config.Config,
	logger *slog.Logger,
	farmRepo repository.FarmRepository,
	scheduleRepo repository.AlertScheduleRepository,
	rescheduler usecase.Rescheduler,
) usecase.ScheduleUsecase {
	return &scheduleService{
		cfg:          cfg.Alert,
		logger:       logger,
		farmRepo:     farmRepo,
		scheduleRepo: scheduleRepo,
		rescheduler:  rescheduler,
		now:          time.Now,
	}
}

// GetSchedule returns the farm's stored schedule, falling back to the
// configured default time when none has been set.
func (s *scheduleService) GetSchedule(ctx context.Context, farmID uuid.UUID) (*entity.AlertSchedule, error) {
	if _, err := s.resolveFarm(ctx, farmID); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.FindScheduleByFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return &entity.AlertSchedule{
			FarmID: farmID,
			FireAt: s.cfg.DefaultFireAt,
		}, nil
	}

	return schedule, nil
}

// UpdateSchedule validates and persists the farm's fire time, then re-arms
// the farm's timer. The new time takes effect from the next firing.
func (s *scheduleService) UpdateSchedule(ctx context.Context, farmID uuid.UUID, fireAt string) (*entity.AlertSchedule, error) {
	if _, err := s.resolveFarm(ctx, farmID); err != nil {
		return nil, err
	}

	if _, _, err := entity.ParseFireAt(fireAt); err != nil {
		return nil, domainerrors.ErrInvalidFireTime.WithDetails(fireAt)
	}

	schedule := &entity.AlertSchedule{
		FarmID:    farmID,
		FireAt:    fireAt,
		UpdatedAt: s.now(),
	}
	if err := s.scheduleRepo.UpsertSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	s.rescheduler.Reschedule(farmID, fireAt)

	s.logger.Info("Alert schedule updated",
		slog.String("farm_id", farmID.String()),
		slog.String("fire_at", fireAt),
	)

	return schedule, nil
}

func (s *scheduleService) resolveFarm(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, domainerrors.ErrStoreUnavailable.WithDetails(err.Error())
	}

	return farm, nil
}
