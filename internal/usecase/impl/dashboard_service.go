package impl

import (
	"context"
	"encoding/json"
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

type dashboardService struct {
	cfg              *config.DashboardConfig
	logger           *slog.Logger
	farmRepo         repository.FarmRepository
	animalRepo       repository.AnimalRepository
	returnRepo       repository.ReturnRecordRepository
	notificationRepo repository.NotificationRepository
	cacheStore       service.CacheStore
	now              func() time.Time
}

// NewDashboardService creates the dashboard overview service.
func NewDashboardService(
	cfg *config.Config,
	logger *slog.Logger,
	farmRepo repository.FarmRepository,
	animalRepo repository.AnimalRepository,
	returnRepo repository.ReturnRecordRepository,
	notificationRepo repository.NotificationRepository,
	cacheStore service.CacheStore,
) usecase.DashboardUsecase {
	return &dashboardService{
		cfg:              cfg.Dashboard,
		logger:           logger,
		farmRepo:         farmRepo,
		animalRepo:       animalRepo,
		returnRepo:       returnRepo,
		notificationRepo: notificationRepo,
		cacheStore:       cacheStore,
		now:              time.Now,
	}
}

// GetOverview serves the farm's aggregate read-through: a fresh cache entry
// is returned as-is, otherwise the aggregate is recomputed from the store
// and re-cached with the configured TTL.
func (s *dashboardService) GetOverview(ctx context.Context, farmID uuid.UUID) (*usecase.DashboardOverview, error) {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, domainerrors.ErrStoreUnavailable.WithDetails(err.Error())
	}

	key := service.DashboardOverviewKey(farmID)
	if cached, ok, err := s.cacheStore.Get(ctx, key); err != nil {
		s.logger.Warn("Dashboard cache read failed",
			slog.String("farm_id", farmID.String()),
			slog.Any("error", err),
		)
	} else if ok {
		var overview usecase.DashboardOverview
		if err := json.Unmarshal([]byte(cached), &overview); err == nil {
			return &overview, nil
		}
		// A corrupt entry falls through to a recompute.
	}

	overview, err := s.compute(ctx, farm)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(overview); err == nil {
		if err := s.cacheStore.Set(ctx, key, string(payload), s.cfg.OverviewTTL); err != nil {
			s.logger.Warn("Dashboard cache write failed",
				slog.String("farm_id", farmID.String()),
				slog.Any("error", err),
			)
		}
	}

	return overview, nil
}

func (s *dashboardService) compute(ctx context.Context, farm *entity.Farm) (*usecase.DashboardOverview, error) {
	day := entity.Day(s.now().In(farm.Location()))

	animals, err := s.animalRepo.ListAnimalsByFarm(ctx, farm.ID)
	if err != nil {
		return nil, err
	}

	records, err := s.returnRepo.FindRecordsByFarmAndDate(ctx, farm.ID, day)
	if err != nil {
		return nil, err
	}

	returned := 0
	seen := make(map[uuid.UUID]bool, len(records))
	for _, record := range records {
		if seen[record.AnimalID] {
			continue
		}
		seen[record.AnimalID] = true
		if record.Returned {
			returned++
		}
	}

	unread, err := s.notificationRepo.CountUnreadByFarm(ctx, farm.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardOverview{
		FarmID:        farm.ID,
		Day:           day.Format("2006-01-02"),
		RosterSize:    len(animals),
		ReturnedToday: returned,
		MissingToday:  len(animals) - returned,
		UnreadAlerts:  unread,
	}, nil
}
