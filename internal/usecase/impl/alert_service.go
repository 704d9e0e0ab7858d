package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

type alertService struct {
	cfg          *config.AlertConfig
	logger       *slog.Logger
	farmRepo     repository.FarmRepository
	txManager    repository.TransactionManager
	returnStatus usecase.ReturnStatusUsecase
	cacheStore   service.CacheStore
	dispatcher   service.MailDispatcher
	now          func() time.Time
}

// NewAlertService creates the alert pipeline service.
func NewAlertService(
	cfg *config.Config,
	logger *slog.Logger,
	farmRepo repository.FarmRepository,
	txManager repository.TransactionManager,
	returnStatus usecase.ReturnStatusUsecase,
	cacheStore service.CacheStore,
	dispatcher service.MailDispatcher,
) usecase.AlertUsecase {
	return &alertService{
		cfg:          cfg.Alert,
		logger:       logger,
		farmRepo:     farmRepo,
		txManager:    txManager,
		returnStatus: returnStatus,
		cacheStore:   cacheStore,
		dispatcher:   dispatcher,
		now:          time.Now,
	}
}

// TriggerNow runs the pipeline for "today" in the farm's timezone.
func (s *alertService) TriggerNow(ctx context.Context, farmID uuid.UUID) (*usecase.CycleResult, error) {
	farm, err := s.resolveFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}

	day := entity.Day(s.now().In(farm.Location()))

	return s.runCycle(ctx, farm, day)
}

// RunCycle executes the pipeline for one farm and one farm-local day.
func (s *alertService) RunCycle(ctx context.Context, farmID uuid.UUID, day time.Time) (*usecase.CycleResult, error) {
	farm, err := s.resolveFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}

	return s.runCycle(ctx, farm, entity.Day(day))
}

// runCycle is the pipeline body: Evaluate -> RecordAlert -> Invalidate ->
// Dispatch. Everything after the notification write is best-effort.
func (s *alertService) runCycle(ctx context.Context, farm *entity.Farm, day time.Time) (*usecase.CycleResult, error) {
	result := &usecase.CycleResult{FarmID: farm.ID, Day: day}

	evalCtx, cancelEval := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	missing, err := s.returnStatus.Evaluate(evalCtx, farm.ID, day)
	cancelEval()
	if err != nil {
		return nil, err
	}
	result.Missing = missing

	// A clean night: no notification, no email, no cache churn.
	if len(missing) == 0 {
		return result, nil
	}

	notification, deduped, err := s.recordAlert(ctx, farm, day, missing)
	if err != nil {
		return nil, err
	}
	result.Notification = notification
	result.Deduped = deduped

	if deduped {
		return result, nil
	}

	s.invalidate(ctx, farm.ID, day)

	result.EmailDelivered = s.dispatch(ctx, farm, notification)

	return result, nil
}

// recordAlert appends the durable notification row. The dedupe lookup and
// the append share one transaction, which narrows but does not close the
// window in which a manual trigger racing the scheduled fire appends twice
// under read committed; a duplicate row is tolerated, and the window lookup
// returns the earlier one from then on.
func (s *alertService) recordAlert(ctx context.Context, farm *entity.Farm, day time.Time, missing []*entity.Animal) (*entity.Notification, bool, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	var notification *entity.Notification
	var deduped bool

	err := s.txManager.Execute(storeCtx, func(f repository.RepositoryFactory) error {
		notificationRepo := f.NewNotificationRepository()

		if s.cfg.DedupeEnabled() {
			dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, farm.Location())
			existing, err := notificationRepo.FindNotificationInWindow(storeCtx, farm.ID, dayStart, dayStart.AddDate(0, 0, 1))
			if err == nil {
				notification = existing
				deduped = true

				return nil
			}
			if !errors.Is(err, repository.ErrNotificationNotFound) {
				return err
			}
		}

		notification = &entity.Notification{
			ID:              uuid.New(),
			FarmID:          farm.ID,
			RecipientUserID: farm.OwnerUserID,
			Title:           "Animals did not return",
			Message:         alertMessage(day, missing),
			CreatedAt:       s.now(),
		}

		return notificationRepo.CreateNotification(storeCtx, notification)
	})
	if err != nil {
		// The notification never became durable; the caller must not
		// proceed to email dispatch for this cycle.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, false, err
		}

		return nil, false, domainerrors.ErrStoreUnavailable.WithDetails(err.Error())
	}

	return notification, deduped, nil
}

// invalidate clears the exact cache keys made stale by the new notification.
// Best-effort: a stale cache read is a lesser failure than a lost alert.
func (s *alertService) invalidate(ctx context.Context, farmID uuid.UUID, day time.Time) {
	cacheCtx, cancel := context.WithTimeout(ctx, s.cfg.CacheTimeout)
	defer cancel()

	keys := []string{
		service.DashboardOverviewKey(farmID),
		service.ReturnsKey(farmID, day),
	}
	if err := s.cacheStore.Delete(cacheCtx, keys...); err != nil {
		s.logger.Warn("Cache invalidation failed",
			slog.String("farm_id", farmID.String()),
			slog.Any("error", err),
		)
	}
}

// dispatch attempts email delivery. Failure after the retry ceiling is
// logged, never escalated: the durable notification is the source of truth.
func (s *alertService) dispatch(ctx context.Context, farm *entity.Farm, notification *entity.Notification) bool {
	mailCtx, cancel := context.WithTimeout(ctx, s.cfg.MailTimeout)
	defer cancel()

	body := fmt.Sprintf("<h2>%s</h2><p>%s</p>", notification.Title, notification.Message)
	dispatchResult := s.dispatcher.Dispatch(mailCtx, farm.ContactEmail, notification.Title, body)
	if !dispatchResult.Delivered {
		s.logger.Error("Alert email delivery failed after retries",
			slog.String("farm_id", farm.ID.String()),
			slog.String("recipient", dispatchResult.Recipient),
			slog.Int("attempts", dispatchResult.Attempts),
			slog.Any("error", dispatchResult.Err),
		)
	}

	return dispatchResult.Delivered
}

func (s *alertService) resolveFarm(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	farm, err := s.farmRepo.FindFarmByID(storeCtx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound
		}

		return nil, domainerrors.ErrStoreUnavailable.WithDetails(err.Error())
	}

	return farm, nil
}

// alertMessage names every missing animal for the day.
func alertMessage(day time.Time, missing []*entity.Animal) string {
	names := make([]string, 0, len(missing))
	for _, animal := range missing {
		if animal.Tag != "" {
			names = append(names, fmt.Sprintf("%s (%s)", animal.Name, animal.Tag))
		} else {
			names = append(names, animal.Name)
		}
	}

	return fmt.Sprintf("%d animal(s) did not check in on %s: %s",
		len(missing), day.Format("2006-01-02"), strings.Join(names, ", "))
}
