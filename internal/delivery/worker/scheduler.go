// Package worker contains the background per-farm alert scheduler.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"herdwatch/config"
	"herdwatch/internal/delivery"
	"herdwatch/internal/domain/entity"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// farmTimer is one armed daily timer. The generation counter fences the
// re-arm step: a fire whose chain was rescheduled while it ran still
// completes its cycle, but must not re-arm over the replacement timer.
type farmTimer struct {
	timer      *time.Timer
	generation uint64
	fireAt     string
	loc        *time.Location
}

// Scheduler arms one daily timer per farm and runs the alert pipeline when a
// timer fires. All timer state lives behind one mutex; the pipeline itself
// runs outside the lock so a slow cycle on one farm never delays another.
type Scheduler struct {
	cfg          *config.AlertConfig
	logger       *slog.Logger
	farmRepo     repository.FarmRepository
	scheduleRepo repository.AlertScheduleRepository
	alert        usecase.AlertUsecase

	mu      sync.Mutex
	timers  map[uuid.UUID]*farmTimer
	stopped bool

	now       func() time.Time
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// SchedulerParams holds dependencies for the alert scheduler
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Cfg          *config.Config
	Logger       *slog.Logger
	FarmRepo     repository.FarmRepository
	ScheduleRepo repository.AlertScheduleRepository
	Alert        usecase.AlertUsecase
}

// NewScheduler creates the per-farm alert scheduler.
func NewScheduler(params SchedulerParams) *Scheduler {
	scheduler := &Scheduler{
		cfg:          params.Cfg.Alert,
		logger:       params.Logger,
		farmRepo:     params.FarmRepo,
		scheduleRepo: params.ScheduleRepo,
		alert:        params.Alert,
		timers:       make(map[uuid.UUID]*farmTimer),
		now:          time.Now,
		afterFunc:    time.AfterFunc,
	}

	params.Append(fx.Hook{
		OnStop: scheduler.stop,
	})

	return scheduler
}

// AsDelivery exposes the scheduler as a serving surface.
func AsDelivery(s *Scheduler) delivery.Delivery {
	return s
}

// AsRescheduler exposes the scheduler to the schedule usecase.
func AsRescheduler(s *Scheduler) usecase.Rescheduler {
	return s
}

// Serve arms every farm's timer and returns. Firing and re-arming happen on
// timer goroutines from then on.
func (s *Scheduler) Serve(ctx context.Context) error {
	return s.ArmAll(ctx)
}

// ArmAll arms one timer per farm, using the farm's stored schedule or the
// configured default fire time. A schedule lookup failure falls back to the
// default instead of leaving the farm unarmed.
func (s *Scheduler) ArmAll(ctx context.Context) error {
	farms, err := s.farmRepo.ListFarms(ctx)
	if err != nil {
		return err
	}

	for _, farm := range farms {
		fireAt := s.cfg.DefaultFireAt
		schedule, err := s.scheduleRepo.FindScheduleByFarm(ctx, farm.ID)
		if err != nil {
			s.logger.Warn("Schedule lookup failed, arming with default fire time",
				slog.String("farm_id", farm.ID.String()),
				slog.Any("error", err),
			)
		} else if schedule != nil {
			fireAt = schedule.FireAt
		}

		s.arm(farm.ID, fireAt, farm.Location())
	}

	s.logger.Info("Alert timers armed", slog.Int("farms", len(farms)))

	return nil
}

// Reschedule replaces the farm's armed timer with one for the new fire time.
// A fire already in flight completes on the old schedule; its stale chain is
// fenced off by the generation bump. Unknown farms are a no-op.
func (s *Scheduler) Reschedule(farmID uuid.UUID, fireAt string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.timers[farmID]
	if !ok {
		return
	}

	s.armLocked(farmID, fireAt, existing.loc)
}

// Unschedule cancels and removes the farm's timer.
func (s *Scheduler) Unschedule(farmID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[farmID]; ok {
		existing.timer.Stop()
		delete(s.timers, farmID)
	}
}

// arm installs a fresh timer for the farm, cancelling any existing one and
// bumping the generation so a concurrent in-flight fire cannot re-arm over it.
func (s *Scheduler) arm(farmID uuid.UUID, fireAt string, loc *time.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.armLocked(farmID, fireAt, loc)
}

// armLocked is arm with s.mu already held, so Reschedule can check for the
// farm and replace its timer in one critical section.
func (s *Scheduler) armLocked(farmID uuid.UUID, fireAt string, loc *time.Location) {
	hour, minute, err := entity.ParseFireAt(fireAt)
	if err != nil {
		s.logger.Warn("Stored fire time is malformed, using default",
			slog.String("farm_id", farmID.String()),
			slog.String("fire_at", fireAt),
		)
		fireAt = s.cfg.DefaultFireAt
		hour, minute, _ = entity.ParseFireAt(fireAt)
	}

	if s.stopped {
		return
	}

	generation := uint64(1)
	if existing, ok := s.timers[farmID]; ok {
		existing.timer.Stop()
		generation = existing.generation + 1
	}

	armed := &farmTimer{
		generation: generation,
		fireAt:     fireAt,
		loc:        loc,
	}
	armed.timer = s.afterFunc(s.untilNextFire(hour, minute, loc), func() {
		s.onFire(farmID, generation, loc)
	})
	s.timers[farmID] = armed
}

// untilNextFire computes the delay until the next occurrence of the
// farm-local time of day. A time already passed today means tomorrow.
func (s *Scheduler) untilNextFire(hour, minute int, loc *time.Location) time.Duration {
	now := s.now().In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}

// onFire runs one alert cycle and re-arms the farm for the next day. A panic
// or failure is contained to this farm; other timers keep their chains. The
// location is captured at arm time: a timer that has already popped cannot be
// stopped, so a reschedule racing the pop must still let this cycle complete
// on the old schedule. Only the re-arm is generation-fenced.
func (s *Scheduler) onFire(farmID uuid.UUID, generation uint64, loc *time.Location) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Alert cycle panicked",
				slog.String("farm_id", farmID.String()),
				slog.Any("panic", r),
			)
		}
		s.rearm(farmID, generation)
	}()

	s.mu.Lock()
	_, known := s.timers[farmID]
	stopped := s.stopped
	s.mu.Unlock()
	if stopped || !known {
		// Unscheduled or shut down; the farm no longer wants fires at all.
		return
	}

	day := entity.Day(s.now().In(loc))
	result, err := s.alert.RunCycle(context.Background(), farmID, day)
	if err != nil {
		s.logger.Error("Alert cycle failed",
			slog.String("farm_id", farmID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Alert cycle completed",
		slog.String("farm_id", farmID.String()),
		slog.Int("missing", len(result.Missing)),
		slog.Bool("deduped", result.Deduped),
		slog.Bool("email_delivered", result.EmailDelivered),
	)
}

// rearm chains the next day's timer after a fire, unless the farm was
// rescheduled or unscheduled while the cycle ran.
func (s *Scheduler) rearm(farmID uuid.UUID, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	armed, ok := s.timers[farmID]
	if !ok || armed.generation != generation {
		return
	}

	hour, minute, err := entity.ParseFireAt(armed.fireAt)
	if err != nil {
		return
	}

	armed.timer = s.afterFunc(s.untilNextFire(hour, minute, armed.loc), func() {
		s.onFire(farmID, generation, armed.loc)
	})
}

// stop cancels every timer. In-flight cycles finish on their own goroutines;
// the stopped flag keeps them from re-arming afterwards.
func (s *Scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for farmID, armed := range s.timers {
		armed.timer.Stop()
		delete(s.timers, farmID)
	}

	s.logger.Info("Alert scheduler stopped")

	return nil
}
