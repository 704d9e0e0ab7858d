package worker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"herdwatch/config"
	"herdwatch/internal/domain/entity"
	mockRepo "herdwatch/internal/mocks/repository"
	mockUC "herdwatch/internal/mocks/usecase"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// armedFire records one afterFunc installation so tests can fire timers by
// hand instead of waiting on the clock.
type armedFire struct {
	delay time.Duration
	fn    func()
}

type fakeTimers struct {
	mu    sync.Mutex
	fires []armedFire
}

func (f *fakeTimers) afterFunc(d time.Duration, fn func()) *time.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fires = append(f.fires, armedFire{delay: d, fn: fn})

	// The returned timer is inert; tests invoke fn directly.
	return time.AfterFunc(24*time.Hour, func() {})
}

func (f *fakeTimers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.fires)
}

func (f *fakeTimers) at(i int) armedFire {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.fires[i]
}

func createTestScheduler(t *testing.T) (
	*Scheduler,
	*fakeTimers,
	*mockRepo.MockFarmRepository,
	*mockRepo.MockAlertScheduleRepository,
	*mockUC.MockAlertUsecase,
) {
	farmRepo := mockRepo.NewMockFarmRepository(t)
	scheduleRepo := mockRepo.NewMockAlertScheduleRepository(t)
	alert := mockUC.NewMockAlertUsecase(t)
	timers := &fakeTimers{}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	scheduler := &Scheduler{
		cfg: &config.AlertConfig{
			DefaultFireAt: "21:00",
			StoreTimeout:  time.Second,
			CacheTimeout:  time.Second,
			MailTimeout:   time.Second,
		},
		logger:       logger,
		farmRepo:     farmRepo,
		scheduleRepo: scheduleRepo,
		alert:        alert,
		timers:       make(map[uuid.UUID]*farmTimer),
		now: func() time.Time {
			return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		},
		afterFunc: timers.afterFunc,
	}

	return scheduler, timers, farmRepo, scheduleRepo, alert
}

func schedulerTestFarm(id uuid.UUID) *entity.Farm {
	return &entity.Farm{
		ID:           id,
		OwnerUserID:  uuid.New(),
		Name:         "Hilltop",
		ContactEmail: "owner@hilltop.example",
		Timezone:     "UTC",
	}
}

func TestScheduler_ArmAll_OneTimerPerFarm(t *testing.T) {
	scheduler, timers, farmRepo, scheduleRepo, _ := createTestScheduler(t)

	ctx := context.Background()
	early := schedulerTestFarm(uuid.New())
	late := schedulerTestFarm(uuid.New())

	farmRepo.EXPECT().ListFarms(ctx).Return([]*entity.Farm{early, late}, nil)
	scheduleRepo.EXPECT().FindScheduleByFarm(ctx, early.ID).
		Return(&entity.AlertSchedule{FarmID: early.ID, FireAt: "06:30"}, nil)
	scheduleRepo.EXPECT().FindScheduleByFarm(ctx, late.ID).Return(nil, nil)

	require.NoError(t, scheduler.ArmAll(ctx))

	require.Equal(t, 2, timers.count())
	// 06:30 already passed at the fixed 12:00 now, so it lands tomorrow.
	assert.Equal(t, 18*time.Hour+30*time.Minute, timers.at(0).delay)
	// The default 21:00 is still ahead today.
	assert.Equal(t, 9*time.Hour, timers.at(1).delay)
}

func TestScheduler_Fire_RunsCycleAndRearms(t *testing.T) {
	scheduler, timers, _, _, alert := createTestScheduler(t)

	farmID := uuid.New()
	scheduler.arm(farmID, "21:00", time.UTC)
	require.Equal(t, 1, timers.count())

	expectedDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	alert.EXPECT().RunCycle(mock.Anything, farmID, expectedDay).
		Return(&usecase.CycleResult{FarmID: farmID, Day: expectedDay}, nil)

	timers.at(0).fn()

	// The fire chained the next day's timer on the same generation.
	require.Equal(t, 2, timers.count())
	assert.Equal(t, 9*time.Hour, timers.at(1).delay)
}

func TestScheduler_Fire_CycleFailureStillRearms(t *testing.T) {
	scheduler, timers, _, _, alert := createTestScheduler(t)

	farmID := uuid.New()
	scheduler.arm(farmID, "21:00", time.UTC)

	alert.EXPECT().RunCycle(mock.Anything, farmID, mock.Anything).
		Return(nil, assert.AnError)

	timers.at(0).fn()

	assert.Equal(t, 2, timers.count())
}

func TestScheduler_Fire_FarmFailureDoesNotAffectOthers(t *testing.T) {
	scheduler, timers, _, _, alert := createTestScheduler(t)

	failing := uuid.New()
	healthy := uuid.New()
	scheduler.arm(failing, "21:00", time.UTC)
	scheduler.arm(healthy, "21:00", time.UTC)
	require.Equal(t, 2, timers.count())

	alert.EXPECT().RunCycle(mock.Anything, failing, mock.Anything).
		Return(nil, assert.AnError)
	alert.EXPECT().RunCycle(mock.Anything, healthy, mock.Anything).
		Return(&usecase.CycleResult{FarmID: healthy}, nil)

	timers.at(0).fn()
	timers.at(1).fn()

	// Both farms re-armed for the next day despite the first one's failure.
	assert.Equal(t, 4, timers.count())
}

func TestScheduler_Reschedule_PoppedFireStillRunsButDoesNotRearm(t *testing.T) {
	scheduler, timers, _, _, alert := createTestScheduler(t)

	farmID := uuid.New()
	scheduler.arm(farmID, "21:00", time.UTC)
	poppedFire := timers.at(0).fn

	scheduler.Reschedule(farmID, "05:45")
	require.Equal(t, 2, timers.count())
	assert.Equal(t, 17*time.Hour+45*time.Minute, timers.at(1).delay)

	// A timer that popped before the reschedule cannot be stopped; its cycle
	// still runs on the old schedule. Only the re-arm is superseded, so the
	// replacement chain stays the sole owner of future fires.
	expectedDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	alert.EXPECT().RunCycle(mock.Anything, farmID, expectedDay).
		Return(&usecase.CycleResult{FarmID: farmID, Day: expectedDay}, nil)

	poppedFire()
	assert.Equal(t, 2, timers.count())
}

func TestScheduler_Reschedule_MidFlightCycleCompletes(t *testing.T) {
	scheduler, timers, _, _, alert := createTestScheduler(t)

	farmID := uuid.New()
	scheduler.arm(farmID, "21:00", time.UTC)

	alert.EXPECT().RunCycle(mock.Anything, farmID, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID, day time.Time) (*usecase.CycleResult, error) {
			// An admin changes the fire time while this cycle is running.
			scheduler.Reschedule(farmID, "05:45")

			return &usecase.CycleResult{FarmID: id, Day: day}, nil
		})

	timers.at(0).fn()

	// The cycle finished, the rescheduled timer owns the chain, and the old
	// generation did not re-arm a second one next to it.
	require.Equal(t, 2, timers.count())
	assert.Equal(t, 17*time.Hour+45*time.Minute, timers.at(1).delay)
}

func TestScheduler_Reschedule_UnknownFarmIsNoop(t *testing.T) {
	scheduler, timers, _, _, _ := createTestScheduler(t)

	scheduler.Reschedule(uuid.New(), "05:45")

	assert.Equal(t, 0, timers.count())
}

func TestScheduler_Unschedule_CancelsChain(t *testing.T) {
	scheduler, timers, _, _, _ := createTestScheduler(t)

	farmID := uuid.New()
	scheduler.arm(farmID, "21:00", time.UTC)
	fire := timers.at(0).fn

	scheduler.Unschedule(farmID)

	fire()
	assert.Equal(t, 1, timers.count())
}

func TestScheduler_Stop_PreventsRearming(t *testing.T) {
	scheduler, timers, _, _, _ := createTestScheduler(t)

	farmID := uuid.New()
	scheduler.arm(farmID, "21:00", time.UTC)
	fire := timers.at(0).fn

	require.NoError(t, scheduler.stop(context.Background()))

	fire()
	assert.Equal(t, 1, timers.count())

	scheduler.arm(farmID, "21:00", time.UTC)
	assert.Equal(t, 1, timers.count())
}
