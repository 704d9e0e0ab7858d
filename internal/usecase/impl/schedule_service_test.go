package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	mockRepo "herdwatch/internal/mocks/repository"
	mockUC "herdwatch/internal/mocks/usecase"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestScheduleService(t *testing.T) (
	usecase.ScheduleUsecase,
	*mockRepo.MockFarmRepository,
	*mockRepo.MockAlertScheduleRepository,
	*mockUC.MockRescheduler,
) {
	farmRepo := mockRepo.NewMockFarmRepository(t)
	scheduleRepo := mockRepo.NewMockAlertScheduleRepository(t)
	rescheduler := mockUC.NewMockRescheduler(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	scheduleSvc := NewScheduleService(testAlertConfig(), logger, farmRepo, scheduleRepo, rescheduler)

	return scheduleSvc, farmRepo, scheduleRepo, rescheduler
}

func TestScheduleService_GetSchedule_DefaultWhenUnset(t *testing.T) {
	scheduleSvc, farmRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	farmID := uuid.New()

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	scheduleRepo.EXPECT().FindScheduleByFarm(ctx, farmID).Return(nil, nil)

	schedule, err := scheduleSvc.GetSchedule(ctx, farmID)

	require.NoError(t, err)
	assert.Equal(t, "21:00", schedule.FireAt)
	assert.Equal(t, farmID, schedule.FarmID)
}

func TestScheduleService_GetSchedule_Stored(t *testing.T) {
	scheduleSvc, farmRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	farmID := uuid.New()
	stored := &entity.AlertSchedule{FarmID: farmID, FireAt: "06:30", UpdatedAt: time.Now()}

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	scheduleRepo.EXPECT().FindScheduleByFarm(ctx, farmID).Return(stored, nil)

	schedule, err := scheduleSvc.GetSchedule(ctx, farmID)

	require.NoError(t, err)
	assert.Equal(t, "06:30", schedule.FireAt)
}

func TestScheduleService_UpdateSchedule_Success(t *testing.T) {
	scheduleSvc, farmRepo, scheduleRepo, rescheduler := createTestScheduleService(t)

	ctx := context.Background()
	farmID := uuid.New()

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	scheduleRepo.EXPECT().UpsertSchedule(ctx, mock.MatchedBy(func(s *entity.AlertSchedule) bool {
		return s.FarmID == farmID && s.FireAt == "05:45"
	})).Return(nil)
	rescheduler.EXPECT().Reschedule(farmID, "05:45").Return()

	schedule, err := scheduleSvc.UpdateSchedule(ctx, farmID, "05:45")

	require.NoError(t, err)
	assert.Equal(t, "05:45", schedule.FireAt)
}

func TestScheduleService_UpdateSchedule_InvalidFireTime(t *testing.T) {
	scheduleSvc, farmRepo, _, _ := createTestScheduleService(t)

	ctx := context.Background()
	farmID := uuid.New()

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)

	schedule, err := scheduleSvc.UpdateSchedule(ctx, farmID, "25:99")

	require.Error(t, err)
	assert.Nil(t, schedule)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_FIRE_TIME", appErr.ErrorCode())
}

func TestScheduleService_UpdateSchedule_FarmNotFound(t *testing.T) {
	scheduleSvc, farmRepo, _, _ := createTestScheduleService(t)

	ctx := context.Background()
	farmID := uuid.New()

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(nil, repository.ErrFarmNotFound)

	schedule, err := scheduleSvc.UpdateSchedule(ctx, farmID, "05:45")

	require.Error(t, err)
	assert.Nil(t, schedule)
	assert.ErrorIs(t, err, domainerrors.ErrFarmNotFound)
}
