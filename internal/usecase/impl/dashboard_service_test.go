package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	"herdwatch/internal/domain/service"
	mockRepo "herdwatch/internal/mocks/repository"
	mockSvc "herdwatch/internal/mocks/service"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDashboardService(t *testing.T) (
	usecase.DashboardUsecase,
	*mockRepo.MockFarmRepository,
	*mockRepo.MockAnimalRepository,
	*mockRepo.MockReturnRecordRepository,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockCacheStore,
) {
	farmRepo := mockRepo.NewMockFarmRepository(t)
	animalRepo := mockRepo.NewMockAnimalRepository(t)
	returnRepo := mockRepo.NewMockReturnRecordRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	cacheStore := mockSvc.NewMockCacheStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dashboardSvc := NewDashboardService(
		testAlertConfig(),
		logger,
		farmRepo,
		animalRepo,
		returnRepo,
		notificationRepo,
		cacheStore,
	)

	return dashboardSvc, farmRepo, animalRepo, returnRepo, notificationRepo, cacheStore
}

func TestDashboardService_GetOverview_CacheHit(t *testing.T) {
	dashboardSvc, farmRepo, _, _, _, cacheStore := createTestDashboardService(t)

	ctx := context.Background()
	farmID := uuid.New()
	cached := &usecase.DashboardOverview{
		FarmID:        farmID,
		Day:           "2026-03-14",
		RosterSize:    12,
		ReturnedToday: 10,
		MissingToday:  2,
		UnreadAlerts:  1,
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	cacheStore.EXPECT().Get(ctx, service.DashboardOverviewKey(farmID)).
		Return(string(payload), true, nil)

	overview, err := dashboardSvc.GetOverview(ctx, farmID)

	require.NoError(t, err)
	assert.Equal(t, cached, overview)
}

func TestDashboardService_GetOverview_CacheMissRecomputes(t *testing.T) {
	dashboardSvc, farmRepo, animalRepo, returnRepo, notificationRepo, cacheStore := createTestDashboardService(t)

	ctx := context.Background()
	farmID := uuid.New()
	farm := testFarm(farmID)

	alpha := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Alpha"}
	bravo := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Bravo"}
	charlie := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Charlie"}

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(farm, nil)
	cacheStore.EXPECT().Get(ctx, service.DashboardOverviewKey(farmID)).Return("", false, nil)
	animalRepo.EXPECT().ListAnimalsByFarm(ctx, farmID).
		Return([]*entity.Animal{alpha, bravo, charlie}, nil)
	returnRepo.EXPECT().FindRecordsByFarmAndDate(ctx, farmID, mock.Anything).
		Return([]*entity.ReturnRecord{
			{FarmID: farmID, AnimalID: alpha.ID, Returned: true},
			{FarmID: farmID, AnimalID: charlie.ID, Returned: false},
		}, nil)
	notificationRepo.EXPECT().CountUnreadByFarm(ctx, farmID).Return(int64(4), nil)
	cacheStore.EXPECT().
		Set(ctx, service.DashboardOverviewKey(farmID), mock.Anything, time.Minute).
		Return(nil)

	overview, err := dashboardSvc.GetOverview(ctx, farmID)

	require.NoError(t, err)
	assert.Equal(t, 3, overview.RosterSize)
	assert.Equal(t, 1, overview.ReturnedToday)
	assert.Equal(t, 2, overview.MissingToday)
	assert.Equal(t, int64(4), overview.UnreadAlerts)
}

func TestDashboardService_GetOverview_CorruptCacheEntryRecomputes(t *testing.T) {
	dashboardSvc, farmRepo, animalRepo, returnRepo, notificationRepo, cacheStore := createTestDashboardService(t)

	ctx := context.Background()
	farmID := uuid.New()

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	cacheStore.EXPECT().Get(ctx, service.DashboardOverviewKey(farmID)).
		Return("{not json", true, nil)
	animalRepo.EXPECT().ListAnimalsByFarm(ctx, farmID).Return([]*entity.Animal{}, nil)
	returnRepo.EXPECT().FindRecordsByFarmAndDate(ctx, farmID, mock.Anything).
		Return([]*entity.ReturnRecord{}, nil)
	notificationRepo.EXPECT().CountUnreadByFarm(ctx, farmID).Return(int64(0), nil)
	cacheStore.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	overview, err := dashboardSvc.GetOverview(ctx, farmID)

	require.NoError(t, err)
	assert.Equal(t, 0, overview.RosterSize)
}

func TestDashboardService_GetOverview_FarmNotFound(t *testing.T) {
	dashboardSvc, farmRepo, _, _, _, _ := createTestDashboardService(t)

	ctx := context.Background()
	farmID := uuid.New()

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(nil, repository.ErrFarmNotFound)

	overview, err := dashboardSvc.GetOverview(ctx, farmID)

	require.Error(t, err)
	assert.Nil(t, overview)
	assert.ErrorIs(t, err, domainerrors.ErrFarmNotFound)
}
