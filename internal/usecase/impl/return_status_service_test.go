package impl

import (
	"context"
	"testing"
	"time"

	"herdwatch/internal/domain/entity"
	domainerrors "herdwatch/internal/domain/errors"
	"herdwatch/internal/domain/repository"
	mockRepo "herdwatch/internal/mocks/repository"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReturnStatusService(t *testing.T) (
	usecase.ReturnStatusUsecase,
	*mockRepo.MockFarmRepository,
	*mockRepo.MockAnimalRepository,
	*mockRepo.MockReturnRecordRepository,
) {
	farmRepo := mockRepo.NewMockFarmRepository(t)
	animalRepo := mockRepo.NewMockAnimalRepository(t)
	returnRepo := mockRepo.NewMockReturnRecordRepository(t)

	service := NewReturnStatusService(farmRepo, animalRepo, returnRepo)

	return service, farmRepo, animalRepo, returnRepo
}

func testFarm(id uuid.UUID) *entity.Farm {
	return &entity.Farm{
		ID:           id,
		OwnerUserID:  uuid.New(),
		Name:         "Hilltop",
		ContactEmail: "owner@hilltop.example",
		Timezone:     "UTC",
	}
}

func TestReturnStatusService_Evaluate_MixedStatuses(t *testing.T) {
	service, farmRepo, animalRepo, returnRepo := createTestReturnStatusService(t)

	ctx := context.Background()
	farmID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	alpha := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Alpha", Tag: "A-1"}
	bravo := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Bravo", Tag: "B-2"}
	charlie := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Charlie", Tag: "C-3"}

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	animalRepo.EXPECT().ListAnimalsByFarm(ctx, farmID).
		Return([]*entity.Animal{alpha, bravo, charlie}, nil)

	reason := "kept in for treatment"
	returnRepo.EXPECT().FindRecordsByFarmAndDate(ctx, farmID, day).
		Return([]*entity.ReturnRecord{
			{FarmID: farmID, AnimalID: alpha.ID, Date: day, Returned: true},
			{FarmID: farmID, AnimalID: charlie.ID, Date: day, Returned: false, Reason: &reason},
		}, nil)

	missing, err := service.Evaluate(ctx, farmID, day)

	require.NoError(t, err)
	require.Len(t, missing, 2)
	assert.Equal(t, bravo.ID, missing[0].ID)
	assert.Equal(t, charlie.ID, missing[1].ID)
}

func TestReturnStatusService_Evaluate_EmptyRoster(t *testing.T) {
	service, farmRepo, animalRepo, _ := createTestReturnStatusService(t)

	ctx := context.Background()
	farmID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	animalRepo.EXPECT().ListAnimalsByFarm(ctx, farmID).Return([]*entity.Animal{}, nil)

	missing, err := service.Evaluate(ctx, farmID, day)

	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestReturnStatusService_Evaluate_Idempotent(t *testing.T) {
	service, farmRepo, animalRepo, returnRepo := createTestReturnStatusService(t)

	ctx := context.Background()
	farmID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	alpha := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Alpha"}
	bravo := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Bravo"}

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil).Times(2)
	animalRepo.EXPECT().ListAnimalsByFarm(ctx, farmID).
		Return([]*entity.Animal{alpha, bravo}, nil).Times(2)
	returnRepo.EXPECT().FindRecordsByFarmAndDate(ctx, farmID, day).
		Return([]*entity.ReturnRecord{
			{FarmID: farmID, AnimalID: alpha.ID, Date: day, Returned: true},
		}, nil).Times(2)

	first, err := service.Evaluate(ctx, farmID, day)
	require.NoError(t, err)

	second, err := service.Evaluate(ctx, farmID, day)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReturnStatusService_Evaluate_NewestRecordWins(t *testing.T) {
	service, farmRepo, animalRepo, returnRepo := createTestReturnStatusService(t)

	ctx := context.Background()
	farmID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	alpha := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Alpha"}

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	animalRepo.EXPECT().ListAnimalsByFarm(ctx, farmID).Return([]*entity.Animal{alpha}, nil)

	// Repository returns most recently updated first; a stale duplicate row
	// behind it must not flip the outcome.
	returnRepo.EXPECT().FindRecordsByFarmAndDate(ctx, farmID, day).
		Return([]*entity.ReturnRecord{
			{FarmID: farmID, AnimalID: alpha.ID, Date: day, Returned: true},
			{FarmID: farmID, AnimalID: alpha.ID, Date: day, Returned: false},
		}, nil)

	missing, err := service.Evaluate(ctx, farmID, day)

	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestReturnStatusService_Evaluate_FarmNotFound(t *testing.T) {
	service, farmRepo, _, _ := createTestReturnStatusService(t)

	ctx := context.Background()
	farmID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(nil, repository.ErrFarmNotFound)

	missing, err := service.Evaluate(ctx, farmID, day)

	require.Error(t, err)
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, domainerrors.ErrFarmNotFound)
}

func TestReturnStatusService_Evaluate_StoreFailure(t *testing.T) {
	service, farmRepo, animalRepo, returnRepo := createTestReturnStatusService(t)

	ctx := context.Background()
	farmID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	alpha := &entity.Animal{ID: uuid.New(), FarmID: farmID, Name: "Alpha"}

	farmRepo.EXPECT().FindFarmByID(ctx, farmID).Return(testFarm(farmID), nil)
	animalRepo.EXPECT().ListAnimalsByFarm(ctx, farmID).Return([]*entity.Animal{alpha}, nil)
	returnRepo.EXPECT().FindRecordsByFarmAndDate(ctx, farmID, day).
		Return(nil, errors.New("connection refused"))

	missing, err := service.Evaluate(ctx, farmID, day)

	require.Error(t, err)
	assert.Nil(t, missing)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}
