package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"herdwatch/internal/domain/entity"
	mockUC "herdwatch/internal/mocks/usecase"
	"herdwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckinHandler_RecordCheckin_DefaultsToReturned(t *testing.T) {
	animalID := uuid.New()
	body := fmt.Sprintf(`{"animal_id":%q}`, animalID)
	c, rec, farmID := newTestContext(t, http.MethodPost, "/farm/checkins", body)

	uc := mockUC.NewMockCheckinUsecase(t)
	h := NewCheckinHandler(uc, mockUC.NewMockAlertUsecase(t), testLogger())

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().RecordCheckin(c.Request().Context(), farmID, animalID, true, (*string)(nil)).
		Return(&entity.ReturnRecord{FarmID: farmID, AnimalID: animalID, Date: day, Returned: true}, nil)

	require.NoError(t, h.RecordCheckin(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckinHandler_RecordCheckin_CorrectionWithReason(t *testing.T) {
	animalID := uuid.New()
	body := fmt.Sprintf(`{"animal_id":%q,"returned":false,"reason":"kept in for treatment"}`, animalID)
	c, rec, farmID := newTestContext(t, http.MethodPost, "/farm/checkins", body)

	uc := mockUC.NewMockCheckinUsecase(t)
	h := NewCheckinHandler(uc, mockUC.NewMockAlertUsecase(t), testLogger())

	reason := "kept in for treatment"
	uc.EXPECT().RecordCheckin(c.Request().Context(), farmID, animalID, false, &reason).
		Return(&entity.ReturnRecord{FarmID: farmID, AnimalID: animalID, Returned: false, Reason: &reason}, nil)

	require.NoError(t, h.RecordCheckin(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckinHandler_RecordCheckin_EvaluateQueryTriggersCycle(t *testing.T) {
	animalID := uuid.New()
	body := fmt.Sprintf(`{"animal_id":%q}`, animalID)
	c, rec, farmID := newTestContext(t, http.MethodPost, "/farm/checkins?evaluate=true", body)

	uc := mockUC.NewMockCheckinUsecase(t)
	alertUC := mockUC.NewMockAlertUsecase(t)
	h := NewCheckinHandler(uc, alertUC, testLogger())

	uc.EXPECT().RecordCheckin(c.Request().Context(), farmID, animalID, true, (*string)(nil)).
		Return(&entity.ReturnRecord{FarmID: farmID, AnimalID: animalID, Returned: true}, nil)
	alertUC.EXPECT().TriggerNow(c.Request().Context(), farmID).
		Return(&usecase.CycleResult{FarmID: farmID}, nil)

	require.NoError(t, h.RecordCheckin(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckinHandler_RecordCheckin_MissingAnimalID(t *testing.T) {
	c, rec, _ := newTestContext(t, http.MethodPost, "/farm/checkins", `{}`)

	uc := mockUC.NewMockCheckinUsecase(t)
	h := NewCheckinHandler(uc, mockUC.NewMockAlertUsecase(t), testLogger())

	require.NoError(t, h.RecordCheckin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckinHandler_RevertCheckin_InvalidAnimalID(t *testing.T) {
	c, rec, _ := newTestContext(t, http.MethodDelete, "/farm/checkins/not-a-uuid", "")
	c.SetParamNames("animalID")
	c.SetParamValues("not-a-uuid")

	uc := mockUC.NewMockCheckinUsecase(t)
	h := NewCheckinHandler(uc, mockUC.NewMockAlertUsecase(t), testLogger())

	require.NoError(t, h.RevertCheckin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckinHandler_RevertCheckin_Success(t *testing.T) {
	animalID := uuid.New()
	c, rec, farmID := newTestContext(t, http.MethodDelete, "/farm/checkins/"+animalID.String(), "")
	c.SetParamNames("animalID")
	c.SetParamValues(animalID.String())

	uc := mockUC.NewMockCheckinUsecase(t)
	h := NewCheckinHandler(uc, mockUC.NewMockAlertUsecase(t), testLogger())

	uc.EXPECT().RevertCheckin(c.Request().Context(), farmID, animalID).Return(nil)

	require.NoError(t, h.RevertCheckin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
