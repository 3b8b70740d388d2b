package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"profile not found", domain.ErrProfileNotFound, http.StatusNotFound, ErrMsgProfileNotFoundError},
		{"record not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgNotFoundError},
		{"already completed", domain.ErrAlreadyCompleted, http.StatusConflict, ErrMsgAlreadyCompletedError},
		{"not completed", domain.ErrNotCompleted, http.StatusConflict, ErrMsgNotCompletedError},
		{"already purchased", domain.ErrAlreadyPurchased, http.StatusConflict, ErrMsgAlreadyPurchasedError},
		{"insufficient gold", domain.ErrInsufficientGold, http.StatusBadRequest, ErrMsgInsufficientGoldError},
		{"insufficient hp", domain.ErrInsufficientHP, http.StatusBadRequest, ErrMsgInsufficientHPError},
		{"level locked", domain.ErrLevelLocked, http.StatusForbidden, ErrMsgLevelLockedError},
		{"penalty not applicable", domain.ErrPenaltyNotApplicable, http.StatusBadRequest, ErrMsgPenaltyNotApplicable},
		{"invalid difficulty", domain.ErrInvalidDifficulty, http.StatusBadRequest, ErrMsgInvalidDifficultyError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"conflict", domain.ErrConflict, http.StatusConflict, ErrMsgConflictError},
		{"unrecognized error stays generic", errors.New("pq: connection refused"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapServiceErrorToUserMessage_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("purchase failed: %w", domain.ErrInsufficientGold)

	status, msg := mapServiceErrorToUserMessage(wrapped)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrMsgInsufficientGoldError, msg)
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	respondJSON(rec, http.StatusCreated, SuccessResponse{Message: "done"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body SuccessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "done", body.Message)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, http.StatusBadRequest, ErrMsgMissingUserID)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrMsgMissingUserID, body.Error)
}

func TestGetUserID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	r.Header.Set(HeaderUserID, "  0b6f7895-3a34-4f4f-9d3c-111111111111  ")
	rec := httptest.NewRecorder()

	userID, ok := GetUserID(r, rec)

	assert.True(t, ok)
	assert.Equal(t, "0b6f7895-3a34-4f4f-9d3c-111111111111", userID)
}

func TestGetUserID_MissingHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()

	_, ok := GetUserID(r, rec)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrMsgMissingUserID, body.Error)
}
