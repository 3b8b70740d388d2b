package badge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

const (
	testUserID  = "0b6f7895-3a34-4f4f-9d3c-111111111111"
	testBadgeID = "0b6f7895-3a34-4f4f-9d3c-777777777777"
)

func newTestService(t *testing.T, repo *MockRepository, profiles *MockProfiles) Service {
	t.Helper()
	svc, err := NewService(repo, profiles)
	require.NoError(t, err)
	return svc
}

func levelBadge(id string, threshold int) domain.Badge {
	return domain.Badge{
		ID:       id,
		UserID:   testUserID,
		Name:     "Seasoned Hunter",
		Criteria: &domain.BadgeCriteria{Type: domain.CriteriaLevel, Value: threshold},
	}
}

func TestEvaluate_AwardsWhenThresholdMet(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockProfiles := &MockProfiles{}
	svc := newTestService(t, mockRepo, mockProfiles)

	badges := []domain.Badge{
		levelBadge("badge-level-5", 5),
		levelBadge("badge-level-10", 10),
		{ID: "badge-manual", UserID: testUserID, Name: "Founder"},
	}
	profile := &domain.HunterProfile{UserID: testUserID, Level: 7}

	mockRepo.On("ListBadges", ctx, testUserID).Return(badges, nil)
	mockRepo.On("ListUserBadges", ctx, testUserID).Return([]domain.UserBadge{}, nil)
	mockRepo.On("AwardBadge", ctx, testUserID, "badge-level-5").Return(true, nil)
	mockRepo.On("RecordEvent", ctx, mock.AnythingOfType("*domain.HunterEvent")).Return(nil)
	mockProfiles.On("GetProfile", ctx, testUserID).Return(profile, nil)

	earned, err := svc.Evaluate(ctx, testUserID)

	require.NoError(t, err)
	require.Len(t, earned, 1)
	assert.Equal(t, "badge-level-5", earned[0].ID)
	mockRepo.AssertNotCalled(t, "AwardBadge", ctx, testUserID, "badge-level-10")
	mockRepo.AssertNotCalled(t, "AwardBadge", ctx, testUserID, "badge-manual")
}

func TestEvaluate_SkipsAlreadyEarned(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockProfiles := &MockProfiles{}
	svc := newTestService(t, mockRepo, mockProfiles)

	mockRepo.On("ListBadges", ctx, testUserID).Return([]domain.Badge{levelBadge(testBadgeID, 5)}, nil)
	mockRepo.On("ListUserBadges", ctx, testUserID).Return([]domain.UserBadge{
		{UserID: testUserID, BadgeID: testBadgeID},
	}, nil)

	earned, err := svc.Evaluate(ctx, testUserID)

	require.NoError(t, err)
	assert.Empty(t, earned)
	mockProfiles.AssertNotCalled(t, "GetProfile", ctx, testUserID)
	mockRepo.AssertNotCalled(t, "AwardBadge", ctx, testUserID, testBadgeID)
}

func TestEvaluate_CountsQuestsOnce(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockProfiles := &MockProfiles{}
	svc := newTestService(t, mockRepo, mockProfiles)

	badges := []domain.Badge{
		{ID: "badge-q10", UserID: testUserID, Name: "Diligent",
			Criteria: &domain.BadgeCriteria{Type: domain.CriteriaQuests, Value: 10}},
		{ID: "badge-q50", UserID: testUserID, Name: "Relentless",
			Criteria: &domain.BadgeCriteria{Type: domain.CriteriaQuests, Value: 50}},
	}

	mockRepo.On("ListBadges", ctx, testUserID).Return(badges, nil)
	mockRepo.On("ListUserBadges", ctx, testUserID).Return([]domain.UserBadge{}, nil)
	mockRepo.On("CountCompletedQuests", ctx, testUserID).Return(25, nil)
	mockRepo.On("AwardBadge", ctx, testUserID, "badge-q10").Return(true, nil)
	mockRepo.On("RecordEvent", ctx, mock.AnythingOfType("*domain.HunterEvent")).Return(nil)
	mockProfiles.On("GetProfile", ctx, testUserID).Return(&domain.HunterProfile{UserID: testUserID}, nil)

	earned, err := svc.Evaluate(ctx, testUserID)

	require.NoError(t, err)
	require.Len(t, earned, 1)
	mockRepo.AssertNumberOfCalls(t, "CountCompletedQuests", 1)
}

func TestEvaluate_GoldUsesDerivedBalance(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockProfiles := &MockProfiles{}
	svc := newTestService(t, mockRepo, mockProfiles)

	badges := []domain.Badge{
		{ID: "badge-rich", UserID: testUserID, Name: "Tycoon",
			Criteria: &domain.BadgeCriteria{Type: domain.CriteriaGold, Value: 500}},
	}
	profile := &domain.HunterProfile{UserID: testUserID, GoldEarned: 900, GoldSpent: 500}

	mockRepo.On("ListBadges", ctx, testUserID).Return(badges, nil)
	mockRepo.On("ListUserBadges", ctx, testUserID).Return([]domain.UserBadge{}, nil)
	mockProfiles.On("GetProfile", ctx, testUserID).Return(profile, nil)

	earned, err := svc.Evaluate(ctx, testUserID)

	require.NoError(t, err)
	assert.Empty(t, earned)
	mockRepo.AssertNotCalled(t, "AwardBadge", ctx, testUserID, "badge-rich")
}

func TestAward_Idempotent(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(t, mockRepo, &MockProfiles{})

	badge := levelBadge(testBadgeID, 5)
	mockRepo.On("GetBadge", ctx, testUserID, testBadgeID).Return(&badge, nil)
	mockRepo.On("AwardBadge", ctx, testUserID, testBadgeID).Return(false, nil)

	awarded, err := svc.Award(ctx, testUserID, testBadgeID)

	require.NoError(t, err)
	assert.False(t, awarded)
	mockRepo.AssertNotCalled(t, "RecordEvent", ctx, mock.Anything)
}

func TestAward_GrantsAndRecordsEvent(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(t, mockRepo, &MockProfiles{})

	badge := levelBadge(testBadgeID, 5)
	mockRepo.On("GetBadge", ctx, testUserID, testBadgeID).Return(&badge, nil)
	mockRepo.On("AwardBadge", ctx, testUserID, testBadgeID).Return(true, nil)
	mockRepo.On("RecordEvent", ctx, mock.AnythingOfType("*domain.HunterEvent")).Return(nil)

	awarded, err := svc.Award(ctx, testUserID, testBadgeID)

	require.NoError(t, err)
	assert.True(t, awarded)
	mockRepo.AssertExpectations(t)
}

func TestAward_UnknownBadge(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(t, mockRepo, &MockProfiles{})

	mockRepo.On("GetBadge", ctx, testUserID, testBadgeID).Return(nil, domain.ErrNotFound)

	_, err := svc.Award(ctx, testUserID, testBadgeID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "AwardBadge", ctx, testUserID, testBadgeID)
}

func TestListBadges_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(t, mockRepo, &MockProfiles{})

	badges := []domain.Badge{levelBadge(testBadgeID, 5)}
	mockRepo.On("ListBadges", ctx, testUserID).Return(badges, nil)

	first, err := svc.ListBadges(ctx, testUserID)
	require.NoError(t, err)
	second, err := svc.ListBadges(ctx, testUserID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertNumberOfCalls(t, "ListBadges", 1)
}

func TestCreateBadge_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(t, mockRepo, &MockProfiles{})

	badges := []domain.Badge{levelBadge(testBadgeID, 5)}
	mockRepo.On("ListBadges", ctx, testUserID).Return(badges, nil)
	mockRepo.On("CreateBadge", ctx, mock.AnythingOfType("*domain.Badge")).
		Return(&domain.Badge{ID: "badge-new", UserID: testUserID, Name: "New"}, nil)

	_, err := svc.ListBadges(ctx, testUserID)
	require.NoError(t, err)

	_, err = svc.CreateBadge(ctx, CreateBadgeInput{UserID: testUserID, Name: "New"})
	require.NoError(t, err)

	_, err = svc.ListBadges(ctx, testUserID)
	require.NoError(t, err)

	mockRepo.AssertNumberOfCalls(t, "ListBadges", 2)
}

func TestCreateBadge_Validation(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(t, mockRepo, &MockProfiles{})

	tests := []struct {
		name  string
		input CreateBadgeInput
	}{
		{"blank name", CreateBadgeInput{UserID: testUserID, Name: "  "}},
		{"unknown criteria type", CreateBadgeInput{UserID: testUserID, Name: "X",
			Criteria: &domain.BadgeCriteria{Type: "mystery", Value: 1}}},
		{"negative criteria value", CreateBadgeInput{UserID: testUserID, Name: "X",
			Criteria: &domain.BadgeCriteria{Type: domain.CriteriaLevel, Value: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBadge(ctx, tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	mockRepo.AssertNotCalled(t, "CreateBadge", ctx, mock.Anything)
}
