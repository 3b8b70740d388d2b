package badge

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// MockRepository is a hand-written mock of repository.Badge.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBadge(ctx context.Context, userID, badgeID string) (*domain.Badge, error) {
	args := m.Called(ctx, userID, badgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Badge), args.Error(1)
}

func (m *MockRepository) ListBadges(ctx context.Context, userID string) ([]domain.Badge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}

func (m *MockRepository) CreateBadge(ctx context.Context, badge *domain.Badge) (*domain.Badge, error) {
	args := m.Called(ctx, badge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Badge), args.Error(1)
}

func (m *MockRepository) UpdateBadge(ctx context.Context, userID, badgeID string, update domain.BadgeUpdate) error {
	args := m.Called(ctx, userID, badgeID, update)
	return args.Error(0)
}

func (m *MockRepository) DeleteBadge(ctx context.Context, userID, badgeID string) error {
	args := m.Called(ctx, userID, badgeID)
	return args.Error(0)
}

func (m *MockRepository) ListUserBadges(ctx context.Context, userID string) ([]domain.UserBadge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserBadge), args.Error(1)
}

func (m *MockRepository) AwardBadge(ctx context.Context, userID, badgeID string) (bool, error) {
	args := m.Called(ctx, userID, badgeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CountCompletedQuests(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountCompletedBattles(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) RecordEvent(ctx context.Context, event *domain.HunterEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockProfiles is a hand-written mock of ProfileReader.
type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) GetProfile(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HunterProfile), args.Error(1)
}
