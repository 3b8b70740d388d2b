package hunter

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
)

// MockRepository implements repository.Hunter for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProfile(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HunterProfile), args.Error(1)
}

func (m *MockRepository) CreateProfile(ctx context.Context, userID, name string) (*domain.HunterProfile, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HunterProfile), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	args := m.Called(ctx, userID, update)
	return args.Error(0)
}

func (m *MockRepository) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	args := m.Called(ctx, userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockRepository) ListQuests(ctx context.Context, userID string) ([]domain.Quest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockRepository) CreateQuest(ctx context.Context, quest *domain.Quest) (*domain.Quest, error) {
	args := m.Called(ctx, quest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockRepository) UpdateQuest(ctx context.Context, userID, questID string, update domain.QuestUpdate) error {
	args := m.Called(ctx, userID, questID, update)
	return args.Error(0)
}

func (m *MockRepository) DeleteQuest(ctx context.Context, userID, questID string) error {
	args := m.Called(ctx, userID, questID)
	return args.Error(0)
}

func (m *MockRepository) GetBattle(ctx context.Context, userID, battleID string) (*domain.BossBattle, error) {
	args := m.Called(ctx, userID, battleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BossBattle), args.Error(1)
}

func (m *MockRepository) ListBattles(ctx context.Context, userID string) ([]domain.BossBattle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BossBattle), args.Error(1)
}

func (m *MockRepository) CreateBattle(ctx context.Context, battle *domain.BossBattle) (*domain.BossBattle, error) {
	args := m.Called(ctx, battle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BossBattle), args.Error(1)
}

func (m *MockRepository) UpdateBattle(ctx context.Context, userID, battleID string, update domain.BattleUpdate) error {
	args := m.Called(ctx, userID, battleID, update)
	return args.Error(0)
}

func (m *MockRepository) DeleteBattle(ctx context.Context, userID, battleID string) error {
	args := m.Called(ctx, userID, battleID)
	return args.Error(0)
}

func (m *MockRepository) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockRepository) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockRepository) UpdateGoal(ctx context.Context, userID, goalID string, update domain.GoalUpdate) error {
	args := m.Called(ctx, userID, goalID, update)
	return args.Error(0)
}

func (m *MockRepository) DeleteGoal(ctx context.Context, userID, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}

func (m *MockRepository) GetCategory(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCategory), args.Error(1)
}

func (m *MockRepository) ListCategories(ctx context.Context, userID string) ([]domain.StatusCategory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCategory), args.Error(1)
}

func (m *MockRepository) CreateCategory(ctx context.Context, category *domain.StatusCategory) (*domain.StatusCategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCategory), args.Error(1)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

func (m *MockRepository) ListPfpMilestones(ctx context.Context, userID string) ([]domain.PfpMilestone, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PfpMilestone), args.Error(1)
}

func (m *MockRepository) CreatePfpMilestone(ctx context.Context, milestone *domain.PfpMilestone) (*domain.PfpMilestone, error) {
	args := m.Called(ctx, milestone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PfpMilestone), args.Error(1)
}

func (m *MockRepository) ResetQuestsByType(ctx context.Context, questType string) (int64, error) {
	args := m.Called(ctx, questType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.HunterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.HunterTx), args.Error(1)
}

// MockTx implements repository.HunterTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetProfileForUpdate(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HunterProfile), args.Error(1)
}

func (m *MockTx) GetCategoryForUpdate(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCategory), args.Error(1)
}

func (m *MockTx) MarkQuestCompleted(ctx context.Context, userID, questID string, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, questID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) MarkQuestUncompleted(ctx context.Context, userID, questID string) (bool, error) {
	args := m.Called(ctx, userID, questID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) MarkBattleCompleted(ctx context.Context, userID, battleID string, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, battleID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) MarkBattleUncompleted(ctx context.Context, userID, battleID string) (bool, error) {
	args := m.Called(ctx, userID, battleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) MarkGoalCompleted(ctx context.Context, userID, goalID string, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, goalID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) MarkGoalUncompleted(ctx context.Context, userID, goalID string) (bool, error) {
	args := m.Called(ctx, userID, goalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) UpdateProfileProgress(ctx context.Context, userID string, level, exp, hp int) error {
	args := m.Called(ctx, userID, level, exp, hp)
	return args.Error(0)
}

func (m *MockTx) AddGoldEarned(ctx context.Context, userID string, gold int) error {
	args := m.Called(ctx, userID, gold)
	return args.Error(0)
}

func (m *MockTx) UpdateCategoryProgress(ctx context.Context, userID, categoryID string, level, exp int) error {
	args := m.Called(ctx, userID, categoryID, level, exp)
	return args.Error(0)
}

func (m *MockTx) UpdateStreak(ctx context.Context, userID string, streak int, progress float64, lastActive string, history map[string]int) error {
	args := m.Called(ctx, userID, streak, progress, lastActive, history)
	return args.Error(0)
}

func (m *MockTx) SetCurrentPfp(ctx context.Context, userID, url string) error {
	args := m.Called(ctx, userID, url)
	return args.Error(0)
}

func (m *MockTx) RecordEvent(ctx context.Context, event *domain.HunterEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockEvaluator implements BadgeEvaluator for testing
type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) Evaluate(ctx context.Context, userID string) ([]domain.Badge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}
