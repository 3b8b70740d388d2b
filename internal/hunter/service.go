// Package hunter is the progression engine: it applies completion events to
// the hunter profile ledger, running reward resolution, leveling, streak
// ticks, and milestone swaps inside one transaction per event.
package hunter

import (
	"context"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/concurrency"
	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
	"github.com/dhairyapractice/Solo-leveling/internal/reward"
)

type Service interface {
	// Profile
	GetProfile(ctx context.Context, userID string) (*domain.HunterProfile, error)
	EnsureProfile(ctx context.Context, userID, name string) (*domain.HunterProfile, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error
	GetSnapshot(ctx context.Context, userID string) (*Snapshot, error)

	// Quest management
	CreateQuest(ctx context.Context, input CreateQuestInput) (*domain.Quest, error)
	GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error)
	ListQuests(ctx context.Context, userID string) ([]domain.Quest, error)
	UpdateQuest(ctx context.Context, userID, questID string, update domain.QuestUpdate) error
	DeleteQuest(ctx context.Context, userID, questID string) error

	// Battle management
	CreateBattle(ctx context.Context, input CreateBattleInput) (*domain.BossBattle, error)
	GetBattle(ctx context.Context, userID, battleID string) (*domain.BossBattle, error)
	ListBattles(ctx context.Context, userID string) ([]domain.BossBattle, error)
	UpdateBattle(ctx context.Context, userID, battleID string, update domain.BattleUpdate) error
	DeleteBattle(ctx context.Context, userID, battleID string) error

	// Goal management
	CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, update domain.GoalUpdate) error
	DeleteGoal(ctx context.Context, userID, goalID string) error

	// Category management
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.StatusCategory, error)
	GetCategory(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error)
	ListCategories(ctx context.Context, userID string) ([]domain.StatusCategory, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	// Milestones
	ListPfpMilestones(ctx context.Context, userID string) ([]domain.PfpMilestone, error)
	CreatePfpMilestone(ctx context.Context, userID string, levelThreshold int, pfpURL string) (*domain.PfpMilestone, error)

	// Maintenance
	ResetQuests(ctx context.Context, questType string) (int64, error)

	// Event application
	CompleteQuest(ctx context.Context, userID, questID string) (*ApplyResult, error)
	UncompleteQuest(ctx context.Context, userID, questID string) (*ApplyResult, error)
	FailQuest(ctx context.Context, userID, questID string) (*ApplyResult, error)
	CompleteBattle(ctx context.Context, userID, battleID string) (*ApplyResult, error)
	UncompleteBattle(ctx context.Context, userID, battleID string) (*ApplyResult, error)
	CompleteGoal(ctx context.Context, userID, goalID string) (*ApplyResult, error)
	UncompleteGoal(ctx context.Context, userID, goalID string) (*ApplyResult, error)
}

// BadgeEvaluator re-checks badge criteria after an applied event. Narrow on
// purpose so the badge service can depend on this package's repositories
// without a cycle.
type BadgeEvaluator interface {
	Evaluate(ctx context.Context, userID string) ([]domain.Badge, error)
}

// CreateQuestInput carries quest creation fields. Reward overrides replace
// the difficulty defaults entirely; nil means use the default.
type CreateQuestInput struct {
	UserID           string
	Title            string
	Description      string
	Difficulty       domain.Difficulty
	QuestType        string
	ExpOverride      *int
	HPOverride       *int
	StatusCategoryID *string
}

// CreateBattleInput carries boss battle creation fields. Gold is the payout
// credited on completion, chosen per battle rather than derived from rank.
type CreateBattleInput struct {
	UserID           string
	Name             string
	Difficulty       domain.Difficulty
	Gold             int
	BattleDate       *time.Time
	StatusCategoryID *string
}

// CreateGoalInput carries goal creation fields. The category is mandatory;
// a nil ExpOverride falls back to the default goal reward.
type CreateGoalInput struct {
	UserID      string
	CategoryID  string
	Title       string
	Description string
	ExpOverride *int
}

// CreateCategoryInput carries status category creation fields.
type CreateCategoryInput struct {
	UserID string
	Name   string
	Color  *string
	Icon   *string
}

// ApplyResult reports the ledger state after an applied event.
type ApplyResult struct {
	Profile   *domain.HunterProfile  `json:"profile"`
	Category  *domain.StatusCategory `json:"category,omitempty"`
	LeveledUp bool                   `json:"leveled_up"`
	NewBadges []domain.Badge         `json:"new_badges,omitempty"`
}

// Snapshot is the aggregate read model for a dashboard render.
type Snapshot struct {
	Profile    *domain.HunterProfile   `json:"profile"`
	Categories []domain.StatusCategory `json:"categories"`
	Quests     []domain.Quest          `json:"quests"`
	Battles    []domain.BossBattle     `json:"battles"`
	Goals      []domain.Goal           `json:"goals"`
	ExpNeeded  int                     `json:"exp_needed"`
}

type service struct {
	repo   repository.Hunter
	badges BadgeEvaluator
	locks  *concurrency.LockManager
	now    func() time.Time
}

// NewService creates the progression engine service. badges may be nil when
// no evaluator is wired (tests, tooling).
func NewService(repo repository.Hunter, badges BadgeEvaluator, locks *concurrency.LockManager) Service {
	return &service{
		repo:   repo,
		badges: badges,
		locks:  locks,
		now:    time.Now,
	}
}

// resolveQuestReward validates the rank and freezes the reward numbers.
func resolveQuestReward(input CreateQuestInput) (reward.Spec, error) {
	return reward.Resolve(input.Difficulty, input.ExpOverride, input.HPOverride)
}
