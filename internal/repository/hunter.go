package repository

import (
	"context"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// Hunter is the record-store contract for profiles, categories, and the
// completable entities (quests, battles, goals). Every query is scoped by
// the owning user id.
type Hunter interface {
	GetProfile(ctx context.Context, userID string) (*domain.HunterProfile, error)
	CreateProfile(ctx context.Context, userID, name string) (*domain.HunterProfile, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error

	GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error)
	ListQuests(ctx context.Context, userID string) ([]domain.Quest, error)
	CreateQuest(ctx context.Context, quest *domain.Quest) (*domain.Quest, error)
	UpdateQuest(ctx context.Context, userID, questID string, update domain.QuestUpdate) error
	DeleteQuest(ctx context.Context, userID, questID string) error

	GetBattle(ctx context.Context, userID, battleID string) (*domain.BossBattle, error)
	ListBattles(ctx context.Context, userID string) ([]domain.BossBattle, error)
	CreateBattle(ctx context.Context, battle *domain.BossBattle) (*domain.BossBattle, error)
	UpdateBattle(ctx context.Context, userID, battleID string, update domain.BattleUpdate) error
	DeleteBattle(ctx context.Context, userID, battleID string) error

	GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, update domain.GoalUpdate) error
	DeleteGoal(ctx context.Context, userID, goalID string) error

	GetCategory(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error)
	ListCategories(ctx context.Context, userID string) ([]domain.StatusCategory, error)
	CreateCategory(ctx context.Context, category *domain.StatusCategory) (*domain.StatusCategory, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	ListPfpMilestones(ctx context.Context, userID string) ([]domain.PfpMilestone, error)
	CreatePfpMilestone(ctx context.Context, milestone *domain.PfpMilestone) (*domain.PfpMilestone, error)

	// ResetQuestsByType reverts every completed quest of the given type back
	// to incomplete, across all users. Used by the scheduled reset workers;
	// rewards already granted are not taken back.
	ResetQuestsByType(ctx context.Context, questType string) (int64, error)

	BeginTx(ctx context.Context) (HunterTx, error)
}

// HunterTx is the transactional surface for event application. Flag
// transitions are compare-and-set UPDATEs: the bool result reports whether
// the row actually flipped, so a lost race surfaces as false instead of a
// silent double-apply.
type HunterTx interface {
	Tx

	// GetProfileForUpdate row-locks the profile so concurrent ledger writes
	// serialize inside the store even without the service-level lock.
	GetProfileForUpdate(ctx context.Context, userID string) (*domain.HunterProfile, error)
	GetCategoryForUpdate(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error)

	MarkQuestCompleted(ctx context.Context, userID, questID string, at time.Time) (bool, error)
	MarkQuestUncompleted(ctx context.Context, userID, questID string) (bool, error)
	MarkBattleCompleted(ctx context.Context, userID, battleID string, at time.Time) (bool, error)
	MarkBattleUncompleted(ctx context.Context, userID, battleID string) (bool, error)
	MarkGoalCompleted(ctx context.Context, userID, goalID string, at time.Time) (bool, error)
	MarkGoalUncompleted(ctx context.Context, userID, goalID string) (bool, error)

	UpdateProfileProgress(ctx context.Context, userID string, level, exp, hp int) error
	AddGoldEarned(ctx context.Context, userID string, gold int) error
	UpdateCategoryProgress(ctx context.Context, userID, categoryID string, level, exp int) error
	UpdateStreak(ctx context.Context, userID string, streak int, progress float64, lastActive string, history map[string]int) error
	SetCurrentPfp(ctx context.Context, userID, url string) error

	RecordEvent(ctx context.Context, event *domain.HunterEvent) error
}
