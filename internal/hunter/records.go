package hunter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/leveling"
	"github.com/dhairyapractice/Solo-leveling/internal/logger"
	"github.com/dhairyapractice/Solo-leveling/internal/metrics"
)

// GetProfile returns the hunter profile.
func (s *service) GetProfile(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// EnsureProfile returns the profile, creating it at level 1 on first access.
func (s *service) EnsureProfile(ctx context.Context, userID, name string) (*domain.HunterProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgProfileAutoCreate, "userID", userID)
	return s.repo.CreateProfile(ctx, userID, name)
}

// UpdateProfile applies a display-field edit.
func (s *service) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	return s.repo.UpdateProfile(ctx, userID, update)
}

// GetSnapshot assembles the dashboard read model.
func (s *service) GetSnapshot(ctx context.Context, userID string) (*Snapshot, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	quests, err := s.repo.ListQuests(ctx, userID)
	if err != nil {
		return nil, err
	}
	battles, err := s.repo.ListBattles(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Profile:    profile,
		Categories: categories,
		Quests:     quests,
		Battles:    battles,
		Goals:      goals,
		ExpNeeded:  leveling.ExpNeeded(profile.Level, leveling.ProfileDivisor),
	}, nil
}

// CreateQuest resolves rewards from the rank (or overrides) and freezes them
// on the row.
func (s *service) CreateQuest(ctx context.Context, input CreateQuestInput) (*domain.Quest, error) {
	spec, err := resolveQuestReward(input)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	quest := &domain.Quest{
		UserID:           input.UserID,
		Title:            input.Title,
		Description:      input.Description,
		Difficulty:       input.Difficulty,
		QuestType:        input.QuestType,
		ExpReward:        spec.Exp,
		HPReward:         spec.HP,
		StatusCategoryID: input.StatusCategoryID,
	}
	return s.repo.CreateQuest(ctx, quest)
}

func (s *service) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return s.repo.GetQuest(ctx, userID, questID)
}

func (s *service) ListQuests(ctx context.Context, userID string) ([]domain.Quest, error) {
	return s.repo.ListQuests(ctx, userID)
}

// UpdateQuest edits quest metadata. A difficulty change does not re-resolve
// the frozen rewards; callers send new reward values alongside if they want
// them to move.
func (s *service) UpdateQuest(ctx context.Context, userID, questID string, update domain.QuestUpdate) error {
	if update.Difficulty != nil && !update.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, *update.Difficulty)
	}
	return s.repo.UpdateQuest(ctx, userID, questID, update)
}

func (s *service) DeleteQuest(ctx context.Context, userID, questID string) error {
	return s.repo.DeleteQuest(ctx, userID, questID)
}

// CreateBattle freezes the gold payout on the row.
func (s *service) CreateBattle(ctx context.Context, input CreateBattleInput) (*domain.BossBattle, error) {
	if !input.Difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, input.Difficulty)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if input.Gold < 0 {
		return nil, fmt.Errorf("%w: gold must be non-negative", domain.ErrInvalidInput)
	}

	battle := &domain.BossBattle{
		UserID:           input.UserID,
		Name:             input.Name,
		Difficulty:       input.Difficulty,
		Gold:             input.Gold,
		BattleDate:       input.BattleDate,
		StatusCategoryID: input.StatusCategoryID,
	}
	return s.repo.CreateBattle(ctx, battle)
}

func (s *service) GetBattle(ctx context.Context, userID, battleID string) (*domain.BossBattle, error) {
	return s.repo.GetBattle(ctx, userID, battleID)
}

func (s *service) ListBattles(ctx context.Context, userID string) ([]domain.BossBattle, error) {
	return s.repo.ListBattles(ctx, userID)
}

func (s *service) UpdateBattle(ctx context.Context, userID, battleID string, update domain.BattleUpdate) error {
	if update.Difficulty != nil && !update.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, *update.Difficulty)
	}
	return s.repo.UpdateBattle(ctx, userID, battleID, update)
}

func (s *service) DeleteBattle(ctx context.Context, userID, battleID string) error {
	return s.repo.DeleteBattle(ctx, userID, battleID)
}

// CreateGoal requires a category; goals only push the category track plus
// profile EXP, never HP or gold.
func (s *service) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.CategoryID) == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}

	expReward := domain.DefaultGoalExpReward
	if input.ExpOverride != nil {
		expReward = *input.ExpOverride
	}

	goal := &domain.Goal{
		UserID:      input.UserID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		ExpReward:   expReward,
	}
	return s.repo.CreateGoal(ctx, goal)
}

func (s *service) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	return s.repo.GetGoal(ctx, userID, goalID)
}

func (s *service) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

func (s *service) UpdateGoal(ctx context.Context, userID, goalID string, update domain.GoalUpdate) error {
	return s.repo.UpdateGoal(ctx, userID, goalID, update)
}

func (s *service) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return s.repo.DeleteGoal(ctx, userID, goalID)
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.StatusCategory, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	category := &domain.StatusCategory{
		UserID: input.UserID,
		Name:   input.Name,
		Color:  input.Color,
		Icon:   input.Icon,
	}
	return s.repo.CreateCategory(ctx, category)
}

func (s *service) GetCategory(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error) {
	return s.repo.GetCategory(ctx, userID, categoryID)
}

func (s *service) ListCategories(ctx context.Context, userID string) ([]domain.StatusCategory, error) {
	return s.repo.ListCategories(ctx, userID)
}

func (s *service) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	return s.repo.DeleteCategory(ctx, userID, categoryID)
}

// ResetQuests reverts every completed quest of the given type, across all
// users. Invoked by the scheduled reset workers at day and week boundaries;
// EXP and HP already granted stay on the ledger.
func (s *service) ResetQuests(ctx context.Context, questType string) (int64, error) {
	switch questType {
	case domain.QuestTypeDaily, domain.QuestTypeWeekly:
	default:
		return 0, fmt.Errorf("%w: quest type %q is not resettable", domain.ErrInvalidInput, questType)
	}

	affected, err := s.repo.ResetQuestsByType(ctx, questType)
	if err != nil {
		return 0, err
	}

	metrics.QuestsReset.WithLabelValues(questType).Add(float64(affected))
	logger.FromContext(ctx).Info(LogMsgQuestsReset, "questType", questType, "affected", affected)
	return affected, nil
}

func (s *service) ListPfpMilestones(ctx context.Context, userID string) ([]domain.PfpMilestone, error) {
	return s.repo.ListPfpMilestones(ctx, userID)
}

func (s *service) CreatePfpMilestone(ctx context.Context, userID string, levelThreshold int, pfpURL string) (*domain.PfpMilestone, error) {
	if levelThreshold < 1 {
		return nil, fmt.Errorf("%w: level threshold must be positive", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(pfpURL) == "" {
		return nil, fmt.Errorf("%w: pfp url is required", domain.ErrInvalidInput)
	}

	return s.repo.CreatePfpMilestone(ctx, &domain.PfpMilestone{
		UserID:         userID,
		LevelThreshold: levelThreshold,
		PfpURL:         pfpURL,
	})
}
