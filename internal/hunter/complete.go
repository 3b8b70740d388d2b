package hunter

import (
	"context"
	"fmt"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/leveling"
	"github.com/dhairyapractice/Solo-leveling/internal/logger"
	"github.com/dhairyapractice/Solo-leveling/internal/metrics"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
	"github.com/dhairyapractice/Solo-leveling/internal/streak"
)

// CompleteQuest applies a quest completion: EXP through the leveling curve,
// HP clamped to its bounds, the linked category track, the daily streak, and
// any profile picture milestone, all in one transaction.
func (s *service) CompleteQuest(ctx context.Context, userID, questID string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCompleteQuestCalled, "userID", userID, "questID", questID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	quest, err := s.repo.GetQuest(ctx, userID, questID)
	if err != nil {
		return nil, err
	}
	if quest.Completed {
		metrics.EventsRejected.WithLabelValues(string(domain.EventQuestCompleted)).Inc()
		return nil, domain.ErrAlreadyCompleted
	}

	now := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipped, err := tx.MarkQuestCompleted(ctx, userID, questID, now)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, domain.ErrAlreadyCompleted
	}

	newLevel, newExp := leveling.Advance(profile.Level, profile.Exp, quest.ExpReward, leveling.ProfileDivisor)
	newHP := domain.ClampHP(profile.HP + quest.HPReward)
	if err := tx.UpdateProfileProgress(ctx, userID, newLevel, newExp, newHP); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateProgressFailed, err)
	}

	var category *domain.StatusCategory
	if quest.StatusCategoryID != nil {
		category, err = s.advanceCategory(ctx, tx, userID, *quest.StatusCategoryID, quest.ExpReward)
		if err != nil {
			return nil, err
		}
	}

	updated := *profile
	updated.Level, updated.Exp, updated.HP = newLevel, newExp, newHP

	if quest.IsDaily() {
		if err := s.tickStreak(ctx, tx, &updated, now); err != nil {
			return nil, err
		}
	}
	if newLevel != profile.Level {
		s.applyPfpMilestone(ctx, tx, &updated)
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventQuestCompleted,
		EntityID: questID,
		Payload: map[string]any{
			"exp": quest.ExpReward, "hp": quest.HPReward,
			"level_before": profile.Level, "level_after": newLevel,
		},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	result := &ApplyResult{Profile: &updated, Category: category, LeveledUp: newLevel > profile.Level}
	s.evaluateBadges(ctx, userID, result)

	metrics.EventsApplied.WithLabelValues(string(domain.EventQuestCompleted)).Inc()
	if result.LeveledUp {
		metrics.LevelUps.Inc()
	}

	log.Info(LogMsgQuestCompleted, "userID", userID, "questID", questID,
		"level", newLevel, "exp", newExp, "hp", newHP)
	return result, nil
}

// UncompleteQuest reopens a completed quest. Only the completed flag and
// timestamp reset; EXP and HP already granted stay on the ledger, and the
// streak is left alone. The engine does not rewrite history for a mis-click.
func (s *service) UncompleteQuest(ctx context.Context, userID, questID string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUncompleteQuestCalled, "userID", userID, "questID", questID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	quest, err := s.repo.GetQuest(ctx, userID, questID)
	if err != nil {
		return nil, err
	}
	if !quest.Completed {
		metrics.EventsRejected.WithLabelValues(string(domain.EventQuestUncompleted)).Inc()
		return nil, domain.ErrNotCompleted
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipped, err := tx.MarkQuestUncompleted(ctx, userID, questID)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, domain.ErrNotCompleted
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventQuestUncompleted,
		EntityID: questID,
		Payload:  map[string]any{"rewards_kept": true},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.EventsApplied.WithLabelValues(string(domain.EventQuestUncompleted)).Inc()

	log.Info(LogMsgQuestUncompleted, "userID", userID, "questID", questID)
	return &ApplyResult{Profile: profile}, nil
}

// CompleteBattle credits the battle's gold payout. Battles move gold only;
// EXP, HP, and category tracks are untouched.
func (s *service) CompleteBattle(ctx context.Context, userID, battleID string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCompleteBattleCalled, "userID", userID, "battleID", battleID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	battle, err := s.repo.GetBattle(ctx, userID, battleID)
	if err != nil {
		return nil, err
	}
	if battle.Completed {
		metrics.EventsRejected.WithLabelValues(string(domain.EventBattleCompleted)).Inc()
		return nil, domain.ErrAlreadyCompleted
	}

	now := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipped, err := tx.MarkBattleCompleted(ctx, userID, battleID, now)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, domain.ErrAlreadyCompleted
	}

	if err := tx.AddGoldEarned(ctx, userID, battle.Gold); err != nil {
		return nil, err
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventBattleCompleted,
		EntityID: battleID,
		Payload:  map[string]any{"gold": battle.Gold},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	updated := *profile
	updated.GoldEarned += battle.Gold

	result := &ApplyResult{Profile: &updated}
	s.evaluateBadges(ctx, userID, result)

	metrics.EventsApplied.WithLabelValues(string(domain.EventBattleCompleted)).Inc()
	metrics.GoldEarned.Add(float64(battle.Gold))

	log.Info(LogMsgBattleCompleted, "userID", userID, "battleID", battleID, "gold", battle.Gold)
	return result, nil
}

// UncompleteBattle reopens a completed battle. The gold payout stays;
// gold_earned only ever grows.
func (s *service) UncompleteBattle(ctx context.Context, userID, battleID string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUncompleteBattleCalled, "userID", userID, "battleID", battleID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	battle, err := s.repo.GetBattle(ctx, userID, battleID)
	if err != nil {
		return nil, err
	}
	if !battle.Completed {
		metrics.EventsRejected.WithLabelValues(string(domain.EventBattleUncompleted)).Inc()
		return nil, domain.ErrNotCompleted
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipped, err := tx.MarkBattleUncompleted(ctx, userID, battleID)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, domain.ErrNotCompleted
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventBattleUncompleted,
		EntityID: battleID,
		Payload:  map[string]any{"rewards_kept": true},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.EventsApplied.WithLabelValues(string(domain.EventBattleUncompleted)).Inc()

	log.Info(LogMsgBattleUncompleted, "userID", userID, "battleID", battleID)
	return &ApplyResult{Profile: profile}, nil
}

// CompleteGoal applies a goal completion: EXP to the profile and to the
// goal's category track. Goals never move HP or gold.
func (s *service) CompleteGoal(ctx context.Context, userID, goalID string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCompleteGoalCalled, "userID", userID, "goalID", goalID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	goal, err := s.repo.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal.Completed {
		metrics.EventsRejected.WithLabelValues(string(domain.EventGoalCompleted)).Inc()
		return nil, domain.ErrAlreadyCompleted
	}

	now := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipped, err := tx.MarkGoalCompleted(ctx, userID, goalID, now)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, domain.ErrAlreadyCompleted
	}

	newLevel, newExp := leveling.Advance(profile.Level, profile.Exp, goal.ExpReward, leveling.ProfileDivisor)
	if err := tx.UpdateProfileProgress(ctx, userID, newLevel, newExp, profile.HP); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateProgressFailed, err)
	}

	category, err := s.advanceCategory(ctx, tx, userID, goal.CategoryID, goal.ExpReward)
	if err != nil {
		return nil, err
	}

	updated := *profile
	updated.Level, updated.Exp = newLevel, newExp

	if newLevel != profile.Level {
		s.applyPfpMilestone(ctx, tx, &updated)
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventGoalCompleted,
		EntityID: goalID,
		Payload: map[string]any{
			"exp": goal.ExpReward, "category_id": goal.CategoryID,
			"level_before": profile.Level, "level_after": newLevel,
		},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	result := &ApplyResult{Profile: &updated, Category: category, LeveledUp: newLevel > profile.Level}
	s.evaluateBadges(ctx, userID, result)

	metrics.EventsApplied.WithLabelValues(string(domain.EventGoalCompleted)).Inc()
	if result.LeveledUp {
		metrics.LevelUps.Inc()
	}

	log.Info(LogMsgGoalCompleted, "userID", userID, "goalID", goalID, "level", newLevel, "exp", newExp)
	return result, nil
}

// UncompleteGoal reopens a completed goal. Same rule as quests: the EXP
// already granted stays, on the profile and on the category track.
func (s *service) UncompleteGoal(ctx context.Context, userID, goalID string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUncompleteGoalCalled, "userID", userID, "goalID", goalID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	goal, err := s.repo.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if !goal.Completed {
		metrics.EventsRejected.WithLabelValues(string(domain.EventGoalUncompleted)).Inc()
		return nil, domain.ErrNotCompleted
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	flipped, err := tx.MarkGoalUncompleted(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, domain.ErrNotCompleted
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventGoalUncompleted,
		EntityID: goalID,
		Payload:  map[string]any{"category_id": goal.CategoryID, "rewards_kept": true},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.EventsApplied.WithLabelValues(string(domain.EventGoalUncompleted)).Inc()

	log.Info(LogMsgGoalUncompleted, "userID", userID, "goalID", goalID)
	return &ApplyResult{Profile: profile}, nil
}

// advanceCategory pushes EXP through the category track inside the
// transaction and returns the updated record.
func (s *service) advanceCategory(ctx context.Context, tx repository.HunterTx, userID, categoryID string, delta int) (*domain.StatusCategory, error) {
	category, err := tx.GetCategoryForUpdate(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	level, exp := leveling.Advance(category.Level, category.Exp, delta, leveling.CategoryDivisor)
	if err := tx.UpdateCategoryProgress(ctx, userID, categoryID, level, exp); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateCategoryFailed, err)
	}

	category.Level, category.Exp = level, exp
	return category, nil
}

// tickStreak runs the once-per-day streak update against the post-event
// profile state and persists it when anything changed.
func (s *service) tickStreak(ctx context.Context, tx repository.HunterTx, profile *domain.HunterProfile, now time.Time) error {
	update := streak.Tick(profile, now)
	if !update.Changed {
		return nil
	}

	err := tx.UpdateStreak(ctx, profile.UserID, update.Streak, update.ProgressPercentage,
		update.LastActiveDate, update.ExpHistory)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateStreakFailed, err)
	}

	profile.Streak = update.Streak
	profile.ProgressPercentage = update.ProgressPercentage
	profile.LastActiveDate = update.LastActiveDate
	profile.ExpHistory = update.ExpHistory

	metrics.StreakTicks.Inc()
	logger.FromContext(ctx).Info(LogMsgStreakTicked, "userID", profile.UserID,
		"streak", update.Streak, "progress", update.ProgressPercentage)
	return nil
}

// applyPfpMilestone swaps the profile picture to the highest milestone at or
// below the new level. A lookup failure skips the swap rather than failing
// the completion.
func (s *service) applyPfpMilestone(ctx context.Context, tx repository.HunterTx, profile *domain.HunterProfile) {
	log := logger.FromContext(ctx)

	milestones, err := s.repo.ListPfpMilestones(ctx, profile.UserID)
	if err != nil {
		log.Warn(LogMsgMilestoneSkipped, "userID", profile.UserID, "error", err)
		return
	}

	var url string
	for _, m := range milestones {
		if m.LevelThreshold <= profile.Level {
			url = m.PfpURL
		}
	}
	if url == "" || (profile.CurrentPfpURL != nil && *profile.CurrentPfpURL == url) {
		return
	}

	if err := tx.SetCurrentPfp(ctx, profile.UserID, url); err != nil {
		log.Warn(LogMsgMilestoneSkipped, "userID", profile.UserID, "error", err)
		return
	}

	profile.CurrentPfpURL = &url
	log.Info(LogMsgPfpMilestoneHit, "userID", profile.UserID, "level", profile.Level, "url", url)
}

// evaluateBadges runs the badge evaluator after a committed event. Badge
// awards are best-effort; a failure never unwinds the event.
func (s *service) evaluateBadges(ctx context.Context, userID string, result *ApplyResult) {
	if s.badges == nil {
		return
	}

	newBadges, err := s.badges.Evaluate(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadgeEvalFailed, "userID", userID, "error", err)
		return
	}
	result.NewBadges = newBadges
}
