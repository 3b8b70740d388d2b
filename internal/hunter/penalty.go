package hunter

import (
	"context"
	"fmt"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/leveling"
	"github.com/dhairyapractice/Solo-leveling/internal/logger"
	"github.com/dhairyapractice/Solo-leveling/internal/metrics"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
	"github.com/dhairyapractice/Solo-leveling/internal/reward"
)

// FailQuest applies the rank's EXP penalty without completing the quest.
// Only daily and weekly quests carry a penalty; EXP floors at zero and the
// level never drops.
func (s *service) FailQuest(ctx context.Context, userID, questID string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFailQuestCalled, "userID", userID, "questID", questID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	quest, err := s.repo.GetQuest(ctx, userID, questID)
	if err != nil {
		return nil, err
	}
	if !quest.PenaltyApplicable() {
		metrics.EventsRejected.WithLabelValues(string(domain.EventQuestFailed)).Inc()
		return nil, fmt.Errorf("%w: quest type %q", domain.ErrPenaltyNotApplicable, quest.QuestType)
	}

	penalty, err := reward.Penalty(quest.Difficulty)
	if err != nil {
		return nil, err
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

	newLevel, newExp := leveling.ApplyPenalty(profile.Level, profile.Exp, penalty, leveling.ProfileDivisor)
	if err := tx.UpdateProfileProgress(ctx, userID, newLevel, newExp, profile.HP); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateProgressFailed, err)
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventQuestFailed,
		EntityID: questID,
		Payload:  map[string]any{"penalty": penalty},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	updated := *profile
	updated.Level, updated.Exp = newLevel, newExp

	metrics.EventsApplied.WithLabelValues(string(domain.EventQuestFailed)).Inc()

	log.Info(LogMsgQuestFailed, "userID", userID, "questID", questID,
		"penalty", penalty, "exp", newExp)
	return &ApplyResult{Profile: &updated}, nil
}
