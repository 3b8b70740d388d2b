// Package worker runs the scheduled quest resets: daily quests revert at
// 00:00 UTC, weekly quests at 00:00 UTC on Monday. Resets reopen the quests
// for the new period; rewards already granted stay on the ledger.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/logger"
)

// QuestResetter is the slice of the hunter service the workers need.
type QuestResetter interface {
	ResetQuests(ctx context.Context, questType string) (int64, error)
}

// ResetWorker reverts completed quests of one type on a fixed UTC schedule.
type ResetWorker struct {
	svc       QuestResetter
	questType string
	period    time.Duration
	nextReset func() time.Duration
	timer     *time.Timer
	shutdown  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// NewDailyResetWorker creates the midnight-UTC daily quest reset worker.
func NewDailyResetWorker(svc QuestResetter) *ResetWorker {
	return &ResetWorker{
		svc:       svc,
		questType: domain.QuestTypeDaily,
		period:    24 * time.Hour,
		nextReset: timeUntilNextDailyReset,
		shutdown:  make(chan struct{}),
	}
}

// NewWeeklyResetWorker creates the Monday-midnight-UTC weekly quest reset
// worker.
func NewWeeklyResetWorker(svc QuestResetter) *ResetWorker {
	return &ResetWorker{
		svc:       svc,
		questType: domain.QuestTypeWeekly,
		period:    7 * 24 * time.Hour,
		nextReset: timeUntilNextWeeklyReset,
		shutdown:  make(chan struct{}),
	}
}

// Start schedules the first reset.
func (w *ResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next boundary. Two-stage scheduling:
// far from the boundary the timer only wakes up to reschedule, which keeps a
// long-running process from drifting across clock adjustments.
func (w *ResetWorker) scheduleNext() {
	duration := w.nextReset()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > time.Hour {
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		log.Info(LogMsgResetStandby, "questType", w.questType,
			"next_check_at", time.Now().UTC().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// If the timer fired early (jitter > 10s), reschedule for the
		// remaining time instead of running the reset before the boundary.
		rem := w.nextReset()
		if rem > 10*time.Second && rem < w.period-time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgResetApproach, "questType", w.questType,
		"next_reset_at", time.Now().UTC().Add(duration))
}

// executeReset runs the reset in a tracked goroutine.
func (w *ResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgResetStarting, "questType", w.questType)

		affected, err := w.svc.ResetQuests(ctx, w.questType)
		if err != nil {
			log.Error(LogMsgResetFailed, "questType", w.questType, "error", err)
			return
		}

		log.Info(LogMsgResetCompleted, "questType", w.questType, "affected", affected)
	}()
}

// Shutdown cancels the pending timer and waits for any in-flight reset.
func (w *ResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Quest reset worker shutdown complete", "questType", w.questType)
		return nil
	case <-ctx.Done():
		log.Warn("Quest reset worker shutdown timeout", "questType", w.questType)
		return ctx.Err()
	}
}

// timeUntilNextDailyReset is the duration until the next 00:00 UTC.
func timeUntilNextDailyReset() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// timeUntilNextWeeklyReset is the duration until the next Monday 00:00 UTC.
func timeUntilNextWeeklyReset() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for next.Weekday() != time.Monday || !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
