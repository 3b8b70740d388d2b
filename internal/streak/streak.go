// Package streak maintains daily-activity history, the consecutive-day
// streak, and the day-over-day progress percentage.
package streak

import (
	"math"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// Update is the mutation produced by a tick. Applied to the profile inside
// the caller's transaction.
type Update struct {
	ProgressPercentage float64
	Streak             int
	LastActiveDate     string
	ExpHistory         map[string]int
	Changed            bool
}

// Tick runs the once-per-day streak update against a profile snapshot.
// Gated by last_active_date: invoking it again on the same day is a no-op.
// No timers are involved; "today" is the wall clock at call time.
func Tick(profile *domain.HunterProfile, now time.Time) Update {
	today := domain.DateKey(now)
	if profile.LastActiveDate == today {
		return Update{Changed: false}
	}

	yesterday := domain.DateKey(now.AddDate(0, 0, -1))

	history := make(map[string]int, len(profile.ExpHistory)+1)
	for k, v := range profile.ExpHistory {
		history[k] = v
	}
	// Today's entry is recorded from the current cumulative exp before the
	// comparison, so the first tick of the day sees today's activity.
	history[today] = profile.Exp

	yesterdayExp := history[yesterday]
	todayExp := history[today]

	progress := 0.0
	if todayExp > 0 {
		if yesterdayExp > 0 {
			progress = math.Round(float64(todayExp-yesterdayExp) / float64(yesterdayExp) * 100)
		} else {
			progress = 100
		}
	}

	streak := profile.Streak
	switch {
	case todayExp > 0 && profile.LastActiveDate == yesterday:
		streak++
	case todayExp > 0:
		streak = 1
	case profile.LastActiveDate != "" && profile.LastActiveDate < yesterday:
		streak = 0
	}

	return Update{
		ProgressPercentage: progress,
		Streak:             streak,
		LastActiveDate:     today,
		ExpHistory:         history,
		Changed:            true,
	}
}
