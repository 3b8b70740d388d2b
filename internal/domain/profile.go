package domain

import "time"

// DateKeyLayout is the format for exp_history keys and last_active_date.
// ISO dates compare correctly as strings, which the streak logic relies on.
const DateKeyLayout = "2006-01-02"

// HP bounds for a hunter profile. HP is clamped, never rejected.
const (
	MinHP = 0
	MaxHP = 100
)

// HunterProfile is the resource ledger for a single user: level, cumulative
// EXP, bounded HP, and the monotonic gold counters. All mutation goes through
// the engine operations; nothing deletes a profile.
type HunterProfile struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	Name               string         `json:"name"`
	Level              int            `json:"level"`
	Exp                int            `json:"exp"`
	HP                 int            `json:"hp"`
	GoldEarned         int            `json:"gold_earned"`
	GoldSpent          int            `json:"gold_spent"`
	Streak             int            `json:"streak"`
	ProgressPercentage float64        `json:"progress_percentage"`
	LastActiveDate     string         `json:"last_active_date,omitempty"` // date key, empty if never active
	ExpHistory         map[string]int `json:"exp_history"`                // date key -> cumulative exp recorded that day
	CurrentPfpURL      *string        `json:"current_pfp_url,omitempty"`
	Pfp1URL            *string        `json:"pfp1_url,omitempty"`
	Pfp2URL            *string        `json:"pfp2_url,omitempty"`
	Pfp3URL            *string        `json:"pfp3_url,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Gold returns the spendable balance. Derived, never materialized.
func (p *HunterProfile) Gold() int {
	return p.GoldEarned - p.GoldSpent
}

// ClampHP bounds an HP value to [MinHP, MaxHP].
func ClampHP(hp int) int {
	if hp < MinHP {
		return MinHP
	}
	if hp > MaxHP {
		return MaxHP
	}
	return hp
}

// StatusCategory is a user-defined life domain with its own level/EXP track.
// Same leveling law as the profile with a smaller divisor.
type StatusCategory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Exp       int       `json:"exp"`
	Color     *string   `json:"color,omitempty"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PfpMilestone swaps the hunter's profile picture when a level threshold is
// reached. The highest satisfied threshold wins.
type PfpMilestone struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	LevelThreshold int       `json:"level_threshold"`
	PfpURL         string    `json:"pfp_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// DateKey formats a timestamp as an exp_history key in the given location's
// local date.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
