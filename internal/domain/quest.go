package domain

import (
	"strings"
	"time"
)

// Difficulty is the S/A/B/C/D rank that drives default reward and penalty
// magnitudes.
type Difficulty string

const (
	DifficultyS Difficulty = "S"
	DifficultyA Difficulty = "A"
	DifficultyB Difficulty = "B"
	DifficultyC Difficulty = "C"
	DifficultyD Difficulty = "D"
)

// Valid reports whether d is one of the known ranks.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyS, DifficultyA, DifficultyB, DifficultyC, DifficultyD:
		return true
	}
	return false
}

// Quest types with penalty semantics. quest_type is free-form user input;
// only daily and weekly quests can be failed for a penalty.
const (
	QuestTypeDaily   = "daily"
	QuestTypeWeekly  = "weekly"
	QuestTypeMonthly = "monthly"
)

// Quest is a completable self-improvement task. Rewards are resolved at
// creation time (difficulty defaults, possibly overridden) and frozen on the
// row.
type Quest struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Difficulty       Difficulty `json:"difficulty"`
	QuestType        string     `json:"quest_type"`
	ExpReward        int        `json:"exp_reward"`
	HPReward         int        `json:"hp_reward"`
	Completed        bool       `json:"completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	StatusCategoryID *string    `json:"status_category_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PenaltyApplicable reports whether failing this quest carries a penalty.
func (q *Quest) PenaltyApplicable() bool {
	switch strings.ToLower(q.QuestType) {
	case QuestTypeDaily, QuestTypeWeekly:
		return true
	}
	return false
}

// IsDaily reports whether completing this quest ticks the streak tracker.
func (q *Quest) IsDaily() bool {
	return strings.ToLower(q.QuestType) == QuestTypeDaily
}

// BossBattle is a major challenge that pays out gold instead of EXP/HP.
type BossBattle struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Name             string     `json:"name"`
	Difficulty       Difficulty `json:"difficulty"`
	Gold             int        `json:"gold"`
	BattleDate       *time.Time `json:"battle_date,omitempty"`
	Completed        bool       `json:"completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	StatusCategoryID *string    `json:"status_category_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// DefaultGoalExpReward is the reward applied to goals created without an
// explicit value.
const DefaultGoalExpReward = 100

// Goal is an EXP-only objective that always belongs to a category.
type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CategoryID  string     `json:"category_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ExpReward   int        `json:"exp_reward"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
