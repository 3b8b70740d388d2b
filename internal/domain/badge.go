package domain

import "time"

// CriteriaType names the metric a badge threshold is checked against.
// Modeled as a closed set rather than a free-form field/value pair.
type CriteriaType string

const (
	CriteriaLevel   CriteriaType = "level"   // profile level
	CriteriaExp     CriteriaType = "exp"     // cumulative exp
	CriteriaGold    CriteriaType = "gold"    // gold_earned - gold_spent
	CriteriaQuests  CriteriaType = "quests"  // completed quest count
	CriteriaBattles CriteriaType = "battles" // completed battle count
)

// Valid reports whether t is a known criteria type.
func (t CriteriaType) Valid() bool {
	switch t {
	case CriteriaLevel, CriteriaExp, CriteriaGold, CriteriaQuests, CriteriaBattles:
		return true
	}
	return false
}

// BadgeCriteria is the automatic-award rule: metric >= Value.
type BadgeCriteria struct {
	Type  CriteriaType `json:"type"`
	Value int          `json:"value"`
}

// Badge is earnable recognition. A nil Criteria means the badge can only be
// awarded manually.
type Badge struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Criteria    *BadgeCriteria `json:"criteria,omitempty"`
	ImageURL    *string        `json:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// UserBadge records an earned badge. At most one row per (user, badge);
// earning is idempotent.
type UserBadge struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	BadgeID  string    `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
}
