package domain

import "time"

// EventType identifies an applied engine event in the audit log.
type EventType string

const (
	EventQuestCompleted    EventType = "quest.completed"
	EventQuestUncompleted  EventType = "quest.uncompleted"
	EventQuestFailed       EventType = "quest.failed"
	EventBattleCompleted   EventType = "battle.completed"
	EventBattleUncompleted EventType = "battle.uncompleted"
	EventGoalCompleted     EventType = "goal.completed"
	EventGoalUncompleted   EventType = "goal.uncompleted"
	EventItemPurchased     EventType = "item.purchased"
	EventRewardRedeemed    EventType = "item.redeemed"
	EventBadgeAwarded      EventType = "badge.awarded"
)

// HunterEvent is one committed engine mutation. Rows are written inside the
// same transaction as the mutation they describe, so the log never records
// an event whose effects were rolled back.
type HunterEvent struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Type      EventType      `json:"type"`
	EntityID  string         `json:"entity_id"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
