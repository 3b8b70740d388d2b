package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return u, nil
}

// parseEntityUUID parses an entity ID string, covering quests, items, badges
// and the other row ids.
func parseEntityUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid entity id: %w", err)
	}
	return u, nil
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func timestampToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func ptrToTimestamp(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// dateToKey converts a nullable date column to the exp_history key format.
func dateToKey(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// keyToDate converts an exp_history key back to a date column value.
func keyToDate(key string) (pgtype.Date, error) {
	if key == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}
