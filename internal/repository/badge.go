package repository

import (
	"context"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// Badge is the record-store contract for badge definitions and awards.
type Badge interface {
	GetBadge(ctx context.Context, userID, badgeID string) (*domain.Badge, error)
	ListBadges(ctx context.Context, userID string) ([]domain.Badge, error)
	CreateBadge(ctx context.Context, badge *domain.Badge) (*domain.Badge, error)
	UpdateBadge(ctx context.Context, userID, badgeID string, update domain.BadgeUpdate) error
	DeleteBadge(ctx context.Context, userID, badgeID string) error

	ListUserBadges(ctx context.Context, userID string) ([]domain.UserBadge, error)

	// AwardBadge inserts a UserBadge row, unique on (user, badge). Returns
	// false when the badge was already earned; never an error for repeats.
	AwardBadge(ctx context.Context, userID, badgeID string) (bool, error)

	CountCompletedQuests(ctx context.Context, userID string) (int, error)
	CountCompletedBattles(ctx context.Context, userID string) (int, error)

	RecordEvent(ctx context.Context, event *domain.HunterEvent) error
}
