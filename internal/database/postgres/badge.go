package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// BadgeRepository implements the badge store on PostgreSQL.
type BadgeRepository struct {
	db *pgxpool.Pool
}

// NewBadgeRepository creates a new BadgeRepository
func NewBadgeRepository(db *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{db: db}
}

const badgeColumns = `badge_id, user_id, name, description, criteria, image_url, created_at`

func scanBadge(row pgx.Row) (*domain.Badge, error) {
	var (
		b            domain.Badge
		description  pgtype.Text
		criteriaJSON []byte
		imageURL     pgtype.Text
	)

	err := row.Scan(&b.ID, &b.UserID, &b.Name, &description, &criteriaJSON,
		&imageURL, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	b.Description = description.String
	if len(criteriaJSON) > 0 {
		var criteria domain.BadgeCriteria
		if err := json.Unmarshal(criteriaJSON, &criteria); err != nil {
			return nil, fmt.Errorf("failed to decode badge criteria: %w", err)
		}
		b.Criteria = &criteria
	}
	b.ImageURL = textToPtr(imageURL)
	return &b, nil
}

func criteriaToJSON(criteria *domain.BadgeCriteria) ([]byte, error) {
	if criteria == nil {
		return nil, nil
	}
	data, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to encode badge criteria: %w", err)
	}
	return data, nil
}

// GetBadge returns a single badge scoped to its owner.
func (r *BadgeRepository) GetBadge(ctx context.Context, userID, badgeID string) (*domain.Badge, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	badgeUUID, err := parseEntityUUID(badgeID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+badgeColumns+` FROM badges WHERE badge_id = $1 AND user_id = $2`,
		badgeUUID, userUUID)

	badge, err := scanBadge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	return badge, nil
}

// ListBadges returns the user's badge definitions.
func (r *BadgeRepository) ListBadges(ctx context.Context, userID string) ([]domain.Badge, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+badgeColumns+` FROM badges WHERE user_id = $1 ORDER BY created_at`,
		userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer rows.Close()

	var badges []domain.Badge
	for rows.Next() {
		badge, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, *badge)
	}
	return badges, rows.Err()
}

// CreateBadge inserts a badge definition.
func (r *BadgeRepository) CreateBadge(ctx context.Context, badge *domain.Badge) (*domain.Badge, error) {
	userUUID, err := parseUserUUID(badge.UserID)
	if err != nil {
		return nil, err
	}
	criteriaJSON, err := criteriaToJSON(badge.Criteria)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO badges (user_id, name, description, criteria, image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+badgeColumns,
		userUUID, badge.Name, badge.Description, criteriaJSON, ptrToText(badge.ImageURL))

	created, err := scanBadge(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create badge: %w", err)
	}
	return created, nil
}

// UpdateBadge applies a partial edit.
func (r *BadgeRepository) UpdateBadge(ctx context.Context, userID, badgeID string, update domain.BadgeUpdate) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	badgeUUID, err := parseEntityUUID(badgeID)
	if err != nil {
		return err
	}
	criteriaJSON, err := criteriaToJSON(update.Criteria)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE badges
		 SET name        = COALESCE($3, name),
		     description = COALESCE($4, description),
		     criteria    = CASE WHEN $6 THEN NULL ELSE COALESCE($5, criteria) END,
		     image_url   = COALESCE($7, image_url)
		 WHERE badge_id = $1 AND user_id = $2`,
		badgeUUID, userUUID, ptrToText(update.Name), ptrToText(update.Description),
		criteriaJSON, update.ClearCriteria, ptrToText(update.ImageURL))
	if err != nil {
		return fmt.Errorf("failed to update badge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteBadge removes a badge definition and, through the foreign key, its
// earned rows.
func (r *BadgeRepository) DeleteBadge(ctx context.Context, userID, badgeID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	badgeUUID, err := parseEntityUUID(badgeID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM badges WHERE badge_id = $1 AND user_id = $2`, badgeUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete badge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListUserBadges returns the user's earned badges, oldest first.
func (r *BadgeRepository) ListUserBadges(ctx context.Context, userID string) ([]domain.UserBadge, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_badge_id, user_id, badge_id, earned_at
		 FROM user_badges WHERE user_id = $1 ORDER BY earned_at`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user badges: %w", err)
	}
	defer rows.Close()

	var earned []domain.UserBadge
	for rows.Next() {
		var ub domain.UserBadge
		if err := rows.Scan(&ub.ID, &ub.UserID, &ub.BadgeID, &ub.EarnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user badge: %w", err)
		}
		earned = append(earned, ub)
	}
	return earned, rows.Err()
}

// AwardBadge records an earned badge. The unique (user_id, badge_id) pair
// plus ON CONFLICT DO NOTHING makes repeat awards a no-op rather than an
// error, reported through the bool result.
func (r *BadgeRepository) AwardBadge(ctx context.Context, userID, badgeID string) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	badgeUUID, err := parseEntityUUID(badgeID)
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO user_badges (user_id, badge_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, badge_id) DO NOTHING`,
		userUUID, badgeUUID)
	if err != nil {
		return false, fmt.Errorf("failed to award badge: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountCompletedQuests returns the completed quest total for badge criteria.
func (r *BadgeRepository) CountCompletedQuests(ctx context.Context, userID string) (int, error) {
	return r.countCompleted(ctx, userID, `SELECT COUNT(*) FROM quests WHERE user_id = $1 AND completed`)
}

// CountCompletedBattles returns the completed battle total for badge criteria.
func (r *BadgeRepository) CountCompletedBattles(ctx context.Context, userID string) (int, error) {
	return r.countCompleted(ctx, userID, `SELECT COUNT(*) FROM boss_battles WHERE user_id = $1 AND completed`)
}

// RecordEvent appends a badge award to the audit log.
func (r *BadgeRepository) RecordEvent(ctx context.Context, event *domain.HunterEvent) error {
	return recordEvent(ctx, r.db, event)
}

func (r *BadgeRepository) countCompleted(ctx context.Context, userID, query string) (int, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, query, userUUID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}
	return count, nil
}
