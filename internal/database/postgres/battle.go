package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

const battleColumns = `battle_id, user_id, name, difficulty, gold, battle_date,
	completed, completed_at, status_category_id, created_at`

func scanBattle(row pgx.Row) (*domain.BossBattle, error) {
	var (
		b           domain.BossBattle
		battleDate  pgtype.Timestamptz
		completedAt pgtype.Timestamptz
		categoryID  pgtype.Text
	)

	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Difficulty, &b.Gold,
		&battleDate, &b.Completed, &completedAt, &categoryID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	b.BattleDate = timestampToPtr(battleDate)
	b.CompletedAt = timestampToPtr(completedAt)
	b.StatusCategoryID = textToPtr(categoryID)
	return &b, nil
}

// GetBattle returns a single boss battle scoped to its owner.
func (r *HunterRepository) GetBattle(ctx context.Context, userID, battleID string) (*domain.BossBattle, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	battleUUID, err := parseEntityUUID(battleID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+battleColumns+` FROM boss_battles WHERE battle_id = $1 AND user_id = $2`,
		battleUUID, userUUID)

	battle, err := scanBattle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get battle: %w", err)
	}
	return battle, nil
}

// ListBattles returns the user's boss battles, newest first.
func (r *HunterRepository) ListBattles(ctx context.Context, userID string) ([]domain.BossBattle, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+battleColumns+` FROM boss_battles WHERE user_id = $1 ORDER BY created_at DESC`,
		userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list battles: %w", err)
	}
	defer rows.Close()

	var battles []domain.BossBattle
	for rows.Next() {
		battle, err := scanBattle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan battle: %w", err)
		}
		battles = append(battles, *battle)
	}
	return battles, rows.Err()
}

// CreateBattle inserts a boss battle with its gold payout frozen on the row.
func (r *HunterRepository) CreateBattle(ctx context.Context, battle *domain.BossBattle) (*domain.BossBattle, error) {
	userUUID, err := parseUserUUID(battle.UserID)
	if err != nil {
		return nil, err
	}

	var categoryID pgtype.UUID
	if battle.StatusCategoryID != nil {
		catUUID, err := parseEntityUUID(*battle.StatusCategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = pgtype.UUID{Bytes: catUUID, Valid: true}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO boss_battles (user_id, name, difficulty, gold, battle_date, status_category_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+battleColumns,
		userUUID, battle.Name, string(battle.Difficulty), battle.Gold,
		ptrToTimestamp(battle.BattleDate), categoryID)

	created, err := scanBattle(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create battle: %w", err)
	}
	return created, nil
}

// UpdateBattle applies a partial edit.
func (r *HunterRepository) UpdateBattle(ctx context.Context, userID, battleID string, update domain.BattleUpdate) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	battleUUID, err := parseEntityUUID(battleID)
	if err != nil {
		return err
	}

	var difficulty pgtype.Text
	if update.Difficulty != nil {
		difficulty = pgtype.Text{String: string(*update.Difficulty), Valid: true}
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE boss_battles
		 SET name       = COALESCE($3, name),
		     difficulty = COALESCE($4, difficulty),
		     gold       = COALESCE($5, gold),
		     status_category_id = CASE WHEN $7 THEN NULL ELSE COALESCE($6, status_category_id) END
		 WHERE battle_id = $1 AND user_id = $2`,
		battleUUID, userUUID, ptrToText(update.Name), difficulty, update.Gold,
		ptrToText(update.StatusCategoryID), update.ClearCategory)
	if err != nil {
		return fmt.Errorf("failed to update battle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteBattle removes a boss battle.
func (r *HunterRepository) DeleteBattle(ctx context.Context, userID, battleID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	battleUUID, err := parseEntityUUID(battleID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM boss_battles WHERE battle_id = $1 AND user_id = $2`, battleUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete battle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkBattleCompleted flips completed false->true, compare-and-set.
func (t *HunterTx) MarkBattleCompleted(ctx context.Context, userID, battleID string, at time.Time) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	battleUUID, err := parseEntityUUID(battleID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE boss_battles SET completed = TRUE, completed_at = $3
		 WHERE battle_id = $1 AND user_id = $2 AND completed = FALSE`,
		battleUUID, userUUID, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark battle completed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkBattleUncompleted flips completed true->false.
func (t *HunterTx) MarkBattleUncompleted(ctx context.Context, userID, battleID string) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	battleUUID, err := parseEntityUUID(battleID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE boss_battles SET completed = FALSE, completed_at = NULL
		 WHERE battle_id = $1 AND user_id = $2 AND completed = TRUE`,
		battleUUID, userUUID)
	if err != nil {
		return false, fmt.Errorf("failed to mark battle uncompleted: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
