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

const questColumns = `quest_id, user_id, title, description, difficulty, quest_type,
	exp_reward, hp_reward, completed, completed_at, status_category_id, created_at`

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var (
		q           domain.Quest
		description pgtype.Text
		completedAt pgtype.Timestamptz
		categoryID  pgtype.Text
	)

	err := row.Scan(&q.ID, &q.UserID, &q.Title, &description, &q.Difficulty,
		&q.QuestType, &q.ExpReward, &q.HPReward, &q.Completed, &completedAt,
		&categoryID, &q.CreatedAt)
	if err != nil {
		return nil, err
	}

	q.Description = description.String
	q.CompletedAt = timestampToPtr(completedAt)
	q.StatusCategoryID = textToPtr(categoryID)
	return &q, nil
}

// GetQuest returns a single quest scoped to its owner.
func (r *HunterRepository) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	questUUID, err := parseEntityUUID(questID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+questColumns+` FROM quests WHERE quest_id = $1 AND user_id = $2`,
		questUUID, userUUID)

	quest, err := scanQuest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	return quest, nil
}

// ListQuests returns the user's quests, newest first.
func (r *HunterRepository) ListQuests(ctx context.Context, userID string) ([]domain.Quest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+questColumns+` FROM quests WHERE user_id = $1 ORDER BY created_at DESC`,
		userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		quest, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest: %w", err)
		}
		quests = append(quests, *quest)
	}
	return quests, rows.Err()
}

// CreateQuest inserts a quest with its resolved rewards frozen on the row.
func (r *HunterRepository) CreateQuest(ctx context.Context, quest *domain.Quest) (*domain.Quest, error) {
	userUUID, err := parseUserUUID(quest.UserID)
	if err != nil {
		return nil, err
	}

	var categoryID pgtype.UUID
	if quest.StatusCategoryID != nil {
		catUUID, err := parseEntityUUID(*quest.StatusCategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = pgtype.UUID{Bytes: catUUID, Valid: true}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO quests (user_id, title, description, difficulty, quest_type,
		                     exp_reward, hp_reward, status_category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+questColumns,
		userUUID, quest.Title, quest.Description, string(quest.Difficulty),
		quest.QuestType, quest.ExpReward, quest.HPReward, categoryID)

	created, err := scanQuest(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create quest: %w", err)
	}
	return created, nil
}

// UpdateQuest applies a partial edit. The completed flag is not reachable
// here; it only moves through the transactional mark operations.
func (r *HunterRepository) UpdateQuest(ctx context.Context, userID, questID string, update domain.QuestUpdate) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	questUUID, err := parseEntityUUID(questID)
	if err != nil {
		return err
	}

	var difficulty pgtype.Text
	if update.Difficulty != nil {
		difficulty = pgtype.Text{String: string(*update.Difficulty), Valid: true}
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE quests
		 SET title       = COALESCE($3, title),
		     description = COALESCE($4, description),
		     difficulty  = COALESCE($5, difficulty),
		     quest_type  = COALESCE($6, quest_type),
		     exp_reward  = COALESCE($7, exp_reward),
		     hp_reward   = COALESCE($8, hp_reward),
		     status_category_id = CASE WHEN $10 THEN NULL ELSE COALESCE($9, status_category_id) END
		 WHERE quest_id = $1 AND user_id = $2`,
		questUUID, userUUID, ptrToText(update.Title), ptrToText(update.Description),
		difficulty, ptrToText(update.QuestType), update.ExpReward, update.HPReward,
		ptrToText(update.StatusCategoryID), update.ClearCategory)
	if err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteQuest removes a quest.
func (r *HunterRepository) DeleteQuest(ctx context.Context, userID, questID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	questUUID, err := parseEntityUUID(questID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM quests WHERE quest_id = $1 AND user_id = $2`, questUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResetQuestsByType reverts all completed quests of one type across every
// user. Plain bulk UPDATE, no per-row locking; rewards stay granted.
func (r *HunterRepository) ResetQuestsByType(ctx context.Context, questType string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE quests SET completed = FALSE, completed_at = NULL
		 WHERE quest_type = $1 AND completed = TRUE`,
		questType)
	if err != nil {
		return 0, fmt.Errorf("failed to reset quests: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkQuestCompleted flips completed false->true. The completed = false
// predicate makes the flip a compare-and-set: a concurrent completion that
// got there first leaves zero rows affected.
func (t *HunterTx) MarkQuestCompleted(ctx context.Context, userID, questID string, at time.Time) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	questUUID, err := parseEntityUUID(questID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE quests SET completed = TRUE, completed_at = $3
		 WHERE quest_id = $1 AND user_id = $2 AND completed = FALSE`,
		questUUID, userUUID, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark quest completed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkQuestUncompleted flips completed true->false.
func (t *HunterTx) MarkQuestUncompleted(ctx context.Context, userID, questID string) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	questUUID, err := parseEntityUUID(questID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE quests SET completed = FALSE, completed_at = NULL
		 WHERE quest_id = $1 AND user_id = $2 AND completed = TRUE`,
		questUUID, userUUID)
	if err != nil {
		return false, fmt.Errorf("failed to mark quest uncompleted: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
