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

const goalColumns = `goal_id, user_id, category_id, title, description, exp_reward,
	completed, completed_at, created_at`

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		g           domain.Goal
		description pgtype.Text
		completedAt pgtype.Timestamptz
	)

	err := row.Scan(&g.ID, &g.UserID, &g.CategoryID, &g.Title, &description,
		&g.ExpReward, &g.Completed, &completedAt, &g.CreatedAt)
	if err != nil {
		return nil, err
	}

	g.Description = description.String
	g.CompletedAt = timestampToPtr(completedAt)
	return &g, nil
}

// GetGoal returns a single goal scoped to its owner.
func (r *HunterRepository) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	goalUUID, err := parseEntityUUID(goalID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE goal_id = $1 AND user_id = $2`,
		goalUUID, userUUID)

	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// ListGoals returns the user's goals, newest first.
func (r *HunterRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`,
		userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

// CreateGoal inserts a goal. The category is mandatory at this layer too;
// the foreign key rejects strays.
func (r *HunterRepository) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	userUUID, err := parseUserUUID(goal.UserID)
	if err != nil {
		return nil, err
	}
	categoryUUID, err := parseEntityUUID(goal.CategoryID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO goals (user_id, category_id, title, description, exp_reward)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+goalColumns,
		userUUID, categoryUUID, goal.Title, goal.Description, goal.ExpReward)

	created, err := scanGoal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return created, nil
}

// UpdateGoal applies a partial edit.
func (r *HunterRepository) UpdateGoal(ctx context.Context, userID, goalID string, update domain.GoalUpdate) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	goalUUID, err := parseEntityUUID(goalID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE goals
		 SET title       = COALESCE($3, title),
		     description = COALESCE($4, description),
		     exp_reward  = COALESCE($5, exp_reward)
		 WHERE goal_id = $1 AND user_id = $2`,
		goalUUID, userUUID, ptrToText(update.Title), ptrToText(update.Description),
		update.ExpReward)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal.
func (r *HunterRepository) DeleteGoal(ctx context.Context, userID, goalID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	goalUUID, err := parseEntityUUID(goalID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM goals WHERE goal_id = $1 AND user_id = $2`, goalUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkGoalCompleted flips completed false->true, compare-and-set.
func (t *HunterTx) MarkGoalCompleted(ctx context.Context, userID, goalID string, at time.Time) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	goalUUID, err := parseEntityUUID(goalID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE goals SET completed = TRUE, completed_at = $3
		 WHERE goal_id = $1 AND user_id = $2 AND completed = FALSE`,
		goalUUID, userUUID, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark goal completed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkGoalUncompleted flips completed true->false.
func (t *HunterTx) MarkGoalUncompleted(ctx context.Context, userID, goalID string) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	goalUUID, err := parseEntityUUID(goalID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE goals SET completed = FALSE, completed_at = NULL
		 WHERE goal_id = $1 AND user_id = $2 AND completed = TRUE`,
		goalUUID, userUUID)
	if err != nil {
		return false, fmt.Errorf("failed to mark goal uncompleted: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
