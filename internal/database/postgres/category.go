package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

const categoryColumns = `category_id, user_id, name, level, exp, color, icon, created_at, updated_at`

func scanCategory(row pgx.Row) (*domain.StatusCategory, error) {
	var (
		c           domain.StatusCategory
		color, icon pgtype.Text
	)

	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Level, &c.Exp,
		&color, &icon, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.Color = textToPtr(color)
	c.Icon = textToPtr(icon)
	return &c, nil
}

// GetCategory returns a single status category scoped to its owner.
func (r *HunterRepository) GetCategory(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	categoryUUID, err := parseEntityUUID(categoryID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM status_categories WHERE category_id = $1 AND user_id = $2`,
		categoryUUID, userUUID)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// ListCategories returns the user's categories by name.
func (r *HunterRepository) ListCategories(ctx context.Context, userID string) ([]domain.StatusCategory, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM status_categories WHERE user_id = $1 ORDER BY name`,
		userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.StatusCategory
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a status category at level 1.
func (r *HunterRepository) CreateCategory(ctx context.Context, category *domain.StatusCategory) (*domain.StatusCategory, error) {
	userUUID, err := parseUserUUID(category.UserID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO status_categories (user_id, name, color, icon)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+categoryColumns,
		userUUID, category.Name, ptrToText(category.Color), ptrToText(category.Icon))

	created, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// DeleteCategory removes a category. Quests referencing it fall back to NULL
// through the foreign key; goals cascade.
func (r *HunterRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	categoryUUID, err := parseEntityUUID(categoryID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM status_categories WHERE category_id = $1 AND user_id = $2`,
		categoryUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetCategoryForUpdate row-locks and returns the category.
func (t *HunterTx) GetCategoryForUpdate(ctx context.Context, userID, categoryID string) (*domain.StatusCategory, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	categoryUUID, err := parseEntityUUID(categoryID)
	if err != nil {
		return nil, err
	}

	row := t.tx.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM status_categories
		 WHERE category_id = $1 AND user_id = $2 FOR UPDATE`,
		categoryUUID, userUUID)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock category: %w", err)
	}
	return category, nil
}

// UpdateCategoryProgress writes the category leveling result back.
func (t *HunterTx) UpdateCategoryProgress(ctx context.Context, userID, categoryID string, level, exp int) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	categoryUUID, err := parseEntityUUID(categoryID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE status_categories SET level = $3, exp = $4, updated_at = NOW()
		 WHERE category_id = $1 AND user_id = $2`,
		categoryUUID, userUUID, level, exp)
	if err != nil {
		return fmt.Errorf("failed to update category progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
