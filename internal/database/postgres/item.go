package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
)

// ShopRepository implements the item store for both economies on PostgreSQL.
type ShopRepository struct {
	db *pgxpool.Pool
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

// ShopTx implements repository.ShopTx
type ShopTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *ShopRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &ShopTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *ShopTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *ShopTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const itemColumns = `item_id, user_id, item_type, name, price, required_level,
	purchased, purchased_at, image_url, created_at`

func scanItem(row pgx.Row) (*domain.ShopItem, error) {
	var (
		i           domain.ShopItem
		purchasedAt pgtype.Timestamptz
		imageURL    pgtype.Text
	)

	err := row.Scan(&i.ID, &i.UserID, &i.ItemType, &i.Name, &i.Price,
		&i.RequiredLevel, &i.Purchased, &purchasedAt, &imageURL, &i.CreatedAt)
	if err != nil {
		return nil, err
	}

	i.PurchasedAt = timestampToPtr(purchasedAt)
	i.ImageURL = textToPtr(imageURL)
	return &i, nil
}

// GetItem returns a single item scoped to its owner.
func (r *ShopRepository) GetItem(ctx context.Context, userID, itemID string) (*domain.ShopItem, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	itemUUID, err := parseEntityUUID(itemID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM shop_items WHERE item_id = $1 AND user_id = $2`,
		itemUUID, userUUID)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ListItems returns the user's items of one type, cheapest first.
func (r *ShopRepository) ListItems(ctx context.Context, userID string, itemType domain.ItemType) ([]domain.ShopItem, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM shop_items
		 WHERE user_id = $1 AND item_type = $2 ORDER BY price, name`,
		userUUID, string(itemType))
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []domain.ShopItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// CreateItem inserts an item into one of the two economies.
func (r *ShopRepository) CreateItem(ctx context.Context, item *domain.ShopItem) (*domain.ShopItem, error) {
	userUUID, err := parseUserUUID(item.UserID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO shop_items (user_id, item_type, name, price, required_level, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+itemColumns,
		userUUID, string(item.ItemType), item.Name, item.Price, item.RequiredLevel,
		ptrToText(item.ImageURL))

	created, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return created, nil
}

// UpdateItem applies a partial edit. The purchased flag is engine-owned.
func (r *ShopRepository) UpdateItem(ctx context.Context, userID, itemID string, update domain.ShopItemUpdate) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	itemUUID, err := parseEntityUUID(itemID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE shop_items
		 SET name           = COALESCE($3, name),
		     price          = COALESCE($4, price),
		     required_level = COALESCE($5, required_level),
		     image_url      = COALESCE($6, image_url)
		 WHERE item_id = $1 AND user_id = $2`,
		itemUUID, userUUID, ptrToText(update.Name), update.Price,
		update.RequiredLevel, ptrToText(update.ImageURL))
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem removes an item.
func (r *ShopRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	itemUUID, err := parseEntityUUID(itemID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM shop_items WHERE item_id = $1 AND user_id = $2`, itemUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetProfileForUpdate row-locks and returns the buyer's profile.
func (t *ShopTx) GetProfileForUpdate(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row := t.tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM hunter_profiles WHERE user_id = $1 FOR UPDATE`, userUUID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to lock profile: %w", err)
	}
	return profile, nil
}

// MarkItemPurchased flips purchased false->true, compare-and-set. Only shop
// items carry the flag; reward items never match the predicate.
func (t *ShopTx) MarkItemPurchased(ctx context.Context, userID, itemID string, at time.Time) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	itemUUID, err := parseEntityUUID(itemID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE shop_items SET purchased = TRUE, purchased_at = $3
		 WHERE item_id = $1 AND user_id = $2 AND item_type = 'shop' AND purchased = FALSE`,
		itemUUID, userUUID, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark item purchased: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SpendGold debits the spent counter only if the current balance covers the
// price. The predicate re-checks affordability against committed state, so a
// stale snapshot read cannot overdraw the balance.
func (t *ShopTx) SpendGold(ctx context.Context, userID string, price int) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE hunter_profiles
		 SET gold_spent = gold_spent + $2, updated_at = NOW()
		 WHERE user_id = $1 AND gold_earned - gold_spent >= $2`,
		userUUID, price)
	if err != nil {
		return false, fmt.Errorf("failed to spend gold: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SpendHP deducts HP only if the current value covers the price.
func (t *ShopTx) SpendHP(ctx context.Context, userID string, price int) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE hunter_profiles
		 SET hp = GREATEST(0, hp - $2), updated_at = NOW()
		 WHERE user_id = $1 AND hp >= $2`,
		userUUID, price)
	if err != nil {
		return false, fmt.Errorf("failed to spend hp: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RecordEvent appends to the audit log inside the transaction.
func (t *ShopTx) RecordEvent(ctx context.Context, event *domain.HunterEvent) error {
	return recordEvent(ctx, t.tx, event)
}
