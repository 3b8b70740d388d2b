package repository

import (
	"context"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// Shop is the record-store contract for the purchase/redemption economy.
type Shop interface {
	GetItem(ctx context.Context, userID, itemID string) (*domain.ShopItem, error)
	ListItems(ctx context.Context, userID string, itemType domain.ItemType) ([]domain.ShopItem, error)
	CreateItem(ctx context.Context, item *domain.ShopItem) (*domain.ShopItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, update domain.ShopItemUpdate) error
	DeleteItem(ctx context.Context, userID, itemID string) error

	BeginTx(ctx context.Context) (ShopTx, error)
}

// ShopTx validates spend against the latest committed ledger state at commit
// time. SpendGold and SpendHP are conditional UPDATEs that re-check
// affordability inside the transaction; false means the balance check failed
// against current state, regardless of what an earlier snapshot read said.
type ShopTx interface {
	Tx

	GetProfileForUpdate(ctx context.Context, userID string) (*domain.HunterProfile, error)

	// MarkItemPurchased flips purchased false->true. False result: the item
	// was already purchased by the time the transaction reached it.
	MarkItemPurchased(ctx context.Context, userID, itemID string, at time.Time) (bool, error)

	SpendGold(ctx context.Context, userID string, price int) (bool, error)
	SpendHP(ctx context.Context, userID string, price int) (bool, error)

	RecordEvent(ctx context.Context, event *domain.HunterEvent) error
}
