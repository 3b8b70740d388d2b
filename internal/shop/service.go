// Package shop is the spend side of the economy: one-time gold purchases
// from the shop and repeatable HP redemptions of reward items. Every spend
// is re-validated against committed balances inside its transaction.
package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/concurrency"
	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/logger"
	"github.com/dhairyapractice/Solo-leveling/internal/metrics"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
)

type Service interface {
	// Item management
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.ShopItem, error)
	GetItem(ctx context.Context, userID, itemID string) (*domain.ShopItem, error)
	ListItems(ctx context.Context, userID string, itemType domain.ItemType) ([]domain.ShopItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, update domain.ShopItemUpdate) error
	DeleteItem(ctx context.Context, userID, itemID string) error

	// Economy gates
	PurchaseItem(ctx context.Context, userID, itemID string) (*SpendResult, error)
	RedeemReward(ctx context.Context, userID, itemID string) (*SpendResult, error)
}

// CreateItemInput carries item creation fields for either economy.
type CreateItemInput struct {
	UserID        string
	ItemType      domain.ItemType
	Name          string
	Price         int
	RequiredLevel int
	ImageURL      *string
}

// SpendResult reports the ledger after a successful spend.
type SpendResult struct {
	Item    *domain.ShopItem      `json:"item"`
	Profile *domain.HunterProfile `json:"profile"`
}

type service struct {
	repo  repository.Shop
	locks *concurrency.LockManager
	now   func() time.Time
}

// NewService creates the economy service.
func NewService(repo repository.Shop, locks *concurrency.LockManager) Service {
	return &service{repo: repo, locks: locks, now: time.Now}
}

func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.ShopItem, error) {
	if !input.ItemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, input.ItemType)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrInvalidInput)
	}
	if input.RequiredLevel < 0 {
		return nil, fmt.Errorf("%w: required level must be non-negative", domain.ErrInvalidInput)
	}

	item := &domain.ShopItem{
		UserID:        input.UserID,
		ItemType:      input.ItemType,
		Name:          input.Name,
		Price:         input.Price,
		RequiredLevel: input.RequiredLevel,
		ImageURL:      input.ImageURL,
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *service) GetItem(ctx context.Context, userID, itemID string) (*domain.ShopItem, error) {
	return s.repo.GetItem(ctx, userID, itemID)
}

func (s *service) ListItems(ctx context.Context, userID string, itemType domain.ItemType) ([]domain.ShopItem, error) {
	if !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, itemType)
	}
	return s.repo.ListItems(ctx, userID, itemType)
}

func (s *service) UpdateItem(ctx context.Context, userID, itemID string, update domain.ShopItemUpdate) error {
	if update.Price != nil && *update.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", domain.ErrInvalidInput)
	}
	return s.repo.UpdateItem(ctx, userID, itemID, update)
}

func (s *service) DeleteItem(ctx context.Context, userID, itemID string) error {
	return s.repo.DeleteItem(ctx, userID, itemID)
}

// PurchaseItem buys a shop item with gold. One-time: the purchased flag is a
// compare-and-set, and the gold debit re-checks the balance at commit time.
// Level gate, then flag, then funds; each failure maps to its own error.
func (s *service) PurchaseItem(ctx context.Context, userID, itemID string) (*SpendResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseItemCalled, "userID", userID, "itemID", itemID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.ItemType != domain.ItemTypeShop {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgWrongEconomyShop)
	}
	if item.Purchased {
		return nil, domain.ErrAlreadyPurchased
	}

	now := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Level < item.RequiredLevel {
		return nil, fmt.Errorf("%w: requires level %d, hunter is level %d",
			domain.ErrLevelLocked, item.RequiredLevel, profile.Level)
	}

	if profile.Gold() < item.Price {
		return nil, fmt.Errorf("%w: price %d, balance %d",
			domain.ErrInsufficientGold, item.Price, profile.Gold())
	}

	flipped, err := tx.MarkItemPurchased(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, domain.ErrAlreadyPurchased
	}

	paid, err := tx.SpendGold(ctx, userID, item.Price)
	if err != nil {
		return nil, err
	}
	if !paid {
		// The locked read said the balance covered the price, so the debit
		// losing its condition means the ledger moved underneath us.
		return nil, fmt.Errorf("%w: gold balance changed during purchase", domain.ErrConflict)
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventItemPurchased,
		EntityID: itemID,
		Payload:  map[string]any{"price": item.Price},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	item.Purchased = true
	item.PurchasedAt = &now
	updated := *profile
	updated.GoldSpent += item.Price

	metrics.EventsApplied.WithLabelValues(string(domain.EventItemPurchased)).Inc()
	metrics.GoldSpent.Add(float64(item.Price))

	log.Info(LogMsgItemPurchased, "userID", userID, "itemID", itemID,
		"price", item.Price, "gold", updated.Gold())
	return &SpendResult{Item: item, Profile: &updated}, nil
}

// RedeemReward spends HP on a reward item. Repeatable: no purchased flag,
// the HP deduction is the only gate and it re-checks the balance in the
// transaction.
func (s *service) RedeemReward(ctx context.Context, userID, itemID string) (*SpendResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRedeemRewardCalled, "userID", userID, "itemID", itemID)

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.ItemType != domain.ItemTypeReward {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgWrongEconomyReward)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Level < item.RequiredLevel {
		return nil, fmt.Errorf("%w: requires level %d, hunter is level %d",
			domain.ErrLevelLocked, item.RequiredLevel, profile.Level)
	}

	if profile.HP < item.Price {
		return nil, fmt.Errorf("%w: price %d, hp %d",
			domain.ErrInsufficientHP, item.Price, profile.HP)
	}

	paid, err := tx.SpendHP(ctx, userID, item.Price)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, fmt.Errorf("%w: hp changed during redemption", domain.ErrConflict)
	}

	err = tx.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventRewardRedeemed,
		EntityID: itemID,
		Payload:  map[string]any{"price": item.Price},
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordEventFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	updated := *profile
	updated.HP = domain.ClampHP(profile.HP - item.Price)

	metrics.EventsApplied.WithLabelValues(string(domain.EventRewardRedeemed)).Inc()
	metrics.HPSpent.Add(float64(item.Price))

	log.Info(LogMsgRewardRedeemed, "userID", userID, "itemID", itemID,
		"price", item.Price, "hp", updated.HP)
	return &SpendResult{Item: item, Profile: &updated}, nil
}
