package shop

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
)

// MockRepository is a hand-written mock of repository.Shop.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetItem(ctx context.Context, userID, itemID string) (*domain.ShopItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockRepository) ListItems(ctx context.Context, userID string, itemType domain.ItemType) ([]domain.ShopItem, error) {
	args := m.Called(ctx, userID, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockRepository) CreateItem(ctx context.Context, item *domain.ShopItem) (*domain.ShopItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockRepository) UpdateItem(ctx context.Context, userID, itemID string, update domain.ShopItemUpdate) error {
	args := m.Called(ctx, userID, itemID, update)
	return args.Error(0)
}

func (m *MockRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ShopTx), args.Error(1)
}

// MockTx is a hand-written mock of repository.ShopTx.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetProfileForUpdate(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HunterProfile), args.Error(1)
}

func (m *MockTx) MarkItemPurchased(ctx context.Context, userID, itemID string, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, itemID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) SpendGold(ctx context.Context, userID string, price int) (bool, error) {
	args := m.Called(ctx, userID, price)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) SpendHP(ctx context.Context, userID string, price int) (bool, error) {
	args := m.Called(ctx, userID, price)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) RecordEvent(ctx context.Context, event *domain.HunterEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
