package shop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dhairyapractice/Solo-leveling/internal/concurrency"
	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

const (
	testUserID = "0b6f7895-3a34-4f4f-9d3c-111111111111"
	testItemID = "0b6f7895-3a34-4f4f-9d3c-666666666666"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestService(repo *MockRepository) *service {
	return &service{
		repo:  repo,
		locks: concurrency.NewLockManager(),
		now:   func() time.Time { return testNow },
	}
}

func shopItem(price, requiredLevel int) *domain.ShopItem {
	return &domain.ShopItem{
		ID:            testItemID,
		UserID:        testUserID,
		ItemType:      domain.ItemTypeShop,
		Name:          "New headphones",
		Price:         price,
		RequiredLevel: requiredLevel,
	}
}

func rewardItem(price int) *domain.ShopItem {
	return &domain.ShopItem{
		ID:       testItemID,
		UserID:   testUserID,
		ItemType: domain.ItemTypeReward,
		Name:     "Movie night",
		Price:    price,
	}
}

func richProfile() *domain.HunterProfile {
	return &domain.HunterProfile{
		ID:         "profile-1",
		UserID:     testUserID,
		Level:      5,
		HP:         80,
		GoldEarned: 1000,
		GoldSpent:  200,
	}
}

func TestPurchaseItem_DebitsGoldAndMarksPurchased(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(shopItem(300, 1), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("MarkItemPurchased", ctx, testUserID, testItemID, testNow).Return(true, nil)
	mockTx.On("SpendGold", ctx, testUserID, 300).Return(true, nil)
	mockTx.On("RecordEvent", ctx, mock.AnythingOfType("*domain.HunterEvent")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	result, err := svc.PurchaseItem(ctx, testUserID, testItemID)

	require.NoError(t, err)
	assert.True(t, result.Item.Purchased)
	require.NotNil(t, result.Item.PurchasedAt)
	assert.Equal(t, testNow, *result.Item.PurchasedAt)
	assert.Equal(t, 500, result.Profile.GoldSpent)
	assert.Equal(t, 500, result.Profile.Gold())
	mockTx.AssertExpectations(t)
}

func TestPurchaseItem_AlreadyPurchasedFastPath(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(mockRepo)

	item := shopItem(300, 1)
	item.Purchased = true
	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(item, nil)

	_, err := svc.PurchaseItem(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)
	mockRepo.AssertNotCalled(t, "BeginTx", ctx)
}

func TestPurchaseItem_LostRaceOnPurchasedFlag(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(shopItem(300, 1), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("MarkItemPurchased", ctx, testUserID, testItemID, testNow).Return(false, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := svc.PurchaseItem(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)
	mockTx.AssertNotCalled(t, "SpendGold", ctx, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", ctx)
}

func TestPurchaseItem_InsufficientGold(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(shopItem(2000, 1), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := svc.PurchaseItem(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrInsufficientGold)
	mockTx.AssertNotCalled(t, "MarkItemPurchased", ctx, mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", ctx)
}

func TestPurchaseItem_ConflictWhenBalanceMovesUnderDebit(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	// The locked read shows 800 gold for a 300 gold item, yet the conditional
	// debit finds less. That is a concurrent ledger change, not a shortfall
	// the buyer can fix.
	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(shopItem(300, 1), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("MarkItemPurchased", ctx, testUserID, testItemID, testNow).Return(true, nil)
	mockTx.On("SpendGold", ctx, testUserID, 300).Return(false, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := svc.PurchaseItem(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	mockTx.AssertNotCalled(t, "Commit", ctx)
}

func TestPurchaseItem_LevelLocked(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(shopItem(300, 10), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := svc.PurchaseItem(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrLevelLocked)
	mockTx.AssertNotCalled(t, "MarkItemPurchased", ctx, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseItem_RejectsRewardItem(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(rewardItem(30), nil)

	_, err := svc.PurchaseItem(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), ErrMsgWrongEconomyShop)
	mockRepo.AssertNotCalled(t, "BeginTx", ctx)
}

func TestRedeemReward_SpendsHP(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(rewardItem(30), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("SpendHP", ctx, testUserID, 30).Return(true, nil)
	mockTx.On("RecordEvent", ctx, mock.AnythingOfType("*domain.HunterEvent")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	result, err := svc.RedeemReward(ctx, testUserID, testItemID)

	require.NoError(t, err)
	assert.Equal(t, 50, result.Profile.HP)
	mockTx.AssertExpectations(t)
}

func TestRedeemReward_Repeatable(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(rewardItem(30), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("SpendHP", ctx, testUserID, 30).Return(true, nil)
	mockTx.On("RecordEvent", ctx, mock.AnythingOfType("*domain.HunterEvent")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := svc.RedeemReward(ctx, testUserID, testItemID)
	require.NoError(t, err)

	_, err = svc.RedeemReward(ctx, testUserID, testItemID)
	require.NoError(t, err)

	mockTx.AssertNumberOfCalls(t, "SpendHP", 2)
}

func TestRedeemReward_InsufficientHP(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(rewardItem(90), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := svc.RedeemReward(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrInsufficientHP)
	mockTx.AssertNotCalled(t, "SpendHP", ctx, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", ctx)
}

func TestRedeemReward_ConflictWhenHPMovesUnderDebit(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	mockTx := &MockTx{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(rewardItem(30), nil)
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetProfileForUpdate", ctx, testUserID).Return(richProfile(), nil)
	mockTx.On("SpendHP", ctx, testUserID, 30).Return(false, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	_, err := svc.RedeemReward(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	mockTx.AssertNotCalled(t, "Commit", ctx)
}

func TestRedeemReward_RejectsShopItem(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(mockRepo)

	mockRepo.On("GetItem", ctx, testUserID, testItemID).Return(shopItem(300, 1), nil)

	_, err := svc.RedeemReward(ctx, testUserID, testItemID)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), ErrMsgWrongEconomyReward)
}

func TestCreateItem_Validation(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(mockRepo)

	tests := []struct {
		name  string
		input CreateItemInput
	}{
		{"unknown item type", CreateItemInput{UserID: testUserID, ItemType: "mystery", Name: "X", Price: 10}},
		{"blank name", CreateItemInput{UserID: testUserID, ItemType: domain.ItemTypeShop, Name: "  ", Price: 10}},
		{"negative price", CreateItemInput{UserID: testUserID, ItemType: domain.ItemTypeShop, Name: "X", Price: -1}},
		{"negative level", CreateItemInput{UserID: testUserID, ItemType: domain.ItemTypeShop, Name: "X", Price: 10, RequiredLevel: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(ctx, tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	mockRepo.AssertNotCalled(t, "CreateItem", ctx, mock.Anything)
}

func TestListItems_UnknownType(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockRepository{}
	svc := newTestService(mockRepo)

	_, err := svc.ListItems(ctx, testUserID, "mystery")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
