package shop

// ==================== Error Messages ====================

const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgRecordEventFailed       = "failed to record event: %w"

	ErrMsgWrongEconomyShop   = "item is not a shop item"
	ErrMsgWrongEconomyReward = "item is not a reward item"
)

// ==================== Log Messages ====================

const (
	LogMsgPurchaseItemCalled = "PurchaseItem called"
	LogMsgRedeemRewardCalled = "RedeemReward called"

	LogMsgItemPurchased  = "Item purchased"
	LogMsgRewardRedeemed = "Reward redeemed"
)
