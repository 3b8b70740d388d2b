package hunter

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgLockProfileFailed       = "failed to lock profile: %w"
	ErrMsgGetQuestFailed          = "failed to get quest: %w"
	ErrMsgGetBattleFailed         = "failed to get battle: %w"
	ErrMsgGetGoalFailed           = "failed to get goal: %w"
	ErrMsgUpdateProgressFailed    = "failed to update progress: %w"
	ErrMsgUpdateCategoryFailed    = "failed to update category progress: %w"
	ErrMsgUpdateStreakFailed      = "failed to update streak: %w"
	ErrMsgRecordEventFailed       = "failed to record event: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgCompleteQuestCalled    = "CompleteQuest called"
	LogMsgUncompleteQuestCalled  = "UncompleteQuest called"
	LogMsgFailQuestCalled        = "FailQuest called"
	LogMsgCompleteBattleCalled   = "CompleteBattle called"
	LogMsgUncompleteBattleCalled = "UncompleteBattle called"
	LogMsgCompleteGoalCalled     = "CompleteGoal called"
	LogMsgUncompleteGoalCalled   = "UncompleteGoal called"

	LogMsgQuestCompleted    = "Quest completed"
	LogMsgQuestUncompleted  = "Quest uncompleted"
	LogMsgQuestFailed       = "Quest penalty applied"
	LogMsgBattleCompleted   = "Battle completed"
	LogMsgBattleUncompleted = "Battle uncompleted"
	LogMsgGoalCompleted     = "Goal completed"
	LogMsgGoalUncompleted   = "Goal uncompleted"

	LogMsgResetQuestsCalled = "ResetQuests called"
	LogMsgQuestsReset       = "Quests reset"

	LogMsgStreakTicked      = "Streak updated"
	LogMsgPfpMilestoneHit   = "Profile picture milestone applied"
	LogMsgBadgeEvalFailed   = "Badge evaluation failed after event"
	LogMsgMilestoneSkipped  = "Profile picture milestone lookup failed"
	LogMsgProfileAutoCreate = "Profile created on first access"
)
