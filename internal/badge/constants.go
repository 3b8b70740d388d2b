package badge

// BadgeCacheSize bounds the per-user definition cache. One entry per user;
// evaluation runs after every applied event, the definitions rarely change.
const BadgeCacheSize = 512

// ==================== Error Messages ====================

const (
	ErrMsgCreateCacheFailed = "failed to create badge cache: %w"
	ErrMsgListBadgesFailed  = "failed to list badges: %w"
	ErrMsgGetProfileFailed  = "failed to get profile: %w"
	ErrMsgCountFailed       = "failed to count completions: %w"
	ErrMsgAwardFailed       = "failed to award badge: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgAwardBadgeCalled = "AwardBadge called"
	LogMsgBadgeAwarded     = "Badge awarded"
	LogMsgEventSkipped     = "Badge award event not recorded"
)
