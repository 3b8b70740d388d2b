package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingUserID     = "Missing X-User-ID header"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgUploadsDisabled = "Image uploads are not configured"
	ErrMsgFileTooLarge    = "File exceeds the upload size limit"
	ErrMsgMissingFile     = "Missing file field in form data"
)

// User-facing error messages mapped from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgProfileNotFoundError   = "Hunter profile not found"
	ErrMsgNotFoundError          = "Resource not found"
	ErrMsgAlreadyCompletedError  = "Already completed"
	ErrMsgNotCompletedError      = "Not completed yet"
	ErrMsgAlreadyPurchasedError  = "Item already purchased"
	ErrMsgInsufficientGoldError  = "Not enough gold"
	ErrMsgInsufficientHPError    = "Not enough HP"
	ErrMsgLevelLockedError       = "Hunter level too low for this item"
	ErrMsgPenaltyNotApplicable   = "Penalties apply to daily and weekly quests only"
	ErrMsgInvalidDifficultyError = "Invalid difficulty rank"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgConflictError          = "Concurrent update, please retry"
)

// Success messages for API responses
const (
	MsgProfileUpdated   = "Profile updated"
	MsgQuestDeleted     = "Quest deleted"
	MsgBattleDeleted    = "Battle deleted"
	MsgGoalDeleted      = "Goal deleted"
	MsgCategoryDeleted  = "Category deleted"
	MsgItemDeleted      = "Item deleted"
	MsgBadgeDeleted     = "Badge deleted"
	MsgQuestUpdated     = "Quest updated"
	MsgBattleUpdated    = "Battle updated"
	MsgGoalUpdated      = "Goal updated"
	MsgItemUpdated      = "Item updated"
	MsgBadgeUpdated     = "Badge updated"
	MsgBadgeAwarded     = "Badge awarded"
	MsgBadgeAlreadyHeld = "Badge already earned"
	MsgImageDeleted     = "Image deleted"
)
