package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgProfileNotFound = "hunter profile not found"
	ErrMsgNotFound        = "record not found"

	// Completion errors
	ErrMsgAlreadyCompleted = "already completed"
	ErrMsgNotCompleted     = "not completed"

	// Economy errors
	ErrMsgAlreadyPurchased = "item already purchased"
	ErrMsgInsufficientGold = "insufficient gold"
	ErrMsgInsufficientHP   = "insufficient hp"
	ErrMsgLevelLocked      = "level requirement not met"

	// Penalty errors
	ErrMsgPenaltyNotApplicable = "penalties apply to daily and weekly quests only"

	// Validation errors
	ErrMsgInvalidDifficulty = "invalid difficulty"
	ErrMsgInvalidInput      = "invalid input"

	// Concurrency errors
	ErrMsgConflict = "concurrent update conflict"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)
	ErrNotFound        = errors.New(ErrMsgNotFound)

	// Completion errors
	ErrAlreadyCompleted = errors.New(ErrMsgAlreadyCompleted)
	ErrNotCompleted     = errors.New(ErrMsgNotCompleted)

	// Economy errors
	ErrAlreadyPurchased = errors.New(ErrMsgAlreadyPurchased)
	ErrInsufficientGold = errors.New(ErrMsgInsufficientGold)
	ErrInsufficientHP   = errors.New(ErrMsgInsufficientHP)
	ErrLevelLocked      = errors.New(ErrMsgLevelLocked)

	// Penalty errors
	ErrPenaltyNotApplicable = errors.New(ErrMsgPenaltyNotApplicable)

	// Validation errors
	ErrInvalidDifficulty = errors.New(ErrMsgInvalidDifficulty)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)

	// Concurrency errors
	ErrConflict = errors.New(ErrMsgConflict)
)
