package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Catalog errors
	ErrMsgCardNotFound = "card not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgCardNotOwned         = "card not owned"

	// Trade errors
	ErrMsgTradeNotFound         = "trade not found"
	ErrMsgSelfTrade             = "cannot trade with yourself"
	ErrMsgNotParticipant        = "user is not a trade participant"
	ErrMsgInvalidState          = "trade is in a terminal state"
	ErrMsgCardNoLongerAvailable = "offered card is no longer available"

	// Validation errors (used for partial matches)
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgTxClosed           = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Catalog errors
	ErrCardNotFound = errors.New(ErrMsgCardNotFound)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrCardNotOwned         = errors.New(ErrMsgCardNotOwned)

	// Trade errors
	ErrTradeNotFound         = errors.New(ErrMsgTradeNotFound)
	ErrSelfTrade             = errors.New(ErrMsgSelfTrade)
	ErrNotParticipant        = errors.New(ErrMsgNotParticipant)
	ErrInvalidState          = errors.New(ErrMsgInvalidState)
	ErrCardNoLongerAvailable = errors.New(ErrMsgCardNoLongerAvailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	// Storage failures are the only fatal-class condition the engine
	// surfaces; it never retries them internally.
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
)
