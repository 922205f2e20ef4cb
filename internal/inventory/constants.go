package inventory

// ==================== Error Messages ====================

const (
	ErrMsgGetUserFailed          = "failed to get user: %w"
	ErrMsgGetCardFailed          = "failed to get card: %w"
	ErrMsgBeginTransactionFailed = "failed to begin transaction: %w"
	ErrMsgGetQuantityFailed      = "failed to get quantity: %w"
	ErrMsgSetQuantityFailed      = "failed to set quantity: %w"
	ErrMsgCommitFailed           = "failed to commit transaction: %w"
)

const (
	ErrMsgCardNotFoundFmt    = "card not found: %s: %w"
	ErrMsgDeltaExceedsMaxFmt = "delta %d exceeds maximum allowed (%d): %w"
	ErrMsgWouldGoNegativeFmt = "adjustment by %d would drop %s below zero (have %d): %w"
)

// ==================== Log Messages ====================

const (
	LogMsgGetQuantityCalled    = "GetQuantity called"
	LogMsgGetCollectionCalled  = "GetCollection called"
	LogMsgAdjustQuantityCalled = "AdjustQuantity called"
	LogMsgQuantityAdjusted     = "Quantity adjusted"
	LogMsgGetWishlistCalled    = "GetWishlist called"
	LogMsgAddWishlistCalled    = "AddWishlist called"
	LogMsgRemoveWishlistCalled = "RemoveWishlist called"
)
