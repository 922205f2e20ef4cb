package trade

// ==================== Error Messages ====================

const (
	ErrMsgGetUserFailed          = "failed to get user: %w"
	ErrMsgGetCardFailed          = "failed to get card: %w"
	ErrMsgGetQuantityFailed      = "failed to get quantity: %w"
	ErrMsgGetTradeFailed         = "failed to get trade: %w"
	ErrMsgCreateTradeFailed      = "failed to create trade: %w"
	ErrMsgUpdateTradeFailed      = "failed to update trade: %w"
	ErrMsgBeginTransactionFailed = "failed to begin transaction: %w"
	ErrMsgCommitFailed           = "failed to commit transaction: %w"
	ErrMsgSetQuantityFailed      = "failed to set quantity: %w"
	ErrMsgListTradesFailed       = "failed to list trades: %w"
)

const (
	ErrMsgCardNotFoundFmt      = "card not found: %s: %w"
	ErrMsgInitiatorNotOwnerFmt = "initiator does not own %s: %w"
	ErrMsgNotParticipantFmt    = "user %s: %w"
	ErrMsgTerminalTradeFmt     = "trade %s is %s: %w"
	ErrMsgCancelNotInitiator   = "only the initiator may cancel: %w"
	ErrMsgUnavailableFmt       = "%s holds no copy of %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgProposeTradeCalled  = "ProposeTrade called"
	LogMsgTradeProposed       = "Trade proposed"
	LogMsgConfirmCalled       = "Confirm called"
	LogMsgConfirmRecorded     = "Confirmation recorded"
	LogMsgTradeExecuted       = "Trade executed"
	LogMsgExecutionFailed     = "Trade execution failed availability re-check"
	LogMsgDeclineCalled       = "Decline called"
	LogMsgTradeDeclined       = "Trade declined"
	LogMsgCancelCalled        = "Cancel called"
	LogMsgTradeCancelled      = "Trade cancelled"
	LogMsgGetTradeCalled      = "GetTrade called"
	LogMsgListActiveCalled    = "ListActiveTrades called"
	LogMsgEventPublishFailed  = "Failed to publish trade event"
)
