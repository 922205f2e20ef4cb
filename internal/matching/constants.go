package matching

// ==================== Error Messages ====================

const (
	ErrMsgGetUserFailed      = "failed to get user: %w"
	ErrMsgListWishlistFailed = "failed to list wishlist: %w"
	ErrMsgListSurplusFailed  = "failed to list surplus: %w"
	ErrMsgListAllFailed      = "failed to list wishlists: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgFindOpportunitiesCalled = "FindOpportunities called"
	LogMsgFindMatchesCalled       = "FindMatches called"
	LogMsgOpportunitiesFound      = "Opportunities found"
	LogMsgMatchesFound            = "Matches found"
)
