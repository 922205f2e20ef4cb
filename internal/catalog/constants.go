package catalog

import "time"

// Schema paths
const (
	CardsSchemaPath = "configs/schemas/cards.schema.json"
)

// Cache sizing. The catalog is small and immutable between syncs, so a
// modest cache holds essentially all of it.
const (
	CardCacheSize = 1024
	CardCacheTTL  = 10 * time.Minute
)

// ==================== Error Messages ====================

const (
	ErrMsgReadConfigFileFailed = "failed to read card config: %w"
	ErrMsgParseConfigFailed    = "failed to parse card config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoCardsDefined       = "no cards defined"
	ErrMsgGetCardFailed        = "failed to get card: %w"
	ErrMsgListCardsFailed      = "failed to list cards: %w"
	ErrMsgUpsertCardFailed     = "failed to upsert card %s: %w"
)

const (
	ErrFmtCardAtIndexEmptyID = "%w: card at index %d has empty card_id"
	ErrFmtCardMissingField   = "%w: card '%s' has empty %s"
)

// ==================== Log Messages ====================

const (
	LogMsgCardConfigLoaded = "Card config loaded"
	LogMsgCatalogSynced    = "Card catalog synced to database"
	LogMsgGetCardCalled    = "GetCard called"
	LogMsgListCardsCalled  = "ListCards called"
)
