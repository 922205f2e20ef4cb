package repository

import (
	"context"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// Inventory defines the interface for collection and wishlist persistence.
// Quantity reads used for precondition checks must go through a
// transaction (GetQuantityForUpdate) so that check-then-adjust sequences
// are serialized per key.
type Inventory interface {
	GetQuantity(ctx context.Context, userID, cardID string) (int, error)
	ListCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error)
	// ListSurplus returns every collection row with quantity at or above
	// domain.SurplusThreshold, across all users.
	ListSurplus(ctx context.Context) ([]domain.CollectionEntry, error)
	ListWishlist(ctx context.Context, userID string) ([]string, error)
	ListAllWishlists(ctx context.Context) ([]domain.WishlistEntry, error)
	AddWishlist(ctx context.Context, userID, cardID string) error
	RemoveWishlist(ctx context.Context, userID, cardID string) error
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for inventory transactions
type InventoryTx interface {
	Tx
	GetQuantityForUpdate(ctx context.Context, userID, cardID string) (int, error)
	SetQuantity(ctx context.Context, userID, cardID string, quantity int) error
}
