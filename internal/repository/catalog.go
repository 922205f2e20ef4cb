package repository

import (
	"context"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// Catalog defines the interface for card catalog persistence. The catalog
// is reference data: read-heavy, mutated only by config sync at startup.
type Catalog interface {
	// GetCard returns nil, nil when the card does not exist.
	GetCard(ctx context.Context, cardID string) (*domain.Card, error)
	ListCards(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
	UpsertCard(ctx context.Context, card *domain.Card) error
}
