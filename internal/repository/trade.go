package repository

import (
	"context"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// Trade defines the interface for trade persistence
type Trade interface {
	GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Trade, error)
	CreateTrade(ctx context.Context, trade *domain.Trade) error
	BeginTx(ctx context.Context) (TradeTx, error)
}

// TradeTx defines the interface for trade transactions. It spans both the
// trade record and the collection rows so that dual-confirmation execution
// commits the status change and all four quantity adjustments as one unit.
type TradeTx interface {
	Tx
	GetTradeForUpdate(ctx context.Context, tradeID string) (*domain.Trade, error)
	UpdateTrade(ctx context.Context, trade *domain.Trade) error
	GetQuantityForUpdate(ctx context.Context, userID, cardID string) (int, error)
	SetQuantity(ctx context.Context, userID, cardID string, quantity int) error
}
