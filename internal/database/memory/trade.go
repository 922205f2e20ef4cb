package memory

import (
	"context"
	"sort"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// TradeStore adapts a Store to repository.Trade. A wrapper type because
// the trade and inventory interfaces both name a BeginTx method with
// different transaction types.
type TradeStore struct {
	s *Store
}

// NewTradeStore creates a trade view over the shared store.
func NewTradeStore(s *Store) *TradeStore {
	return &TradeStore{s: s}
}

// GetTrade retrieves a trade by ID. Returns domain.ErrTradeNotFound when
// no such trade exists.
func (r *TradeStore) GetTrade(_ context.Context, tradeID string) (*domain.Trade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.trades[tradeID]
	if !ok {
		return nil, domain.ErrTradeNotFound
	}
	return copyTrade(t), nil
}

// ListActiveByUser returns pending trades where the user is either party,
// newest first.
func (r *TradeStore) ListActiveByUser(_ context.Context, userID string) ([]domain.Trade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var trades []domain.Trade
	for _, t := range r.s.trades {
		if t.Status == domain.TradeStatusPending && t.IsParticipant(userID) {
			trades = append(trades, *copyTrade(t))
		}
	}
	sort.Slice(trades, func(i, j int) bool {
		if !trades[i].CreatedAt.Equal(trades[j].CreatedAt) {
			return trades[i].CreatedAt.After(trades[j].CreatedAt)
		}
		return trades[i].ID < trades[j].ID
	})
	return trades, nil
}

// CreateTrade persists a new trade.
func (r *TradeStore) CreateTrade(_ context.Context, trade *domain.Trade) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.trades[trade.ID] = copyTrade(trade)
	return nil
}

// BeginTx starts a trade transaction spanning the trade record and the
// collection rows.
func (r *TradeStore) BeginTx(_ context.Context) (repository.TradeTx, error) {
	r.s.mu.Lock()
	return &memTx{s: r.s, pendingQty: make(map[[2]string]int)}, nil
}

// GetTradeForUpdate reads a trade within the transaction, seeing a
// buffered update from this transaction.
func (t *memTx) GetTradeForUpdate(_ context.Context, tradeID string) (*domain.Trade, error) {
	if t.done {
		return nil, errTxClosed
	}
	if t.pendingTrade != nil && t.pendingTrade.ID == tradeID {
		return copyTrade(t.pendingTrade), nil
	}
	stored, ok := t.s.trades[tradeID]
	if !ok {
		return nil, domain.ErrTradeNotFound
	}
	return copyTrade(stored), nil
}

// UpdateTrade buffers a trade write.
func (t *memTx) UpdateTrade(_ context.Context, trade *domain.Trade) error {
	if t.done {
		return errTxClosed
	}
	if _, ok := t.s.trades[trade.ID]; !ok {
		return domain.ErrTradeNotFound
	}
	t.pendingTrade = copyTrade(trade)
	return nil
}

// copyTrade clones a trade so callers never share slice or pointer state
// with the store.
func copyTrade(t *domain.Trade) *domain.Trade {
	c := *t
	c.ConfirmedBy = append([]string(nil), t.ConfirmedBy...)
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return &c
}
