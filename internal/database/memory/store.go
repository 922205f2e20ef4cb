// Package memory implements every repository interface with in-memory
// maps. Used by unit tests and by the demo mode that runs without a
// database. A single store mutex serializes transactions, which matches
// the engine's contract: short-lived critical sections, no waiting on
// anything external inside them.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/repository"
)

var (
	_ repository.Inventory = (*Store)(nil)
	_ repository.Catalog   = (*Store)(nil)
	_ repository.User      = (*Store)(nil)
	_ repository.Trade     = (*TradeStore)(nil)
)

// Store holds all application state in memory.
type Store struct {
	mu          sync.Mutex
	collections map[string]map[string]int      // userID -> cardID -> quantity
	wishlists   map[string]map[string]struct{} // userID -> set of cardID
	trades      map[string]*domain.Trade
	cards       map[string]domain.Card
	users       map[string]domain.User
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string]map[string]int),
		wishlists:   make(map[string]map[string]struct{}),
		trades:      make(map[string]*domain.Trade),
		cards:       make(map[string]domain.Card),
		users:       make(map[string]domain.User),
	}
}

// GetQuantity returns the owned quantity for one (user, card) key.
func (s *Store) GetQuantity(_ context.Context, userID, cardID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collections[userID][cardID], nil
}

// ListCollection returns the user's owned cards, card ID ascending.
func (s *Store) ListCollection(_ context.Context, userID string) ([]domain.CollectionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.CollectionEntry
	for cardID, qty := range s.collections[userID] {
		entries = append(entries, domain.CollectionEntry{UserID: userID, CardID: cardID, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CardID < entries[j].CardID })
	return entries, nil
}

// ListSurplus returns all rows with tradeable copies, ordered by
// (cardID, userID) for deterministic finder output.
func (s *Store) ListSurplus(_ context.Context) ([]domain.CollectionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.CollectionEntry
	for userID, byCard := range s.collections {
		for cardID, qty := range byCard {
			if qty >= domain.SurplusThreshold {
				entries = append(entries, domain.CollectionEntry{UserID: userID, CardID: cardID, Quantity: qty})
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CardID != entries[j].CardID {
			return entries[i].CardID < entries[j].CardID
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries, nil
}

// ListWishlist returns the card IDs the user wishlisted, ascending.
func (s *Store) ListWishlist(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cardIDs []string
	for cardID := range s.wishlists[userID] {
		cardIDs = append(cardIDs, cardID)
	}
	sort.Strings(cardIDs)
	return cardIDs, nil
}

// ListAllWishlists returns every wishlist entry across all users.
func (s *Store) ListAllWishlists(_ context.Context) ([]domain.WishlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.WishlistEntry
	for userID, set := range s.wishlists {
		for cardID := range set {
			entries = append(entries, domain.WishlistEntry{UserID: userID, CardID: cardID})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UserID != entries[j].UserID {
			return entries[i].UserID < entries[j].UserID
		}
		return entries[i].CardID < entries[j].CardID
	})
	return entries, nil
}

// AddWishlist records wishlist membership. Idempotent.
func (s *Store) AddWishlist(_ context.Context, userID, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wishlists[userID] == nil {
		s.wishlists[userID] = make(map[string]struct{})
	}
	s.wishlists[userID][cardID] = struct{}{}
	return nil
}

// RemoveWishlist clears wishlist membership. Idempotent.
func (s *Store) RemoveWishlist(_ context.Context, userID, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.wishlists[userID], cardID)
	return nil
}

// BeginTx starts an inventory transaction. The store mutex is held until
// Commit or Rollback.
func (s *Store) BeginTx(_ context.Context) (repository.InventoryTx, error) {
	s.mu.Lock()
	return &memTx{s: s, pendingQty: make(map[[2]string]int)}, nil
}

// memTx buffers writes and applies them on Commit. It backs both
// repository.InventoryTx and repository.TradeTx.
type memTx struct {
	s            *Store
	done         bool
	pendingQty   map[[2]string]int // (userID, cardID) -> new quantity
	pendingTrade *domain.Trade
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// Commit applies buffered writes and releases the store.
func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true

	for key, qty := range t.pendingQty {
		userID, cardID := key[0], key[1]
		if qty == 0 {
			delete(t.s.collections[userID], cardID)
			if len(t.s.collections[userID]) == 0 {
				delete(t.s.collections, userID)
			}
			continue
		}
		if t.s.collections[userID] == nil {
			t.s.collections[userID] = make(map[string]int)
		}
		t.s.collections[userID][cardID] = qty
	}
	if t.pendingTrade != nil {
		stored := *t.pendingTrade
		t.s.trades[stored.ID] = &stored
	}

	t.s.mu.Unlock()
	return nil
}

// Rollback discards buffered writes and releases the store.
func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	t.s.mu.Unlock()
	return nil
}

// GetQuantityForUpdate reads a quantity, seeing writes buffered in this
// transaction.
func (t *memTx) GetQuantityForUpdate(_ context.Context, userID, cardID string) (int, error) {
	if t.done {
		return 0, errTxClosed
	}
	if qty, ok := t.pendingQty[[2]string{userID, cardID}]; ok {
		return qty, nil
	}
	return t.s.collections[userID][cardID], nil
}

// SetQuantity buffers a quantity write.
func (t *memTx) SetQuantity(_ context.Context, userID, cardID string, quantity int) error {
	if t.done {
		return errTxClosed
	}
	if quantity < 0 {
		return domain.ErrInsufficientQuantity
	}
	t.pendingQty[[2]string{userID, cardID}] = quantity
	return nil
}
