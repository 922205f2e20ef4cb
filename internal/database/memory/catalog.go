package memory

import (
	"context"
	"sort"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// GetCard retrieves a card by ID. Returns nil if the card does not exist.
func (s *Store) GetCard(_ context.Context, cardID string) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cards[cardID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListCards returns catalog cards matching the filter, card ID ascending.
func (s *Store) ListCards(_ context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cards []domain.Card
	for _, c := range s.cards {
		if filter.Matches(c) {
			cards = append(cards, c)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

// UpsertCard inserts or updates a catalog card.
func (s *Store) UpsertCard(_ context.Context, card *domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards[card.ID] = *card
	return nil
}
