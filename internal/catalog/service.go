// Package catalog serves card reference data: immutable metadata keyed
// by card ID, loaded from a JSON config and mirrored to the database at
// startup.
package catalog

import (
	"context"
	"fmt"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// Service defines the interface for catalog lookups
type Service interface {
	// GetCard returns the card or domain.ErrCardNotFound.
	GetCard(ctx context.Context, cardID string) (*domain.Card, error)
	ListCards(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
	// Sync loads the config file at path and upserts it into the
	// repository, then drops the read cache.
	Sync(ctx context.Context, path string) (*SyncResult, error)
}

type service struct {
	repo   repository.Catalog
	loader Loader
	cache  *cardCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:   repo,
		loader: NewLoader(),
		cache:  newCardCache(CardCacheSize, CardCacheTTL),
	}
}

func (s *service) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetCardCalled, "cardID", cardID)

	if card, ok := s.cache.Get(cardID); ok {
		return card, nil
	}

	card, err := s.repo.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCardFailed, err)
	}
	if card == nil {
		return nil, fmt.Errorf("%s: %w", cardID, domain.ErrCardNotFound)
	}

	s.cache.Set(cardID, card)
	return card, nil
}

func (s *service) ListCards(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgListCardsCalled, "filter", fmt.Sprintf("%+v", filter))

	cards, err := s.repo.ListCards(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCardsFailed, err)
	}
	return cards, nil
}

func (s *service) Sync(ctx context.Context, path string) (*SyncResult, error) {
	config, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	result, err := s.loader.SyncToDatabase(ctx, config, s.repo)
	if err != nil {
		return nil, err
	}
	s.cache.Clear()
	return result, nil
}
