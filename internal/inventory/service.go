// Package inventory manages per-user card collections and wishlists.
// Quantities are non-negative integers; every adjustment is a
// check-then-set inside a transaction so concurrent adjustments to the
// same (user, card) key serialize instead of racing.
package inventory

import (
	"context"
	"fmt"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// Service defines the interface for collection and wishlist operations
type Service interface {
	GetQuantity(ctx context.Context, userID, cardID string) (int, error)
	GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error)
	AdjustQuantity(ctx context.Context, userID, cardID string, delta int) (int, error)
	GetWishlist(ctx context.Context, userID string) ([]string, error)
	AddWishlist(ctx context.Context, userID, cardID string) error
	RemoveWishlist(ctx context.Context, userID, cardID string) error
}

type service struct {
	repo    repository.Inventory
	users   repository.User
	catalog repository.Catalog
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, users repository.User, catalog repository.Catalog) Service {
	return &service{
		repo:    repo,
		users:   users,
		catalog: catalog,
	}
}

func (s *service) GetQuantity(ctx context.Context, userID, cardID string) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetQuantityCalled, "userID", userID, "cardID", cardID)

	if err := s.checkUser(ctx, userID); err != nil {
		return 0, err
	}
	return s.repo.GetQuantity(ctx, userID, cardID)
}

func (s *service) GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetCollectionCalled, "userID", userID)

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListCollection(ctx, userID)
}

// AdjustQuantity applies a signed delta to one (user, card) key and
// returns the resulting quantity. An adjustment that would take the
// quantity below zero is rejected whole; partial application never
// happens.
func (s *service) AdjustQuantity(ctx context.Context, userID, cardID string, delta int) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAdjustQuantityCalled, "userID", userID, "cardID", cardID, "delta", delta)

	if err := validateDelta(delta); err != nil {
		return 0, err
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return 0, err
	}
	if err := s.checkCard(ctx, cardID); err != nil {
		return 0, err
	}

	// A zero delta changes nothing; report the current quantity without
	// opening a transaction.
	if delta == 0 {
		return s.repo.GetQuantity(ctx, userID, cardID)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	current, err := tx.GetQuantityForUpdate(ctx, userID, cardID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetQuantityFailed, err)
	}

	next := current + delta
	if next < 0 {
		return 0, fmt.Errorf(ErrMsgWouldGoNegativeFmt, delta, cardID, current, domain.ErrInsufficientQuantity)
	}

	if err := tx.SetQuantity(ctx, userID, cardID, next); err != nil {
		return 0, fmt.Errorf(ErrMsgSetQuantityFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgQuantityAdjusted, "userID", userID, "cardID", cardID, "quantity", next)
	return next, nil
}

func (s *service) GetWishlist(ctx context.Context, userID string) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetWishlistCalled, "userID", userID)

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListWishlist(ctx, userID)
}

func (s *service) AddWishlist(ctx context.Context, userID, cardID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddWishlistCalled, "userID", userID, "cardID", cardID)

	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	if err := s.checkCard(ctx, cardID); err != nil {
		return err
	}
	return s.repo.AddWishlist(ctx, userID, cardID)
}

func (s *service) RemoveWishlist(ctx context.Context, userID, cardID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRemoveWishlistCalled, "userID", userID, "cardID", cardID)

	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}
	return s.repo.RemoveWishlist(ctx, userID, cardID)
}

func (s *service) checkUser(ctx context.Context, userID string) error {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *service) checkCard(ctx context.Context, cardID string) error {
	card, err := s.catalog.GetCard(ctx, cardID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetCardFailed, err)
	}
	if card == nil {
		return fmt.Errorf(ErrMsgCardNotFoundFmt, cardID, domain.ErrCardNotFound)
	}
	return nil
}

func validateDelta(delta int) error {
	if delta > domain.MaxAdjustQuantity || delta < -domain.MaxAdjustQuantity {
		return fmt.Errorf(ErrMsgDeltaExceedsMaxFmt, delta, domain.MaxAdjustQuantity, domain.ErrInvalidInput)
	}
	return nil
}
