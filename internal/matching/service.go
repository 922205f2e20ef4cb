// Package matching derives trade candidates from collection and wishlist
// state. Results are computed fresh on every call; nothing here is
// stored, so the finders are read-only and safe to invoke any number of
// times.
package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/metrics"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// Service defines the interface for opportunity and match discovery
type Service interface {
	// FindOpportunities returns cards on the user's wishlist that other
	// users hold in surplus, grouped by card then owner.
	FindOpportunities(ctx context.Context, userID string) ([]domain.Opportunity, error)
	// FindMatches returns one entry per mutually satisfiable card pair
	// with every other user.
	FindMatches(ctx context.Context, userID string) ([]domain.Match, error)
}

type service struct {
	repo  repository.Inventory
	users repository.User
}

// NewService creates a new matching service
func NewService(repo repository.Inventory, users repository.User) Service {
	return &service{
		repo:  repo,
		users: users,
	}
}

func (s *service) FindOpportunities(ctx context.Context, userID string) ([]domain.Opportunity, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFindOpportunitiesCalled, "userID", userID)
	metrics.OpportunityQueries.Inc()

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	wishlist, err := s.repo.ListWishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListWishlistFailed, err)
	}
	if len(wishlist) == 0 {
		return nil, nil
	}

	surplus, err := s.repo.ListSurplus(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSurplusFailed, err)
	}

	// Index surplus rows by card once; wishlists can be large and the
	// surplus list spans every user.
	surplusByCard := make(map[string][]domain.CollectionEntry)
	for _, entry := range surplus {
		surplusByCard[entry.CardID] = append(surplusByCard[entry.CardID], entry)
	}

	var opportunities []domain.Opportunity
	for _, cardID := range wishlist {
		for _, entry := range surplusByCard[cardID] {
			if entry.UserID == userID {
				continue
			}
			opportunities = append(opportunities, domain.Opportunity{
				CardID:          cardID,
				OwnerID:         entry.UserID,
				OwnerSurplusQty: entry.Quantity,
			})
		}
	}

	log.Info(LogMsgOpportunitiesFound, "userID", userID, "count", len(opportunities))
	return opportunities, nil
}

func (s *service) FindMatches(ctx context.Context, userID string) ([]domain.Match, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFindMatchesCalled, "userID", userID)
	metrics.MatchQueries.Inc()

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	surplus, err := s.repo.ListSurplus(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSurplusFailed, err)
	}
	wishlists, err := s.repo.ListAllWishlists(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAllFailed, err)
	}

	surplusByUser := make(map[string]map[string]bool)
	for _, entry := range surplus {
		if surplusByUser[entry.UserID] == nil {
			surplusByUser[entry.UserID] = make(map[string]bool)
		}
		surplusByUser[entry.UserID][entry.CardID] = true
	}
	wishlistByUser := make(map[string][]string)
	for _, entry := range wishlists {
		wishlistByUser[entry.UserID] = append(wishlistByUser[entry.UserID], entry.CardID)
	}

	myWishlist := wishlistByUser[userID]
	mySurplus := surplusByUser[userID]
	if len(myWishlist) == 0 && len(mySurplus) == 0 {
		return nil, nil
	}

	// Candidate partners are users holding any surplus. Partners are
	// visited in sorted order so output is deterministic.
	partners := make([]string, 0, len(surplusByUser))
	for partnerID := range surplusByUser {
		if partnerID != userID {
			partners = append(partners, partnerID)
		}
	}
	sort.Strings(partners)

	var matches []domain.Match
	for _, partnerID := range partners {
		partnerSurplus := surplusByUser[partnerID]

		// Cards I want that the partner can give away.
		var iWant []string
		for _, cardID := range myWishlist {
			if partnerSurplus[cardID] {
				iWant = append(iWant, cardID)
			}
		}
		if len(iWant) == 0 {
			continue
		}

		// Cards the partner wants that I can give away.
		var theyWant []string
		for _, cardID := range wishlistByUser[partnerID] {
			if mySurplus[cardID] {
				theyWant = append(theyWant, cardID)
			}
		}

		// One match per card pair: a user may want several cards from
		// the same partner and vice versa.
		for _, a := range iWant {
			for _, b := range theyWant {
				matches = append(matches, domain.Match{
					PartnerID:    partnerID,
					CardIWant:    a,
					CardTheyWant: b,
				})
			}
		}
	}

	log.Info(LogMsgMatchesFound, "userID", userID, "count", len(matches))
	return matches, nil
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
