package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pockettrader/pockettrader/internal/catalog"
	"github.com/pockettrader/pockettrader/internal/domain"
)

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockInventoryService mocks inventory.Service
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetQuantity(ctx context.Context, userID, cardID string) (int, error) {
	args := m.Called(ctx, userID, cardID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryService) GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionEntry), args.Error(1)
}

func (m *MockInventoryService) AdjustQuantity(ctx context.Context, userID, cardID string, delta int) (int, error) {
	args := m.Called(ctx, userID, cardID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryService) GetWishlist(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInventoryService) AddWishlist(ctx context.Context, userID, cardID string) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

func (m *MockInventoryService) RemoveWishlist(ctx context.Context, userID, cardID string) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

// MockTradeService mocks trade.Service
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) ProposeTrade(ctx context.Context, initiatorID, responderID, cardByInitiator, cardByResponder string) (*domain.Trade, error) {
	args := m.Called(ctx, initiatorID, responderID, cardByInitiator, cardByResponder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) Confirm(ctx context.Context, tradeID, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) Decline(ctx context.Context, tradeID, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) Cancel(ctx context.Context, tradeID, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) ListActiveTrades(ctx context.Context, userID string) ([]domain.Trade, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

// MockMatchingService mocks matching.Service
type MockMatchingService struct {
	mock.Mock
}

func (m *MockMatchingService) FindOpportunities(ctx context.Context, userID string) ([]domain.Opportunity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}

func (m *MockMatchingService) FindMatches(ctx context.Context, userID string) ([]domain.Match, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

// MockCatalogService mocks catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCatalogService) ListCards(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCatalogService) Sync(ctx context.Context, path string) (*catalog.SyncResult, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SyncResult), args.Error(1)
}
