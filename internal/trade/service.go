// Package trade owns the trade state machine: propose, dual
// confirmation, decline, cancel, and atomic execution of the swap once
// both parties have confirmed.
//
// Nothing is reserved at propose time. Offered cards stay spendable by
// other activity until the moment of execution, which re-checks
// availability under the same transaction that applies the swap. A
// failed re-check leaves the trade pending so the participants can
// re-confirm once the cards are back, or decline.
package trade

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pockettrader/pockettrader/internal/concurrency"
	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/event"
	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/metrics"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// Service defines the interface for trade lifecycle operations
type Service interface {
	ProposeTrade(ctx context.Context, initiatorID, responderID, cardByInitiator, cardByResponder string) (*domain.Trade, error)
	Confirm(ctx context.Context, tradeID, userID string) (*domain.Trade, error)
	Decline(ctx context.Context, tradeID, userID string) (*domain.Trade, error)
	Cancel(ctx context.Context, tradeID, userID string) (*domain.Trade, error)
	GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error)
	ListActiveTrades(ctx context.Context, userID string) ([]domain.Trade, error)
}

type service struct {
	trades    repository.Trade
	inventory repository.Inventory
	users     repository.User
	catalog   repository.Catalog
	bus       event.Bus
	locks     *concurrency.LockManager
	now       func() time.Time
	newID     func() string
}

// NewService creates a new trade service
func NewService(trades repository.Trade, inventory repository.Inventory, users repository.User, catalog repository.Catalog, bus event.Bus) Service {
	return &service{
		trades:    trades,
		inventory: inventory,
		users:     users,
		catalog:   catalog,
		bus:       bus,
		locks:     concurrency.NewLockManager(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// ProposeTrade opens a pending trade. The initiator must currently hold
// the card they offer; the responder's side is deliberately not checked
// here, since their holdings may change before confirmation anyway.
func (s *service) ProposeTrade(ctx context.Context, initiatorID, responderID, cardByInitiator, cardByResponder string) (*domain.Trade, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgProposeTradeCalled,
		"initiatorID", initiatorID, "responderID", responderID,
		"cardByInitiator", cardByInitiator, "cardByResponder", cardByResponder)

	if initiatorID == responderID {
		return nil, domain.ErrSelfTrade
	}
	for _, userID := range []string{initiatorID, responderID} {
		if err := s.checkUser(ctx, userID); err != nil {
			return nil, err
		}
	}
	for _, cardID := range []string{cardByInitiator, cardByResponder} {
		if err := s.checkCard(ctx, cardID); err != nil {
			return nil, err
		}
	}

	qty, err := s.inventory.GetQuantity(ctx, initiatorID, cardByInitiator)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetQuantityFailed, err)
	}
	if qty < 1 {
		return nil, fmt.Errorf(ErrMsgInitiatorNotOwnerFmt, cardByInitiator, domain.ErrCardNotOwned)
	}

	trade := &domain.Trade{
		ID:                     s.newID(),
		InitiatorID:            initiatorID,
		ResponderID:            responderID,
		CardOfferedByInitiator: cardByInitiator,
		CardOfferedByResponder: cardByResponder,
		Status:                 domain.TradeStatusPending,
		ConfirmedBy:            []string{},
		CreatedAt:              s.now(),
	}
	if err := s.trades.CreateTrade(ctx, trade); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateTradeFailed, err)
	}

	s.publish(ctx, event.TradeProposed, trade, initiatorID)
	log.Info(LogMsgTradeProposed, "tradeID", trade.ID)
	return trade, nil
}

// Confirm records a participant's agreement. Confirming twice is a
// no-op. The confirmation that completes the pair triggers execution;
// if execution fails the availability re-check, the whole call rolls
// back and the trade stays pending with its confirmation set unchanged.
func (s *service) Confirm(ctx context.Context, tradeID, userID string) (*domain.Trade, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgConfirmCalled, "tradeID", tradeID, "userID", userID)

	unlock := s.locks.LockKeys([]string{tradeKey(tradeID)})
	defer unlock()

	tx, err := s.trades.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	trade, err := s.lockPendingTrade(ctx, tx, tradeID, userID)
	if err != nil {
		return nil, err
	}

	trade.RecordConfirmation(userID)

	if trade.FullyConfirmed() {
		if err := s.execute(ctx, tx, trade); err != nil {
			return nil, err
		}
	}

	if err := tx.UpdateTrade(ctx, trade); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateTradeFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	if trade.Status == domain.TradeStatusCompleted {
		s.publish(ctx, event.TradeCompleted, trade, userID)
		log.Info(LogMsgTradeExecuted, "tradeID", tradeID)
	} else {
		s.publish(ctx, event.TradeConfirmed, trade, userID)
		log.Info(LogMsgConfirmRecorded, "tradeID", tradeID, "confirmations", len(trade.ConfirmedBy))
	}
	return trade, nil
}

// execute swaps one copy of each offered card between the participants.
// Runs inside the caller's transaction; inventory keys are read and
// written in sorted order so concurrent executions touching overlapping
// keys acquire row locks in the same sequence.
func (s *service) execute(ctx context.Context, tx repository.TradeTx, trade *domain.Trade) error {
	log := logger.FromContext(ctx)

	type key struct{ userID, cardID string }
	keys := []key{
		{trade.InitiatorID, trade.CardOfferedByInitiator},
		{trade.InitiatorID, trade.CardOfferedByResponder},
		{trade.ResponderID, trade.CardOfferedByInitiator},
		{trade.ResponderID, trade.CardOfferedByResponder},
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].userID != keys[j].userID {
			return keys[i].userID < keys[j].userID
		}
		return keys[i].cardID < keys[j].cardID
	})

	quantities := make(map[key]int, len(keys))
	for _, k := range keys {
		if _, done := quantities[k]; done {
			continue
		}
		qty, err := tx.GetQuantityForUpdate(ctx, k.userID, k.cardID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetQuantityFailed, err)
		}
		quantities[k] = qty
	}

	// Availability re-check: both sides must still hold what they
	// offered at proposal time.
	if quantities[key{trade.InitiatorID, trade.CardOfferedByInitiator}] < 1 {
		metrics.TradeExecutionsFailed.Inc()
		log.Warn(LogMsgExecutionFailed, "tradeID", trade.ID, "userID", trade.InitiatorID, "cardID", trade.CardOfferedByInitiator)
		return fmt.Errorf(ErrMsgUnavailableFmt, trade.InitiatorID, trade.CardOfferedByInitiator, domain.ErrCardNoLongerAvailable)
	}
	if quantities[key{trade.ResponderID, trade.CardOfferedByResponder}] < 1 {
		metrics.TradeExecutionsFailed.Inc()
		log.Warn(LogMsgExecutionFailed, "tradeID", trade.ID, "userID", trade.ResponderID, "cardID", trade.CardOfferedByResponder)
		return fmt.Errorf(ErrMsgUnavailableFmt, trade.ResponderID, trade.CardOfferedByResponder, domain.ErrCardNoLongerAvailable)
	}

	// The four adjustments of the swap. Applied to the local map first
	// so offering the same card on both sides nets out correctly.
	quantities[key{trade.InitiatorID, trade.CardOfferedByInitiator}]--
	quantities[key{trade.ResponderID, trade.CardOfferedByInitiator}]++
	quantities[key{trade.ResponderID, trade.CardOfferedByResponder}]--
	quantities[key{trade.InitiatorID, trade.CardOfferedByResponder}]++

	written := make(map[key]bool, len(keys))
	for _, k := range keys {
		if written[k] {
			continue
		}
		written[k] = true
		if err := tx.SetQuantity(ctx, k.userID, k.cardID, quantities[k]); err != nil {
			return fmt.Errorf(ErrMsgSetQuantityFailed, err)
		}
	}

	now := s.now()
	trade.Status = domain.TradeStatusCompleted
	trade.CompletedAt = &now
	return nil
}

// Decline rejects a pending trade. Either participant may decline.
func (s *service) Decline(ctx context.Context, tradeID, userID string) (*domain.Trade, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeclineCalled, "tradeID", tradeID, "userID", userID)

	trade, err := s.finalize(ctx, tradeID, userID, domain.TradeStatusDeclined, false)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, event.TradeDeclined, trade, userID)
	log.Info(LogMsgTradeDeclined, "tradeID", tradeID)
	return trade, nil
}

// Cancel withdraws a pending trade. Only the initiator may cancel.
func (s *service) Cancel(ctx context.Context, tradeID, userID string) (*domain.Trade, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCancelCalled, "tradeID", tradeID, "userID", userID)

	trade, err := s.finalize(ctx, tradeID, userID, domain.TradeStatusCancelled, true)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, event.TradeCancelled, trade, userID)
	log.Info(LogMsgTradeCancelled, "tradeID", tradeID)
	return trade, nil
}

// finalize moves a pending trade to a terminal state without touching
// inventory. Nothing was reserved, so there is nothing to release.
func (s *service) finalize(ctx context.Context, tradeID, userID string, status domain.TradeStatus, initiatorOnly bool) (*domain.Trade, error) {
	unlock := s.locks.LockKeys([]string{tradeKey(tradeID)})
	defer unlock()

	tx, err := s.trades.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	trade, err := s.lockPendingTrade(ctx, tx, tradeID, userID)
	if err != nil {
		return nil, err
	}
	if initiatorOnly && userID != trade.InitiatorID {
		return nil, fmt.Errorf(ErrMsgCancelNotInitiator, domain.ErrNotParticipant)
	}

	trade.Status = status
	if err := tx.UpdateTrade(ctx, trade); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateTradeFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}
	return trade, nil
}

// lockPendingTrade loads the trade under a row lock and verifies the
// caller may mutate it.
func (s *service) lockPendingTrade(ctx context.Context, tx repository.TradeTx, tradeID, userID string) (*domain.Trade, error) {
	trade, err := tx.GetTradeForUpdate(ctx, tradeID)
	if err != nil {
		if errors.Is(err, domain.ErrTradeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetTradeFailed, err)
	}
	if !trade.IsParticipant(userID) {
		return nil, fmt.Errorf(ErrMsgNotParticipantFmt, userID, domain.ErrNotParticipant)
	}
	if trade.IsTerminal() {
		return nil, fmt.Errorf(ErrMsgTerminalTradeFmt, trade.ID, trade.Status, domain.ErrInvalidState)
	}
	return trade, nil
}

func (s *service) GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetTradeCalled, "tradeID", tradeID)
	return s.trades.GetTrade(ctx, tradeID)
}

func (s *service) ListActiveTrades(ctx context.Context, userID string) ([]domain.Trade, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgListActiveCalled, "userID", userID)

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	trades, err := s.trades.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTradesFailed, err)
	}
	return trades, nil
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

func (s *service) publish(ctx context.Context, eventType event.Type, trade *domain.Trade, actorID string) {
	if s.bus == nil {
		return
	}
	evt := event.NewTradeEvent(eventType, trade.ID,
		trade.InitiatorID, trade.ResponderID,
		trade.CardOfferedByInitiator, trade.CardOfferedByResponder, actorID)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "eventType", eventType, "error", err)
	}
}

func tradeKey(tradeID string) string {
	return "trade:" + tradeID
}
