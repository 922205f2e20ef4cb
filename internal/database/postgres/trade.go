package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// TradeRepository implements the trade repository for PostgreSQL
type TradeRepository struct {
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{db: db}
}

// TradeTx implements repository.TradeTx. It spans trades and collections
// so dual-confirmation execution commits as one unit.
type TradeTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *TradeRepository) BeginTx(ctx context.Context) (repository.TradeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return &TradeTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *TradeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *TradeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const tradeColumns = `trade_id, initiator_id, responder_id,
	card_offered_by_initiator, card_offered_by_responder,
	status, confirmed_by, created_at, completed_at`

// GetTrade retrieves a trade by ID. Returns domain.ErrTradeNotFound when
// no such trade exists.
func (r *TradeRepository) GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1`, tradeID)
	return scanTrade(row)
}

// ListActiveByUser returns pending trades where the user is either party,
// newest first.
func (r *TradeRepository) ListActiveByUser(ctx context.Context, userID string) ([]domain.Trade, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tradeColumns+` FROM trades
		 WHERE status = $1 AND (initiator_id = $2 OR responder_id = $2)
		 ORDER BY created_at DESC`, domain.TradeStatusPending, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query trades: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var trades []domain.Trade
	for rows.Next() {
		t, err := scanTradeRow(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, *t)
	}
	return trades, rows.Err()
}

// CreateTrade persists a new trade
func (r *TradeRepository) CreateTrade(ctx context.Context, trade *domain.Trade) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO trades (`+tradeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		trade.ID, trade.InitiatorID, trade.ResponderID,
		trade.CardOfferedByInitiator, trade.CardOfferedByResponder,
		trade.Status, trade.ConfirmedBy, trade.CreatedAt, trade.CompletedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert trade: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// GetTradeForUpdate reads a trade under a row lock held for the rest of
// the transaction. Racing confirm/decline callers serialize here.
func (t *TradeTx) GetTradeForUpdate(ctx context.Context, tradeID string) (*domain.Trade, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1 FOR UPDATE`, tradeID)
	return scanTrade(row)
}

// UpdateTrade writes back status, confirmations and completion time.
func (t *TradeTx) UpdateTrade(ctx context.Context, trade *domain.Trade) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE trades SET status = $2, confirmed_by = $3, completed_at = $4
		 WHERE trade_id = $1`,
		trade.ID, trade.Status, trade.ConfirmedBy, trade.CompletedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to update trade: %v", domain.ErrStorageUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTradeNotFound
	}
	return nil
}

// GetQuantityForUpdate locks and reads one collection row within the
// trade transaction. Absent keys are materialized so the lock always
// lands on a real row.
func (t *TradeTx) GetQuantityForUpdate(ctx context.Context, userID, cardID string) (int, error) {
	return getQuantityForUpdate(ctx, t.tx, userID, cardID)
}

// SetQuantity writes a collection row within the trade transaction.
func (t *TradeTx) SetQuantity(ctx context.Context, userID, cardID string, quantity int) error {
	return setQuantity(ctx, t.tx, userID, cardID, quantity)
}

func scanTrade(row pgx.Row) (*domain.Trade, error) {
	t, err := scanTradeRow(row)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func scanTradeRow(row pgx.Row) (*domain.Trade, error) {
	var t domain.Trade
	err := row.Scan(&t.ID, &t.InitiatorID, &t.ResponderID,
		&t.CardOfferedByInitiator, &t.CardOfferedByResponder,
		&t.Status, &t.ConfirmedBy, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTradeNotFound
		}
		return nil, fmt.Errorf("%w: failed to scan trade: %v", domain.ErrStorageUnavailable, err)
	}
	return &t, nil
}
