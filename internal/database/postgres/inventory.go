package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// InventoryTx implements repository.InventoryTx
type InventoryTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	return &InventoryTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *InventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *InventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetQuantity returns the owned quantity for one (user, card) key.
// Absent rows read as zero.
func (r *InventoryRepository) GetQuantity(ctx context.Context, userID, cardID string) (int, error) {
	return getQuantity(ctx, r.db, userID, cardID)
}

// ListCollection returns every owned card for a user, card ID ascending.
func (r *InventoryRepository) ListCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, card_id, quantity FROM collections
		 WHERE user_id = $1 ORDER BY card_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query collection: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	return scanCollectionEntries(rows)
}

// ListSurplus returns all rows holding tradeable copies, ordered by
// (card_id, user_id) so finder output is deterministic.
func (r *InventoryRepository) ListSurplus(ctx context.Context) ([]domain.CollectionEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, card_id, quantity FROM collections
		 WHERE quantity >= $1 ORDER BY card_id, user_id`, domain.SurplusThreshold)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query surplus: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	return scanCollectionEntries(rows)
}

// ListWishlist returns the card IDs a user has wishlisted, ascending.
func (r *InventoryRepository) ListWishlist(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT card_id FROM wishlists WHERE user_id = $1 ORDER BY card_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query wishlist: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var cardIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: failed to scan wishlist row: %v", domain.ErrStorageUnavailable, err)
		}
		cardIDs = append(cardIDs, id)
	}
	return cardIDs, rows.Err()
}

// ListAllWishlists returns every wishlist entry across all users.
func (r *InventoryRepository) ListAllWishlists(ctx context.Context) ([]domain.WishlistEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, card_id FROM wishlists ORDER BY user_id, card_id`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query wishlists: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var entries []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		if err := rows.Scan(&e.UserID, &e.CardID); err != nil {
			return nil, fmt.Errorf("%w: failed to scan wishlist row: %v", domain.ErrStorageUnavailable, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddWishlist inserts a wishlist entry. Adding an existing entry is a
// no-op success.
func (r *InventoryRepository) AddWishlist(ctx context.Context, userID, cardID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO wishlists (user_id, card_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, card_id) DO NOTHING`, userID, cardID)
	if err != nil {
		return fmt.Errorf("%w: failed to add wishlist entry: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// RemoveWishlist deletes a wishlist entry. Removing an absent entry is a
// no-op success.
func (r *InventoryRepository) RemoveWishlist(ctx context.Context, userID, cardID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM wishlists WHERE user_id = $1 AND card_id = $2`, userID, cardID)
	if err != nil {
		return fmt.Errorf("%w: failed to remove wishlist entry: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// GetQuantityForUpdate reads a quantity under a row lock held for the
// rest of the transaction.
func (t *InventoryTx) GetQuantityForUpdate(ctx context.Context, userID, cardID string) (int, error) {
	return getQuantityForUpdate(ctx, t.tx, userID, cardID)
}

// SetQuantity writes the new quantity. Zero removes the row.
func (t *InventoryTx) SetQuantity(ctx context.Context, userID, cardID string, quantity int) error {
	return setQuantity(ctx, t.tx, userID, cardID, quantity)
}

func getQuantity(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, userID, cardID string) (int, error) {
	var quantity int
	err := q.QueryRow(ctx,
		`SELECT quantity FROM collections WHERE user_id = $1 AND card_id = $2`,
		userID, cardID).Scan(&quantity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: failed to query quantity: %v", domain.ErrStorageUnavailable, err)
	}
	return quantity, nil
}

// rowLockAttempts bounds the insert-then-lock loop in
// getQuantityForUpdate against repeated concurrent deletes of the key.
const rowLockAttempts = 3

// getQuantityForUpdate locks one (user, card) row for the rest of the
// transaction. FOR UPDATE on an absent row locks nothing, so two
// transactions adjusting a not-yet-existing key would both read zero
// unlocked and overwrite each other's write. The key is therefore
// materialized as a zero row first; writing zero back later deletes it
// again, so committed rows stay positive.
func getQuantityForUpdate(ctx context.Context, tx pgx.Tx, userID, cardID string) (int, error) {
	for attempt := 0; attempt < rowLockAttempts; attempt++ {
		if _, err := tx.Exec(ctx,
			`INSERT INTO collections (user_id, card_id, quantity) VALUES ($1, $2, 0)
			 ON CONFLICT (user_id, card_id) DO NOTHING`, userID, cardID); err != nil {
			return 0, fmt.Errorf("%w: failed to materialize collection row: %v", domain.ErrStorageUnavailable, err)
		}

		var quantity int
		err := tx.QueryRow(ctx,
			`SELECT quantity FROM collections WHERE user_id = $1 AND card_id = $2 FOR UPDATE`,
			userID, cardID).Scan(&quantity)
		if err == nil {
			return quantity, nil
		}
		// ErrNoRows here means a concurrent transaction deleted the row
		// between the materializing insert and the lock. Re-materialize.
		if err != pgx.ErrNoRows {
			return 0, fmt.Errorf("%w: failed to query quantity: %v", domain.ErrStorageUnavailable, err)
		}
	}
	return 0, fmt.Errorf("%w: could not lock collection row for user %s card %s",
		domain.ErrStorageUnavailable, userID, cardID)
}

func setQuantity(ctx context.Context, tx pgx.Tx, userID, cardID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity %d for user %s card %s",
			domain.ErrInsufficientQuantity, quantity, userID, cardID)
	}

	if quantity == 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM collections WHERE user_id = $1 AND card_id = $2`, userID, cardID); err != nil {
			return fmt.Errorf("%w: failed to delete collection row: %v", domain.ErrStorageUnavailable, err)
		}
		return nil
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO collections (user_id, card_id, quantity) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, card_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		userID, cardID, quantity); err != nil {
		return fmt.Errorf("%w: failed to upsert collection row: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func scanCollectionEntries(rows pgx.Rows) ([]domain.CollectionEntry, error) {
	var entries []domain.CollectionEntry
	for rows.Next() {
		var e domain.CollectionEntry
		if err := rows.Scan(&e.UserID, &e.CardID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("%w: failed to scan collection row: %v", domain.ErrStorageUnavailable, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
