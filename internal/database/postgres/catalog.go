package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCard retrieves a card by ID. Returns nil if the card does not exist.
func (r *CatalogRepository) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	var c domain.Card
	err := r.db.QueryRow(ctx,
		`SELECT card_id, name, rarity, card_type, pack_name, image_url
		 FROM cards WHERE card_id = $1`, cardID).
		Scan(&c.ID, &c.Name, &c.Rarity, &c.Type, &c.PackName, &c.ImageURL)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get card: %v", domain.ErrStorageUnavailable, err)
	}
	return &c, nil
}

// ListCards returns catalog cards matching the filter, card ID ascending.
func (r *CatalogRepository) ListCards(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	query := `SELECT card_id, name, rarity, card_type, pack_name, image_url FROM cards WHERE 1=1`
	args := []any{}
	if filter.Rarity != "" {
		args = append(args, filter.Rarity)
		query += fmt.Sprintf(" AND rarity = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND card_type = $%d", len(args))
	}
	if filter.PackName != "" {
		args = append(args, filter.PackName)
		query += fmt.Sprintf(" AND pack_name = $%d", len(args))
	}
	query += " ORDER BY card_id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list cards: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Rarity, &c.Type, &c.PackName, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("%w: failed to scan card: %v", domain.ErrStorageUnavailable, err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// UpsertCard inserts or updates a catalog card. Used by the config sync
// at startup.
func (r *CatalogRepository) UpsertCard(ctx context.Context, card *domain.Card) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cards (card_id, name, rarity, card_type, pack_name, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (card_id) DO UPDATE SET
		   name = EXCLUDED.name,
		   rarity = EXCLUDED.rarity,
		   card_type = EXCLUDED.card_type,
		   pack_name = EXCLUDED.pack_name,
		   image_url = EXCLUDED.image_url`,
		card.ID, card.Name, card.Rarity, card.Type, card.PackName, card.ImageURL)
	if err != nil {
		return fmt.Errorf("%w: failed to upsert card: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
