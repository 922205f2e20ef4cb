package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pockettrader/pockettrader/internal/database/memory"
	"github.com/pockettrader/pockettrader/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Version: "1.0",
		Cards: []Def{
			{CardID: "c001", Name: "Ember Fox", Rarity: "rare", Type: "fire", PackName: "origins"},
			{CardID: "c002", Name: "Tide Koi", Rarity: "common", Type: "water", PackName: "origins"},
		},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	assert.NoError(t, NewLoader().Validate(validConfig()))
}

func TestValidateRejectsNilAndEmpty(t *testing.T) {
	l := NewLoader()
	assert.ErrorIs(t, l.Validate(nil), ErrInvalidConfig)
	assert.ErrorIs(t, l.Validate(&Config{Version: "1.0"}), ErrInvalidConfig)
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	cfg := validConfig()
	cfg.Cards = append(cfg.Cards, cfg.Cards[0])
	assert.ErrorIs(t, NewLoader().Validate(cfg), ErrDuplicateCardID)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cfg := validConfig()
	cfg.Cards[1].Rarity = ""
	assert.ErrorIs(t, NewLoader().Validate(cfg), ErrInvalidConfig)

	cfg = validConfig()
	cfg.Cards[0].CardID = ""
	assert.ErrorIs(t, NewLoader().Validate(cfg), ErrInvalidConfig)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestSyncToDatabase(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	result, err := NewLoader().SyncToDatabase(ctx, validConfig(), store)
	require.NoError(t, err)
	assert.Equal(t, 2, result.CardsSynced)

	card, err := store.GetCard(ctx, "c001")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "Ember Fox", card.Name)
}

func TestServiceGetCardCachesLookups(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.UpsertCard(ctx, &domain.Card{
		ID: "c001", Name: "Ember Fox", Rarity: "rare", Type: "fire", PackName: "origins",
	}))

	svc := NewService(store)

	card, err := svc.GetCard(ctx, "c001")
	require.NoError(t, err)
	assert.Equal(t, "Ember Fox", card.Name)

	// Second lookup is served from cache even if the row disappears.
	require.NoError(t, store.UpsertCard(ctx, &domain.Card{
		ID: "c001", Name: "Renamed", Rarity: "rare", Type: "fire", PackName: "origins",
	}))
	card, err = svc.GetCard(ctx, "c001")
	require.NoError(t, err)
	assert.Equal(t, "Ember Fox", card.Name)
}

func TestServiceGetCardNotFound(t *testing.T) {
	svc := NewService(memory.NewStore())
	_, err := svc.GetCard(context.Background(), "c999")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestServiceListCardsFilters(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.UpsertCard(ctx, &domain.Card{ID: "c001", Name: "A", Rarity: "rare", Type: "fire", PackName: "origins"}))
	require.NoError(t, store.UpsertCard(ctx, &domain.Card{ID: "c002", Name: "B", Rarity: "common", Type: "water", PackName: "origins"}))

	svc := NewService(store)
	cards, err := svc.ListCards(ctx, domain.CardFilter{Rarity: "rare"})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "c001", cards[0].ID)
}
