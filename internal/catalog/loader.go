package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/repository"
	"github.com/pockettrader/pockettrader/internal/validation"
)

// Sentinel errors for the card loader
var (
	ErrDuplicateCardID = errors.New("duplicate card id")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the card catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Cards       []Def  `json:"cards"`
}

// Def represents a single card definition in the JSON
type Def struct {
	CardID   string `json:"card_id"`
	Name     string `json:"name"`
	Rarity   string `json:"rarity"`
	Type     string `json:"type"`
	PackName string `json:"pack_name"`
	ImageURL string `json:"image_url,omitempty"`
}

// Loader handles loading and validating card configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog) (*SyncResult, error)
}

// SyncResult contains the result of syncing cards to the database
type SyncResult struct {
	CardsSynced int
}

type cardLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &cardLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a card catalog JSON file
func (l *cardLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, CardsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks the card configuration for errors
func (l *cardLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Cards) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoCardsDefined)
	}

	cardIDs := make(map[string]bool, len(config.Cards))
	for i := range config.Cards {
		card := &config.Cards[i]

		if card.CardID == "" {
			return fmt.Errorf(ErrFmtCardAtIndexEmptyID, ErrInvalidConfig, i)
		}
		if cardIDs[card.CardID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateCardID, card.CardID)
		}
		cardIDs[card.CardID] = true

		for field, value := range map[string]string{
			"name":      card.Name,
			"rarity":    card.Rarity,
			"type":      card.Type,
			"pack_name": card.PackName,
		} {
			if value == "" {
				return fmt.Errorf(ErrFmtCardMissingField, ErrInvalidConfig, card.CardID, field)
			}
		}
	}
	return nil
}

// SyncToDatabase upserts every configured card. Cards removed from the
// config are deliberately left in place: collections may still
// reference them.
func (l *cardLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(config); err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for i := range config.Cards {
		def := &config.Cards[i]
		card := &domain.Card{
			ID:       def.CardID,
			Name:     def.Name,
			Rarity:   def.Rarity,
			Type:     def.Type,
			PackName: def.PackName,
			ImageURL: def.ImageURL,
		}
		if err := repo.UpsertCard(ctx, card); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertCardFailed, def.CardID, err)
		}
		result.CardsSynced++
	}

	log.Info(LogMsgCatalogSynced, "cards", result.CardsSynced, "version", config.Version)
	return result, nil
}
