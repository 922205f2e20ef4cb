package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pockettrader/pockettrader/internal/catalog"
)

// SyncCards loads, validates, and syncs the card catalog configuration to
// the database. Runs once at startup so the catalog table always mirrors
// the JSON config.
func SyncCards(ctx context.Context, catalogService catalog.Service, path string) error {
	slog.Info(LogMsgSyncingCards, "path", path)

	result, err := catalogService.Sync(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to sync card catalog: %w", err)
	}

	slog.Info(LogMsgCardsSynced, "cards", result.CardsSynced)
	return nil
}
