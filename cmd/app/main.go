package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pockettrader/pockettrader/internal/bootstrap"
	"github.com/pockettrader/pockettrader/internal/catalog"
	"github.com/pockettrader/pockettrader/internal/config"
	"github.com/pockettrader/pockettrader/internal/database"
	"github.com/pockettrader/pockettrader/internal/inventory"
	"github.com/pockettrader/pockettrader/internal/matching"
	"github.com/pockettrader/pockettrader/internal/server"
	"github.com/pockettrader/pockettrader/internal/trade"
	"github.com/pockettrader/pockettrader/internal/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx := context.Background()

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	var repos *bootstrap.Repositories
	var dbPool database.Pool

	if cfg.Store == config.StorePostgres {
		pool, err := database.NewPool(cfg.GetDBConnString(),
			database.DefaultMaxConnections,
			database.DefaultMaxConnIdleTime,
			database.DefaultMaxConnLifetime)
		if err != nil {
			return err
		}
		defer pool.Close()

		repos = bootstrap.InitializePostgresRepositories(pool)
		dbPool = pool
	} else {
		slog.Info(bootstrap.LogMsgUsingMemoryStore)
		repos = bootstrap.InitializeMemoryRepositories()
		dbPool = bootstrap.NewMemoryPool()
	}

	catalogService := catalog.NewService(repos.Catalog)
	if err := bootstrap.SyncCards(ctx, catalogService, cfg.CardsPath); err != nil {
		return err
	}

	userService := user.NewService(repos.User)
	inventoryService := inventory.NewService(repos.Inventory, repos.User, repos.Catalog)
	matchingService := matching.NewService(repos.Inventory, repos.User)
	tradeService := trade.NewService(repos.Trade, repos.Inventory, repos.User, repos.Catalog, publisher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		userService, inventoryService, catalogService, matchingService, tradeService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Signal received, shutting down", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv)

	return nil
}
