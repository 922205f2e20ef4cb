package bootstrap

import (
	"context"
	"log/slog"

	"github.com/pockettrader/pockettrader/internal/server"
)

// GracefulShutdown stops the HTTP server, letting in-flight requests finish
// within the context deadline. Trade execution is transactional, so there is
// no separate flush step: a request either committed or it did not.
func GracefulShutdown(ctx context.Context, srv *server.Server) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
