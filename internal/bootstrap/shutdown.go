package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhairyapractice/Solo-leveling/internal/server"
	"github.com/dhairyapractice/Solo-leveling/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Workers []*worker.ResetWorker
	DBPool  *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Reset workers (cancel pending timers, wait for in-flight resets)
// 3. Database pool (close connections once nothing needs them)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	for _, w := range components.Workers {
		if err := w.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabasePool)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
