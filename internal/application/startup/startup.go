// Package startup owns the boot sequence: logger, database, schema,
// dependency graph, HTTP server and graceful shutdown.
package startup

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/application/container"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	httpserver "github.com/pearlatelier/pearlsite-go/internal/presentation/http/server"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

const shutdownTimeout = 10 * time.Second

// Run boots the application and blocks until a shutdown signal.
func Run() error {
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Startup().Info("Starting pearlsite", "port", config.Port)

	perfTracker := performance.NewTracker(1000)

	driver, dsn := database.ResolveDSN()
	db, err := database.NewConnectionWithLogger(driver, dsn, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	logger.Startup().Info("Database connected", "driver", driver)

	tableCreator := database.NewTableCreator()
	if err := tableCreator.CreateSchema(db.DB); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := tableCreator.SeedInitialContent(db.DB); err != nil {
		return fmt.Errorf("failed to seed initial content: %w", err)
	}

	deps := container.New(db, logger, perfTracker)
	go deps.StatsBroadcaster.Run()
	defer deps.StatsBroadcaster.Stop()

	srv := httpserver.New(deps)
	errCh := make(chan error, 1)
	go func() {
		logger.Startup().Info("HTTP server listening", "addr", srv.Addr())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Shutdown().Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Shutdown().Error("Forced shutdown", "error", err.Error())
		return err
	}

	logger.Shutdown().Info("Server stopped cleanly")
	return nil
}
