// internal/app/bootstrap/run.go
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cinelog/cinelog/internal/app/catalog"
	"github.com/cinelog/cinelog/internal/app/console"
	"github.com/cinelog/cinelog/internal/app/gateway"
)

// Run drives the whole application lifecycle: configuration, MongoDB
// connection, schema setup, catalog load, the interactive session, and
// teardown. It returns nil on a clean exit; the caller turns any error
// into exit code 1.
func Run(ctx context.Context, logger *zap.Logger) error {
	coreCfg, appCfg, err := LoadConfig(logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := ValidateConfig(coreCfg, appCfg, logger); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := ConnectDB(ctx, appCfg, logger)
	if err != nil {
		return fmt.Errorf("connect to document store: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appCfg.ConnectTimeout)
		defer cancel()
		_ = Shutdown(shutdownCtx, deps, logger)
	}()

	if err := EnsureSchema(ctx, appCfg, deps, logger); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	cat := catalog.New()
	gw := gateway.New(deps.MongoDatabase, logger)

	loadCtx, cancel := context.WithTimeout(ctx, appCfg.SyncTimeout)
	err = gw.Load(loadCtx, cat)
	cancel()
	if err != nil {
		// A partial load is usable; the failed reads were reported.
		logger.Warn("catalog load was partial", zap.Error(err))
	}

	sess := console.New(cat, gw, os.Stdin, os.Stdout, logger)

	done := make(chan error, 1)
	go func() {
		done <- sess.Run(ctx)
	}()

	select {
	case err := <-done:
		// The Exit action has already flushed.
		return err
	case <-ctx.Done():
		// Interrupted: run the same flush the Exit action uses, then
		// tear down. The session goroutine is abandoned; it is blocked
		// on stdin and the process is about to end.
		logger.Info("signal received, flushing before shutdown")
		flushCtx, cancel := context.WithTimeout(context.Background(), appCfg.SyncTimeout)
		defer cancel()
		if err := gw.Flush(flushCtx, cat); err != nil {
			logger.Error("shutdown flush failed", zap.Error(err))
		}
		return nil
	}
}
