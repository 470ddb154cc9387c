package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start runs the HTTP listener and returns a channel that is closed on a
// termination signal or when the listener fails.
func (a *App) Start() <-chan struct{} {
	a.goroutine.Go(a.ctx, "http server", func(context.Context) error {
		slog.Info("http server listening", "address", a.httpServer.Addr, "module", a.module)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			a.shutdown()
			return err
		}
		return nil
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

		select {
		case <-sigint:
			slog.Info("termination signal received")
		case <-a.ctx.Done():
		}

		a.shutdown()
	}()

	return a.terminate
}

func (a *App) shutdown() {
	a.once.Do(func() {
		close(a.terminate)
	})
}

func (a *App) Stop(ctx context.Context) {
	if err := a.closerFn["HTTP Server"](ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	if a.cancel != nil {
		a.cancel()
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}

	for name, closer := range a.closerFn {
		if name == "HTTP Server" {
			continue
		}
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}
