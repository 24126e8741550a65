package httpapi

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sufield/ghdid/internal/config"
)

// Start listens on cfg.Server.ListenAddr and serves handler in the background.
//
// Returns:
//   - addr: the bound address (useful with ":0")
//   - shutdown: function to gracefully stop the server
//   - error: if the listener cannot be bound
//
// The shutdown function is safe to call multiple times; later calls return
// the result of the first.
func Start(cfg config.FileConfig, handler http.Handler, logger *zap.Logger) (addr string, shutdown func() error, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ln, err := net.Listen("tcp", cfg.Server.ListenAddr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to listen on %s", cfg.Server.ListenAddr)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout(), // Prevent Slowloris attacks
	}

	go func() {
		// Only report non-graceful errors
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", zap.Error(err))
		}
	}()

	logger.Info("server listening", zap.String("addr", ln.Addr().String()))

	// Ensure shutdown is only executed once
	var shutdownOnce sync.Once
	var shutdownErr error

	shutdownFunc := func() error {
		shutdownOnce.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
			defer cancel()
			shutdownErr = srv.Shutdown(ctx)
		})
		return shutdownErr
	}

	return ln.Addr().String(), shutdownFunc, nil
}

// Run starts the server and blocks until ctx is done or the process receives
// SIGINT or SIGTERM, then shuts down gracefully.
func Run(ctx context.Context, cfg config.FileConfig, handler http.Handler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create context that listens for interrupt signals
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, shutdown, err := Start(cfg, handler, logger)
	if err != nil {
		return err
	}

	logger.Info("server running - press Ctrl+C to stop")

	<-ctx.Done()
	logger.Info("shutting down gracefully")

	return shutdown()
}
