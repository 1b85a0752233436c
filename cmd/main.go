package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/shaftdb/internal/adapters/http/api"
	"github.com/okian/shaftdb/internal/adapters/http/swagger"
	"github.com/okian/shaftdb/internal/adapters/repository"
	app "github.com/okian/shaftdb/internal/app"
	"github.com/okian/shaftdb/internal/config"
	"github.com/okian/shaftdb/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (.env -> defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store := repository.NewFileStore(cfg.StorePath, repository.WithLogger(loggerInstance))
	svc := app.New(store, app.WithLogger(loggerInstance))
	if err := svc.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start service", logger.String("store_path", cfg.StorePath), logger.Error(err))
		os.Exit(1)
	}
	if !svc.Status().Initialized {
		loggerInstance.Warn(ctx, "no catalog found; run the ingest command, then reload", logger.String("store_path", cfg.StorePath))
	}

	// SIGHUP re-reads the catalog file.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go reloadOnSignal(ctx, svc, hup)

	srv := newHTTPServer(ctx, cfg, svc)

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newHTTPServer wires the catalog API and the docs routes.
func newHTTPServer(ctx context.Context, cfg *config.Config, svc *app.Service) *http.Server {
	apiServer := api.NewServer(svc,
		api.WithLogger(logger.Get()),
		api.WithPageLimits(cfg.DefaultPageLimit, cfg.MaxPageLimit),
		api.WithMaxCompare(cfg.MaxCompare),
		api.WithRequestTimeout(cfg.RequestTimeout()))
	swagger.Register(ctx, apiServer.Router())

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           apiServer,
		ReadTimeout:       readTimeout,
		WriteTimeout:      cfg.RequestTimeout() + time.Second,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// reloadOnSignal reloads the catalog for every value received on sig until
// ctx is done. A failed reload keeps the current snapshot.
func reloadOnSignal(ctx context.Context, svc *app.Service, sig <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			if err := svc.Reload(ctx); err != nil {
				logger.Get().Warn(ctx, "reload on signal failed; keeping current catalog", logger.Error(err))
			}
		}
	}
}
