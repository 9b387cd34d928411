package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tripledger/internal/auth"
	"github.com/mmynk/tripledger/internal/cache"
	"github.com/mmynk/tripledger/internal/config"
	"github.com/mmynk/tripledger/internal/metrics"
	"github.com/mmynk/tripledger/internal/middleware"
	"github.com/mmynk/tripledger/internal/service"
	"github.com/mmynk/tripledger/internal/storage"
	"github.com/mmynk/tripledger/internal/storage/postgres"
	"github.com/mmynk/tripledger/internal/storage/sqlite"
	"github.com/mmynk/tripledger/pkg/logging"
	"github.com/mmynk/tripledger/pkg/tripv1/tripv1connect"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWith(cfg.Log.Level, cfg.Log.Format)
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.DatabaseConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.URL)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		return sqlite.New(cfg.Path)
	}
}

func openCache(ctx context.Context, cfg *config.Config) cache.BalanceCache {
	if !cfg.CacheEnabled() {
		return cache.Nop{}
	}
	c, err := cache.NewRedis(ctx, cfg.Redis.URL, cfg.Redis.TTL)
	if err != nil {
		slog.Warn("Balance cache disabled", "error", err)
		return cache.Nop{}
	}
	slog.Info("Balance cache enabled", "ttl", cfg.Redis.TTL)
	return c
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Database.Driver)

	balanceCache := openCache(ctx, cfg)
	defer balanceCache.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	tripSvc := service.NewTripService(store, balanceCache, cfg.Ledger.SettlementCurrency)

	mux := http.NewServeMux()

	// Register/Login run without a token; GetCurrentUser checks the context itself.
	authPath, authHandler := tripv1connect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store, slog.Default()),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(),
			middleware.OptionalAuth(jwtManager),
			middleware.LoggingInterceptor(),
		),
	)
	mux.Handle(authPath, authHandler)

	tripPath, tripHandler := tripv1connect.NewTripServiceHandler(tripSvc,
		connect.WithInterceptors(
			middleware.MetricsInterceptor(),
			middleware.RequireAuth(jwtManager),
			middleware.LoggingInterceptor(),
		),
	)
	mux.Handle(tripPath, tripHandler)

	mux.Handle(service.ExportPath, service.NewExportHandler(tripSvc, jwtManager))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	staticDir, err := filepath.Abs(cfg.Server.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms", "Content-Disposition"},
	})

	// h2c serves HTTP/2 without TLS for Connect clients
	handler := h2c.NewHandler(middleware.HTTPLogging(corsHandler.Handler(mux)), &http2.Server{})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// staticHandler serves the web client, falling back to index.html for
// unknown paths.
func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/tripledger.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}
