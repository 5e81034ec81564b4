package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"hris/internal/domain/auth"
	"hris/internal/domain/hris"
	"hris/internal/platform/config"
	"hris/internal/platform/db"
	"hris/internal/transport/http/api"
	authhandler "hris/internal/transport/http/handlers/auth"
	hrishandler "hris/internal/transport/http/handlers/hris"
	"hris/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router chi.Router
}

// New wires the full application: database, migrations, seed, and routes.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	app := &App{Config: cfg, DB: pool}
	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) Close() {
	a.DB.Close()
}

func (a *App) buildRouter() chi.Router {
	cfg := a.Config
	isProd := cfg.Environment == "production"

	authStore := auth.NewStore(a.DB)
	hrisStore := hris.NewStore(a.DB)
	authHandler := authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL)
	crudHandler := hrishandler.NewHandler(hrisStore, cfg.DefaultPageSize, cfg.MaxPageSize)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders(isProd))
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", a.handleBanner(hrisStore))
	r.Get("/healthz", a.handleHealth)
	r.Get("/readyz", a.handleReady)
	r.Post("/token", authHandler.HandleToken)
	if !isProd {
		r.Get("/debug/users/{username}", authHandler.HandleDebugUser)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret, authStore))
		crudHandler.RegisterRoutes(r)
	})

	return r
}

// handleBanner reports the service name with live row counts. A count
// failure degrades the banner instead of failing the health probe role
// this endpoint also plays for smoke checks.
func (a *App) handleBanner(store *hris.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())

		banner := map[string]any{"message": "HRIS backend"}
		stats, err := store.Counts(r.Context())
		if err != nil {
			slog.Warn("banner counts failed", "err", err, "requestId", requestID)
			banner["stats"] = "unavailable"
		} else {
			banner["stats"] = stats
		}
		api.Success(w, banner, requestID)
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{"status": "ok"}, middleware.GetRequestID(r.Context()))
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.DB.Ping(ctx); err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "not_ready", "database unreachable", requestID)
		return
	}
	api.Success(w, map[string]any{"status": "ready"}, requestID)
}

// Run starts the HTTP server and blocks until shutdown.
func Run() error {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
