package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/session"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	rediscache "github.com/baechuer/real-time-ressys/services/discovery-service/internal/infrastructure/caching/redis"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/infrastructure/localstore"
	rabbitpub "github.com/baechuer/real-time-ressys/services/discovery-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/infrastructure/seed"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/metrics"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/handlers"
	authmw "github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/router"
)

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server

	Catalog   *catalog.Store
	Sessions  *session.Store
	Forwarder *catalog.Forwarder

	closers []func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app init failed")
	}
	defer app.Close()

	go app.Forwarder.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.StorageDriver).Msg("listening")
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	case <-ctx.Done():
		zlog.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			zlog.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// 1) Infrastructure
	storage, ready, err := app.openStorage(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	// publisher wiring
	var pub catalog.EventPublisher = catalog.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("rabbit publisher init: %w", err)
		}
		app.closers = append(app.closers, p.Close)
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: catalog changes will not be published")
	}

	events, err := seed.Load(cfg.SeedFile)
	if err != nil {
		app.Close()
		return nil, err
	}

	verifier, err := session.NewDemoVerifier(session.DemoCredentials{
		Email:    cfg.DemoEmail,
		Password: cfg.DemoPassword,
		User: domain.User{
			ID:   cfg.DemoUserID,
			Name: cfg.DemoUserName,
			Role: domain.RoleOrganizer,
		},
	})
	if err != nil {
		app.Close()
		return nil, err
	}

	// 2) Application
	app.Catalog = catalog.New(events)
	app.Sessions = session.New(ctx, storage, verifier,
		session.WithKey(cfg.SessionKey),
		session.WithDelay(cfg.AuthDelay),
	)
	app.Forwarder = catalog.NewForwarder(pub, 0)
	app.Forwarder.Attach(app.Catalog)
	metrics.ObserveCatalog(app.Catalog)

	zlog.Info().Int("events", app.Catalog.Len()).Str("session", string(app.Sessions.Status())).Msg("stores ready")

	// 3) Transport
	auth := authmw.NewAuth(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL, app.Sessions)
	h := router.Handlers{
		Events:    handlers.NewEventsHandler(app.Catalog, cfg.PublicBaseURL),
		Filter:    handlers.NewFilterHandler(app.Catalog),
		Auth:      handlers.NewAuthHandler(app.Sessions, auth),
		Organizer: handlers.NewOrganizerHandler(app.Catalog),
		Health:    handlers.NewHealthHandler(ready),
	}

	// 4) Server
	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, auth, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
	return app, nil
}

// openStorage builds the session storage backend named by STORAGE_DRIVER and
// the readiness checks that go with it.
func (a *App) openStorage(ctx context.Context, cfg *config.Config) (session.Storage, map[string]handlers.Pinger, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return localstore.NewMemory(), nil, nil

	case config.StorageFile:
		f, err := localstore.NewFile(cfg.StorageFile)
		if err != nil {
			return nil, nil, fmt.Errorf("file storage: %w", err)
		}
		return f, nil, nil

	case config.StorageRedis:
		c, err := rediscache.New(cfg.RedisURL, "discovery:", 0)
		if err != nil {
			return nil, nil, fmt.Errorf("redis storage: %w", err)
		}
		a.closers = append(a.closers, c.Close)
		return c, map[string]handlers.Pinger{"redis": c}, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := db.PingContext(pctx); err != nil {
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		kv := postgres.NewKV(db)
		if err := kv.Migrate(pctx); err != nil {
			return nil, nil, fmt.Errorf("db migrate: %w", err)
		}
		return kv, map[string]handlers.Pinger{"postgres": dbPinger{db}}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// Close releases every opened backend in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zlog.Warn().Err(err).Msg("close failed")
		}
	}
	a.closers = nil
}

type dbPinger struct{ db *sql.DB }

func (p dbPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }
