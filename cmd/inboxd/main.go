// Command inboxd runs the notification inbox service: it consumes push
// envelopes from AMQP, normalizes and stores them, mirrors them to FCM,
// and serves the inbox plus a live SSE feed over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderlabs/pushkit/pkg/bridge"
	"github.com/wanderlabs/pushkit/pkg/config"
	"github.com/wanderlabs/pushkit/pkg/httpserver"
	"github.com/wanderlabs/pushkit/pkg/inbox"
	"github.com/wanderlabs/pushkit/pkg/inboxhttp"
)

type appConfig struct {
	InboxCap    int    `env:"INBOX_CAP" envDefault:"100"`
	StorageKind string `env:"INBOX_STORAGE" envDefault:"memory"` // memory, redis, postgres
	RedisURL    string `env:"INBOX_REDIS_URL"`
	PostgresURL string `env:"INBOX_POSTGRES_URL"`

	FCMCredentialsFile string `env:"FCM_CREDENTIALS_FILE"`
	FCMProjectID       string `env:"FCM_PROJECT_ID"`

	HTTP httpserver.Config
	AMQP bridge.AMQPSourceConfig
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(context.Background(), logger); err != nil {
		logger.Error("inboxd exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return err
	}

	box := inbox.New(storage,
		inbox.WithCap(cfg.InboxCap),
		inbox.WithLogger(logger),
	)

	var bridgeOpts []bridge.Option
	bridgeOpts = append(bridgeOpts, bridge.WithBridgeLogger(logger))
	if cfg.FCMCredentialsFile != "" {
		notifier, err := bridge.NewFCMNotifier(ctx, cfg.FCMCredentialsFile, cfg.FCMProjectID)
		if err != nil {
			return err
		}
		bridgeOpts = append(bridgeOpts, bridge.WithNotifier(notifier))
	}

	br := bridge.New(box, serverPlatform{}, bridgeOpts...)
	defer br.Close()

	source, err := bridge.NewAMQPSource(cfg.AMQP, bridge.WithAMQPLogger(logger))
	if err != nil {
		return err
	}
	defer source.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	consumeErr := make(chan error, 1)
	go func() { consumeErr <- source.Consume(ctx, br) }()

	svc := inboxhttp.NewService(box,
		inboxhttp.WithFeed(br),
		inboxhttp.WithLogger(logger),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, logger))
	r.Mount("/notifications", svc.Handle())

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(logger))

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Run(ctx, r) }()

	select {
	case err := <-consumeErr:
		cancel()
		<-serveErr
		return err
	case err := <-serveErr:
		cancel()
		return err
	}
}

func newStorage(ctx context.Context, cfg appConfig) (inbox.Storage, error) {
	switch cfg.StorageKind {
	case "redis":
		return inbox.NewRedisStorageFromURL(ctx, cfg.RedisURL)
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := inbox.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		return inbox.NewPGStorage(pool), nil
	case "memory":
		return inbox.NewMemoryStorage(), nil
	}
	return nil, errors.New("unknown INBOX_STORAGE: " + cfg.StorageKind)
}

// serverPlatform is the headless stand-in for a client host: delivery is
// always possible and permission prompts do not apply, so every check
// passes. Token issuance is not meaningful server-side.
type serverPlatform struct{}

func (serverPlatform) Supported() bool                         { return true }
func (serverPlatform) RequestPermission(context.Context) error { return nil }
func (serverPlatform) PermissionGranted(context.Context) bool  { return true }
func (serverPlatform) Token(context.Context) (string, error)   { return "", nil }
