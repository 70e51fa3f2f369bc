// internal/cli/app.go
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/zamgas/zamgas-client/internal/adapters/filestore"
	"github.com/zamgas/zamgas-client/internal/adapters/memory"
	"github.com/zamgas/zamgas-client/internal/adapters/realtime"
	"github.com/zamgas/zamgas-client/internal/adapters/redis"
	"github.com/zamgas/zamgas-client/internal/adapters/repository"
	"github.com/zamgas/zamgas-client/internal/adapters/rest"
	"github.com/zamgas/zamgas-client/internal/application"
	"github.com/zamgas/zamgas-client/internal/config"
	"github.com/zamgas/zamgas-client/internal/logging"
	"github.com/zamgas/zamgas-client/internal/ports"
)

// app is everything a command needs, built once per invocation.
type app struct {
	cfg *config.Config
	log *log.Logger

	client     *rest.Client
	session    *application.SessionService
	auth       *application.AuthService
	orders     *application.OrderService
	poller     *application.PaymentPoller
	payments   *application.PaymentService
	subscriber *realtime.Subscriber

	// sessionExpired is set when a 401 cleared the session mid-command.
	sessionExpired bool
	closers        []func() error
}

func newApp(ctx context.Context, cfgFile string, v *viper.Viper, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(cfgFile, v)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: logging.New(stderr, cfg.LogLevel, cfg.LogFormat)}

	storage, cache, err := a.backends(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.session = application.NewSessionService(storage, a.log)
	a.client = rest.New(cfg.APIURL,
		rest.WithTimeout(cfg.HTTPTimeout),
		rest.WithTokenSource(a.session),
		rest.WithLogger(a.log),
		rest.WithUnauthorizedHandler(func(ctx context.Context, path string) {
			if a.auth.HandleUnauthorized(ctx, path) {
				a.sessionExpired = true
			}
		}),
	)
	a.auth = application.NewAuthService(a.client, a.session, a.log)
	a.orders = application.NewOrderService(a.client, cache, a.session, a.log)
	a.poller = application.NewPaymentPoller(a.client, cfg.Poll, a.log)
	a.payments = application.NewPaymentService(a.client, a.client, a.orders, a.poller, a.session, a.log)
	a.subscriber = realtime.NewSubscriber(cfg.WSURL, a.session.Token, a.log)

	a.session.Restore(ctx)
	return a, nil
}

// backends picks session storage and the order cache from configuration.
func (a *app) backends(ctx context.Context) (ports.StoragePort, ports.CachePort, error) {
	cfg := a.cfg
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.NewStorage(), memory.NewCache(), nil

	case config.StorageRedis:
		client := redis.NewClient(redis.Options{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.closers = append(a.closers, client.Close)
		cache := redis.NewCache(client, cfg.CacheTTL)
		if err := cache.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return redis.NewStorage(client, ""), cache, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		if err := db.PingContext(ctx); err != nil {
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		if err := repository.Migrate(ctx, db); err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresStorage(db, ""), memory.NewCache(), nil
	}
	return filestore.New(cfg.StoragePath), memory.NewCache(), nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.WithError(err).Debug("close failed")
		}
	}
	a.closers = nil
}
