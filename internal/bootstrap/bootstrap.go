// Package bootstrap is the composition root of the crrd server. It turns a
// validated configuration into a running application: storage, optional
// Redis, adapters, services, handlers, background workers and the HTTP
// server.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/crrd/internal/adapter"
	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/handler"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/ratelimit"
	"github.com/MKhiriev/crrd/internal/server"
	"github.com/MKhiriev/crrd/internal/service"
	"github.com/MKhiriev/crrd/internal/store"
	"github.com/MKhiriev/crrd/internal/workers"
	"github.com/MKhiriev/crrd/models"
)

// App holds every long-lived component of a running server.
type App struct {
	handlers *handler.Handlers
	server   server.Server
	workers  *workers.Workers

	closers []func() error
	logger  *logger.Logger
}

type options struct {
	mailer adapter.Mailer
}

// Option customises [New].
type Option func(*options)

// WithMailer replaces the mailer chosen from configuration. Mails still go
// through the background queue, so they are only delivered while Run is
// active.
func WithMailer(m adapter.Mailer) Option {
	return func(o *options) {
		o.mailer = m
	}
}

// New wires the application. On error every resource opened so far is
// released.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) (_ *App, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{logger: log}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("migrations applied")

	storages := store.Storages{
		UserRepository: store.NewUserRepository(db, log),
	}

	var (
		limiter           ratelimit.Limiter
		backgroundWorkers []workers.Worker
	)
	if cfg.RedisEnabled() {
		client, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)

		storages.SessionStorage = store.NewRedisSessionStorage(client, log)
		limiter = ratelimit.NewRedisLimiter(client, log)
	} else {
		storages.SessionStorage = store.NewSQLSessionStorage(db, log)
		limiter = ratelimit.NewMemoryLimiter()
	}
	a.closers = append(a.closers, func() error {
		limiter.Close()
		return nil
	})

	mailer := o.mailer
	if mailer == nil {
		if cfg.MailEnabled() {
			mailer = adapter.NewSMTPMailer(cfg.Mail, log)
		} else {
			log.Warn().Msg("SMTP is not configured, reset mails are written to the log")
			mailer = adapter.NewLogMailer(log)
		}
	}
	mailQueue := workers.NewMailQueue(mailer, workers.DefaultMailQueueSize, log)
	backgroundWorkers = append(backgroundWorkers, mailQueue)

	adapters := service.Adapters{Mailer: mailQueue}
	if cfg.AvatarsEnabled() {
		adapters.AvatarStorage, err = adapter.NewS3AvatarStorage(ctx, cfg.Avatars, log)
		if err != nil {
			return nil, fmt.Errorf("error creating avatar storage: %w", err)
		}
	}

	services := service.NewServices(storages, adapters, *cfg, buildInfo, log)

	if !cfg.RedisEnabled() && cfg.Session.SweepInterval > 0 {
		backgroundWorkers = append(backgroundWorkers, workers.NewSessionSweeperWorker(services.SessionService, cfg.Session.SweepInterval, log))
	}
	a.workers = workers.NewWorkers(backgroundWorkers...)

	a.handlers, err = handler.NewHandlers(services, handler.Dependencies{
		Limiter: limiter,
		Health:  storages.UserRepository,
	}, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	a.server, err = server.NewServer(a.handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return a, nil
}

// Run starts the background workers and serves HTTP until ctx is cancelled.
// It returns after both have stopped.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.workers.Run(ctx)
	}()

	err := a.server.RunServer(ctx)

	cancel()
	wg.Wait()

	return err
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
