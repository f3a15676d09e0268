// Package app owns the service lifecycle: load users, serve, then flush on stop.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"auth_api/internal/config"
	"auth_api/internal/handlers"
	"auth_api/internal/logger"
	"auth_api/internal/repository"
	"auth_api/internal/repository/db"
	"auth_api/internal/server"
	"auth_api/internal/service"
)

// App holds the store, the listener and the goroutine serving it.
type App struct {
	cfg      *config.Config
	log      *logger.Logger
	services *service.Service
	handler  *handlers.Handler
	srv      *server.Server
	db       *sql.DB

	loaded   bool
	started  bool
	done     chan struct{}
	serveErr error
}

// New wires dependencies. Nothing is loaded or bound until Start.
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	persist, conn, err := openPersistence(cfg.Storage)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepository(persist)
	services := service.NewService(repos)

	return &App{
		cfg:      cfg,
		log:      log,
		services: services,
		handler:  handlers.NewHandler(services, log, cfg.Routing.Strict),
		srv:      &server.Server{},
		db:       conn,
	}, nil
}

func openPersistence(cfg config.StorageConfig) (repository.Persistence, *sql.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		conn, err := db.InitDB(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("init sqlite: %w", err)
		}
		return repository.NewUserSQLite(conn, cfg.SQLitePath), conn, nil
	case config.DriverJSON, "":
		return repository.NewUserFile(cfg.Path), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Start loads persisted users, binds the listener and serves in the background.
// A malformed users file aborts startup.
func (a *App) Start() error {
	if a.started {
		return errors.New("app already started")
	}

	n, err := a.services.Load()
	if err != nil {
		return err
	}
	a.loaded = true
	a.infow("users_loaded", "count", n, "from", a.services.Location())

	if err := a.srv.Listen(a.cfg.Server.Addr(), a.handler.InitRoutes()); err != nil {
		return err
	}
	a.infow("server_started", "addr", "http://"+a.srv.Addr()+"/")

	a.started = true
	a.done = make(chan struct{})
	go func() {
		defer close(a.done)
		a.serveErr = a.srv.Serve()
	}()
	return nil
}

// Addr is the bound listener address.
func (a *App) Addr() string {
	return a.srv.Addr()
}

// Done is closed when the serve loop exits. It is nil before Start.
func (a *App) Done() <-chan struct{} {
	return a.done
}

// Err is the serve loop's error; only meaningful after Done is closed.
func (a *App) Err() error {
	return a.serveErr
}

// Stop shuts the listener down, waits for the serve loop, then writes the store one last time.
// The final write is skipped if users were never loaded, so an unloaded store cannot
// overwrite the file. It takes the request lock, so a request still running after
// ctx expires finishes its own save first.
func (a *App) Stop(ctx context.Context) error {
	var errs []error

	if a.started {
		if err := a.srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
		}
		select {
		case <-a.done:
			if a.serveErr != nil {
				errs = append(errs, fmt.Errorf("serve: %w", a.serveErr))
			}
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("wait for serve loop: %w", ctx.Err()))
		}
		a.started = false
	}

	if a.loaded {
		if err := a.handler.Flush(); err != nil {
			errs = append(errs, err)
		} else {
			a.infow("users_saved", "to", a.services.Location())
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close sqlite: %w", err))
		}
		a.db = nil
	}
	return errors.Join(errs...)
}

func (a *App) infow(msg string, kv ...interface{}) {
	if a.log != nil {
		a.log.Infow(msg, kv...)
	}
}
