package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/database"
	"github.com/vancomm/minefield/internal/handlers"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/repository"
)

type App struct {
	logger     *logrus.Logger
	config     *config.Config
	router     *http.ServeMux
	db         *pgxpool.Pool
	migrations fs.FS
}

func New(logger *logrus.Logger, config *config.Config, migrations fs.FS) *App {
	return &App{
		logger:     logger,
		config:     config,
		router:     http.NewServeMux(),
		migrations: migrations,
	}
}

// Handler registers the routes served by repo and returns the router
// wrapped in the common middleware.
func (a *App) Handler(repo handlers.BoardRepository) http.Handler {
	a.loadRoutes(repo)
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(),
	)
}

// Start connects to the database, applies migrations and serves until ctx
// is cancelled.
func (a *App) Start(ctx context.Context) error {
	db, migrator, err := database.ConnectAndMigrate(ctx, a.config, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()
	defer migrator.Close()

	if version, dirty, err := migrator.Version(); err == nil {
		a.logger.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("database migrated")
	}

	a.db = db

	server := &http.Server{
		Addr:    a.config.ListenAddr(),
		Handler: a.Handler(repository.New(db)),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Infof("ready to serve @ %s", server.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(
			context.Background(), a.config.ShutdownTimeout.Duration,
		)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
