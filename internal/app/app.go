package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"wedding-rsvp-go/internal/config"
	"wedding-rsvp-go/internal/db"
	accountdomain "wedding-rsvp-go/internal/domain/account"
	guestdomain "wedding-rsvp-go/internal/domain/guest"
	accountstore "wedding-rsvp-go/internal/repository/gormstore/account"
	gueststore "wedding-rsvp-go/internal/repository/gormstore/guest"
	"wedding-rsvp-go/internal/tracing"
	"wedding-rsvp-go/internal/transport/httpserver"
	"wedding-rsvp-go/internal/transport/httpserver/handler"
	"wedding-rsvp-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	shutdown   tracing.ShutdownFunc
	log        logger.Logger
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing tracing")
	shutdown, err := tracing.Setup(ctx, cfg.Tracing, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations", "driver", cfg.DB.Driver)
		if err := db.Migrate(dbConn, cfg.DB.Driver); err != nil {
			_ = db.Close(dbConn)
			_ = shutdown(ctx)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	accounts := accountdomain.NewService(accountstore.NewGorm(dbConn), accountdomain.SecretScheme(cfg.Auth.SecretScheme))
	guests := guestdomain.NewService(gueststore.NewGorm(dbConn))

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handler.New(accounts, guests, log), log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		shutdown:   shutdown,
		log:        log,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

// Close releases the storage handle and flushes pending spans.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := db.Close(a.db); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	}
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracing: %w", err))
		}
	}
	return errors.Join(errs...)
}
