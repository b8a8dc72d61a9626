package app

import (
	"context"
	"fmt"

	"wedding-rsvp-go/internal/config"
	"wedding-rsvp-go/internal/db"
	accountdomain "wedding-rsvp-go/internal/domain/account"
	accountstore "wedding-rsvp-go/internal/repository/gormstore/account"
	"wedding-rsvp-go/pkg/logger"
)

// Provision creates one owner account in the configured store. The secret is
// sealed with AUTH_SECRET_SCHEME, so it must match what the server runs with.
func Provision(ctx context.Context, log logger.Logger, input accountdomain.ProvisionInput) (*accountdomain.Account, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(dbConn); err != nil {
			log.Error("provision: close db failed", "err", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(dbConn, cfg.DB.Driver); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	accounts := accountdomain.NewService(accountstore.NewGorm(dbConn), accountdomain.SecretScheme(cfg.Auth.SecretScheme))
	created, err := accounts.Provision(ctx, input)
	if err != nil {
		return nil, err
	}
	log.Info("provision: account created", "account_id", created.ID, "username", created.Username, "scheme", cfg.Auth.SecretScheme)
	return created, nil
}
