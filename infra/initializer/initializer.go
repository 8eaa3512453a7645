// Package initializer wires configuration, storage and the account
// use-cases into a ready-to-use application.
package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/finance/infra"
	accountrepo "github.com/amirasaad/finance/infra/repository/account"
	"github.com/amirasaad/finance/pkg/config"
	"github.com/amirasaad/finance/pkg/domain"
	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/eventbus"
	repository "github.com/amirasaad/finance/pkg/repository/account"
	accountsvc "github.com/amirasaad/finance/pkg/service/account"
	"gorm.io/gorm"
)

// Options tweak Initialize.
type Options struct {
	// Memory replaces the SQL store with an in-process one.
	Memory bool
	// LogOutput receives log lines. Defaults to stderr.
	LogOutput io.Writer
}

// Deps is the wired application.
type Deps struct {
	Config   *config.App
	Logger   *slog.Logger
	DB       *gorm.DB
	Repo     repository.Repository
	EventBus eventbus.EventBus
	Accounts *accountsvc.UseCases
}

// Initialize builds every dependency from cfg. Callers must Close the result.
func Initialize(ctx context.Context, cfg *config.App, opts Options) (*Deps, error) {
	if cfg == nil {
		return nil, errors.New("initializer: nil config")
	}
	logger := NewLogger(cfg.Log, opts.LogOutput)
	slog.SetDefault(logger)

	deps := &Deps{Config: cfg, Logger: logger}
	if opts.Memory {
		deps.Repo = accountrepo.NewMemory()
	} else {
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		repo, err := accountrepo.NewSQL(ctx, db, logger)
		if err != nil {
			closeDB(db)
			return nil, err
		}
		deps.DB = db
		deps.Repo = repo
	}

	bus := eventbus.NewSimpleEventBus()
	bus.Subscribe(account.EventTypeUpdated, func(_ context.Context, e domain.Event) {
		if evt, ok := e.(account.UpdatedEvent); ok {
			logger.Debug("account updated", "id", evt.Account.ID(), "at", evt.Timestamp)
		}
	})
	deps.EventBus = bus

	deps.Accounts = accountsvc.New(accountsvc.Deps{
		Repo:     deps.Repo,
		EventBus: bus,
		Logger:   logger,
	})
	logger.Debug("dependencies initialized", "env", cfg.Env, "memory", opts.Memory)
	return deps, nil
}

// Close releases the database connection, if any.
func (d *Deps) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
