package main

import (
	"fmt"
	"log/slog"
	"os"

	"dronedelivery/cmd"
	"dronedelivery/internal/adapters/out/storage"

	"gorm.io/gorm"
)

type app struct {
	cfg    cmd.Config
	logger *slog.Logger
	db     *gorm.DB
}

// bootstrap loads the configuration and opens the database.
func bootstrap() (*app, error) {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}

	logger := cmd.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	db, err := storage.Open(cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (a *app) migrate() error {
	if err := storage.Migrate(a.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	a.logger.Info("Schema migrated", "driver", a.cfg.DBDriver)
	return nil
}
