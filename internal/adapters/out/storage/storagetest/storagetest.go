// Package storagetest opens migrated databases for tests.
package storagetest

import (
	"context"
	"testing"
	"time"

	"dronedelivery/internal/adapters/out/storage"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// NewSQLite returns a private, migrated in-memory database closed at test end.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := storage.Open(storage.Options{Driver: storage.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// PostgresContainer is a running PostgreSQL with the schema migrated.
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres launches a disposable PostgreSQL container.
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := storage.Open(storage.Options{Driver: storage.DriverPostgres, URL: connStr})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	if err = storage.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &PostgresContainer{Container: container, DB: db}, nil
}

// Truncate empties every table between tests.
func (p *PostgresContainer) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE drone_missions, order_items, orders, products, users CASCADE").Error
}

func (p *PostgresContainer) Terminate(ctx context.Context) error {
	if sqlDB, err := p.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return p.Container.Terminate(ctx)
}
