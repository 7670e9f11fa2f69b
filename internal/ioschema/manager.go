// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/scnet/pkg/db"
	"github.com/gnames/scnet/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the db.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) db.SchemaManager {
	return &manager{operator: op}
}

// Create creates or updates tables of generated networks
// using GORM AutoMigrate.
func (m *manager) Create(ctx context.Context) error {
	if err := m.autoMigrate(ctx, CreateSchemaError); err != nil {
		return err
	}
	slog.Info("Schema created", "tables", len(schema.AllModels()))
	return nil
}

// Migrate runs the same AutoMigrate on a database that already has
// tables. AutoMigrate only adds tables, columns and indexes.
func (m *manager) Migrate(ctx context.Context) error {
	if err := m.autoMigrate(ctx, MigrateSchemaError); err != nil {
		return err
	}
	slog.Info("Schema migrated", "tables", len(schema.AllModels()))
	return nil
}

// autoMigrate wraps AutoMigrate failures with wrapErr.
func (m *manager) autoMigrate(
	ctx context.Context,
	wrapErr func(error) error,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return wrapErr(err)
	}
	return nil
}
