// Package db declares contracts of PostgreSQL storage for generated
// networks. Implementations live in internal/iodb and internal/ioschema.
package db

import (
	"context"

	"github.com/gnames/scnet/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for writers that need CopyFrom for bulk inserts.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should ask for --force.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}

// SchemaManager creates the database schema with GORM AutoMigrate.
// Schema management is idempotent, it is safe to run it several times.
type SchemaManager interface {
	// Create creates or updates tables of all models.
	Create(ctx context.Context) error

	// Migrate brings tables of an existing database to the current
	// models. Data and extra columns are kept.
	Migrate(ctx context.Context) error
}
