// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"testing"
	"time"

	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/generate"
	"github.com/gnames/scnet/pkg/random"
	"github.com/spf13/viper"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "scnet_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Database connection settings can be changed with SCNET_DATABASE_*
// environment variables, the database name is always TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	v := viper.New()
	v.SetEnvPrefix(config.AppName)
	v.AutomaticEnv()

	cfg := config.New()
	var opts []config.Option
	if s := v.GetString("database_host"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if i := v.GetInt("database_port"); i > 0 {
		opts = append(opts, config.OptDatabasePort(i))
	}
	if s := v.GetString("database_user"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := v.GetString("database_password"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SetupTempHome returns a config with HomeDir and output directory
// placed in a temporary directory removed after the test.
func SetupTempHome(t *testing.T) *config.Config {
	t.Helper()

	home := t.TempDir()
	cfg := GetTestConfig()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptOutputDir(home + "/samples"),
		config.OptLogDestination("stderr"),
	})
	return cfg
}

// Dataset returns a small deterministic network for writer tests.
func Dataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	gen := config.NewGeneration()
	gen.Seed = 42
	g, err := generate.New(gen, random.New(gen.Seed))
	if err != nil {
		t.Fatalf("cannot create generator: %v", err)
	}
	return g.Generate(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC))
}
