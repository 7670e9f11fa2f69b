// Package config provides configuration management for scnet.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Generation: bounding box, counts, ranges, probabilities, catalog
//   - Output: format, dir
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use SCNET_ prefix with underscores for nesting:
//
//	SCNET_GENERATION_PLANTS=5
//	SCNET_GENERATION_ROUTE_RATE=0.5
//	SCNET_OUTPUT_FORMAT=sqlite
//	SCNET_DATABASE_HOST=localhost
//	SCNET_LOG_LEVEL=debug
package config

import (
	"runtime"
)

// Config represents the complete scnet configuration.
type Config struct {
	// Generation contains parameters of the synthetic network.
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation"`

	// Output determines how and where a generated dataset is saved.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Database contains PostgreSQL connection settings used by
	// the postgres output format.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for writers that
	// save tables in parallel.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `mapstructure:"min" yaml:"min"`
	Max int `mapstructure:"max" yaml:"max"`
}

// FloatRange is a real interval, sampled uniformly.
type FloatRange struct {
	Min float64 `mapstructure:"min" yaml:"min"`
	Max float64 `mapstructure:"max" yaml:"max"`
}

// GenerationConfig keeps all parameters of a generation run.
type GenerationConfig struct {
	// Lat is the latitude interval (degrees) for plants and customers.
	Lat FloatRange `mapstructure:"lat" yaml:"lat"`

	// Lon is the longitude interval (degrees) for plants and customers.
	Lon FloatRange `mapstructure:"lon" yaml:"lon"`

	// Periods is the horizon length, one period per day starting today.
	Periods int `mapstructure:"periods" yaml:"periods"`

	// Plants is the number of production plants.
	Plants int `mapstructure:"plants" yaml:"plants"`

	// Customers is the number of customers.
	Customers int `mapstructure:"customers" yaml:"customers"`

	// PlantStorage is the storage capacity interval of plants.
	PlantStorage Range `mapstructure:"plant_storage" yaml:"plant_storage"`

	// DistCenterStorage is the storage capacity interval of
	// distribution centers.
	DistCenterStorage Range `mapstructure:"dist_center_storage" yaml:"dist_center_storage"`

	// DistCentersPerPlant is the number of distribution centers
	// attached to every plant.
	DistCentersPerPlant Range `mapstructure:"dist_centers_per_plant" yaml:"dist_centers_per_plant"`

	// DistCenterOffset is the maximum offset in degrees of a
	// distribution center from its plant, per axis.
	DistCenterOffset float64 `mapstructure:"dist_center_offset" yaml:"dist_center_offset"`

	// LinesPerPlant is the number of production lines of a plant.
	LinesPerPlant Range `mapstructure:"lines_per_plant" yaml:"lines_per_plant"`

	// RouteRate is the probability of a plant to serve a customer.
	RouteRate float64 `mapstructure:"route_rate" yaml:"route_rate"`

	// Sizes is the catalog of product sizes.
	Sizes []string `mapstructure:"sizes" yaml:"sizes"`

	// ProductsPerSize is the number of products of every size.
	ProductsPerSize int `mapstructure:"products_per_size" yaml:"products_per_size"`

	// FreightPerKm is the average freight cost per kilometer.
	FreightPerKm float64 `mapstructure:"freight_per_km" yaml:"freight_per_km"`

	// FreightNoise is the interval of the per-run freight offset.
	FreightNoise FloatRange `mapstructure:"freight_noise" yaml:"freight_noise"`

	// DailyDistanceKm is the average distance traveled in one day.
	DailyDistanceKm float64 `mapstructure:"daily_distance_km" yaml:"daily_distance_km"`

	// CapabilitySwitch is the probability of a line to switch its
	// size for the next period.
	CapabilitySwitch float64 `mapstructure:"capability_switch" yaml:"capability_switch"`

	// BaseRate is the interval of per-size base production rates.
	BaseRate FloatRange `mapstructure:"base_rate" yaml:"base_rate"`

	// RateNoise is the interval of per-row production rate offsets.
	RateNoise FloatRange `mapstructure:"rate_noise" yaml:"rate_noise"`

	// LotSize is the size of one truck load in units.
	LotSize int `mapstructure:"lot_size" yaml:"lot_size"`

	// DemandLots is the number of lots in one demand row.
	DemandLots Range `mapstructure:"demand_lots" yaml:"demand_lots"`

	// EligibleProducts is the size of a customer's eligible
	// product set, clamped by the catalog size.
	EligibleProducts Range `mapstructure:"eligible_products" yaml:"eligible_products"`

	// ActiveProducts is the number of products with demand in one
	// period, clamped by the eligible set size.
	ActiveProducts Range `mapstructure:"active_products" yaml:"active_products"`

	// Seed of the random source. Zero means a time-based seed.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// OutputConfig determines the destination of a dataset.
type OutputConfig struct {
	// Format is one of 'xlsx', 'sqlite', 'json', 'postgres'.
	Format string `mapstructure:"format" yaml:"format"`

	// Dir is the directory for file-based formats.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows per progress step of bulk
	// operations.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Generation: NewGeneration(),
		Output: OutputConfig{
			Format: "xlsx",
			Dir:    "samples",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "scnet",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// NewGeneration returns default generation parameters. They describe
// a small network roughly covering South America, avoiding oceans.
func NewGeneration() GenerationConfig {
	return GenerationConfig{
		Lat:                 FloatRange{Min: -33, Max: -3},
		Lon:                 FloatRange{Min: -70, Max: -45},
		Periods:             7,
		Plants:              3,
		Customers:           15,
		PlantStorage:        Range{Min: 50_000_000, Max: 150_000_000},
		DistCenterStorage:   Range{Min: 10_000_000, Max: 30_000_000},
		DistCentersPerPlant: Range{Min: 0, Max: 3},
		DistCenterOffset:    2,
		LinesPerPlant:       Range{Min: 2, Max: 4},
		RouteRate:           0.7,
		Sizes: []string{
			"9.1oz Sleek",
			"12oz",
			"12oz Sleek",
			"16oz",
			"24oz",
		},
		ProductsPerSize:  5,
		FreightPerKm:     7.1,
		FreightNoise:     FloatRange{Min: -1, Max: 1},
		DailyDistanceKm:  400,
		CapabilitySwitch: 0.1,
		BaseRate:         FloatRange{Min: 1_500_000, Max: 3_000_000},
		RateNoise:        FloatRange{Min: 200_000, Max: 700_000},
		LotSize:          200_000, // one truck load
		DemandLots:       Range{Min: 2, Max: 8},
		EligibleProducts: Range{Min: 3, Max: 10},
		ActiveProducts:   Range{Min: 1, Max: 3},
	}
}
