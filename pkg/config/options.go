package config

import (
	"slices"
	"strings"

	"github.com/gnames/gnlib"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptGenLat sets the latitude interval of the bounding box.
func OptGenLat(min, max float64) Option {
	return func(c *Config) {
		r := FloatRange{Min: min, Max: max}
		if isValidFloatRange("Generation.Lat", r, -90, 90) {
			c.Generation.Lat = r
		}
	}
}

// OptGenLon sets the longitude interval of the bounding box.
func OptGenLon(min, max float64) Option {
	return func(c *Config) {
		r := FloatRange{Min: min, Max: max}
		if isValidFloatRange("Generation.Lon", r, -180, 180) {
			c.Generation.Lon = r
		}
	}
}

// OptGenPeriods sets the number of periods (days) in the horizon.
func OptGenPeriods(i int) Option {
	return func(c *Config) {
		if isValidInt("Generation.Periods", i) {
			c.Generation.Periods = i
		}
	}
}

// OptGenPlants sets the number of plants.
func OptGenPlants(i int) Option {
	return func(c *Config) {
		if isValidInt("Generation.Plants", i) {
			c.Generation.Plants = i
		}
	}
}

// OptGenCustomers sets the number of customers.
func OptGenCustomers(i int) Option {
	return func(c *Config) {
		if isValidInt("Generation.Customers", i) {
			c.Generation.Customers = i
		}
	}
}

// OptGenPlantStorage sets the storage capacity interval of plants.
func OptGenPlantStorage(min, max int) Option {
	return func(c *Config) {
		r := Range{Min: min, Max: max}
		if isValidRange("Generation.PlantStorage", r, 1) {
			c.Generation.PlantStorage = r
		}
	}
}

// OptGenDistCenterStorage sets the storage capacity interval of
// distribution centers.
func OptGenDistCenterStorage(min, max int) Option {
	return func(c *Config) {
		r := Range{Min: min, Max: max}
		if isValidRange("Generation.DistCenterStorage", r, 1) {
			c.Generation.DistCenterStorage = r
		}
	}
}

// OptGenDistCentersPerPlant sets how many distribution centers
// a plant can have. Zero minimum is allowed.
func OptGenDistCentersPerPlant(min, max int) Option {
	return func(c *Config) {
		r := Range{Min: min, Max: max}
		if isValidRange("Generation.DistCentersPerPlant", r, 0) {
			c.Generation.DistCentersPerPlant = r
		}
	}
}

// OptGenDistCenterOffset sets the maximum offset in degrees between
// a distribution center and its plant.
func OptGenDistCenterOffset(f float64) Option {
	return func(c *Config) {
		if isValidNonNegative("Generation.DistCenterOffset", f) {
			c.Generation.DistCenterOffset = f
		}
	}
}

// OptGenLinesPerPlant sets how many production lines a plant has.
// Every plant has at least one line.
func OptGenLinesPerPlant(min, max int) Option {
	return func(c *Config) {
		r := Range{Min: min, Max: max}
		if isValidRange("Generation.LinesPerPlant", r, 1) {
			c.Generation.LinesPerPlant = r
		}
	}
}

// OptGenRouteRate sets the probability of a plant-customer connection.
func OptGenRouteRate(f float64) Option {
	return func(c *Config) {
		if isValidProbability("Generation.RouteRate", f) {
			c.Generation.RouteRate = f
		}
	}
}

// OptGenSizes sets the catalog of product sizes. Names are trimmed,
// fixed to valid UTF-8 and deduplicated preserving order.
func OptGenSizes(ss []string) Option {
	var sizes []string
	for _, v := range ss {
		v = strings.TrimSpace(gnlib.FixUtf8(v))
		if v == "" || slices.Contains(sizes, v) {
			continue
		}
		sizes = append(sizes, v)
	}
	return func(c *Config) {
		if isValidSlice("Generation.Sizes", sizes) {
			c.Generation.Sizes = sizes
		}
	}
}

// OptGenProductsPerSize sets the number of products of every size.
func OptGenProductsPerSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Generation.ProductsPerSize", i) {
			c.Generation.ProductsPerSize = i
		}
	}
}

// OptGenFreightPerKm sets the average freight cost per kilometer.
func OptGenFreightPerKm(f float64) Option {
	return func(c *Config) {
		if isValidNonNegative("Generation.FreightPerKm", f) {
			c.Generation.FreightPerKm = f
		}
	}
}

// OptGenFreightNoise sets the interval of the per-run freight offset.
func OptGenFreightNoise(min, max float64) Option {
	return func(c *Config) {
		r := FloatRange{Min: min, Max: max}
		if isValidFloatRange("Generation.FreightNoise", r, -1e9, 1e9) {
			c.Generation.FreightNoise = r
		}
	}
}

// OptGenDailyDistanceKm sets the average distance traveled per day.
func OptGenDailyDistanceKm(f float64) Option {
	return func(c *Config) {
		if isValidPositive("Generation.DailyDistanceKm", f) {
			c.Generation.DailyDistanceKm = f
		}
	}
}

// OptGenCapabilitySwitch sets the probability of a line to change
// its size for the next period.
func OptGenCapabilitySwitch(f float64) Option {
	return func(c *Config) {
		if isValidProbability("Generation.CapabilitySwitch", f) {
			c.Generation.CapabilitySwitch = f
		}
	}
}

// OptGenBaseRate sets the interval of per-size base production rates.
func OptGenBaseRate(min, max float64) Option {
	return func(c *Config) {
		r := FloatRange{Min: min, Max: max}
		if isValidFloatRange("Generation.BaseRate", r, 0, 1e15) {
			c.Generation.BaseRate = r
		}
	}
}

// OptGenRateNoise sets the interval of per-row production rate offsets.
func OptGenRateNoise(min, max float64) Option {
	return func(c *Config) {
		r := FloatRange{Min: min, Max: max}
		if isValidFloatRange("Generation.RateNoise", r, -1e15, 1e15) {
			c.Generation.RateNoise = r
		}
	}
}

// OptGenLotSize sets the number of units in one lot (truck load).
func OptGenLotSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Generation.LotSize", i) {
			c.Generation.LotSize = i
		}
	}
}

// OptGenDemandLots sets the interval of lots in one demand row.
func OptGenDemandLots(min, max int) Option {
	return func(c *Config) {
		r := Range{Min: min, Max: max}
		if isValidRange("Generation.DemandLots", r, 1) {
			c.Generation.DemandLots = r
		}
	}
}

// OptGenEligibleProducts sets the size interval of a customer's
// eligible product set.
func OptGenEligibleProducts(min, max int) Option {
	return func(c *Config) {
		r := Range{Min: min, Max: max}
		if isValidRange("Generation.EligibleProducts", r, 0) {
			c.Generation.EligibleProducts = r
		}
	}
}

// OptGenActiveProducts sets the interval of products with demand
// in one period.
func OptGenActiveProducts(min, max int) Option {
	return func(c *Config) {
		r := Range{Min: min, Max: max}
		if isValidRange("Generation.ActiveProducts", r, 0) {
			c.Generation.ActiveProducts = r
		}
	}
}

// OptGenSeed sets the seed of the random source. Zero means
// a time-based seed.
func OptGenSeed(i int64) Option {
	return func(c *Config) {
		c.Generation.Seed = i
	}
}

// OptOutputFormat sets the output format.
// Valid values: "xlsx", "sqlite", "json", "postgres".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptOutputDir sets the directory for file-based output formats.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Dir", s) {
			c.Output.Dir = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per bulk step.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
