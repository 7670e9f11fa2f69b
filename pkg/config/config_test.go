package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "scnet"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "scnet", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "scnet", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		gen := cfg.Generation
		assert.Equal(t, config.FloatRange{Min: -33, Max: -3}, gen.Lat)
		assert.Equal(t, config.FloatRange{Min: -70, Max: -45}, gen.Lon)
		assert.Equal(t, 7, gen.Periods)
		assert.Equal(t, 3, gen.Plants)
		assert.Equal(t, 15, gen.Customers)
		assert.Equal(t, 0.7, gen.RouteRate)
		assert.Len(t, gen.Sizes, 5)
		assert.Equal(t, 5, gen.ProductsPerSize)
		assert.Equal(t, 7.1, gen.FreightPerKm)
		assert.Equal(t, 400.0, gen.DailyDistanceKm)
		assert.Equal(t, 0.1, gen.CapabilitySwitch)
		assert.Equal(t, 200_000, gen.LotSize)
		assert.Equal(t, config.Range{Min: 0, Max: 3}, gen.DistCentersPerPlant)
		assert.Equal(t, config.Range{Min: 2, Max: 4}, gen.LinesPerPlant)
		assert.Equal(t, int64(0), gen.Seed)

		assert.Equal(t, "xlsx", cfg.Output.Format)
		assert.Equal(t, "samples", cfg.Output.Dir)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "scnet", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})

	t.Run("default generation passes validation", func(t *testing.T) {
		assert.NoError(t, cfg.Generation.Validate())
	})
}

func TestOptionGenPeriods(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid periods", 30, 30},
		{"ignores zero", 0, 7},
		{"ignores negative", -3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptGenPeriods(tt.input)})
			assert.Equal(t, tt.expected, cfg.Generation.Periods)
		})
	}
}

func TestOptionGenRouteRate(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"sets valid rate", 0.25, 0.25},
		{"accepts zero", 0, 0},
		{"accepts one", 1, 1},
		{"ignores negative", -0.1, 0.7},
		{"ignores above one", 1.5, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptGenRouteRate(tt.input)})
			assert.Equal(t, tt.expected, cfg.Generation.RouteRate)
		})
	}
}

func TestOptionGenRanges(t *testing.T) {
	t.Run("dist centers allow zero minimum", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptGenDistCentersPerPlant(0, 1)})
		assert.Equal(t, config.Range{Min: 0, Max: 1},
			cfg.Generation.DistCentersPerPlant)
	})

	t.Run("lines need at least one", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptGenLinesPerPlant(0, 2)})
		assert.Equal(t, config.Range{Min: 2, Max: 4},
			cfg.Generation.LinesPerPlant)
	})

	t.Run("reversed range is ignored", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptGenPlantStorage(10, 5)})
		assert.Equal(t, config.Range{Min: 50_000_000, Max: 150_000_000},
			cfg.Generation.PlantStorage)
	})

	t.Run("latitude outside globe is ignored", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptGenLat(-100, 0)})
		assert.Equal(t, config.FloatRange{Min: -33, Max: -3},
			cfg.Generation.Lat)
	})

	t.Run("valid bounding box", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptGenLat(10, 20),
			config.OptGenLon(-10, 10),
		})
		assert.Equal(t, config.FloatRange{Min: 10, Max: 20}, cfg.Generation.Lat)
		assert.Equal(t, config.FloatRange{Min: -10, Max: 10}, cfg.Generation.Lon)
	})
}

func TestOptionGenSizes(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets sizes",
			input:    []string{"S", "M", "L"},
			expected: []string{"S", "M", "L"},
		},
		{
			name:     "trims and deduplicates",
			input:    []string{" S ", "M", "S", ""},
			expected: []string{"S", "M"},
		},
		{
			name:     "ignores empty catalog",
			input:    []string{" ", ""},
			expected: config.NewGeneration().Sizes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptGenSizes(tt.input)})
			assert.Equal(t, tt.expected, cfg.Generation.Sizes)
		})
	}
}

func TestOptionOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets sqlite", "sqlite", "sqlite"},
		{"sets json", "json", "json"},
		{"sets postgres", "postgres", "postgres"},
		{"normalizes to lowercase", "XLSX", "xlsx"},
		{"ignores unknown", "parquet", "xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptOutputFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Output.Format)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid log level - debug", "debug", "debug"},
		{"sets valid log level - warn", "warn", "warn"},
		{"normalizes to lowercase", "ERROR", "error"},
		{"ignores invalid value", "trace", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDatabasePort(6543)})
	assert.Equal(t, 6543, cfg.Database.Port)

	cfg.Update([]config.Option{config.OptDatabasePort(-1)})
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptGenPlants(9),
		config.OptGenRouteRate(0),
		config.OptGenSeed(42),
		config.OptGenSizes([]string{"A", "B"}),
		config.OptOutputFormat("sqlite"),
		config.OptLogLevel("debug"),
		config.OptHomeDir("/home/test"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Generation, dst.Generation)
	assert.Equal(t, src.Output, dst.Output)
	assert.Equal(t, src.Database, dst.Database)
	assert.Equal(t, src.Log, dst.Log)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime only")
}

func TestValidate(t *testing.T) {
	t.Run("catches broken parameters", func(t *testing.T) {
		gen := config.NewGeneration()
		gen.Plants = 0
		gen.Sizes = []string{"A", "A"}
		gen.DemandLots = config.Range{Min: 5, Max: 2}
		gen.RouteRate = 2

		err := gen.Validate()
		require.Error(t, err)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, "Error should be of type *gn.Error")
		assert.Equal(t, errcode.GenInvalidConfigError, gnErr.Code)
		assert.Contains(t, gnErr.Err.Error(), "plants")
		assert.Contains(t, gnErr.Err.Error(), "duplicate size")
		assert.Contains(t, gnErr.Err.Error(), "demand_lots")
		assert.Contains(t, gnErr.Err.Error(), "route_rate")
	})

	t.Run("accepts degenerate but valid ranges", func(t *testing.T) {
		gen := config.NewGeneration()
		gen.DistCentersPerPlant = config.Range{Min: 0, Max: 0}
		gen.EligibleProducts = config.Range{Min: 0, Max: 0}
		assert.NoError(t, gen.Validate())
	})
}
