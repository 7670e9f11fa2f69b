package generate_test

import (
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/errcode"
	"github.com/gnames/scnet/pkg/generate"
	"github.com/gnames/scnet/pkg/random"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := config.NewGeneration()
	cfg.Customers = 0

	_, err := generate.New(cfg, random.New(1))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.GenInvalidConfigError, gnErr.Code)

	g, err := generate.New(config.NewGeneration(), random.New(1))
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestGenerateDefault(t *testing.T) {
	cfg := config.NewGeneration()
	now := time.Now()
	g, err := generate.New(cfg, random.New(51))
	require.NoError(t, err)

	ds := g.Generate(now)
	assert.Empty(t, ds.Check())
	assert.Equal(t, int64(51), ds.Seed)
	assert.NotEqual(t, uuid.Nil, ds.RunID)
	assert.Equal(t, now, ds.CreatedAt)

	assert.Len(t, ds.Periods, cfg.Periods)
	assert.Len(t, ds.Plants, cfg.Plants)
	assert.Len(t, ds.Customers, cfg.Customers)
	assert.Len(t, ds.Sizes, len(cfg.Sizes))
	assert.Len(t, ds.Products, len(cfg.Sizes)*cfg.ProductsPerSize)
	assert.Len(t, ds.Capabilities, len(ds.Lines)*cfg.Periods)
	assert.Len(t, ds.Rates, len(ds.Capabilities))
	assert.GreaterOrEqual(t, len(ds.Lines), cfg.Plants*cfg.LinesPerPlant.Min)
	assert.LessOrEqual(t, len(ds.DistCenters),
		cfg.Plants*cfg.DistCentersPerPlant.Max)

	for _, v := range ds.Plants {
		assert.GreaterOrEqual(t, v.Lat, cfg.Lat.Min)
		assert.LessOrEqual(t, v.Lat, cfg.Lat.Max)
	}
	for _, v := range ds.Customers {
		assert.GreaterOrEqual(t, v.Lon, cfg.Lon.Min)
		assert.LessOrEqual(t, v.Lon, cfg.Lon.Max)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	cfg := config.NewGeneration()

	g1, err := generate.New(cfg, random.New(52))
	require.NoError(t, err)
	g2, err := generate.New(cfg, random.New(52))
	require.NoError(t, err)

	ds1 := g1.Generate(now)
	ds2 := g2.Generate(now)
	assert.Equal(t, ds1.Tables(), ds2.Tables())
	assert.NotEqual(t, ds1.RunID, ds2.RunID)
}

// TestGenerateMinimal covers a network of a single plant, customer and
// product with guaranteed connection.
func TestGenerateMinimal(t *testing.T) {
	cfg := config.NewGeneration()
	cfg.Periods = 3
	cfg.Plants = 1
	cfg.Customers = 1
	cfg.RouteRate = 1
	cfg.ProductsPerSize = 1
	cfg.Sizes = []string{"12oz"}

	dcCounts := make(map[int]struct{})
	for seed := int64(1); seed <= 40; seed++ {
		g, err := generate.New(cfg, random.New(seed))
		require.NoError(t, err)
		ds := g.Generate(time.Now())
		require.Empty(t, ds.Check())

		assert.Len(t, ds.Periods, 3)
		assert.Len(t, ds.Plants, 1)
		assert.NotEmpty(t, ds.Lines)
		assert.LessOrEqual(t, len(ds.DistCenters), 3)
		assert.Len(t, ds.Customers, 1)
		assert.Len(t, ds.Products, 1)
		dcCounts[len(ds.DistCenters)] = struct{}{}

		var plantDC, plantCustomer, dcCustomer int
		for _, v := range ds.Routes {
			o, d := v.Origin.Kind, v.Destination.Kind
			switch {
			case o == dataset.PlantNode && d == dataset.DistCenterNode,
				o == dataset.DistCenterNode && d == dataset.PlantNode:
				plantDC++
			case o == dataset.PlantNode && d == dataset.CustomerNode:
				plantCustomer++
			case o == dataset.DistCenterNode && d == dataset.CustomerNode:
				dcCustomer++
			default:
				t.Errorf("unexpected route %s -> %s", o, d)
			}
		}
		assert.Equal(t, 2*len(ds.DistCenters), plantDC)
		assert.Equal(t, 1, plantCustomer)
		assert.Equal(t, len(ds.DistCenters), dcCustomer)

		require.NotEmpty(t, ds.Demands)
		assert.LessOrEqual(t, len(ds.Demands), 3)
		for _, v := range ds.Demands {
			assert.Equal(t, 0, v.ProductID)
			assert.Equal(t, 0, v.CustomerID)
		}
	}
	assert.Greater(t, len(dcCounts), 1, "seeds vary the number of centers")
}
