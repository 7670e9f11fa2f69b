// Package generate synthesizes a supply-chain network dataset.
//
// Every generator is a pure transformation from upstream entities and
// a random.Source to a new entity slice. Generator runs them in
// dependency order on a single random stream:
//
//  1. per-run values: freight offset and base rate of every size;
//  2. periods, plants, lines, distribution centers, customers,
//     sizes and products;
//  3. routes, demands, capabilities and rates.
//
// Generation has no recoverable errors. Parameters are checked once
// by New, and degenerate output (isolated customers, customers without
// demand) is valid.
package generate

import (
	"log/slog"
	"time"

	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/random"
	"github.com/google/uuid"
)

// Generator produces datasets from a generation config.
type Generator struct {
	cfg config.GenerationConfig
	src random.Source
}

// New creates a Generator. It returns an error if the parameters
// break preconditions of the generators.
func New(cfg config.GenerationConfig, src random.Source) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, src: src}, nil
}

// runValues are drawn once and shared by all routes and rates.
type runValues struct {
	freightPerKm float64
	baseRates    []float64
}

// Generate runs a complete generation pass. The horizon starts on
// the day of now.
func (g *Generator) Generate(now time.Time) *dataset.Dataset {
	cfg := g.cfg
	src := g.src

	sizes := Sizes(cfg.Sizes)
	run := runValues{
		freightPerKm: cfg.FreightPerKm + FreightOffset(cfg, src),
		baseRates:    BaseRates(sizes, cfg.BaseRate, src),
	}

	res := &dataset.Dataset{
		RunID:     uuid.New(),
		CreatedAt: now,
		Sizes:     sizes,
	}
	if s, ok := src.(interface{ Seed() int64 }); ok {
		res.Seed = s.Seed()
	}

	res.Periods = Periods(cfg.Periods, now)
	res.Plants = Plants(cfg, src)
	res.Lines = Lines(cfg, res.Plants, src)
	res.DistCenters = DistCenters(cfg, res.Plants, src)
	res.Customers = Customers(cfg, src)
	res.Products = Products(sizes, cfg.ProductsPerSize)

	res.Routes = Routes(
		cfg, res.Plants, res.DistCenters, res.Customers, run.freightPerKm, src,
	)
	res.Demands = Demands(cfg, res.Periods, res.Customers, res.Products, src)
	res.Capabilities = Capabilities(
		res.Lines, res.Periods, sizes, cfg.CapabilitySwitch, src,
	)
	res.Rates = Rates(res.Capabilities, run.baseRates, cfg.RateNoise, src)

	slog.Debug("Dataset generated",
		"run_id", res.RunID,
		"seed", res.Seed,
		"plants", len(res.Plants),
		"dist_centers", len(res.DistCenters),
		"customers", len(res.Customers),
		"routes", len(res.Routes),
		"demands", len(res.Demands),
		"rates", len(res.Rates),
	)
	return res
}
