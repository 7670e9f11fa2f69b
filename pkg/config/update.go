package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	res := c.Generation.toOptions()

	var s string
	var i int
	s = c.Output.Format
	if s != "" {
		res = append(res, OptOutputFormat(s))
	}
	s = c.Output.Dir
	if s != "" {
		res = append(res, OptOutputDir(s))
	}

	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	i = c.Database.BatchSize
	if i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

// toOptions includes every generation field, because zero is a
// meaningful value for several of them (route rate, offsets, seed).
// Config loaders start from New(), so absent keys keep defaults.
func (g GenerationConfig) toOptions() []Option {
	res := []Option{
		OptGenLat(g.Lat.Min, g.Lat.Max),
		OptGenLon(g.Lon.Min, g.Lon.Max),
		OptGenPeriods(g.Periods),
		OptGenPlants(g.Plants),
		OptGenCustomers(g.Customers),
		OptGenPlantStorage(g.PlantStorage.Min, g.PlantStorage.Max),
		OptGenDistCenterStorage(
			g.DistCenterStorage.Min, g.DistCenterStorage.Max,
		),
		OptGenDistCentersPerPlant(
			g.DistCentersPerPlant.Min, g.DistCentersPerPlant.Max,
		),
		OptGenDistCenterOffset(g.DistCenterOffset),
		OptGenLinesPerPlant(g.LinesPerPlant.Min, g.LinesPerPlant.Max),
		OptGenRouteRate(g.RouteRate),
		OptGenProductsPerSize(g.ProductsPerSize),
		OptGenFreightPerKm(g.FreightPerKm),
		OptGenFreightNoise(g.FreightNoise.Min, g.FreightNoise.Max),
		OptGenDailyDistanceKm(g.DailyDistanceKm),
		OptGenCapabilitySwitch(g.CapabilitySwitch),
		OptGenBaseRate(g.BaseRate.Min, g.BaseRate.Max),
		OptGenRateNoise(g.RateNoise.Min, g.RateNoise.Max),
		OptGenLotSize(g.LotSize),
		OptGenDemandLots(g.DemandLots.Min, g.DemandLots.Max),
		OptGenEligibleProducts(
			g.EligibleProducts.Min, g.EligibleProducts.Max,
		),
		OptGenActiveProducts(g.ActiveProducts.Min, g.ActiveProducts.Max),
		OptGenSeed(g.Seed),
	}
	if len(g.Sizes) > 0 {
		res = append(res, OptGenSizes(g.Sizes))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidPositive(name string, f float64) bool {
	res := f > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %v", name, f)
	}
	return res
}

func isValidNonNegative(name string, f float64) bool {
	res := f >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %v", name, f)
	}
	return res
}

func isValidProbability(name string, f float64) bool {
	res := f >= 0 && f <= 1
	if !res {
		gn.Warn("<em>%s</em> has to be between 0 and 1, ignoring %v", name, f)
	}
	return res
}

func isValidRange(name string, r Range, floor int) bool {
	res := r.Min >= floor && r.Min <= r.Max
	if !res {
		gn.Warn(
			"<em>%s</em> needs %d <= min <= max, ignoring [%d, %d]",
			name, floor, r.Min, r.Max,
		)
	}
	return res
}

func isValidFloatRange(name string, r FloatRange, lo, hi float64) bool {
	res := r.Min >= lo && r.Max <= hi && r.Min <= r.Max
	if !res {
		gn.Warn(
			"<em>%s</em> needs %v <= min <= max <= %v, ignoring [%v, %v]",
			name, lo, hi, r.Min, r.Max,
		)
	}
	return res
}

func isValidSlice(name string, ss []string) bool {
	res := len(ss) > 0
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
		"Output.Format": {"xlsx": s, "sqlite": s, "json": s,
			"postgres": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
