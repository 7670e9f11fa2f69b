package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

// Validate checks preconditions of a generation run. Configs built
// with New() and Options always pass; the check exists for configs
// assembled directly in code. Generation must not start when it fails.
func (g GenerationConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	floatRange := func(name string, r FloatRange) {
		if r.Min > r.Max {
			add("%s: min %v > max %v", name, r.Min, r.Max)
		}
	}
	intRange := func(name string, r Range, floor int) {
		if r.Min < floor || r.Min > r.Max {
			add("%s: need %d <= min <= max, got [%d, %d]",
				name, floor, r.Min, r.Max)
		}
	}
	positive := func(name string, i int) {
		if i <= 0 {
			add("%s: must be positive, got %d", name, i)
		}
	}
	probability := func(name string, f float64) {
		if f < 0 || f > 1 {
			add("%s: must be within [0, 1], got %v", name, f)
		}
	}

	floatRange("lat", g.Lat)
	floatRange("lon", g.Lon)
	positive("periods", g.Periods)
	positive("plants", g.Plants)
	positive("customers", g.Customers)
	intRange("plant_storage", g.PlantStorage, 1)
	intRange("dist_center_storage", g.DistCenterStorage, 1)
	intRange("dist_centers_per_plant", g.DistCentersPerPlant, 0)
	if g.DistCenterOffset < 0 {
		add("dist_center_offset: cannot be negative, got %v",
			g.DistCenterOffset)
	}
	intRange("lines_per_plant", g.LinesPerPlant, 1)
	probability("route_rate", g.RouteRate)
	if len(g.Sizes) == 0 {
		add("sizes: catalog cannot be empty")
	}
	seen := make(map[string]struct{}, len(g.Sizes))
	for _, v := range g.Sizes {
		if _, ok := seen[v]; ok {
			add("sizes: duplicate size %q", v)
		}
		seen[v] = struct{}{}
	}
	positive("products_per_size", g.ProductsPerSize)
	floatRange("freight_noise", g.FreightNoise)
	if g.DailyDistanceKm <= 0 {
		add("daily_distance_km: must be positive, got %v", g.DailyDistanceKm)
	}
	probability("capability_switch", g.CapabilitySwitch)
	floatRange("base_rate", g.BaseRate)
	floatRange("rate_noise", g.RateNoise)
	positive("lot_size", g.LotSize)
	intRange("demand_lots", g.DemandLots, 1)
	intRange("eligible_products", g.EligibleProducts, 0)
	intRange("active_products", g.ActiveProducts, 0)

	if len(problems) == 0 {
		return nil
	}
	return InvalidGenerationError(problems)
}

// InvalidGenerationError reports generation parameters that break
// preconditions of the generators.
func InvalidGenerationError(problems []string) error {
	msg := `<err>Generation parameters are invalid:</err>
%s`
	list := "  * " + strings.Join(problems, "\n  * ")
	return &gn.Error{
		Code: errcode.GenInvalidConfigError,
		Msg:  msg,
		Vars: []any{list},
		Err: fmt.Errorf("invalid generation config: %w",
			errors.New(strings.Join(problems, "; "))),
	}
}
