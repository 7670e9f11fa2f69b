package generate

import (
	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/random"
)

// SampleEligible picks the products a customer may demand during the
// whole horizon. Bounds of the set size are clamped by the catalog
// size, so the sample never exceeds the population.
func SampleEligible(
	products []dataset.Product,
	bounds config.Range,
	src random.Source,
) []dataset.Product {
	return sampleProducts(products, bounds, src)
}

// SampleActive picks products with demand in one period out of the
// eligible set, with the same clamping as SampleEligible.
func SampleActive(
	eligible []dataset.Product,
	bounds config.Range,
	src random.Source,
) []dataset.Product {
	return sampleProducts(eligible, bounds, src)
}

func sampleProducts(
	pool []dataset.Product,
	bounds config.Range,
	src random.Source,
) []dataset.Product {
	n := len(pool)
	k := src.Int(min(bounds.Min, n), min(bounds.Max, n))
	idx := src.Sample(n, k)
	res := make([]dataset.Product, len(idx))
	for i, v := range idx {
		res[i] = pool[v]
	}
	return res
}

// Demands samples demand for every customer. Each customer gets an
// eligible product set once, then every period draws its own active
// subset. Quantities are a whole number of lots.
func Demands(
	cfg config.GenerationConfig,
	periods []dataset.Period,
	customers []dataset.Customer,
	products []dataset.Product,
	src random.Source,
) []dataset.Demand {
	var res []dataset.Demand
	for _, c := range customers {
		eligible := SampleEligible(products, cfg.EligibleProducts, src)
		if len(eligible) == 0 {
			continue
		}
		for _, p := range periods {
			active := SampleActive(eligible, cfg.ActiveProducts, src)
			for _, prod := range active {
				lots := src.Int(cfg.DemandLots.Min, cfg.DemandLots.Max)
				res = append(res, dataset.Demand{
					PeriodID:   p.ID,
					CustomerID: c.ID,
					ProductID:  prod.ID,
					Quantity:   lots * cfg.LotSize,
				})
			}
		}
	}
	return res
}
