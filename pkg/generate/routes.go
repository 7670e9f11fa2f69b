package generate

import (
	"math"

	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/geo"
	"github.com/gnames/scnet/pkg/random"
)

// FreightOffset draws the freight cost offset shared by all routes
// of a run.
func FreightOffset(cfg config.GenerationConfig, src random.Source) float64 {
	return src.Float(cfg.FreightNoise.Min, cfg.FreightNoise.Max)
}

// Routes builds the directed route graph. For every plant, in order:
//
//   - a pair of routes to and from every distribution center of the
//     run, not only to the plant's own ones;
//   - a transfer route to every other plant;
//   - for every customer that passes the route rate draw, a route from
//     the plant and from each of the plant's own distribution centers.
//
// Customers that fail all draws stay isolated. The freightPerKm is
// the run's cost per kilometer with its offset already applied.
func Routes(
	cfg config.GenerationConfig,
	plants []dataset.Plant,
	dcs []dataset.DistCenter,
	customers []dataset.Customer,
	freightPerKm float64,
	src random.Source,
) []dataset.Route {
	owned := make([][]dataset.DistCenter, len(plants))
	for _, v := range dcs {
		owned[v.PlantID] = append(owned[v.PlantID], v)
	}

	b := routeBuilder{
		daily:   cfg.DailyDistanceKm,
		freight: freightPerKm,
	}
	for _, p := range plants {
		pn := dataset.Node{Kind: dataset.PlantNode, ID: p.ID}
		for _, dc := range dcs {
			dn := dataset.Node{Kind: dataset.DistCenterNode, ID: dc.ID}
			b.add(pn, p.Point(), dn, dc.Point())
			b.add(dn, dc.Point(), pn, p.Point())
		}

		for _, p2 := range plants {
			if p2.ID == p.ID {
				continue
			}
			b.add(pn, p.Point(),
				dataset.Node{Kind: dataset.PlantNode, ID: p2.ID}, p2.Point())
		}

		for _, c := range customers {
			if src.Float(0, 1) > cfg.RouteRate {
				continue
			}
			cn := dataset.Node{Kind: dataset.CustomerNode, ID: c.ID}
			b.add(pn, p.Point(), cn, c.Point())
			for _, dc := range owned[p.ID] {
				b.add(
					dataset.Node{Kind: dataset.DistCenterNode, ID: dc.ID},
					dc.Point(), cn, c.Point(),
				)
			}
		}
	}
	return b.routes
}

// LeadTime converts a distance into days of travel, rounding half
// to even.
func LeadTime(distance, dailyKm float64) int {
	return int(math.RoundToEven(distance / dailyKm))
}

type routeBuilder struct {
	daily   float64
	freight float64
	routes  []dataset.Route
}

func (b *routeBuilder) add(
	origin dataset.Node, from geo.Point,
	dest dataset.Node, to geo.Point,
) {
	dist := geo.Round(geo.Distance(from, to), 3)
	b.routes = append(b.routes, dataset.Route{
		Origin:      origin,
		Destination: dest,
		Distance:    dist,
		LeadTime:    LeadTime(dist, b.daily),
		FreightCost: geo.Round(dist*b.freight, 3),
	})
}
