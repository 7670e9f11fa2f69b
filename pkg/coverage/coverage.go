// Package coverage analyses how customers of a generated network can
// be reached from plants. The route table is loaded into a directed
// weighted graph and shortest paths are computed from every plant.
//
// The report is informational: isolated customers are valid output of
// a generation run.
package coverage

import (
	"fmt"
	"math"
	"slices"

	"github.com/gnames/scnet/pkg/dataset"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
)

// Reach describes the closest plant of a customer.
type Reach struct {
	CustomerID int

	// PlantID is the plant with the shortest path to the customer.
	PlantID int

	// Distance along the path in kilometers.
	Distance float64

	// LeadTime is the sum of lead times of the path routes.
	LeadTime int

	// Hops is the number of routes in the path.
	Hops int

	// Via is the last facility before the customer.
	Via dataset.Node
}

// Report summarizes coverage of customers by plants.
type Report struct {
	// Reached lists customers with a path from at least one plant,
	// ordered by customer ID.
	Reached []Reach

	// Isolated keeps IDs of customers without incoming paths.
	Isolated []int

	// PlantsServed counts customers for which a plant is the closest.
	PlantsServed map[int]int
}

// Analyze builds the route graph of a dataset and finds the nearest
// plant for every customer.
func Analyze(ds *dataset.Dataset) (*Report, error) {
	g, routes, err := buildGraph(ds)
	if err != nil {
		return nil, err
	}

	best := make(map[int]Reach)
	bestDist := make(map[int]int64)
	for _, p := range ds.Plants {
		src := vertexID(dataset.Node{Kind: dataset.PlantNode, ID: p.ID})
		dist, prev, err := dijkstra.Dijkstra(
			g, dijkstra.Source(src), dijkstra.WithReturnPath(),
		)
		if err != nil {
			return nil, GraphError(src, err)
		}

		for _, c := range ds.Customers {
			dst := vertexID(dataset.Node{Kind: dataset.CustomerNode, ID: c.ID})
			d, ok := dist[dst]
			if !ok || d == math.MaxInt64 {
				continue
			}
			if cur, ok := bestDist[c.ID]; ok && cur <= d {
				continue
			}
			bestDist[c.ID] = d
			best[c.ID] = walk(c.ID, p.ID, src, dst, prev, routes)
		}
	}

	res := Report{PlantsServed: make(map[int]int)}
	for _, c := range ds.Customers {
		r, ok := best[c.ID]
		if !ok {
			res.Isolated = append(res.Isolated, c.ID)
			continue
		}
		res.Reached = append(res.Reached, r)
		res.PlantsServed[r.PlantID]++
	}
	return &res, nil
}

// Plants returns IDs of plants that are the closest to at least
// one customer, in ascending order.
func (r *Report) Plants() []int {
	res := make([]int, 0, len(r.PlantsServed))
	for k := range r.PlantsServed {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func buildGraph(ds *dataset.Dataset) (
	*core.Graph, map[[2]string]dataset.Route, error,
) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	nodes := make([]dataset.Node, 0,
		len(ds.Plants)+len(ds.DistCenters)+len(ds.Customers))
	for _, v := range ds.Plants {
		nodes = append(nodes, dataset.Node{Kind: dataset.PlantNode, ID: v.ID})
	}
	for _, v := range ds.DistCenters {
		nodes = append(nodes,
			dataset.Node{Kind: dataset.DistCenterNode, ID: v.ID})
	}
	for _, v := range ds.Customers {
		nodes = append(nodes, dataset.Node{Kind: dataset.CustomerNode, ID: v.ID})
	}
	for _, v := range nodes {
		id := vertexID(v)
		if err := g.AddVertex(id); err != nil {
			return nil, nil, GraphError(id, err)
		}
	}

	routes := make(map[[2]string]dataset.Route, len(ds.Routes))
	for _, v := range ds.Routes {
		from, to := vertexID(v.Origin), vertexID(v.Destination)
		key := [2]string{from, to}
		// parallel routes are not generated, the first one wins
		if _, ok := routes[key]; ok {
			continue
		}
		if _, err := g.AddEdge(from, to, toMetres(v.Distance)); err != nil {
			return nil, nil, GraphError(from, err)
		}
		routes[key] = v
	}
	return g, routes, nil
}

// walk follows predecessors from the customer back to the plant.
func walk(
	customerID, plantID int,
	src, dst string,
	prev map[string]string,
	routes map[[2]string]dataset.Route,
) Reach {
	res := Reach{CustomerID: customerID, PlantID: plantID}
	for cur := dst; cur != src; {
		p := prev[cur]
		if p == "" {
			break
		}
		r := routes[[2]string{p, cur}]
		if res.Hops == 0 {
			res.Via = r.Origin
		}
		res.Distance += r.Distance
		res.LeadTime += r.LeadTime
		res.Hops++
		cur = p
	}
	return res
}

func vertexID(n dataset.Node) string {
	return fmt.Sprintf("%s:%d", n.Kind, n.ID)
}

func toMetres(km float64) int64 {
	return int64(math.Round(km * 1000))
}
