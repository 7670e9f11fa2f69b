package coverage_test

import (
	"testing"
	"time"

	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/coverage"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/generate"
	"github.com/gnames/scnet/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(k dataset.NodeKind, id int) dataset.Node {
	return dataset.Node{Kind: k, ID: id}
}

func route(from, to dataset.Node, dist float64, lt int) dataset.Route {
	return dataset.Route{
		Origin: from, Destination: to, Distance: dist, LeadTime: lt,
	}
}

func TestAnalyze(t *testing.T) {
	p0 := node(dataset.PlantNode, 0)
	p1 := node(dataset.PlantNode, 1)
	w0 := node(dataset.DistCenterNode, 0)
	c0 := node(dataset.CustomerNode, 0)
	c1 := node(dataset.CustomerNode, 1)

	ds := &dataset.Dataset{
		Plants: []dataset.Plant{
			{ID: 0, Name: "Plant 0"}, {ID: 1, Name: "Plant 1"},
		},
		DistCenters: []dataset.DistCenter{
			{ID: 0, Name: "Warehouse 1", PlantID: 0},
		},
		Customers: []dataset.Customer{
			{ID: 0, Name: "Customer 0"},
			{ID: 1, Name: "Customer 1"},
			{ID: 2, Name: "Customer 2"},
		},
		Routes: []dataset.Route{
			route(p0, w0, 100, 0),
			route(w0, p0, 100, 0),
			route(p0, p1, 900, 2),
			route(p0, c0, 200, 1),
			route(w0, c0, 50.5, 1),
			route(p1, p0, 900, 2),
			route(p1, c0, 400, 1),
			route(p1, c1, 30, 0),
		},
	}

	res, err := coverage.Analyze(ds)
	require.NoError(t, err)

	require.Len(t, res.Reached, 2)
	r := res.Reached[0]
	assert.Equal(t, 0, r.CustomerID)
	assert.Equal(t, 0, r.PlantID)
	assert.InDelta(t, 150.5, r.Distance, 1e-9)
	assert.Equal(t, 1, r.LeadTime)
	assert.Equal(t, 2, r.Hops)
	assert.Equal(t, w0, r.Via)

	r = res.Reached[1]
	assert.Equal(t, 1, r.CustomerID)
	assert.Equal(t, 1, r.PlantID)
	assert.InDelta(t, 30, r.Distance, 1e-9)
	assert.Equal(t, 1, r.Hops)
	assert.Equal(t, p1, r.Via)

	assert.Equal(t, []int{2}, res.Isolated)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, res.PlantsServed)
	assert.Equal(t, []int{0, 1}, res.Plants())
}

func TestAnalyzeGenerated(t *testing.T) {
	tests := []struct {
		msg      string
		rate     float64
		isolated bool
	}{
		{"everyone connected", 1, false},
		{"nobody connected", 0, true},
		{"default rate", 0.7, false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.NewGeneration()
			cfg.RouteRate = v.rate
			g, err := generate.New(cfg, random.New(61))
			require.NoError(t, err)
			ds := g.Generate(time.Now())

			res, err := coverage.Analyze(ds)
			require.NoError(t, err)
			assert.Equal(t, len(ds.Customers), len(res.Reached)+len(res.Isolated))
			if v.isolated {
				assert.Len(t, res.Isolated, len(ds.Customers))
				assert.Empty(t, res.PlantsServed)
			}
			if v.rate == 1 {
				assert.Empty(t, res.Isolated)
			}
			for _, r := range res.Reached {
				assert.Positive(t, r.Hops)
				assert.GreaterOrEqual(t, r.Distance, 0.0)
			}
		})
	}
}
