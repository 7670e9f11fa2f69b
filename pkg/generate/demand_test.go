package generate_test

import (
	"testing"
	"time"

	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/generate"
	"github.com/gnames/scnet/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(n int) []dataset.Product {
	return generate.Products(generate.Sizes([]string{"12oz"}), n)
}

func TestSampleEligible(t *testing.T) {
	src := random.New(31)
	bounds := config.Range{Min: 3, Max: 10}

	for n := range 13 {
		products := catalog(n)
		for range 20 {
			res := generate.SampleEligible(products, bounds, src)
			assert.GreaterOrEqual(t, len(res), min(3, n))
			assert.LessOrEqual(t, len(res), min(10, n))

			ids := make(map[int]struct{})
			for _, v := range res {
				ids[v.ID] = struct{}{}
			}
			assert.Len(t, ids, len(res), "sampling without replacement")
		}
	}
}

func TestSampleActive(t *testing.T) {
	bounds := config.Range{Min: 1, Max: 3}

	t.Run("empty eligible set", func(t *testing.T) {
		res := generate.SampleActive(nil, bounds, random.New(32))
		assert.Empty(t, res)
	})

	t.Run("scripted", func(t *testing.T) {
		eligible := catalog(5)[2:]
		src := &stubSource{ints: []int{2}, samples: [][]int{{2, 0}}}
		res := generate.SampleActive(eligible, bounds, src)
		require.Len(t, res, 2)
		assert.Equal(t, "Product 5", res[0].Name)
		assert.Equal(t, "Product 3", res[1].Name)
	})
}

func TestDemandsScripted(t *testing.T) {
	cfg := config.NewGeneration()
	periods := generate.Periods(2, time.Now())
	customers := []dataset.Customer{{ID: 0, Name: "Customer 0"}}
	products := catalog(5)

	src := &stubSource{
		// eligible size, active size, lots, active size, lots, lots
		ints:    []int{3, 1, 3, 2, 2, 4},
		samples: [][]int{{4, 1, 2}, {1}, {1, 0}},
	}
	res := generate.Demands(cfg, periods, customers, products, src)
	lot := cfg.LotSize
	assert.Equal(t, []dataset.Demand{
		{PeriodID: 0, CustomerID: 0, ProductID: 1, Quantity: 3 * lot},
		{PeriodID: 1, CustomerID: 0, ProductID: 1, Quantity: 2 * lot},
		{PeriodID: 1, CustomerID: 0, ProductID: 4, Quantity: 4 * lot},
	}, res)
}

func TestDemandsWithoutEligibleProducts(t *testing.T) {
	cfg := config.NewGeneration()
	cfg.EligibleProducts = config.Range{Min: 0, Max: 0}
	periods := generate.Periods(3, time.Now())
	customers := []dataset.Customer{{ID: 0, Name: "Customer 0"}}

	res := generate.Demands(cfg, periods, customers, catalog(5), random.New(33))
	assert.Empty(t, res)

	res = generate.Demands(
		config.NewGeneration(), periods, customers, nil, random.New(33),
	)
	assert.Empty(t, res, "empty catalog")
}

func TestDemandsProperties(t *testing.T) {
	cfg := config.NewGeneration()
	cfg.Customers = 25
	cfg.Periods = 10
	src := random.New(34)

	periods := generate.Periods(cfg.Periods, time.Now())
	customers := generate.Customers(cfg, src)
	sizes := generate.Sizes(cfg.Sizes)
	products := generate.Products(sizes, cfg.ProductsPerSize)
	res := generate.Demands(cfg, periods, customers, products, src)
	require.NotEmpty(t, res)

	perCustomer := make(map[int]map[int]struct{})
	perPeriod := make(map[[2]int]map[int]struct{})
	for _, v := range res {
		assert.Zero(t, v.Quantity%cfg.LotSize)
		lots := v.Quantity / cfg.LotSize
		assert.GreaterOrEqual(t, lots, cfg.DemandLots.Min)
		assert.LessOrEqual(t, lots, cfg.DemandLots.Max)

		if perCustomer[v.CustomerID] == nil {
			perCustomer[v.CustomerID] = make(map[int]struct{})
		}
		perCustomer[v.CustomerID][v.ProductID] = struct{}{}

		key := [2]int{v.CustomerID, v.PeriodID}
		if perPeriod[key] == nil {
			perPeriod[key] = make(map[int]struct{})
		}
		_, dup := perPeriod[key][v.ProductID]
		assert.False(t, dup, "no repeats within a period")
		perPeriod[key][v.ProductID] = struct{}{}
	}

	for _, v := range perCustomer {
		assert.LessOrEqual(t, len(v), cfg.EligibleProducts.Max,
			"demand stays inside the eligible set")
	}
	for _, v := range perPeriod {
		assert.LessOrEqual(t, len(v), cfg.ActiveProducts.Max)
	}
	// every customer has a non-empty eligible set, so every period
	// has at least one demand row
	assert.Len(t, perPeriod, cfg.Customers*cfg.Periods)

	ds := &dataset.Dataset{
		Periods: periods, Customers: customers, Sizes: sizes,
		Products: products, Demands: res,
	}
	assert.Empty(t, ds.Check())

	tables := ds.Tables()
	sizeOf := make(map[string]string)
	for _, row := range tables[5].Rows {
		sizeOf[row[1].(string)] = row[0].(string)
	}
	for _, row := range tables[7].Rows {
		assert.Equal(t, sizeOf[row[3].(string)], row[2])
	}
}
