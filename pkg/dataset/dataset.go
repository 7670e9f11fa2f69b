// Package dataset describes a generated supply-chain network.
//
// Entities are identified by integer IDs that are equal to their
// position in the corresponding slice of a Dataset. Names are display
// attributes only; they are produced by a Counter scoped to the
// entity kind and are never used to join tables.
//
// A Dataset is created once by a single generation pass and is not
// modified afterwards. Writers receive it as a whole and render it as
// ten tables (see Tables).
package dataset

import (
	"context"
	"time"

	"github.com/gnames/scnet/pkg/geo"
	"github.com/google/uuid"
)

// Writer saves a complete Dataset to some storage.
type Writer interface {
	// Write persists the dataset. Implementations must not keep
	// a reference to it after returning.
	Write(ctx context.Context, ds *Dataset) error
}

// Dataset keeps all tables of one generation run.
type Dataset struct {
	// RunID uniquely identifies the generation run.
	RunID uuid.UUID

	// CreatedAt is the moment the run started.
	CreatedAt time.Time

	// Seed of the random stream that produced the run.
	Seed int64

	Periods      []Period
	Plants       []Plant
	Lines        []Line
	DistCenters  []DistCenter
	Customers    []Customer
	Sizes        []Size
	Products     []Product
	Routes       []Route
	Demands      []Demand
	Capabilities []Capability
	Rates        []Rate
}

// Period is one day of the planning horizon.
type Period struct {
	ID   int
	Date time.Time
}

// Plant is a production facility.
type Plant struct {
	ID      int
	Name    string
	Lat     float64
	Lon     float64
	Storage int
}

// Point returns location of the plant.
func (p Plant) Point() geo.Point {
	return geo.Point{Lat: p.Lat, Lon: p.Lon}
}

// DistCenter is a storage facility affiliated with one Plant.
type DistCenter struct {
	ID      int
	Name    string
	PlantID int
	Lat     float64
	Lon     float64
	Storage int
}

// Point returns location of the distribution center.
func (d DistCenter) Point() geo.Point {
	return geo.Point{Lat: d.Lat, Lon: d.Lon}
}

// Customer is a consumer of products.
type Customer struct {
	ID   int
	Name string
	Lat  float64
	Lon  float64
}

// Point returns location of the customer.
func (c Customer) Point() geo.Point {
	return geo.Point{Lat: c.Lat, Lon: c.Lon}
}

// Size is a coarse product category.
type Size struct {
	ID   int
	Name string
}

// Product belongs to exactly one Size.
type Product struct {
	ID     int
	Name   string
	SizeID int
}

// Line is a production line of a Plant.
type Line struct {
	ID      int
	Name    string
	PlantID int
}

// NodeKind tells which table a route endpoint refers to.
type NodeKind int

const (
	PlantNode NodeKind = iota
	DistCenterNode
	CustomerNode
)

// String returns the name of the kind.
func (k NodeKind) String() string {
	switch k {
	case PlantNode:
		return "plant"
	case DistCenterNode:
		return "dist_center"
	case CustomerNode:
		return "customer"
	default:
		return "unknown"
	}
}

// Node is an endpoint of a Route.
type Node struct {
	Kind NodeKind
	ID   int
}

// Route is a directed transport link.
type Route struct {
	Origin      Node
	Destination Node

	// Distance in kilometers, rounded to 3 decimals.
	Distance float64

	// LeadTime in days.
	LeadTime int

	FreightCost float64
}

// Demand is a quantity of a product requested by a customer in
// a period.
type Demand struct {
	PeriodID   int
	CustomerID int
	ProductID  int
	Quantity   int
}

// Capability is the size a line can produce in a period.
type Capability struct {
	LineID   int
	PeriodID int
	SizeID   int
}

// Rate is the throughput of a line producing a size in a period.
type Rate struct {
	LineID   int
	PeriodID int
	SizeID   int
	Rate     int
}

// NodeName returns the display name of a route endpoint. Unknown
// nodes give an empty string.
func (ds *Dataset) NodeName(n Node) string {
	switch n.Kind {
	case PlantNode:
		if n.ID >= 0 && n.ID < len(ds.Plants) {
			return ds.Plants[n.ID].Name
		}
	case DistCenterNode:
		if n.ID >= 0 && n.ID < len(ds.DistCenters) {
			return ds.DistCenters[n.ID].Name
		}
	case CustomerNode:
		if n.ID >= 0 && n.ID < len(ds.Customers) {
			return ds.Customers[n.ID].Name
		}
	}
	return ""
}

// NodePoint returns location of a route endpoint.
func (ds *Dataset) NodePoint(n Node) (geo.Point, bool) {
	if ds.NodeName(n) == "" {
		return geo.Point{}, false
	}
	switch n.Kind {
	case PlantNode:
		return ds.Plants[n.ID].Point(), true
	case DistCenterNode:
		return ds.DistCenters[n.ID].Point(), true
	default:
		return ds.Customers[n.ID].Point(), true
	}
}
