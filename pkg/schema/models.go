// Package schema provides database models of a generated network.
//
// Every model carries three kinds of tags: `gorm` for PostgreSQL
// AutoMigrate, `db` with the column name and `ddl` with a portable
// column definition used to create SQLite tables. Column names match
// the ones of dataset.Table, plus run_id linking rows to their run.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Run keeps metadata of one generation run.
type Run struct {
	// ID is a random UUID of the run.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"column:id;type:uuid;primaryKey"`

	// Seed of the random stream that produced the run.
	Seed int64 `db:"seed" ddl:"INTEGER NOT NULL" gorm:"column:seed;not null"`

	// Version of scnet that generated the data.
	Version string `db:"version" ddl:"TEXT" gorm:"column:version;type:varchar(50)"`

	// CreatedAt is the moment the generation started.
	CreatedAt time.Time `db:"created_at" ddl:"TEXT NOT NULL" gorm:"column:created_at;not null"`
}

// Period is a day of the horizon.
type Period struct {
	RunID  string    `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Index  int       `db:"index" ddl:"INTEGER NOT NULL" gorm:"column:index;not null"`
	Period time.Time `db:"period" ddl:"TEXT NOT NULL" gorm:"column:period;type:date;not null"`
}

// Plant is a production facility.
type Plant struct {
	RunID           string  `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Name            string  `db:"name" ddl:"TEXT NOT NULL" gorm:"column:name;not null"`
	Lat             float64 `db:"lat" ddl:"REAL NOT NULL" gorm:"column:lat;not null"`
	Lon             float64 `db:"lon" ddl:"REAL NOT NULL" gorm:"column:lon;not null"`
	StorageCapacity int     `db:"storage_capacity" ddl:"INTEGER NOT NULL" gorm:"column:storage_capacity;not null"`
}

// Line is a production line of a plant.
type Line struct {
	RunID string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Plant string `db:"plant" ddl:"TEXT NOT NULL" gorm:"column:plant;not null"`
	Name  string `db:"name" ddl:"TEXT NOT NULL" gorm:"column:name;not null"`
}

// DistCenter is a distribution center of a plant.
type DistCenter struct {
	RunID           string  `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Name            string  `db:"name" ddl:"TEXT NOT NULL" gorm:"column:name;not null"`
	Plant           string  `db:"plant" ddl:"TEXT NOT NULL" gorm:"column:plant;not null"`
	Lat             float64 `db:"lat" ddl:"REAL NOT NULL" gorm:"column:lat;not null"`
	Lon             float64 `db:"lon" ddl:"REAL NOT NULL" gorm:"column:lon;not null"`
	StorageCapacity int     `db:"storage_capacity" ddl:"INTEGER NOT NULL" gorm:"column:storage_capacity;not null"`
}

// Customer is a consumer of products.
type Customer struct {
	RunID string  `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Name  string  `db:"name" ddl:"TEXT NOT NULL" gorm:"column:name;not null"`
	Lat   float64 `db:"lat" ddl:"REAL NOT NULL" gorm:"column:lat;not null"`
	Lon   float64 `db:"lon" ddl:"REAL NOT NULL" gorm:"column:lon;not null"`
}

// Product of the catalog.
type Product struct {
	RunID   string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Size    string `db:"size" ddl:"TEXT NOT NULL" gorm:"column:size;not null"`
	Product string `db:"product" ddl:"TEXT NOT NULL" gorm:"column:product;not null"`
}

// Route is a directed transport link.
type Route struct {
	RunID       string  `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Origin      string  `db:"origin" ddl:"TEXT NOT NULL" gorm:"column:origin;not null"`
	Destination string  `db:"destination" ddl:"TEXT NOT NULL" gorm:"column:destination;not null"`
	Distance    float64 `db:"distance" ddl:"REAL NOT NULL" gorm:"column:distance;not null"`
	Leadtime    int     `db:"leadtime" ddl:"INTEGER NOT NULL" gorm:"column:leadtime;not null"`
	FreightCost float64 `db:"freight_cost" ddl:"REAL NOT NULL" gorm:"column:freight_cost;not null"`
}

// Demand of a customer for a product in a period.
type Demand struct {
	RunID       string    `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Period      time.Time `db:"period" ddl:"TEXT NOT NULL" gorm:"column:period;type:date;not null"`
	Customer    string    `db:"customer" ddl:"TEXT NOT NULL" gorm:"column:customer;not null"`
	ProductSize string    `db:"product_size" ddl:"TEXT NOT NULL" gorm:"column:product_size;not null"`
	Product     string    `db:"product" ddl:"TEXT NOT NULL" gorm:"column:product;not null"`
	Demand      int       `db:"demand" ddl:"INTEGER NOT NULL" gorm:"column:demand;not null"`
}

// Capability is the size a line produces in a period.
type Capability struct {
	RunID  string    `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Line   string    `db:"line" ddl:"TEXT NOT NULL" gorm:"column:line;not null"`
	Period time.Time `db:"period" ddl:"TEXT NOT NULL" gorm:"column:period;type:date;not null"`
	Size   string    `db:"size" ddl:"TEXT NOT NULL" gorm:"column:size;not null"`
}

// Rate is the throughput of a line in a period.
type Rate struct {
	RunID  string    `db:"run_id" ddl:"TEXT NOT NULL" gorm:"column:run_id;type:uuid;not null;index"`
	Line   string    `db:"line" ddl:"TEXT NOT NULL" gorm:"column:line;not null"`
	Period time.Time `db:"period" ddl:"TEXT NOT NULL" gorm:"column:period;type:date;not null"`
	Size   string    `db:"size" ddl:"TEXT NOT NULL" gorm:"column:size;not null"`
	Rate   int       `db:"rate" ddl:"INTEGER NOT NULL" gorm:"column:rate;not null"`
}
