package dataset

import "time"

// ColumnKind is the type of values stored in a column.
type ColumnKind int

const (
	IntColumn ColumnKind = iota
	FloatColumn
	TextColumn
	DateColumn
)

// Column describes one column of a Table.
type Column struct {
	Name string
	Kind ColumnKind
}

// Table is a flat relational rendering of an entity slice. References
// are rendered as display names of the referred entities. Row values
// are int, float64, string or time.Time according to the column kind.
type Table struct {
	// Name is the human readable name, used for spreadsheet tabs.
	Name string

	// SQLName is the name of the corresponding database table.
	SQLName string

	Columns []Column
	Rows    [][]any
}

// DateLayout is the text form of period dates in exported tables.
const DateLayout = "2006-01-02"

// Table names in the order writers receive them.
const (
	PeriodsTable      = "Periods"
	PlantsTable       = "Plants"
	LinesTable        = "Lines"
	DistCentersTable  = "Dist. Centers"
	CustomersTable    = "Customers"
	ProductsTable     = "Products"
	RoutesTable       = "Routes"
	DemandsTable      = "Demands"
	CapabilitiesTable = "Capabilities"
	RatesTable        = "Rates"
)

// Tables renders the dataset as exactly ten tables in a fixed order:
// Periods, Plants, Lines, Dist. Centers, Customers, Products, Routes,
// Demands, Capabilities, Rates. The Periods table carries a positional
// index alongside each date.
func (ds *Dataset) Tables() []Table {
	return []Table{
		ds.periodsTable(),
		ds.plantsTable(),
		ds.linesTable(),
		ds.distCentersTable(),
		ds.customersTable(),
		ds.productsTable(),
		ds.routesTable(),
		ds.demandsTable(),
		ds.capabilitiesTable(),
		ds.ratesTable(),
	}
}

// RowsNum returns the total number of rows in all tables.
func RowsNum(tables []Table) int {
	var res int
	for i := range tables {
		res += len(tables[i].Rows)
	}
	return res
}

// TextDates returns a copy of row where dates are rendered with
// DateLayout. Other values are kept as is.
func TextDates(row []any) []any {
	res := make([]any, len(row))
	for i, v := range row {
		if d, ok := v.(time.Time); ok {
			res[i] = d.Format(DateLayout)
			continue
		}
		res[i] = v
	}
	return res
}

func (ds *Dataset) periodDate(id int) time.Time {
	return ds.Periods[id].Date
}

func (ds *Dataset) periodsTable() Table {
	res := Table{
		Name:    PeriodsTable,
		SQLName: "periods",
		Columns: []Column{
			{Name: "index", Kind: IntColumn},
			{Name: "period", Kind: DateColumn},
		},
		Rows: make([][]any, 0, len(ds.Periods)),
	}
	for _, v := range ds.Periods {
		res.Rows = append(res.Rows, []any{v.ID, v.Date})
	}
	return res
}

func (ds *Dataset) plantsTable() Table {
	res := Table{
		Name:    PlantsTable,
		SQLName: "plants",
		Columns: []Column{
			{Name: "name", Kind: TextColumn},
			{Name: "lat", Kind: FloatColumn},
			{Name: "lon", Kind: FloatColumn},
			{Name: "storage_capacity", Kind: IntColumn},
		},
		Rows: make([][]any, 0, len(ds.Plants)),
	}
	for _, v := range ds.Plants {
		res.Rows = append(res.Rows, []any{v.Name, v.Lat, v.Lon, v.Storage})
	}
	return res
}

func (ds *Dataset) linesTable() Table {
	res := Table{
		Name:    LinesTable,
		SQLName: "lines",
		Columns: []Column{
			{Name: "plant", Kind: TextColumn},
			{Name: "name", Kind: TextColumn},
		},
		Rows: make([][]any, 0, len(ds.Lines)),
	}
	for _, v := range ds.Lines {
		res.Rows = append(res.Rows, []any{ds.Plants[v.PlantID].Name, v.Name})
	}
	return res
}

func (ds *Dataset) distCentersTable() Table {
	res := Table{
		Name:    DistCentersTable,
		SQLName: "dist_centers",
		Columns: []Column{
			{Name: "name", Kind: TextColumn},
			{Name: "plant", Kind: TextColumn},
			{Name: "lat", Kind: FloatColumn},
			{Name: "lon", Kind: FloatColumn},
			{Name: "storage_capacity", Kind: IntColumn},
		},
		Rows: make([][]any, 0, len(ds.DistCenters)),
	}
	for _, v := range ds.DistCenters {
		res.Rows = append(res.Rows, []any{
			v.Name, ds.Plants[v.PlantID].Name, v.Lat, v.Lon, v.Storage,
		})
	}
	return res
}

func (ds *Dataset) customersTable() Table {
	res := Table{
		Name:    CustomersTable,
		SQLName: "customers",
		Columns: []Column{
			{Name: "name", Kind: TextColumn},
			{Name: "lat", Kind: FloatColumn},
			{Name: "lon", Kind: FloatColumn},
		},
		Rows: make([][]any, 0, len(ds.Customers)),
	}
	for _, v := range ds.Customers {
		res.Rows = append(res.Rows, []any{v.Name, v.Lat, v.Lon})
	}
	return res
}

func (ds *Dataset) productsTable() Table {
	res := Table{
		Name:    ProductsTable,
		SQLName: "products",
		Columns: []Column{
			{Name: "size", Kind: TextColumn},
			{Name: "product", Kind: TextColumn},
		},
		Rows: make([][]any, 0, len(ds.Products)),
	}
	for _, v := range ds.Products {
		res.Rows = append(res.Rows, []any{ds.Sizes[v.SizeID].Name, v.Name})
	}
	return res
}

func (ds *Dataset) routesTable() Table {
	res := Table{
		Name:    RoutesTable,
		SQLName: "routes",
		Columns: []Column{
			{Name: "origin", Kind: TextColumn},
			{Name: "destination", Kind: TextColumn},
			{Name: "distance", Kind: FloatColumn},
			{Name: "leadtime", Kind: IntColumn},
			{Name: "freight_cost", Kind: FloatColumn},
		},
		Rows: make([][]any, 0, len(ds.Routes)),
	}
	for _, v := range ds.Routes {
		res.Rows = append(res.Rows, []any{
			ds.NodeName(v.Origin), ds.NodeName(v.Destination),
			v.Distance, v.LeadTime, v.FreightCost,
		})
	}
	return res
}

func (ds *Dataset) demandsTable() Table {
	res := Table{
		Name:    DemandsTable,
		SQLName: "demands",
		Columns: []Column{
			{Name: "period", Kind: DateColumn},
			{Name: "customer", Kind: TextColumn},
			{Name: "product_size", Kind: TextColumn},
			{Name: "product", Kind: TextColumn},
			{Name: "demand", Kind: IntColumn},
		},
		Rows: make([][]any, 0, len(ds.Demands)),
	}
	for _, v := range ds.Demands {
		prod := ds.Products[v.ProductID]
		res.Rows = append(res.Rows, []any{
			ds.periodDate(v.PeriodID),
			ds.Customers[v.CustomerID].Name,
			ds.Sizes[prod.SizeID].Name,
			prod.Name,
			v.Quantity,
		})
	}
	return res
}

func (ds *Dataset) capabilitiesTable() Table {
	res := Table{
		Name:    CapabilitiesTable,
		SQLName: "capabilities",
		Columns: []Column{
			{Name: "line", Kind: TextColumn},
			{Name: "period", Kind: DateColumn},
			{Name: "size", Kind: TextColumn},
		},
		Rows: make([][]any, 0, len(ds.Capabilities)),
	}
	for _, v := range ds.Capabilities {
		res.Rows = append(res.Rows, []any{
			ds.Lines[v.LineID].Name,
			ds.periodDate(v.PeriodID),
			ds.Sizes[v.SizeID].Name,
		})
	}
	return res
}

func (ds *Dataset) ratesTable() Table {
	res := Table{
		Name:    RatesTable,
		SQLName: "rates",
		Columns: []Column{
			{Name: "line", Kind: TextColumn},
			{Name: "period", Kind: DateColumn},
			{Name: "size", Kind: TextColumn},
			{Name: "rate", Kind: IntColumn},
		},
		Rows: make([][]any, 0, len(ds.Rates)),
	}
	for _, v := range ds.Rates {
		res.Rows = append(res.Rows, []any{
			ds.Lines[v.LineID].Name,
			ds.periodDate(v.PeriodID),
			ds.Sizes[v.SizeID].Name,
			v.Rate,
		})
	}
	return res
}
