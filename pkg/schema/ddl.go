package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	var columns []string
	for _, f := range fields(model) {
		columns = append(columns, fmt.Sprintf("    %q %s", f[0], f[1]))
	}

	ddl := fmt.Sprintf("CREATE TABLE %q (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns column names of a model in declaration order.
func Columns(model any) []string {
	fs := fields(model)
	res := make([]string, len(fs))
	for i, v := range fs {
		res[i] = v[0]
	}
	return res
}

// fields returns pairs of db and ddl tags.
func fields(model any) [][2]string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res [][2]string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			res = append(res, [2]string{dbTag, ddlTag})
		}
	}
	return res
}

func runIndex(table string) []string {
	return []string{
		fmt.Sprintf("CREATE INDEX idx_%s_run_id ON %q(run_id);", table, table),
	}
}

func (r Run) TableDDL() string   { return generateDDL(r, r.TableName()) }
func (r Run) IndexDDL() []string { return []string{} }
func (r Run) TableName() string  { return "runs" }

func (p Period) TableDDL() string   { return generateDDL(p, p.TableName()) }
func (p Period) IndexDDL() []string { return runIndex(p.TableName()) }
func (p Period) TableName() string  { return "periods" }

func (p Plant) TableDDL() string   { return generateDDL(p, p.TableName()) }
func (p Plant) IndexDDL() []string { return runIndex(p.TableName()) }
func (p Plant) TableName() string  { return "plants" }

func (l Line) TableDDL() string   { return generateDDL(l, l.TableName()) }
func (l Line) IndexDDL() []string { return runIndex(l.TableName()) }
func (l Line) TableName() string  { return "lines" }

func (d DistCenter) TableDDL() string   { return generateDDL(d, d.TableName()) }
func (d DistCenter) IndexDDL() []string { return runIndex(d.TableName()) }
func (d DistCenter) TableName() string  { return "dist_centers" }

func (c Customer) TableDDL() string   { return generateDDL(c, c.TableName()) }
func (c Customer) IndexDDL() []string { return runIndex(c.TableName()) }
func (c Customer) TableName() string  { return "customers" }

func (p Product) TableDDL() string   { return generateDDL(p, p.TableName()) }
func (p Product) IndexDDL() []string { return runIndex(p.TableName()) }
func (p Product) TableName() string  { return "products" }

func (r Route) TableDDL() string { return generateDDL(r, r.TableName()) }
func (r Route) IndexDDL() []string {
	return append(runIndex(r.TableName()),
		`CREATE INDEX idx_routes_origin ON "routes"(origin);`,
		`CREATE INDEX idx_routes_destination ON "routes"(destination);`,
	)
}
func (r Route) TableName() string { return "routes" }

func (d Demand) TableDDL() string   { return generateDDL(d, d.TableName()) }
func (d Demand) IndexDDL() []string { return runIndex(d.TableName()) }
func (d Demand) TableName() string  { return "demands" }

func (c Capability) TableDDL() string   { return generateDDL(c, c.TableName()) }
func (c Capability) IndexDDL() []string { return runIndex(c.TableName()) }
func (c Capability) TableName() string  { return "capabilities" }

func (r Rate) TableDDL() string   { return generateDDL(r, r.TableName()) }
func (r Rate) IndexDDL() []string { return runIndex(r.TableName()) }
func (r Rate) TableName() string  { return "rates" }
