package dataset

import "fmt"

// Check verifies referential integrity of the dataset: every
// reference resolves to an entity of the same run, IDs match slice
// positions and names are unique within their kind. It returns the
// list of violations, empty for a consistent dataset.
func (ds *Dataset) Check() []string {
	var res []string
	add := func(format string, args ...any) {
		res = append(res, fmt.Sprintf(format, args...))
	}
	in := func(id, n int) bool {
		return id >= 0 && id < n
	}

	for i, v := range ds.Periods {
		if v.ID != i {
			add("period %d has id %d", i, v.ID)
		}
		if i > 0 && !v.Date.Equal(ds.Periods[i-1].Date.AddDate(0, 0, 1)) {
			add("period %d does not follow the previous day", i)
		}
	}

	names := make(map[string]struct{})
	unique := func(kind, name string) {
		key := kind + "\x00" + name
		if _, ok := names[key]; ok {
			add("duplicate %s name %q", kind, name)
		}
		names[key] = struct{}{}
	}

	for i, v := range ds.Plants {
		if v.ID != i {
			add("plant %q has id %d at position %d", v.Name, v.ID, i)
		}
		unique("plant", v.Name)
	}
	for i, v := range ds.DistCenters {
		if v.ID != i {
			add("dist. center %q has id %d at position %d", v.Name, v.ID, i)
		}
		if !in(v.PlantID, len(ds.Plants)) {
			add("dist. center %q refers to unknown plant %d", v.Name, v.PlantID)
		}
		unique("dist. center", v.Name)
	}
	for i, v := range ds.Customers {
		if v.ID != i {
			add("customer %q has id %d at position %d", v.Name, v.ID, i)
		}
		unique("customer", v.Name)
	}
	for i, v := range ds.Sizes {
		if v.ID != i {
			add("size %q has id %d at position %d", v.Name, v.ID, i)
		}
		unique("size", v.Name)
	}
	for i, v := range ds.Products {
		if v.ID != i {
			add("product %q has id %d at position %d", v.Name, v.ID, i)
		}
		if !in(v.SizeID, len(ds.Sizes)) {
			add("product %q refers to unknown size %d", v.Name, v.SizeID)
		}
		unique("product", v.Name)
	}
	for i, v := range ds.Lines {
		if v.ID != i {
			add("line %q has id %d at position %d", v.Name, v.ID, i)
		}
		if !in(v.PlantID, len(ds.Plants)) {
			add("line %q refers to unknown plant %d", v.Name, v.PlantID)
		}
		unique("line", v.Name)
	}

	for i, v := range ds.Routes {
		if ds.NodeName(v.Origin) == "" {
			add("route %d has unknown origin %s %d", i, v.Origin.Kind, v.Origin.ID)
		}
		if ds.NodeName(v.Destination) == "" {
			add("route %d has unknown destination %s %d",
				i, v.Destination.Kind, v.Destination.ID)
		}
		if v.Distance < 0 {
			add("route %d has negative distance %v", i, v.Distance)
		}
	}

	for i, v := range ds.Demands {
		if !in(v.PeriodID, len(ds.Periods)) ||
			!in(v.CustomerID, len(ds.Customers)) ||
			!in(v.ProductID, len(ds.Products)) {
			add("demand %d has unresolved references", i)
		}
	}

	for i, v := range ds.Capabilities {
		if !in(v.LineID, len(ds.Lines)) ||
			!in(v.PeriodID, len(ds.Periods)) ||
			!in(v.SizeID, len(ds.Sizes)) {
			add("capability %d has unresolved references", i)
		}
	}

	if len(ds.Rates) != len(ds.Capabilities) {
		add("%d rates for %d capabilities",
			len(ds.Rates), len(ds.Capabilities))
		return res
	}
	for i, v := range ds.Rates {
		c := ds.Capabilities[i]
		if v.LineID != c.LineID || v.PeriodID != c.PeriodID ||
			v.SizeID != c.SizeID {
			add("rate %d does not match its capability", i)
		}
	}

	return res
}
