package generate

import "github.com/gnames/scnet/pkg/dataset"

// Sizes converts the size catalog into entities.
func Sizes(names []string) []dataset.Size {
	res := make([]dataset.Size, len(names))
	for i, v := range names {
		res[i] = dataset.Size{ID: i, Name: v}
	}
	return res
}

// Products creates perSize products of every size. Product names are
// numbered from 1 across the whole catalog.
func Products(sizes []dataset.Size, perSize int) []dataset.Product {
	names := dataset.NewCounter("Product %d", 1)
	res := make([]dataset.Product, 0, len(sizes)*perSize)
	for _, s := range sizes {
		for range perSize {
			res = append(res, dataset.Product{
				ID:     len(res),
				Name:   names.Next(),
				SizeID: s.ID,
			})
		}
	}
	return res
}
