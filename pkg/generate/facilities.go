package generate

import (
	"strings"
	"time"

	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/random"
)

// Periods returns n consecutive days starting at midnight of the day
// of now, in the location of now.
func Periods(n int, now time.Time) []dataset.Period {
	day := time.Date(
		now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location(),
	)
	res := make([]dataset.Period, n)
	for i := range res {
		res[i] = dataset.Period{ID: i, Date: day.AddDate(0, 0, i)}
	}
	return res
}

// Plants places plants uniformly inside the bounding box.
func Plants(cfg config.GenerationConfig, src random.Source) []dataset.Plant {
	names := dataset.NewCounter("Plant %d", 0)
	res := make([]dataset.Plant, cfg.Plants)
	for i := range res {
		lat, lon := location(cfg, src)
		res[i] = dataset.Plant{
			ID:      i,
			Name:    names.Next(),
			Lat:     lat,
			Lon:     lon,
			Storage: src.Int(cfg.PlantStorage.Min, cfg.PlantStorage.Max),
		}
	}
	return res
}

// Lines creates production lines for every plant. Line names are
// numbered from 1 within their plant.
func Lines(
	cfg config.GenerationConfig,
	plants []dataset.Plant,
	src random.Source,
) []dataset.Line {
	var res []dataset.Line
	for _, p := range plants {
		format := strings.ReplaceAll(p.Name, "%", "%%") + "_%d"
		names := dataset.NewCounter(format, 1)
		n := src.Int(cfg.LinesPerPlant.Min, cfg.LinesPerPlant.Max)
		for range n {
			res = append(res, dataset.Line{
				ID:      len(res),
				Name:    names.Next(),
				PlantID: p.ID,
			})
		}
	}
	return res
}

// DistCenters attaches distribution centers to every plant. Their
// coordinates are the parent's ones shifted by a uniform offset in
// degrees per axis, so they can drift outside of the bounding box.
// Names are numbered across all plants.
func DistCenters(
	cfg config.GenerationConfig,
	plants []dataset.Plant,
	src random.Source,
) []dataset.DistCenter {
	names := dataset.NewCounter("Warehouse %d", 1)
	off := cfg.DistCenterOffset
	var res []dataset.DistCenter
	for _, p := range plants {
		n := src.Int(cfg.DistCentersPerPlant.Min, cfg.DistCentersPerPlant.Max)
		for range n {
			lat := p.Lat + src.Float(-off, off)
			lon := p.Lon + src.Float(-off, off)
			res = append(res, dataset.DistCenter{
				ID:      len(res),
				Name:    names.Next(),
				PlantID: p.ID,
				Lat:     lat,
				Lon:     lon,
				Storage: src.Int(
					cfg.DistCenterStorage.Min, cfg.DistCenterStorage.Max,
				),
			})
		}
	}
	return res
}

// Customers places customers uniformly inside the bounding box.
func Customers(
	cfg config.GenerationConfig,
	src random.Source,
) []dataset.Customer {
	names := dataset.NewCounter("Customer %d", 0)
	res := make([]dataset.Customer, cfg.Customers)
	for i := range res {
		lat, lon := location(cfg, src)
		res[i] = dataset.Customer{ID: i, Name: names.Next(), Lat: lat, Lon: lon}
	}
	return res
}

func location(cfg config.GenerationConfig, src random.Source) (float64, float64) {
	lat := src.Float(cfg.Lat.Min, cfg.Lat.Max)
	lon := src.Float(cfg.Lon.Min, cfg.Lon.Max)
	return lat, lon
}
