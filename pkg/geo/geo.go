// Package geo provides great-circle distances on a spherical Earth.
package geo

import (
	"math"

	"github.com/shopspring/decimal"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Distance returns the haversine great-circle distance in kilometers
// between two points given in degrees.
func Distance(origin, destination Point) float64 {
	dLat := radians(destination.Lat - origin.Lat)
	dLon := radians(destination.Lon - origin.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(origin.Lat))*math.Cos(radians(destination.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Round rounds f to the given number of decimal places using
// round-half-to-even, the rule tabular tools apply to stored values.
func Round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).RoundBank(places).InexactFloat64()
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
