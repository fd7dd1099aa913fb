// Package geo provides geographic primitives shared by the food and cultural
// domains: coordinate points, bounds validation, and great-circle distance.
package geo

import (
	"errors"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distance.
const EarthRadiusKm = 6371.0

// Point represents a geographic coordinate with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Coordinate validation errors.
var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
)

// ValidatePoint checks that a point lies within valid latitude/longitude
// bounds. Distance assumes in-range inputs; callers validate first.
func ValidatePoint(p Point) error {
	if p.Lat < -90 || p.Lat > 90 {
		return ErrLatitudeOutOfRange
	}
	if p.Lng < -180 || p.Lng > 180 {
		return ErrLongitudeOutOfRange
	}
	return nil
}

// Distance returns the great-circle distance in kilometers between two points
// using the Haversine formula. It is symmetric and returns 0 for identical
// points (within floating-point tolerance). Behavior for out-of-range
// coordinates is unspecified; use ValidatePoint first.
func Distance(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lng1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lng2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
