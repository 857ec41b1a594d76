// Package geo provides the small amount of spherical geometry the tracking
// coordinator needs: great-circle distance, initial bearing, and position
// interpolation between successive GPS fixes.
package geo

import (
	"math"

	"swiftdrop/internal/domain"
)

const (
	// EarthRadiusMeters is Earth's mean radius for Haversine calculation.
	EarthRadiusMeters = 6371008.8

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DistanceMeters calculates the great-circle distance between two points
// using the Haversine formula.
func DistanceMeters(a, b domain.LatLng) float64 {
	dLat := (b.Latitude - a.Latitude) * degToRad
	dLng := (b.Longitude - a.Longitude) * degToRad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*degToRad)*math.Cos(b.Latitude*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// InitialBearing returns the initial compass heading, in degrees [0, 360),
// when travelling from a toward b.
func InitialBearing(a, b domain.LatLng) float64 {
	lat1 := a.Latitude * degToRad
	lat2 := b.Latitude * degToRad
	dLng := (b.Longitude - a.Longitude) * degToRad
	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	deg := math.Atan2(y, x) * radToDeg
	return math.Mod(deg+360, 360)
}

// Interpolate returns the point a fraction t of the way from a to b.
// Marker hops between polls are short, so linear interpolation on the
// coordinate components is accurate enough. t is clamped to [0, 1].
func Interpolate(a, b domain.LatLng, t float64) domain.LatLng {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return domain.LatLng{
		Latitude:  a.Latitude + (b.Latitude-a.Latitude)*t,
		Longitude: a.Longitude + (b.Longitude-a.Longitude)*t,
	}
}

// MovedAtLeast reports whether b is at least meters away from a.
func MovedAtLeast(a, b domain.LatLng, meters float64) bool {
	return DistanceMeters(a, b) >= meters
}
