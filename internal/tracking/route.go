package tracking

import (
	"context"
	"time"

	"swiftdrop/internal/domain"
	"swiftdrop/internal/geo"
)

// DefaultCourierSpeed is the assumed average ground speed for ETA
// estimation, in meters per second (roughly 21.6 km/h in city traffic).
const DefaultCourierSpeed = 6.0

// StraightLineRoutes estimates routes as the great-circle segment between
// the two points at a fixed average speed. It stands in where no mapping
// backend is available; ETAs are optimistic on winding streets.
type StraightLineRoutes struct {
	// Speed in meters per second. Zero means DefaultCourierSpeed.
	Speed float64
}

var _ domain.RouteProvider = StraightLineRoutes{}

func (r StraightLineRoutes) Route(ctx context.Context, from, to domain.LatLng) (domain.DeliveryRoute, error) {
	speed := r.Speed
	if speed <= 0 {
		speed = DefaultCourierSpeed
	}
	meters := geo.DistanceMeters(from, to)
	eta := time.Duration(meters / speed * float64(time.Second))
	return domain.DeliveryRoute{
		Points: []domain.LatLng{from, to},
		ETA:    eta,
		Meters: meters,
	}, nil
}
