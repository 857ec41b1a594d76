package tracking

import (
	"context"
	"testing"
	"time"

	"swiftdrop/internal/domain"
)

func TestStraightLineRouteETA(t *testing.T) {
	// One degree of latitude is about 111.2 km.
	from := domain.LatLng{Latitude: 0, Longitude: 0}
	to := domain.LatLng{Latitude: 1, Longitude: 0}

	r := StraightLineRoutes{Speed: 10} // 10 m/s
	route, err := r.Route(context.Background(), from, to)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if route.Meters < 110_000 || route.Meters > 112_000 {
		t.Errorf("meters = %.0f, want about 111 200", route.Meters)
	}
	wantETA := time.Duration(route.Meters / 10 * float64(time.Second))
	if route.ETA != wantETA {
		t.Errorf("eta = %s, want %s", route.ETA, wantETA)
	}
	if len(route.Points) != 2 || route.Points[0] != from || route.Points[1] != to {
		t.Errorf("points = %v, want endpoints", route.Points)
	}
}

func TestStraightLineRouteDefaultSpeed(t *testing.T) {
	from := domain.LatLng{Latitude: 0, Longitude: 0}

	r := StraightLineRoutes{}
	route, err := r.Route(context.Background(), from, from)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if route.ETA != 0 || route.Meters != 0 {
		t.Errorf("zero-length route = %+v, want zero ETA and distance", route)
	}
}
