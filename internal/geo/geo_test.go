package geo

import (
	"math"
	"testing"

	"swiftdrop/internal/domain"
)

func TestDistanceMeters_ZeroDistance(t *testing.T) {
	p := domain.LatLng{Latitude: 10, Longitude: 20}
	d := DistanceMeters(p, p)
	if d < 0 || d > 1e-6 {
		t.Fatalf("zero distance expected ~0, got %v", d)
	}
}

func TestDistanceMeters_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is roughly 111.2 km everywhere.
	a := domain.LatLng{Latitude: 0, Longitude: 0}
	b := domain.LatLng{Latitude: 1, Longitude: 0}
	d := DistanceMeters(a, b)
	if d < 110_000 || d > 112_500 {
		t.Fatalf("one degree latitude = %v m, want ~111200", d)
	}
}

func TestInitialBearing_CardinalDirections(t *testing.T) {
	origin := domain.LatLng{}
	cases := []struct {
		to   domain.LatLng
		want float64
	}{
		{domain.LatLng{Latitude: 1, Longitude: 0}, 0},   // north
		{domain.LatLng{Latitude: 0, Longitude: 1}, 90},  // east
		{domain.LatLng{Latitude: -1, Longitude: 0}, 180}, // south
		{domain.LatLng{Latitude: 0, Longitude: -1}, 270}, // west
	}
	for _, c := range cases {
		got := InitialBearing(origin, c.to)
		if math.Abs(got-c.want) > 0.01 {
			t.Errorf("InitialBearing(origin, %+v) = %v, want %v", c.to, got, c.want)
		}
	}
}

func TestInterpolate_EndpointsAndClamp(t *testing.T) {
	a := domain.LatLng{Latitude: 10, Longitude: 10}
	b := domain.LatLng{Latitude: 11, Longitude: 12}

	if got := Interpolate(a, b, 0); got != a {
		t.Errorf("t=0: got %+v, want a", got)
	}
	if got := Interpolate(a, b, 1); got != b {
		t.Errorf("t=1: got %+v, want b", got)
	}
	if got := Interpolate(a, b, -0.5); got != a {
		t.Errorf("t<0 should clamp to a, got %+v", got)
	}
	if got := Interpolate(a, b, 1.5); got != b {
		t.Errorf("t>1 should clamp to b, got %+v", got)
	}

	mid := Interpolate(a, b, 0.5)
	if math.Abs(mid.Latitude-10.5) > 1e-9 || math.Abs(mid.Longitude-11) > 1e-9 {
		t.Errorf("midpoint = %+v, want {10.5 11}", mid)
	}
}

func TestMovedAtLeast(t *testing.T) {
	a := domain.LatLng{Latitude: 0, Longitude: 0}
	near := domain.LatLng{Latitude: 0, Longitude: 0.0001} // ~11 m
	far := domain.LatLng{Latitude: 0, Longitude: 0.001}   // ~111 m

	if MovedAtLeast(a, near, 25) {
		t.Error("11 m should not count as moved >= 25 m")
	}
	if !MovedAtLeast(a, far, 25) {
		t.Error("111 m should count as moved >= 25 m")
	}
}
