package tracking

import (
	"math"
	"testing"
	"time"

	"swiftdrop/internal/domain"
)

var (
	fixA = domain.LatLng{Latitude: 10, Longitude: 10}
	fixB = domain.LatLng{Latitude: 10.001, Longitude: 10}
	fixC = domain.LatLng{Latitude: 10.001, Longitude: 10.001}
)

func TestAnimator_FirstFixSnaps(t *testing.T) {
	a := newAnimator(time.Second)
	now := time.Now()

	if _, ok := a.step(now); ok {
		t.Fatal("step before any fix should report no position")
	}

	a.retarget(fixA, now)
	al, ok := a.step(now)
	if !ok {
		t.Fatal("expected a position after the first fix")
	}
	if al.Current != fixA || al.Progress != 1 {
		t.Fatalf("first fix should snap: %+v", al)
	}
	if a.active() {
		t.Fatal("no animation should run for the first fix")
	}
}

func TestAnimator_ProgressBoundsAndCompletion(t *testing.T) {
	a := newAnimator(time.Second)
	start := time.Now()
	a.retarget(fixA, start)
	a.retarget(fixB, start)

	for _, dt := range []time.Duration{-time.Second, 0, 250 * time.Millisecond, 999 * time.Millisecond, time.Second, time.Hour} {
		al, _ := a.step(start.Add(dt))
		if al.Progress < 0 || al.Progress > 1 {
			t.Fatalf("progress out of [0,1] at dt=%v: %v", dt, al.Progress)
		}
	}

	al, _ := a.step(start.Add(2 * time.Second))
	if al.Progress != 1 || al.Current != fixB {
		t.Fatalf("at completion current should equal target: %+v", al)
	}
}

func TestAnimator_MidpointInterpolation(t *testing.T) {
	a := newAnimator(time.Second)
	start := time.Now()
	a.retarget(fixA, start)
	a.retarget(fixB, start)

	al, _ := a.step(start.Add(500 * time.Millisecond))
	wantLat := (fixA.Latitude + fixB.Latitude) / 2
	if math.Abs(al.Current.Latitude-wantLat) > 1e-9 {
		t.Fatalf("midpoint latitude = %v, want %v", al.Current.Latitude, wantLat)
	}
}

func TestAnimator_RetargetMidFlightStartsFromCurrent(t *testing.T) {
	a := newAnimator(time.Second)
	start := time.Now()
	a.retarget(fixA, start)
	a.retarget(fixB, start)

	// Halfway to B, a new fix lands.
	mid, _ := a.step(start.Add(500 * time.Millisecond))
	a.retarget(fixC, start.Add(500*time.Millisecond))

	al, _ := a.step(start.Add(500 * time.Millisecond))
	if al.Progress != 0 {
		t.Fatalf("fresh retarget should restart progress, got %v", al.Progress)
	}
	if al.Current != mid.Current {
		t.Fatalf("retarget must continue from mid-flight position %+v, got %+v", mid.Current, al.Current)
	}
	if al.Target != fixC {
		t.Fatalf("target = %+v, want %+v", al.Target, fixC)
	}
}

func TestAnimator_BearingPointsAtTarget(t *testing.T) {
	a := newAnimator(time.Second)
	start := time.Now()
	a.retarget(fixA, start)
	a.retarget(fixB, start) // due north of fixA

	al, _ := a.step(start)
	if math.Abs(al.Bearing-0) > 0.5 {
		t.Fatalf("bearing toward due-north target = %v, want ~0", al.Bearing)
	}
}

func TestAnimator_SameTargetIsNoop(t *testing.T) {
	a := newAnimator(time.Second)
	start := time.Now()
	a.retarget(fixA, start)
	a.retarget(fixB, start)
	a.step(start.Add(300 * time.Millisecond))

	a.retarget(fixB, start.Add(300*time.Millisecond))
	al, _ := a.step(start.Add(300 * time.Millisecond))
	if al.Progress == 0 {
		t.Fatal("re-announcing the same fix must not restart the animation")
	}
}
