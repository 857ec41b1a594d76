package tracking_test

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"swiftdrop/internal/domain"
	"swiftdrop/internal/tracking"
)

// scriptedTracker replays a fixed sequence of samples/errors, repeating the
// last entry once the script runs out.
type scriptedTracker struct {
	mu    sync.Mutex
	steps []step
	calls int
}

type step struct {
	loc domain.DeliveryLocation
	err error
}

func (f *scriptedTracker) TrackDelivery(ctx context.Context, orderID int64) (domain.DeliveryLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i >= len(f.steps) {
		i = len(f.steps) - 1
	}
	return f.steps[i].loc, f.steps[i].err
}

func (f *scriptedTracker) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func sample(pickedUp, out, delivered bool) domain.DeliveryLocation {
	return domain.DeliveryLocation{
		Partner: domain.DeliveryPartner{ID: 1, Name: "Kim"},
		Status:  domain.AssignmentStatus{PickedUp: pickedUp, OutForDelivery: out, Delivered: delivered},
	}
}

func fastCoordinator(tr domain.DeliveryTracker, opts ...tracking.Option) *tracking.Coordinator {
	base := []tracking.Option{
		tracking.WithPollInterval(5 * time.Millisecond),
		tracking.WithAnimation(10*time.Millisecond, 2*time.Millisecond),
		tracking.WithLogger(log.New(io.Discard, "", 0)),
	}
	return tracking.New(tr, append(base, opts...)...)
}

// drain collects every update until the stream closes or the timeout hits.
func drain(t *testing.T, updates <-chan domain.TrackingState, timeout time.Duration) []domain.TrackingState {
	t.Helper()
	var out []domain.TrackingState
	deadline := time.After(timeout)
	for {
		select {
		case st, ok := <-updates:
			if !ok {
				return out
			}
			out = append(out, st)
		case <-deadline:
			t.Fatalf("stream did not close within %v (%d updates so far)", timeout, len(out))
		}
	}
}

func TestCoordinator_PhaseNeverRegresses(t *testing.T) {
	tr := &scriptedTracker{steps: []step{
		{loc: sample(true, true, false)},  // ON_THE_WAY
		{loc: sample(false, false, false)}, // backend regresses; display must not
		{loc: sample(false, false, false)},
		{loc: sample(true, true, true)}, // DELIVERED, closes the stream
	}}
	c := fastCoordinator(tr)
	updates := c.Start(context.Background(), 42, domain.LatLng{})

	states := drain(t, updates, 2*time.Second)
	if len(states) == 0 {
		t.Fatal("no updates observed")
	}

	prev := domain.PhasePreparing
	for i, st := range states {
		if st.Phase < prev {
			t.Fatalf("phase regressed at update %d: %v -> %v", i, prev, st.Phase)
		}
		prev = st.Phase
	}

	final := states[len(states)-1]
	if final.Phase != domain.PhaseDelivered || !final.ShouldStopTracking {
		t.Fatalf("final state = %+v, want DELIVERED + stop", final)
	}
}

func TestCoordinator_DeliveredStopsPolling(t *testing.T) {
	tr := &scriptedTracker{steps: []step{{loc: sample(true, true, true)}}}
	c := fastCoordinator(tr)

	states := drain(t, c.Start(context.Background(), 7, domain.LatLng{}), 2*time.Second)
	if !states[len(states)-1].ShouldStopTracking {
		t.Fatal("expected ShouldStopTracking on delivery")
	}

	polled := tr.callCount()
	time.Sleep(50 * time.Millisecond)
	if tr.callCount() != polled {
		t.Fatalf("polling continued after DELIVERED: %d -> %d", polled, tr.callCount())
	}
}

func TestCoordinator_ConnectionIssueAfterThreeFailures(t *testing.T) {
	poof := errors.New("network down")
	tr := &scriptedTracker{steps: []step{
		{loc: sample(true, true, false)},
		{err: poof},
		{err: poof},
		{err: poof},
		{loc: sample(true, true, false)}, // recovery
		{loc: sample(true, true, true)},
	}}
	c := fastCoordinator(tr)

	states := drain(t, c.Start(context.Background(), 42, domain.LatLng{}), 2*time.Second)

	var sawIssue, recovered bool
	for _, st := range states {
		if st.ConnectionIssue {
			sawIssue = true
			if st.Phase != domain.PhaseOnTheWay {
				t.Fatalf("connection issue changed the phase: %v", st.Phase)
			}
		}
		if sawIssue && !st.ConnectionIssue {
			recovered = true
		}
	}
	if !sawIssue {
		t.Fatal("three consecutive failures should raise the connection-issue flag")
	}
	if !recovered {
		t.Fatal("a successful poll should clear the connection-issue flag")
	}
	if states[len(states)-1].Phase != domain.PhaseDelivered {
		t.Fatal("polling should survive the outage and reach DELIVERED")
	}
}

func TestCoordinator_AnimatedProgressInBounds(t *testing.T) {
	withFix := sample(true, true, false)
	withFix.Location = &domain.LatLng{Latitude: 10, Longitude: 10}
	moved := sample(true, true, false)
	moved.Location = &domain.LatLng{Latitude: 10.0005, Longitude: 10}

	tr := &scriptedTracker{steps: []step{
		{loc: withFix},
		{loc: moved},
		{loc: sample(true, true, true)},
	}}
	c := fastCoordinator(tr)

	states := drain(t, c.Start(context.Background(), 42, domain.LatLng{}), 2*time.Second)
	var sawAnimated bool
	for _, st := range states {
		if st.Animated == nil {
			continue
		}
		sawAnimated = true
		if p := st.Animated.Progress; p < 0 || p > 1 {
			t.Fatalf("animated progress out of bounds: %v", p)
		}
	}
	if !sawAnimated {
		t.Fatal("expected animated positions once a GPS fix arrived")
	}
}

func TestCoordinator_StartCancelsPreviousSession(t *testing.T) {
	tr := &scriptedTracker{steps: []step{{loc: sample(false, false, false)}}}
	c := fastCoordinator(tr)

	first := c.Start(context.Background(), 1, domain.LatLng{})
	second := c.Start(context.Background(), 2, domain.LatLng{})
	defer c.Stop()

	select {
	case _, ok := <-firstClosed(first):
		if ok {
			t.Fatal("first stream should be closed, not delivering")
		}
	case <-time.After(time.Second):
		t.Fatal("first session not cancelled by second Start")
	}

	select {
	case _, ok := <-second:
		if !ok {
			t.Fatal("second stream closed unexpectedly")
		}
	case <-time.After(time.Second):
		t.Fatal("second session produced no updates")
	}
}

// firstClosed drains any buffered update so the closed-ness of the stream
// is observable.
func firstClosed(ch <-chan domain.TrackingState) <-chan domain.TrackingState {
	out := make(chan domain.TrackingState)
	go func() {
		defer close(out)
		for range ch {
		}
	}()
	return out
}

func TestCoordinator_StopIsIdempotent(t *testing.T) {
	tr := &scriptedTracker{steps: []step{{loc: sample(false, false, false)}}}
	c := fastCoordinator(tr)

	c.Stop() // nothing running yet

	updates := c.Start(context.Background(), 1, domain.LatLng{})
	c.Stop()
	c.Stop()

	if _, ok := <-firstClosed(updates); ok {
		t.Fatal("stream should be closed after Stop")
	}
}

// routeAt always answers with a fixed ETA.
type routeAt time.Duration

func (r routeAt) Route(ctx context.Context, from, to domain.LatLng) (domain.DeliveryRoute, error) {
	return domain.DeliveryRoute{Points: []domain.LatLng{from, to}, ETA: time.Duration(r)}, nil
}

func TestCoordinator_ArrivingSoonNeedsShortETA(t *testing.T) {
	out := sample(true, true, false)
	out.Location = &domain.LatLng{Latitude: 10, Longitude: 10}

	tr := &scriptedTracker{steps: []step{{loc: out}, {loc: sample(true, true, true)}}}
	c := fastCoordinator(tr, tracking.WithRouteProvider(routeAt(3*time.Minute)))

	states := drain(t, c.Start(context.Background(), 42, domain.LatLng{Latitude: 10.001, Longitude: 10}), 2*time.Second)

	var sawArriving bool
	for _, st := range states {
		if st.Phase == domain.PhaseArrivingSoon {
			sawArriving = true
		}
	}
	if !sawArriving {
		t.Fatal("3-minute ETA while out for delivery should show ARRIVING_SOON")
	}
}
