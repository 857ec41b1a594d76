package tracking

import (
	"context"
	"log"
	"sync"
	"time"

	"swiftdrop/internal/domain"
	"swiftdrop/internal/geo"
)

const (
	defaultPollInterval  = 7 * time.Second
	defaultAnimDuration  = 1500 * time.Millisecond
	defaultFrameInterval = 60 * time.Millisecond

	// routeRecomputeMeters is how far the partner must move before the
	// route and ETA are recomputed.
	routeRecomputeMeters = 25.0

	// consecutive poll failures before the connection-issue flag is raised.
	failureThreshold = 3
)

// Coordinator drives one live tracking session at a time.
type Coordinator struct {
	tracker domain.DeliveryTracker
	routes  domain.RouteProvider
	log     *log.Logger

	pollInterval  time.Duration
	animDuration  time.Duration
	frameInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRouteProvider enables route/ETA computation; without one, phases
// never promote to ARRIVING_SOON.
func WithRouteProvider(rp domain.RouteProvider) Option {
	return func(c *Coordinator) { c.routes = rp }
}

// WithPollInterval overrides the backend polling cadence.
func WithPollInterval(d time.Duration) Option {
	return func(c *Coordinator) { c.pollInterval = d }
}

// WithAnimation overrides the marker animation duration and frame cadence.
func WithAnimation(duration, frame time.Duration) Option {
	return func(c *Coordinator) {
		c.animDuration = duration
		c.frameInterval = frame
	}
}

// WithLogger routes coordinator diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// New constructs a Coordinator over the given tracker.
func New(tracker domain.DeliveryTracker, opts ...Option) *Coordinator {
	c := &Coordinator{
		tracker:       tracker,
		log:           log.Default(),
		pollInterval:  defaultPollInterval,
		animDuration:  defaultAnimDuration,
		frameInterval: defaultFrameInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins tracking orderID toward dest and returns the update stream.
// Any previous session is cancelled first, so at most one polling loop is
// ever live. Updates are latest-wins: a slow consumer sees the freshest
// state, not a backlog. The stream closes when tracking stops (delivery
// reached, context cancelled, or Stop called).
func (c *Coordinator) Start(ctx context.Context, orderID int64, dest domain.LatLng) <-chan domain.TrackingState {
	c.Stop()

	ctx, cancel := context.WithCancel(ctx)
	updates := make(chan domain.TrackingState, 1)
	done := make(chan struct{})

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go c.run(ctx, orderID, dest, updates, done)
	return updates
}

// Stop cancels the active session, if any, and waits for its loop to exit.
// Safe to call repeatedly.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// session is the per-run mutable state of one tracking loop.
type session struct {
	orderID int64
	dest    domain.LatLng

	last    domain.DeliveryLocation
	haveLoc bool

	// floor is the highest phase observed; the displayed phase never
	// drops below it even if a later poll reports a less advanced status.
	floor domain.TrackingPhase

	route      *domain.DeliveryRoute
	routedFrom *domain.LatLng

	failures  int
	connIssue bool

	anim *animator
}

func (c *Coordinator) run(ctx context.Context, orderID int64, dest domain.LatLng, updates chan domain.TrackingState, done chan struct{}) {
	defer close(done)
	defer close(updates)

	s := &session{orderID: orderID, dest: dest, anim: newAnimator(c.animDuration)}

	pollT := time.NewTicker(c.pollInterval)
	defer pollT.Stop()
	frameT := time.NewTicker(c.frameInterval)
	defer frameT.Stop()

	// First sample immediately rather than one interval in.
	if stop := c.poll(ctx, s, updates); stop {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-pollT.C:
			if stop := c.poll(ctx, s, updates); stop {
				return
			}
		case now := <-frameT.C:
			if !s.anim.active() {
				continue
			}
			s.anim.step(now)
			emit(updates, c.state(s, false))
		}
	}
}

// poll fetches one tracking sample and folds it into the session. The
// returned flag is true when tracking must stop (delivered or cancelled).
func (c *Coordinator) poll(ctx context.Context, s *session, updates chan domain.TrackingState) bool {
	loc, err := c.tracker.TrackDelivery(ctx, s.orderID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		s.failures++
		c.log.Printf("tracking: poll order %d failed (%d consecutive): %v", s.orderID, s.failures, err)
		if s.failures >= failureThreshold && !s.connIssue {
			s.connIssue = true
			emit(updates, c.state(s, false))
		}
		return false
	}
	s.failures = 0
	s.connIssue = false
	s.last = loc
	s.haveLoc = true

	now := time.Now()
	if loc.Location != nil {
		c.fold(ctx, s, *loc.Location, now)
	}

	phase := DerivePhase(loc.Status, s.eta(), s.route != nil)
	if phase > s.floor {
		s.floor = phase
	}

	if s.floor == domain.PhaseDelivered {
		emit(updates, c.state(s, true))
		return true
	}
	emit(updates, c.state(s, false))
	return false
}

// fold absorbs a new GPS fix: retarget the marker animation and recompute
// the route once the partner has moved far enough.
func (c *Coordinator) fold(ctx context.Context, s *session, fix domain.LatLng, now time.Time) {
	s.anim.retarget(fix, now)

	if c.routes == nil {
		return
	}
	if s.routedFrom != nil && !geo.MovedAtLeast(*s.routedFrom, fix, routeRecomputeMeters) {
		return
	}
	route, err := c.routes.Route(ctx, fix, s.dest)
	if err != nil {
		// Route trouble is cosmetic; keep the stale route and move on.
		c.log.Printf("tracking: route order %d: %v", s.orderID, err)
		return
	}
	s.route = &route
	from := fix
	s.routedFrom = &from
}

func (s *session) eta() time.Duration {
	if s.route == nil {
		return 0
	}
	return s.route.ETA
}

// state snapshots the session into the value emitted to the UI.
func (c *Coordinator) state(s *session, stop bool) domain.TrackingState {
	st := domain.TrackingState{
		Location:           s.last,
		Route:              s.route,
		Phase:              s.floor,
		ConnectionIssue:    s.connIssue,
		ShouldStopTracking: stop,
	}
	if al, ok := s.anim.step(time.Now()); ok {
		st.Animated = &al
	}
	return st
}

// emit delivers latest-wins: when the consumer lags, the stale update is
// dropped in favour of the new one. The coordinator goroutine is the only
// sender, so draining one slot cannot race another send.
func emit(updates chan domain.TrackingState, st domain.TrackingState) {
	for {
		select {
		case updates <- st:
			return
		default:
		}
		select {
		case <-updates:
		default:
		}
	}
}
