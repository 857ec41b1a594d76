package tracking

import (
	"time"

	"swiftdrop/internal/domain"
	"swiftdrop/internal/geo"
)

// animator smooths marker movement between successive GPS fixes. Time is
// passed in explicitly so tests drive it without a clock.
type animator struct {
	duration time.Duration

	hasFix    bool
	animating bool
	from      domain.LatLng
	target    domain.LatLng
	current   domain.LatLng
	bearing   float64
	startedAt time.Time
}

func newAnimator(duration time.Duration) *animator {
	return &animator{duration: duration}
}

// retarget points the animation at a new fix. The very first fix snaps the
// marker; afterwards interpolation restarts from the current (possibly
// mid-flight) position, so the marker never jumps backward.
func (a *animator) retarget(target domain.LatLng, now time.Time) {
	if !a.hasFix {
		a.hasFix = true
		a.from = target
		a.target = target
		a.current = target
		return
	}
	if target == a.target {
		return
	}
	a.from = a.current
	a.target = target
	a.bearing = geo.InitialBearing(a.from, target)
	a.startedAt = now
	a.animating = true
}

// step advances the animation to now and returns the displayed position.
// ok is false until the first fix arrives.
func (a *animator) step(now time.Time) (domain.AnimatedLocation, bool) {
	if !a.hasFix {
		return domain.AnimatedLocation{}, false
	}
	progress := 1.0
	if a.animating {
		elapsed := now.Sub(a.startedAt)
		switch {
		case elapsed <= 0:
			progress = 0
		case elapsed >= a.duration:
			progress = 1
			a.animating = false
		default:
			progress = float64(elapsed) / float64(a.duration)
		}
	}
	a.current = geo.Interpolate(a.from, a.target, progress)
	return domain.AnimatedLocation{
		Current:  a.current,
		Target:   a.target,
		Bearing:  a.bearing,
		Progress: progress,
	}, true
}

// active reports whether an animation is still in flight.
func (a *animator) active() bool { return a.animating }
