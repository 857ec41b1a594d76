package tracking

import (
	"time"

	"swiftdrop/internal/domain"
)

// ArrivingSoonWindow is the remaining-ETA threshold below which an
// out-for-delivery order shows as arriving.
const ArrivingSoonWindow = 5 * time.Minute

// DerivePhase maps a raw assignment status to a display phase. Pure
// function; precedence is fixed and the first match wins. hasETA guards
// the ArrivingSoon promotion: with no route there is no ETA to compare.
func DerivePhase(st domain.AssignmentStatus, eta time.Duration, hasETA bool) domain.TrackingPhase {
	switch {
	case st.Delivered:
		return domain.PhaseDelivered
	case st.OutForDelivery && hasETA && eta <= ArrivingSoonWindow:
		return domain.PhaseArrivingSoon
	case st.OutForDelivery:
		return domain.PhaseOnTheWay
	default:
		return domain.PhasePreparing
	}
}
