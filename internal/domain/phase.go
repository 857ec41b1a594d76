package domain

// TrackingPhase is the coarse-grained tracking state shown to the customer.
// The ordering matters: the coordinator never lets the displayed phase move
// backward through it.
type TrackingPhase int

const (
	PhasePreparing TrackingPhase = iota
	PhaseOnTheWay
	PhaseArrivingSoon
	PhaseDelivered
)

func (p TrackingPhase) String() string {
	switch p {
	case PhaseOnTheWay:
		return "ON_THE_WAY"
	case PhaseArrivingSoon:
		return "ARRIVING_SOON"
	case PhaseDelivered:
		return "DELIVERED"
	default:
		return "PREPARING"
	}
}
