// Package chat is the process-wide chat notification relay.
//
// Incoming chat messages (delivered out-of-band, typically by push) are
// fanned out to whichever screens are currently observing. Delivery is
// fire-and-forget: with nobody subscribed a message is dropped, and a slow
// observer loses messages according to the relay's drop policy rather than
// ever blocking a publisher. The relay does no routing; observers filter by
// room id themselves.
package chat

import (
	"sync"

	"github.com/google/uuid"

	"swiftdrop/internal/domain"
)

// DropPolicy says which message loses when an observer's buffer is full.
type DropPolicy int

const (
	// DropOldest evicts the observer's oldest buffered message to make
	// room for the new one.
	DropOldest DropPolicy = iota
	// DropNewest discards the incoming message instead.
	DropNewest
)

// DefaultBuffer is the per-observer buffer size used by NewRelay when the
// caller passes zero.
const DefaultBuffer = 8

// Relay is safe for concurrent publishers and subscribers.
type Relay struct {
	policy DropPolicy
	buffer int

	mu   sync.RWMutex
	subs map[uuid.UUID]chan domain.ChatMessage
}

// NewRelay builds a relay with the given per-observer buffer and policy.
func NewRelay(buffer int, policy DropPolicy) *Relay {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Relay{
		policy: policy,
		buffer: buffer,
		subs:   make(map[uuid.UUID]chan domain.ChatMessage),
	}
}

// Publish fans msg out to every current observer without ever blocking.
func (r *Relay) Publish(msg domain.ChatMessage) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ch := range r.subs {
		select {
		case ch <- msg:
			continue
		default:
		}
		if r.policy == DropNewest {
			continue
		}
		// DropOldest: evict one and retry once. A concurrent receive may
		// have freed the slot already, in which case the send just lands.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- msg:
		default:
		}
	}
}

// Subscribe registers an observer and returns its stream plus a cancel
// func. Cancel is idempotent; the stream closes once cancelled.
func (r *Relay) Subscribe() (<-chan domain.ChatMessage, func()) {
	id := uuid.New()
	ch := make(chan domain.ChatMessage, r.buffer)

	r.mu.Lock()
	r.subs[id] = ch
	r.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, id)
			r.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Observers reports how many observers are currently subscribed.
func (r *Relay) Observers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

// Compile-time assertion that Relay implements domain.ChatPublisher.
var _ domain.ChatPublisher = (*Relay)(nil)
