package feed

import (
	"context"
	"sync/atomic"
)

// Bounds is an optional inclusive numeric range predicate. A nil bound
// leaves that side open.
type Bounds struct {
	From *float64
	Till *float64
}

func (b *Bounds) contains(v float64) bool {
	if b == nil {
		return true
	}
	if b.From != nil && v < *b.From {
		return false
	}
	if b.Till != nil && v > *b.Till {
		return false
	}
	return true
}

// Manager turns (owner id, optional bounds) pairs into live filtered views
// of one hub and guarantees the hub-side registration is released exactly
// once when a view ends. rangeValue extracts the predicate field from a
// record; kinds without a range field pass nil and bounds are ignored.
type Manager[T Record] struct {
	hub        *Hub[T]
	rangeValue func(T) float64
}

// NewManager constructs a manager over hub.
func NewManager[T Record](hub *Hub[T], rangeValue func(T) float64) *Manager[T] {
	return &Manager[T]{hub: hub, rangeValue: rangeValue}
}

// Subscription is one client's live filtered view. Events carries the
// matching change events in hub order and is closed on teardown; Err
// reports why.
type Subscription[T Record] struct {
	hub      *Hub[T]
	listener *Listener[T]
	cancel   context.CancelFunc
	explicit atomic.Bool
	done     chan struct{}
}

// Open registers a filtered listener on the hub. The filter re-derives
// authorization per event: ownership first, then the numeric range check.
// The subscription ends when ctx is cancelled, Close is called, or the hub
// loses its upstream — whichever comes first; teardown runs exactly once.
func (m *Manager[T]) Open(ctx context.Context, ownerID string, bounds *Bounds) *Subscription[T] {
	filter := func(ev Event[T]) bool {
		if ev.Record.OwnerID() != ownerID {
			return false
		}
		if bounds != nil && m.rangeValue != nil && !bounds.contains(m.rangeValue(ev.Record)) {
			return false
		}
		return true
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		hub:      m.hub,
		listener: m.hub.Register(filter),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go sub.watch(ctx)
	return sub
}

// watch is the single teardown path. Both terminal triggers (cancellation
// and hub-side close) converge here, so deregistration and channel close
// happen once no matter which fires first.
func (s *Subscription[T]) watch(ctx context.Context) {
	defer close(s.done)

	select {
	case <-ctx.Done():
		s.hub.Deregister(s.listener)
		// Safe to close here: after Deregister returns, no broadcast can
		// reach this listener.
		if s.explicit.Load() {
			s.listener.close(nil)
		} else {
			s.listener.close(ctx.Err())
		}
	case <-s.listener.Done():
		// The hub already closed the listener (upstream lost or shutdown).
		s.hub.Deregister(s.listener)
		s.cancel()
	}
}

// Events returns the delivery channel. It is closed when the subscription
// ends.
func (s *Subscription[T]) Events() <-chan Event[T] { return s.listener.Events() }

// Close tears the subscription down. Idempotent and safe from any
// goroutine; a Close-initiated teardown reports a nil Err.
func (s *Subscription[T]) Close() {
	s.explicit.Store(true)
	s.cancel()
}

// Done is closed once teardown has completed, including hub deregistration.
func (s *Subscription[T]) Done() <-chan struct{} { return s.done }

// Err reports the terminal condition after Events is closed:
// common.ErrUpstreamLost when the hub lost its source, the context error on
// cancellation, nil after an explicit Close.
func (s *Subscription[T]) Err() error { return s.listener.Err() }
