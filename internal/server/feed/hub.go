package feed

import (
	"context"
	"sync"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/logging"
)

// Listener is one registered consumer of a hub. The hub owns the event
// channel: it is the only sender and the only closer, which keeps
// broadcast/teardown free of send-on-closed races.
type Listener[T Record] struct {
	id     uint64
	ch     chan Event[T]
	filter func(Event[T]) bool

	closeOnce sync.Once
	done      chan struct{}
	err       error
}

// Events returns the delivery channel. It is closed when the listener is
// torn down; Err reports why.
func (l *Listener[T]) Events() <-chan Event[T] { return l.ch }

// Done is closed when the listener has been torn down.
func (l *Listener[T]) Done() <-chan struct{} { return l.done }

// Err reports the terminal condition after Events is closed:
// common.ErrUpstreamLost when the hub lost its source, nil otherwise.
// It must not be called before Done is closed.
func (l *Listener[T]) Err() error { return l.err }

// close is called by the hub after the listener can no longer receive a
// send: either under the registry lock or after removal from the registry.
func (l *Listener[T]) close(err error) {
	l.closeOnce.Do(func() {
		l.err = err
		close(l.done)
		close(l.ch)
	})
}

// Hub owns exactly one Source for a record kind and relays every normalized
// event, in arrival order, to the currently registered listeners. Filters
// run synchronously inside the dispatch loop; delivery is a bounded
// per-listener channel, and a listener that cannot keep up loses events
// instead of slowing the loop or its peers.
type Hub[T Record] struct {
	log     logging.Logger
	source  Source[T]
	kind    string
	metrics *Metrics

	queueDepth int
	// tombstoned, when set, reclassifies an update whose resulting document
	// carries the soft-delete marker as a delete. Kinds without soft
	// deletion leave it nil.
	tombstoned func(T) bool

	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]*Listener[T]
	closed    bool
	closedErr error
}

// HubOption configures a Hub.
type HubOption[T Record] func(*Hub[T])

// WithQueueDepth sets the per-listener delivery buffer.
func WithQueueDepth[T Record](depth int) HubOption[T] {
	return func(h *Hub[T]) {
		if depth > 0 {
			h.queueDepth = depth
		}
	}
}

// WithTombstoneRule enables update-to-delete reclassification for documents
// reported as tombstoned.
func WithTombstoneRule[T Record](tombstoned func(T) bool) HubOption[T] {
	return func(h *Hub[T]) { h.tombstoned = tombstoned }
}

// WithMetrics attaches fan-out metrics.
func WithMetrics[T Record](m *Metrics) HubOption[T] {
	return func(h *Hub[T]) { h.metrics = m }
}

// NewHub constructs a hub for one record kind over the given source.
func NewHub[T Record](log logging.Logger, source Source[T], kind string, opts ...HubOption[T]) *Hub[T] {
	h := &Hub[T]{
		log:        log.With("module", "feed", "kind", kind),
		source:     source,
		kind:       kind,
		queueDepth: 64,
		listeners:  make(map[uint64]*Listener[T]),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run consumes the source until the context is cancelled or the source
// fails. On source failure every listener is closed with
// common.ErrUpstreamLost; the hub does not resume from a checkpoint, so a
// fresh hub observes only events from its own start.
func (h *Hub[T]) Run(ctx context.Context) error {
	for {
		n, err := h.source.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				h.shutdown(nil)
				return ctx.Err()
			}
			h.log.Error(ctx, "mutation source failed", "error", err)
			h.shutdown(common.ErrUpstreamLost)
			return common.ErrUpstreamLost
		}

		ev, ok := h.normalize(n)
		if !ok {
			h.log.Warn(ctx, "ignoring unknown mutation op", "op", string(n.Op))
			continue
		}
		h.broadcast(ev)
	}
}

// normalize maps raw op codes onto change types and applies the tombstone
// rule: an update whose document is already soft-deleted is, for
// subscribers, a delete.
func (h *Hub[T]) normalize(n Notification[T]) (Event[T], bool) {
	switch n.Op {
	case OpInsert:
		return Event[T]{Change: Created, Record: n.Document}, true
	case OpUpdate:
		if h.tombstoned != nil && h.tombstoned(n.Document) {
			return Event[T]{Change: Deleted, Record: n.Document}, true
		}
		return Event[T]{Change: Updated, Record: n.Document}, true
	case OpDelete:
		return Event[T]{Change: Deleted, Record: n.Document}, true
	default:
		return Event[T]{}, false
	}
}

// Register adds a listener whose filter runs inside the dispatch loop;
// filters must be cheap and non-blocking. A nil filter receives everything.
// Registering on a hub that has already shut down returns a listener that
// is closed immediately with the hub's terminal error.
func (h *Hub[T]) Register(filter func(Event[T]) bool) *Listener[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	l := &Listener[T]{
		id:     h.nextID,
		ch:     make(chan Event[T], h.queueDepth),
		filter: filter,
		done:   make(chan struct{}),
	}

	if h.closed {
		l.close(h.closedErr)
		return l
	}

	h.listeners[l.id] = l
	h.metrics.listenerAdded(h.kind)
	return l
}

// Deregister removes a listener from the registry. Safe to call multiple
// times. It does not close the listener's channel; the caller may do so
// once Deregister has returned, because no broadcast can reach the listener
// after removal.
func (h *Hub[T]) Deregister(l *Listener[T]) {
	if l == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.listeners[l.id]; !ok {
		return
	}
	delete(h.listeners, l.id)
	h.metrics.listenerRemoved(h.kind)
}

// ListenerCount reports the current registry size.
func (h *Hub[T]) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// broadcast pushes one event to every registered listener whose filter
// accepts it. A full queue drops the event for that listener only.
func (h *Hub[T]) broadcast(ev Event[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.metrics.eventBroadcast(h.kind, ev.Change)

	for _, l := range h.listeners {
		if l.filter != nil && !l.filter(ev) {
			continue
		}
		select {
		case l.ch <- ev:
		default:
			h.metrics.eventDropped(h.kind)
		}
	}
}

// shutdown closes every listener with err and refuses future registrations.
func (h *Hub[T]) shutdown(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.closedErr = err

	for id, l := range h.listeners {
		delete(h.listeners, id)
		h.metrics.listenerRemoved(h.kind)
		l.close(err)
	}
}
