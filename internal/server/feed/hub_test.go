package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type testRec struct {
	Owner    string
	Duration float64
	Dead     bool
}

func (r testRec) OwnerID() string { return r.Owner }

// chanSource feeds notifications from test code into a hub.
type chanSource struct {
	ch   chan Notification[testRec]
	errs chan error
}

func newChanSource() *chanSource {
	return &chanSource{
		ch:   make(chan Notification[testRec], 16),
		errs: make(chan error, 1),
	}
}

func (s *chanSource) Next(ctx context.Context) (Notification[testRec], error) {
	select {
	case n := <-s.ch:
		return n, nil
	case err := <-s.errs:
		return Notification[testRec]{}, err
	case <-ctx.Done():
		return Notification[testRec]{}, ctx.Err()
	}
}

func (s *chanSource) emit(op Operation, rec testRec) {
	s.ch <- Notification[testRec]{Op: op, Document: rec}
}

func startHub(t *testing.T, src Source[testRec], opts ...HubOption[testRec]) (*Hub[testRec], func()) {
	t.Helper()
	h := NewHub[testRec](nopLogger{}, src, "test", opts...)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = h.Run(ctx)
	}()

	return h, func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("hub did not stop")
		}
	}
}

func recvEvent(t *testing.T, ch <-chan Event[testRec]) Event[testRec] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event[testRec]{}
}

func TestHub_NormalizesOpCodes(t *testing.T) {
	src := newChanSource()
	h, stop := startHub(t, src)
	defer stop()

	l := h.Register(nil)
	defer h.Deregister(l)

	src.emit(OpInsert, testRec{Owner: "u1"})
	src.emit(OpUpdate, testRec{Owner: "u1"})
	src.emit(OpDelete, testRec{Owner: "u1"})

	want := []ChangeType{Created, Updated, Deleted}
	for i, w := range want {
		ev := recvEvent(t, l.Events())
		if ev.Change != w {
			t.Fatalf("event %d: got %v want %v", i, ev.Change, w)
		}
	}
}

func TestHub_TombstoneReclassifiesUpdate(t *testing.T) {
	src := newChanSource()
	h, stop := startHub(t, src, WithTombstoneRule[testRec](func(r testRec) bool { return r.Dead }))
	defer stop()

	l := h.Register(nil)
	defer h.Deregister(l)

	src.emit(OpUpdate, testRec{Owner: "u1", Dead: true})
	src.emit(OpUpdate, testRec{Owner: "u1", Dead: false})

	if ev := recvEvent(t, l.Events()); ev.Change != Deleted {
		t.Fatalf("tombstoned update: got %v want %v", ev.Change, Deleted)
	}
	if ev := recvEvent(t, l.Events()); ev.Change != Updated {
		t.Fatalf("live update: got %v want %v", ev.Change, Updated)
	}
}

func TestHub_NoTombstoneRuleKeepsUpdates(t *testing.T) {
	src := newChanSource()
	h, stop := startHub(t, src)
	defer stop()

	l := h.Register(nil)
	defer h.Deregister(l)

	src.emit(OpUpdate, testRec{Owner: "u1", Dead: true})

	if ev := recvEvent(t, l.Events()); ev.Change != Updated {
		t.Fatalf("got %v want %v (kind without the tombstone rule)", ev.Change, Updated)
	}
}

func TestHub_FiltersRunPerListener(t *testing.T) {
	src := newChanSource()
	h, stop := startHub(t, src)
	defer stop()

	onlyA := h.Register(func(ev Event[testRec]) bool { return ev.Record.Owner == "A" })
	all := h.Register(nil)
	defer h.Deregister(onlyA)
	defer h.Deregister(all)

	src.emit(OpInsert, testRec{Owner: "B"})
	src.emit(OpInsert, testRec{Owner: "A"})

	// The unfiltered listener sees both, in order.
	if ev := recvEvent(t, all.Events()); ev.Record.Owner != "B" {
		t.Fatalf("got owner %q want B", ev.Record.Owner)
	}
	if ev := recvEvent(t, all.Events()); ev.Record.Owner != "A" {
		t.Fatalf("got owner %q want A", ev.Record.Owner)
	}

	// The filtered listener must see A's event first, i.e. B's was never
	// queued for it.
	if ev := recvEvent(t, onlyA.Events()); ev.Record.Owner != "A" {
		t.Fatalf("filtered listener got owner %q want A", ev.Record.Owner)
	}
	select {
	case ev := <-onlyA.Events():
		t.Fatalf("unexpected extra event: %+v", ev)
	default:
	}
}

func TestHub_SlowListenerDropsWithoutStallingOthers(t *testing.T) {
	src := newChanSource()
	h, stop := startHub(t, src, WithQueueDepth[testRec](1))
	defer stop()

	slow := h.Register(nil)
	fast := h.Register(nil)
	defer h.Deregister(slow)
	defer h.Deregister(fast)

	// fast is drained continuously; nobody consumes slow, so its one-slot
	// queue holds the first event and the rest drop.
	got := make(chan Event[testRec], 8)
	go func() {
		for ev := range fast.Events() {
			got <- ev
		}
	}()

	for i := 0; i < 3; i++ {
		src.emit(OpInsert, testRec{Owner: "u1", Duration: float64(i)})
	}

	for i := 0; i < 3; i++ {
		ev := recvEvent(t, got)
		if ev.Record.Duration != float64(i) {
			t.Fatalf("fast listener out of order: got %v want %v", ev.Record.Duration, float64(i))
		}
	}

	if ev := recvEvent(t, slow.Events()); ev.Record.Duration != 0 {
		t.Fatalf("slow listener should keep the first event, got %v", ev.Record.Duration)
	}
	select {
	case ev := <-slow.Events():
		t.Fatalf("slow listener should have dropped the rest, got %+v", ev)
	default:
	}
}

func TestHub_DeregisterIdempotentAndRestoresCount(t *testing.T) {
	src := newChanSource()
	h, stop := startHub(t, src)
	defer stop()

	before := h.ListenerCount()
	l := h.Register(nil)
	if got := h.ListenerCount(); got != before+1 {
		t.Fatalf("count after register: got %d want %d", got, before+1)
	}

	h.Deregister(l)
	h.Deregister(l)
	if got := h.ListenerCount(); got != before {
		t.Fatalf("count after deregister: got %d want %d", got, before)
	}
}

func TestHub_UpstreamLossClosesListeners(t *testing.T) {
	src := newChanSource()
	h := NewHub[testRec](nopLogger{}, src, "test")

	runErr := make(chan error, 1)
	go func() { runErr <- h.Run(context.Background()) }()

	l := h.Register(nil)

	src.errs <- errors.New("connection reset")

	select {
	case err := <-runErr:
		if !errors.Is(err, common.ErrUpstreamLost) {
			t.Fatalf("Run returned %v, want common.ErrUpstreamLost", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after source failure")
	}

	select {
	case _, ok := <-l.Events():
		if ok {
			t.Fatal("expected closed channel, got event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("listener channel not closed")
	}
	if !errors.Is(l.Err(), common.ErrUpstreamLost) {
		t.Fatalf("listener err: got %v want common.ErrUpstreamLost", l.Err())
	}
	if got := h.ListenerCount(); got != 0 {
		t.Fatalf("listener count after shutdown: got %d want 0", got)
	}
}

func TestHub_RegisterAfterShutdownFailsFast(t *testing.T) {
	src := newChanSource()
	h := NewHub[testRec](nopLogger{}, src, "test")

	runErr := make(chan error, 1)
	go func() { runErr <- h.Run(context.Background()) }()

	src.errs <- errors.New("gone")
	<-runErr

	l := h.Register(nil)
	select {
	case _, ok := <-l.Events():
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("late listener not closed immediately")
	}
	if !errors.Is(l.Err(), common.ErrUpstreamLost) {
		t.Fatalf("late listener err: got %v", l.Err())
	}
}

func TestHub_RegisterDuringBroadcastIsSafe(t *testing.T) {
	src := newChanSource()
	h, stop := startHub(t, src, WithQueueDepth[testRec](128))
	defer stop()

	stopChurn := make(chan struct{})
	churned := make(chan struct{})
	go func() {
		defer close(churned)
		for {
			select {
			case <-stopChurn:
				return
			default:
			}
			l := h.Register(nil)
			h.Deregister(l)
		}
	}()

	stable := h.Register(nil)
	defer h.Deregister(stable)

	const n = 100
	go func() {
		for i := 0; i < n; i++ {
			src.emit(OpInsert, testRec{Owner: "u1", Duration: float64(i)})
		}
	}()

	// The stable listener must see every event exactly once, in order,
	// regardless of concurrent register/deregister churn.
	for i := 0; i < n; i++ {
		ev := recvEvent(t, stable.Events())
		if ev.Record.Duration != float64(i) {
			t.Fatalf("event %d: got duration %v", i, ev.Record.Duration)
		}
	}

	close(stopChurn)
	<-churned
}
