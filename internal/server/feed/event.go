// Package feed implements the authenticated reactive change fan-out engine:
// one upstream mutation feed per record kind, normalized into typed change
// events and multiplexed to many independently filtered subscriptions.
package feed

// Record is the minimal contract a streamed document must satisfy: every
// record knows which subject owns it, so authorization can be re-derived
// per event rather than cached per connection.
type Record interface {
	OwnerID() string
}

// ChangeType classifies a normalized mutation.
type ChangeType int8

const (
	Created ChangeType = iota
	Updated
	Deleted
)

func (t ChangeType) String() string {
	switch t {
	case Created:
		return "create"
	case Updated:
		return "update"
	case Deleted:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is one normalized change delivered to subscribers. It lives only on
// the wire between hub and subscribers and is never persisted.
type Event[T Record] struct {
	Change ChangeType
	Record T
}
