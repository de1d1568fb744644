package feed

import "context"

// Operation is the raw mutation op code reported by a Source before
// normalization.
type Operation string

const (
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Notification is one raw upstream mutation: the op code plus the resulting
// document (for deletes, the last known state of the row).
type Notification[T Record] struct {
	Op       Operation
	Document T
}

// Source yields an ordered sequence of mutation notifications for one record
// kind. Next blocks until a notification arrives, the context is cancelled,
// or the underlying connection fails; a failed connection is terminal for
// the Source.
type Source[T Record] interface {
	Next(ctx context.Context) (Notification[T], error)
}
