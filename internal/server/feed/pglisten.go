package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PGSource is a Source backed by PostgreSQL LISTEN/NOTIFY. Row-level
// triggers (installed by the migrations) publish every mutation on a
// per-kind channel as a JSON payload {"op": ..., "doc": {...}}; the source
// holds one dedicated connection per kind and blocks on it.
//
// Notifications issued before the LISTEN was established are not observable;
// a fresh source sees only mutations from that point forward.
type PGSource[T Record] struct {
	conn    *pgx.Conn
	channel string
}

type pgPayload[T Record] struct {
	Op  Operation `json:"op"`
	Doc T         `json:"doc"`
}

// OpenPGSource connects to the database and starts listening on channel.
func OpenPGSource[T Record](ctx context.Context, dsn string, channel string) (*PGSource[T], error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("feed: connect: %w", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("feed: listen %s: %w", channel, err)
	}

	return &PGSource[T]{conn: conn, channel: channel}, nil
}

// Next blocks until the next notification arrives on the channel and decodes
// it. Any connection error is terminal.
func (s *PGSource[T]) Next(ctx context.Context) (Notification[T], error) {
	var n Notification[T]

	raw, err := s.conn.WaitForNotification(ctx)
	if err != nil {
		return n, fmt.Errorf("feed: wait on %s: %w", s.channel, err)
	}

	var payload pgPayload[T]
	if err := json.Unmarshal([]byte(raw.Payload), &payload); err != nil {
		return n, fmt.Errorf("feed: decode payload on %s: %w", s.channel, err)
	}

	n.Op = payload.Op
	n.Document = payload.Doc
	return n, nil
}

// Close releases the dedicated connection.
func (s *PGSource[T]) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}
