// Package eventsink persists checkout session audit events.
package eventsink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/paykit/checkout-gateway/internal/domain/checkout"
	"github.com/paykit/checkout-gateway/pkg/postgres"
)

const eventsTable = "checkout_events"

// PgEventSink appends session events to the checkout_events table.
type PgEventSink struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgEventSink(pg *postgres.Postgres) *PgEventSink {
	return &PgEventSink{db: pg.Pool, builder: pg.Builder}
}

func (s *PgEventSink) Record(ctx context.Context, event checkout.SessionEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	sql, args, err := s.builder.
		Insert(eventsTable).
		Columns("id", "session_id", "kind", "payload", "created_at").
		Values(uuid.NewString(), event.SessionID, event.Kind, payload, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert session event: %w", err)
	}
	return nil
}
