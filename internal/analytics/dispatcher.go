package analytics

import (
	"context"
	"log/slog"
)

// Sink delivers one event to its destination.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// NopSink discards events. Used when analytics is disabled.
type NopSink struct{}

func (NopSink) Publish(context.Context, Event) error { return nil }

// Dispatcher decouples the checkout flow from the sink: Track is
// non-blocking and drops events when the buffer is full, delivery order is
// best effort.
type Dispatcher struct {
	sink   Sink
	events chan Event
	log    *slog.Logger
}

func NewDispatcher(sink Sink, bufferSize int, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sink:   sink,
		events: make(chan Event, bufferSize),
		log:    log,
	}
}

// Track enqueues the event without blocking the caller.
func (d *Dispatcher) Track(event Event) {
	select {
	case d.events <- event:
	default:
		d.log.Warn("analytics buffer full, dropping event", "name", event.Name)
	}
}

// Run publishes queued events until the context is canceled.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-d.events:
			if err := d.sink.Publish(ctx, event); err != nil {
				d.log.ErrorContext(ctx, "publish analytics event",
					"name", event.Name, "error", err)
			}
		}
	}
}
