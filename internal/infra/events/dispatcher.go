// Package events delivers guard events off the request path.
package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/metrics"

	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

// Dispatcher queues events and publishes them from a single goroutine, so
// events of one request keep their order.
type Dispatcher struct {
	publisher  service.EventPublisher
	metrics    *metrics.AuthMetrics
	logger     *slog.Logger
	dropIfFull bool

	mu      sync.RWMutex
	queue   chan service.AuthEvent
	closed  bool
	done    chan struct{}
	dropped atomic.Uint64
}

var _ service.EventSink = (*Dispatcher)(nil)

// NewDispatcher creates a stopped dispatcher.
func NewDispatcher(cfg *config.EventsConfig, publisher service.EventPublisher, m *metrics.AuthMetrics, logger *slog.Logger) *Dispatcher {
	size := cfg.BufferSize
	if size <= 0 {
		size = 1
	}

	return &Dispatcher{
		publisher:  publisher,
		metrics:    m,
		logger:     logger,
		dropIfFull: cfg.DropIfFull,
		queue:      make(chan service.AuthEvent, size),
		done:       make(chan struct{}),
	}
}

// SinkParams holds dependencies for the event sink, injected by Fx
type SinkParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Publisher service.EventPublisher
	Metrics   *metrics.AuthMetrics
	Logger    *slog.Logger
}

// NewEventSink starts a dispatcher with the application and drains it on shutdown.
func NewEventSink(params SinkParams) service.EventSink {
	dispatcher := NewDispatcher(params.Config.Events, params.Publisher, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()

			return nil
		},
		OnStop: dispatcher.Stop,
	})

	return dispatcher
}

// Start launches the publishing goroutine.
func (d *Dispatcher) Start() {
	go d.run()
}

// Emit never waits when dropIfFull is set. Otherwise it waits for queue
// space until ctx is done.
func (d *Dispatcher) Emit(ctx context.Context, event service.AuthEvent) {
	if d.metrics != nil {
		d.metrics.ObserveEvent(event.Group, string(event.Type), event.Guard)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(event)

		return
	}

	if d.dropIfFull {
		select {
		case d.queue <- event:
		default:
			d.drop(event)
		}

		return
	}

	select {
	case d.queue <- event:
	case <-ctx.Done():
		d.drop(event)
	}
}

func (d *Dispatcher) drop(event service.AuthEvent) {
	d.dropped.Add(1)
	if d.metrics != nil {
		d.metrics.EventDropped()
	}

	d.logger.Debug("Auth event dropped", slog.String("event", event.Name))
}

// Dropped is the number of events that were never queued.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for event := range d.queue {
		d.publish(event)
	}
}

func (d *Dispatcher) publish(event service.AuthEvent) {
	if d.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := d.publisher.PublishAuthEvent(ctx, &event); err != nil {
		if d.metrics != nil {
			d.metrics.PublishFailed()
		}

		d.logger.Warn("Failed to publish auth event",
			slog.String("event", event.Name),
			slog.String("request_id", event.RequestID),
			slog.Any("error", err),
		)
	}
}

// Stop refuses new events and waits for queued ones to be published.
// It must be called after Start.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "auth event queue was not drained")
	}
}
