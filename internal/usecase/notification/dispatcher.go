package notification

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"room-booking/internal/domain/reservation"

	"golang.org/x/sync/errgroup"
)

// Publisher hands an event to the outbound channel.
type Publisher interface {
	Publish(ctx context.Context, ev reservation.AdmittedEvent) error
}

type Config struct {
	Workers        int
	QueueSize      int
	PublishTimeout time.Duration
}

// Dispatcher publishes admitted events off the request path. Enqueueing never blocks: when
// the queue is full or the dispatcher is stopping, the event is dropped and logged. Publish
// failures are logged and never retried here.
type Dispatcher struct {
	publisher Publisher
	cfg       Config
	logger    *slog.Logger

	queue   chan reservation.AdmittedEvent
	mu      sync.RWMutex
	closed  bool
	workers errgroup.Group
	started atomic.Bool

	published atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

func NewDispatcher(publisher Publisher, cfg Config, logger *slog.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	return &Dispatcher{
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		queue:     make(chan reservation.AdmittedEvent, cfg.QueueSize),
	}
}

func (d *Dispatcher) Start() {
	if !d.started.CompareAndSwap(false, true) {
		return
	}
	for i := 0; i < d.cfg.Workers; i++ {
		worker := i
		d.workers.Go(func() error {
			for ev := range d.queue {
				d.publish(worker, ev)
			}
			return nil
		})
	}
	d.logger.Info("notification dispatcher started", "workers", d.cfg.Workers, "queue_size", d.cfg.QueueSize)
}

// Admitted enqueues ev. The request context is not carried over; publishing outlives the request.
func (d *Dispatcher) Admitted(_ context.Context, ev reservation.AdmittedEvent) {
	d.Dispatch(ev)
}

// Dispatch reports whether ev was queued.
func (d *Dispatcher) Dispatch(ev reservation.AdmittedEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ev, "dispatcher stopped")
		return false
	}
	select {
	case d.queue <- ev:
		return true
	default:
		d.drop(ev, "queue full")
		return false
	}
}

// Stop refuses new events and waits for queued ones to be published, or for ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	if !d.started.Load() {
		if n := len(d.queue); n > 0 {
			d.logger.Warn("notification dispatcher stopped before start", "discarded", n)
		}
		return nil
	}

	done := make(chan struct{})
	go func() {
		_ = d.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification dispatcher stopped",
			"published", d.published.Load(),
			"failed", d.failed.Load(),
			"dropped", d.dropped.Load())
		return nil
	case <-ctx.Done():
		d.logger.Warn("notification dispatcher stop timed out", "pending", len(d.queue))
		return ctx.Err()
	}
}

type Stats struct {
	Published int64
	Failed    int64
	Dropped   int64
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Published: d.published.Load(),
		Failed:    d.failed.Load(),
		Dropped:   d.dropped.Load(),
	}
}

func (d *Dispatcher) publish(worker int, ev reservation.AdmittedEvent) {
	ctx := context.Background()
	if d.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.PublishTimeout)
		defer cancel()
	}

	if err := d.publisher.Publish(ctx, ev); err != nil {
		d.failed.Add(1)
		d.logger.Error("failed to publish admitted event",
			"worker", worker,
			"event_id", ev.EventID.String(),
			"reservation_id", ev.ReservationID,
			"error", err)
		return
	}
	d.published.Add(1)
	d.logger.Debug("admitted event published", "event_id", ev.EventID.String(), "reservation_id", ev.ReservationID)
}

func (d *Dispatcher) drop(ev reservation.AdmittedEvent, reason string) {
	d.dropped.Add(1)
	d.logger.Warn("admitted event dropped",
		"reason", reason,
		"event_id", ev.EventID.String(),
		"reservation_id", ev.ReservationID)
}
