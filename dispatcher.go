package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/grindlemire/go-tui-layout/internal/debug"
)

// ErrDeliveryLimit is returned by Drain when one drain delivers more events
// than the dispatcher allows. It usually means two widgets keep re-posting
// to each other.
var ErrDeliveryLimit = errors.New("event delivery limit exceeded")

const (
	defaultQueueSize     = 256
	defaultMaxDeliveries = 1 << 16
)

type envelope struct {
	to Handler
	ev Event
}

// DispatcherOption is a functional option for configuring a Dispatcher.
type DispatcherOption func(*Dispatcher) error

// WithQueueSize sets the capacity of the cross-goroutine update queue.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) DispatcherOption {
	return func(d *Dispatcher) error {
		if size < 1 {
			return fmt.Errorf("update queue size must be at least 1")
		}
		d.queueSize = size
		return nil
	}
}

// WithMaxDeliveries caps the number of events a single Drain may deliver.
// Default is 65536. Must be at least 1.
func WithMaxDeliveries(n int) DispatcherOption {
	return func(d *Dispatcher) error {
		if n < 1 {
			return fmt.Errorf("max deliveries must be at least 1")
		}
		d.maxDeliveries = n
		return nil
	}
}

// Dispatcher delivers events to handlers one at a time, in the order they
// were posted. Handlers that post while being delivered to have their events
// queued behind the current one, so no layout ever re-enters itself.
//
// Post and Drain must be called from the goroutine that owns the widget
// tree. Other goroutines use QueueUpdate.
type Dispatcher struct {
	queue    []envelope
	draining bool

	updates  chan func()
	stopCh   chan struct{}
	stopOnce sync.Once

	queueSize     int
	maxDeliveries int
}

// NewDispatcher creates a Dispatcher with the given options.
func NewDispatcher(opts ...DispatcherOption) (*Dispatcher, error) {
	d := &Dispatcher{
		stopCh:        make(chan struct{}),
		queueSize:     defaultQueueSize,
		maxDeliveries: defaultMaxDeliveries,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	d.updates = make(chan func(), d.queueSize)
	return d, nil
}

// Post queues ev for delivery to h. It does not deliver anything itself.
func (d *Dispatcher) Post(h Handler, ev Event) {
	if h == nil {
		panic("tui: Post to nil handler")
	}
	d.queue = append(d.queue, envelope{to: h, ev: ev})
}

// Send posts ev to h and drains the queue.
func (d *Dispatcher) Send(h Handler, ev Event) error {
	d.Post(h, ev)
	return d.Drain()
}

// Pending returns the number of events waiting for delivery.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// QueueUpdate enqueues a function to run on the dispatch goroutine.
// Safe to call from any goroutine.
func (d *Dispatcher) QueueUpdate(fn func()) {
	select {
	case d.updates <- fn:
	case <-d.stopCh:
	default:
		debug.Log("dispatcher: update queue full, dropping update")
	}
}

// Drain runs queued updates and delivers queued events until both queues are
// empty, including anything posted along the way. A call made from inside a
// handler returns immediately; the outer Drain picks up the new events.
//
// If the delivery limit is reached, the rest of the queue is discarded and
// an error wrapping ErrDeliveryLimit is returned.
func (d *Dispatcher) Drain() error {
	if d.draining {
		return nil
	}
	d.draining = true
	defer func() { d.draining = false }()

	delivered := 0
	for {
		d.runUpdates()
		if len(d.queue) == 0 {
			return nil
		}
		if delivered == d.maxDeliveries {
			dropped := len(d.queue)
			d.queue = nil
			return fmt.Errorf("%w: delivered %d, dropped %d", ErrDeliveryLimit, delivered, dropped)
		}

		env := d.queue[0]
		d.queue[0] = envelope{}
		d.queue = d.queue[1:]
		env.to.HandleEvent(env.ev)
		delivered++
	}
}

func (d *Dispatcher) runUpdates() {
	for {
		select {
		case fn := <-d.updates:
			fn()
		default:
			return
		}
	}
}

// Run drains the queue, then blocks running updates as they arrive and
// draining after each one. It returns nil after Stop, ctx.Err() when ctx is
// done, or the first Drain error.
func (d *Dispatcher) Run(ctx context.Context) error {
	if err := d.Drain(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stopCh:
			return nil
		case fn := <-d.updates:
			fn()
			if err := d.Drain(); err != nil {
				return err
			}
		}
	}
}

// Stop makes Run return. Stop is idempotent.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
}

// Done returns a channel that is closed once Stop has been called.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.stopCh
}
