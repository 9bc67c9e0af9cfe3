// Package webhooks delivers board-change events to configured HTTP endpoints.
// Delivery is asynchronous and best-effort: a failing endpoint never blocks
// or fails the operation that produced the event.
package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	defaultQueueSize   = 100
	defaultMaxAttempts = 3
	defaultTimeout     = 5 * time.Second
)

// ErrQueueFull is returned when the delivery queue cannot accept more events
var ErrQueueFull = errors.New("webhook queue is full")

// Dispatcher fans events out to endpoints from a single worker goroutine
type Dispatcher struct {
	endpoints   []string
	client      *http.Client
	queue       chan Event
	maxAttempts int
	wg          sync.WaitGroup
	closeOnce   sync.Once

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher delivering to the given endpoint URLs
// and starts its worker
func NewDispatcher(endpoints []string) *Dispatcher {
	d := &Dispatcher{
		endpoints:   endpoints,
		client:      &http.Client{Timeout: defaultTimeout},
		queue:       make(chan Event, defaultQueueSize),
		maxAttempts: defaultMaxAttempts,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Publish queues an event for delivery. It never blocks: when the queue is
// full, or the dispatcher has been closed, the event is dropped and an error
// returned, since webhook delivery is best-effort.
func (d *Dispatcher) Publish(event Event) error {
	// the mutex keeps the send from racing Close's channel close
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrQueueFull
	}
	select {
	case d.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops the worker after draining queued events
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	d.wg.Wait()
	return nil
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for event := range d.queue {
		for _, endpoint := range d.endpoints {
			d.deliverWithRetry(endpoint, event)
		}
	}
}

// deliverWithRetry makes up to maxAttempts deliveries with exponential
// backoff: 50ms, 100ms, 200ms. Failures after the final attempt are logged
// at warn level and otherwise swallowed.
func (d *Dispatcher) deliverWithRetry(endpoint string, event Event) {
	baseDelay := 50 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		err := d.deliver(endpoint, event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("webhook delivered after retry",
					"attempt", attempt+1,
					"endpoint", endpoint,
					"event_type", event.Type)
			}
			return
		}

		lastErr = err
		if attempt < d.maxAttempts-1 {
			delay := baseDelay * (1 << attempt)
			slog.Debug("webhook delivery failed, retrying",
				"attempt", attempt+1,
				"max_attempts", d.maxAttempts,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	slog.Warn("webhook delivery failed after all retries",
		"attempts", d.maxAttempts,
		"endpoint", endpoint,
		"event_type", event.Type,
		"board_id", event.BoardID,
		"error", lastErr)
}

func (d *Dispatcher) deliver(endpoint string, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	resp, err := d.client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to post event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
