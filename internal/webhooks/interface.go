package webhooks

// Publisher defines the interface for delivering change events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type Publisher interface {
	// Publish queues an event for delivery to all configured endpoints
	Publish(event Event) error

	// Close flushes pending deliveries and stops the dispatcher
	Close() error
}

// Compile-time verification that *Dispatcher implements Publisher
var _ Publisher = (*Dispatcher)(nil)
