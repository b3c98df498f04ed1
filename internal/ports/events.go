package ports

import "context"

const (
	// EventSearchStarted is emitted once a session has a validated input.
	EventSearchStarted = "search.started"
	// EventSearchRejected is emitted when the input text fails normalization.
	EventSearchRejected = "search.rejected"
	// EventSequenceResorted is emitted when binary search had to sort its input.
	EventSequenceResorted = "search.resorted"
	// EventStepProduced is emitted for every probe handed to a presenter.
	EventStepProduced = "search.step"
	// EventSearchCompleted is emitted after the final step, carrying the result.
	EventSearchCompleted = "search.completed"
	// EventSearchAbandoned is emitted when the presenter stops pulling early.
	EventSearchAbandoned = "search.abandoned"
)

// DomainEvent represents a significant occurrence during a search session.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler ran. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned,
// not panicked, so the publisher can keep delivering to other subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
