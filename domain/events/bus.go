package events

// Unsubscribe detaches a previously registered listener. Calling it
// more than once is a no-op.
type Unsubscribe func()

// Bus delivers events synchronously to listeners keyed by the event
// type identifier. Listeners for one identifier run in registration
// order; a listener panic surfaces to the publisher.
type Bus interface {
	Publish(event Event)
	Subscribe(eventType string, listener func(Event)) Unsubscribe
}
