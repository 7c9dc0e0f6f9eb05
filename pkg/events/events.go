// Package events is a minimal lifecycle event dispatcher. The scaffold
// pipeline fires name-only markers before and after the file-operation
// phase; listeners are pass-through extension points with no coupling to
// pipeline state.
package events

import (
	"sync"

	"github.com/scaffoldkit/scafgo/pkg/logging"
)

// Event names a lifecycle marker.
type Event string

const (
	// PreScaffold fires before allowed-package resolution begins.
	PreScaffold Event = "pre-scaffold"

	// PostScaffold fires after the last file operation completes.
	PostScaffold Event = "post-scaffold"
)

// Listener receives a fired lifecycle event.
type Listener func(Event)

// Dispatcher fans lifecycle events out to registered listeners.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[Event][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Event][]Listener)}
}

// Subscribe registers a listener for an event.
func (d *Dispatcher) Subscribe(event Event, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[event] = append(d.listeners[event], listener)
}

// Fire invokes every listener registered for the event, in subscription
// order. A nil Dispatcher fires nothing, so callers may leave hooks unset.
func (d *Dispatcher) Fire(event Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	listeners := d.listeners[event]
	d.mu.RUnlock()

	logger := logging.GetLogger("events")
	logger.Debug().Str("event", string(event)).Int("listeners", len(listeners)).Msg("Firing lifecycle event")

	for _, listener := range listeners {
		listener(event)
	}
}
