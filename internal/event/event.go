// Package event carries gameplay notifications from the simulation to
// collaborators such as audio, without the simulation knowing who listens.
package event

import (
	"sync"

	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// EventType names a kind of event.
type EventType string

const (
	ShotFired        EventType = "ShotFired"
	EnemyHit         EventType = "EnemyHit" // non-lethal hit on an armored enemy
	EnemyDestroyed   EventType = "EnemyDestroyed"
	ExplosionSpawned EventType = "ExplosionSpawned"
	ShieldHit        EventType = "ShieldHit"
	PlayerDestroyed  EventType = "PlayerDestroyed"
	PowerUpDropped   EventType = "PowerUpDropped"
	PowerUpCollected EventType = "PowerUpCollected"
	TripleShotGained EventType = "TripleShotGained"
	LevelCleared     EventType = "LevelCleared"
	GameStarted      EventType = "GameStarted"
	HighscoreBeaten  EventType = "HighscoreBeaten"
)

// Event is a single notification.
type Event struct {
	Type  EventType
	Pos   core.Vec2 // where it happened, if meaningful
	Value int       // score delta, new level, new highscore...
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers.
// Listeners run synchronously on the dispatching goroutine.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers l for one event type.
func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll registers l for every event type.
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = append(d.all, l)
}

// Unsubscribe removes l from one event type.
// l must be comparable; a ListenerFunc cannot be unsubscribed.
func (d *Dispatcher) Unsubscribe(t EventType, l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	listeners := d.listeners[t]
	for i, existing := range listeners {
		if existing == l {
			d.listeners[t] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to its type subscribers, then to catch-all subscribers.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.RLock()
	typed := append([]Listener(nil), d.listeners[e.Type]...)
	all := append([]Listener(nil), d.all...)
	d.mu.RUnlock()

	for _, l := range typed {
		l.OnEvent(e)
	}
	for _, l := range all {
		l.OnEvent(e)
	}
}

// DispatchAll delivers events in order.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
