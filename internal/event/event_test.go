package event

import (
	"testing"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	shots := &recorder{}
	everything := &recorder{}

	d.Subscribe(ShotFired, shots)
	d.SubscribeAll(everything)

	d.DispatchAll([]Event{
		{Type: ShotFired},
		{Type: EnemyDestroyed, Value: 10},
		{Type: ShotFired},
	})

	if len(shots.got) != 2 {
		t.Errorf("typed listener got %d events, expected 2", len(shots.got))
	}
	if len(everything.got) != 3 {
		t.Errorf("catch-all listener got %d events, expected 3", len(everything.got))
	}
	if everything.got[1] != EnemyDestroyed {
		t.Errorf("catch-all order = %v", everything.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.Subscribe(ShieldHit, a)
	d.Subscribe(ShieldHit, b)

	d.Unsubscribe(ShieldHit, a)
	d.Dispatch(Event{Type: ShieldHit})

	if len(a.got) != 0 {
		t.Errorf("unsubscribed listener got %d events", len(a.got))
	}
	if len(b.got) != 1 {
		t.Errorf("remaining listener got %d events, expected 1", len(b.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	total := 0
	d.Subscribe(EnemyDestroyed, ListenerFunc(func(e Event) {
		total += e.Value
	}))

	d.Dispatch(Event{Type: EnemyDestroyed, Value: 10})
	d.Dispatch(Event{Type: EnemyDestroyed, Value: 30})
	d.Dispatch(Event{Type: ShotFired, Value: 99})

	if total != 40 {
		t.Errorf("total = %d, expected 40", total)
	}
}
