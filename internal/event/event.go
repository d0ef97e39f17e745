// internal/event/event.go
package event

type EventType string

// Event is delivered to every listener subscribed to its Type.
type Event struct {
	Type EventType
	Data interface{} // payload, see types.go
}

type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order.
// It is meant for the viewer's single game-loop goroutine.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
// Listeners are compared with ==, so they must be comparable (pointers in
// practice). The slice is copied rather than shifted in place, which keeps
// a Dispatch already ranging over it unaffected.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
