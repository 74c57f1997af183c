// internal/event/event.go
package event

// Event — структура события
type Event struct {
	Type Type
	Data any // payload из types.go, соответствующий Type
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType Type, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every known event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllTypes() {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType Type, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Emit wraps payload in an Event of its registered type and dispatches it.
func (d *Dispatcher) Emit(payload Payload) {
	d.Dispatch(Event{Type: payload.EventType(), Data: payload})
}

// Handle subscribes fn to the event type of T. Events whose payload is not a
// T are skipped. The returned Listener can be passed to Unsubscribe.
func Handle[T Payload](d *Dispatcher, fn func(T)) Listener {
	var zero T
	l := &typedListener[T]{fn: fn}
	d.Subscribe(zero.EventType(), l)
	return l
}

type typedListener[T Payload] struct {
	fn func(T)
}

func (l *typedListener[T]) OnEvent(e Event) {
	if p, ok := e.Data.(T); ok {
		l.fn(p)
	}
}
