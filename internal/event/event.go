// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data any // Данные события, см. *Data в types.go
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher - синхронный диспетчер событий. Подписчики вызываются в
// порядке подписки внутри того же тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe - отписка от события. ListenerFunc values are not comparable
// and cannot be unsubscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	// Копия: подписчик может отписаться прямо из OnEvent.
	listeners := append([]Listener(nil), d.listeners[event.Type]...)
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}
