// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — уведомление от симуляции
type Event struct {
	Type EventType
	Data interface{}
}

// Listener получает события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет использовать функцию как Listener
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription идентифицирует подписку для последующей отписки
type Subscription uint64

type registration struct {
	id       Subscription
	listener Listener
}

// Dispatcher синхронно раздаёт события подписчикам в порядке подписки.
// nil *Dispatcher всё отбрасывает.
type Dispatcher struct {
	nextID    Subscription
	listeners map[EventType][]registration
}

// NewDispatcher создаёт пустой диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]registration),
	}
}

// Subscribe подписывает listener на eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], registration{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeAll подписывает listener сразу на несколько типов
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) []Subscription {
	subs := make([]Subscription, 0, len(eventTypes))
	for _, t := range eventTypes {
		subs = append(subs, d.Subscribe(t, listener))
	}
	return subs
}

// Unsubscribe снимает подписку, сделанную Subscribe
func (d *Dispatcher) Unsubscribe(eventType EventType, sub Subscription) {
	regs := d.listeners[eventType]
	for i, r := range regs {
		if r.id == sub {
			d.listeners[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Dispatch доставляет событие всем подписчикам его типа
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, r := range d.listeners[event.Type] {
		r.listener.OnEvent(event)
	}
}

// Publish собирает Event и вызывает Dispatch
func (d *Dispatcher) Publish(eventType EventType, data interface{}) {
	d.Dispatch(Event{Type: eventType, Data: data})
}
