package ecs

// EventKind names an event stream.
type EventKind string

// Event is a generic ECS event payload.
type Event struct {
	Kind EventKind
	Data any
}

// EventQueue is a FIFO of events emitted during one world tick. Readers drain
// the kind they own; anything left over is dropped when the tick ends.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain removes and returns every queued event of kind, oldest first.
func (q *EventQueue) Drain(kind EventKind) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Kind == kind {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Event{}
	}
	q.items = kept
	return out
}

// Peek returns the queued events of kind without consuming them.
func (q *EventQueue) Peek(kind EventKind) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops every pending event.
func (q *EventQueue) Clear() {
	q.flush()
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// Emit queues data under kind on the world's event queue.
func Emit(w *World, kind EventKind, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Kind: kind, Data: data})
}

// DrainAs drains kind and returns the payloads that have type T.
func DrainAs[T any](w *World, kind EventKind) []T {
	if w == nil {
		return nil
	}
	events := w.events.Drain(kind)
	if len(events) == 0 {
		return nil
	}
	out := make([]T, 0, len(events))
	for _, evt := range events {
		if v, ok := evt.Data.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
