package sim

import "container/heap"

// EventQueue is a min-heap of pending events with deterministic ordering.
// Ordering: time → event-kind label. The secondary key is load-bearing:
// two engines built from the same seed must pop equal-time events in the
// same order, so the tie-break is part of the output contract.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make([]Event, 0)}
	heap.Init(q)
	return q
}

// Len implements heap.Interface.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Less implements heap.Interface with deterministic ordering.
// Kind ordinals follow label order (see event.go), so the secondary
// comparison is lexicographic on labels.
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]
	if ei.Time != ej.Time {
		return ei.Time < ej.Time
	}
	return ei.Kind < ej.Kind
}

// Swap implements heap.Interface.
func (q *EventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

// Push implements heap.Interface.
func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(Event))
}

// Pop implements heap.Interface.
func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[0 : n-1]
	return item
}

// Schedule inserts a pending event.
func (q *EventQueue) Schedule(t float64, kind EventKind) {
	heap.Push(q, Event{Time: t, Kind: kind})
}

// PopMin removes and returns the earliest event, or ErrQueueEmpty when no
// events are pending.
func (q *EventQueue) PopMin() (Event, error) {
	if q.Len() == 0 {
		return Event{}, ErrQueueEmpty
	}
	return heap.Pop(q).(Event), nil
}

// PeekMinTime returns the time of the earliest event without removing it,
// or ErrQueueEmpty when no events are pending.
func (q *EventQueue) PeekMinTime() (float64, error) {
	if q.Len() == 0 {
		return 0, ErrQueueEmpty
	}
	return q.events[0].Time, nil
}
