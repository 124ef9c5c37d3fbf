package sim

import (
	"errors"
	"testing"
)

func TestEventQueue_PopMin_OrdersByTime(t *testing.T) {
	// GIVEN events pushed out of time order
	q := NewEventQueue()
	q.Schedule(3.5, KindRecovery)
	q.Schedule(0.25, KindExposure)
	q.Schedule(1.75, KindIncubation)
	q.Schedule(0.5, KindDeath)

	// WHEN all events are popped
	var times []float64
	for q.Len() > 0 {
		ev, err := q.PopMin()
		if err != nil {
			t.Fatalf("PopMin on non-empty queue: %v", err)
		}
		times = append(times, ev.Time)
	}

	// THEN they come out in ascending time order
	want := []float64{0.25, 0.5, 1.75, 3.5}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("pop %d: got time %v, want %v", i, times[i], want[i])
		}
	}
}

func TestEventQueue_PopMin_TieBreaksByKindLabel(t *testing.T) {
	// GIVEN four events at the identical time, pushed in reverse label order
	q := NewEventQueue()
	q.Schedule(2.0, KindVaccine)
	q.Schedule(2.0, KindRecovery)
	q.Schedule(2.0, KindDetermineVaccines)
	q.Schedule(2.0, KindBetaChange)

	// WHEN all events are popped
	var kinds []EventKind
	for q.Len() > 0 {
		ev, _ := q.PopMin()
		kinds = append(kinds, ev.Kind)
	}

	// THEN ties resolve by lexicographic kind label
	want := []EventKind{KindBetaChange, KindDetermineVaccines, KindRecovery, KindVaccine}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("pop %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestEventQueue_PopMin_Empty_ReturnsErrQueueEmpty(t *testing.T) {
	q := NewEventQueue()
	if _, err := q.PopMin(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("PopMin on empty queue: got %v, want ErrQueueEmpty", err)
	}
}

func TestEventQueue_PeekMinTime_DoesNotRemove(t *testing.T) {
	// GIVEN a queue with two events
	q := NewEventQueue()
	q.Schedule(4.0, KindRecovery)
	q.Schedule(1.0, KindExposure)

	// WHEN the minimum time is peeked twice
	first, err := q.PeekMinTime()
	if err != nil {
		t.Fatalf("PeekMinTime: %v", err)
	}
	second, _ := q.PeekMinTime()

	// THEN both return the earliest time and the queue is unchanged
	if first != 1.0 || second != 1.0 {
		t.Errorf("PeekMinTime: got %v then %v, want 1.0 both times", first, second)
	}
	if q.Len() != 2 {
		t.Errorf("PeekMinTime modified queue length: got %d, want 2", q.Len())
	}
}

func TestEventQueue_PeekMinTime_Empty_ReturnsErrQueueEmpty(t *testing.T) {
	q := NewEventQueue()
	if _, err := q.PeekMinTime(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("PeekMinTime on empty queue: got %v, want ErrQueueEmpty", err)
	}
}
