package stadium

import (
	"errors"
	"sync"
)

// PointerEventKind discriminates the three gesture phases.
type PointerEventKind uint8

const (
	PointerDown PointerEventKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is one resolved pointer sample in the active renderer's
// coordinate convention. Events that miss the interactive surface are never
// queued at all.
type PointerEvent struct {
	Kind PointerEventKind
	X, Z float64
}

// InputQueue is a bounded FIFO between the gesture layer and the editor.
// Draining it in order preserves the causal guarantee that a down's
// placement lands before any move in the same gesture.
type InputQueue struct {
	mu       sync.Mutex
	capacity int
	q        []PointerEvent
}

// NewInputQueue creates an empty queue with the desired capacity.
func NewInputQueue(capacity int) *InputQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &InputQueue{capacity: capacity, q: make([]PointerEvent, 0, capacity)}
}

// Insert appends the event onto the end of the queue.
func (q *InputQueue) Insert(ev PointerEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) < q.capacity {
		q.q = append(q.q, ev)
		return nil
	}
	return errors.New("stadium: input queue is full")
}

// Remove removes the oldest event from the queue.
func (q *InputQueue) Remove() (PointerEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) > 0 {
		ev := q.q[0]
		q.q = q.q[1:]
		return ev, nil
	}
	return PointerEvent{}, errors.New("stadium: input queue is empty")
}
