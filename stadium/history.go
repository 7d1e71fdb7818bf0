package stadium

const (
	// CanvasHistoryDepth bounds the canvas editor's undo stack.
	CanvasHistoryDepth = 100
	// ArenaHistoryDepth bounds the arena builder's undo stack.
	ArenaHistoryDepth = 200
)

// History is a bounded stack of snapshots: push/pop at the tail for undo,
// evict at the head when full, so old history quietly falls off instead of
// blocking new edits.
type History[S any] struct {
	capacity int
	stack    []S
}

// NewHistory creates an empty history with the given capacity.
func NewHistory[S any](capacity int) *History[S] {
	if capacity < 1 {
		capacity = 1
	}
	return &History[S]{capacity: capacity, stack: make([]S, 0, capacity)}
}

// Push appends a snapshot, evicting the oldest entry at capacity.
func (h *History[S]) Push(s S) {
	if len(h.stack) >= h.capacity {
		h.stack = h.stack[1:]
	}
	h.stack = append(h.stack, s)
}

// Pop returns and removes the most recent snapshot.
func (h *History[S]) Pop() (S, error) {
	var zero S
	if len(h.stack) == 0 {
		return zero, ErrEmptyHistory
	}
	s := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return s, nil
}

// Clear empties the stack. A resize invalidates history because the old
// indices are no longer comparable.
func (h *History[S]) Clear() {
	h.stack = h.stack[:0]
}

func (h *History[S]) Len() int { return len(h.stack) }
