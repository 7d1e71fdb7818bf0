package stadium

import "testing"

func snapWithMark(n int, mark TileKind) Snapshot {
	m, _ := NewModel(n, DefaultCellSize)
	m.Set(0, 0, Tile{Kind: mark})
	return m.Snapshot()
}

func TestHistoryPopOrder(t *testing.T) {
	h := NewHistory[Snapshot](10)
	h.Push(snapWithMark(8, Pitch))
	h.Push(snapWithMark(8, Stand))

	s, err := h.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if s.Cells[0].Type != "stand" {
		t.Fatalf("first pop = %q, want stand", s.Cells[0].Type)
	}
	s, err = h.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if s.Cells[0].Type != "pitch" {
		t.Fatalf("second pop = %q, want pitch", s.Cells[0].Type)
	}
}

func TestHistoryEmptyPop(t *testing.T) {
	h := NewHistory[Snapshot](10)
	if _, err := h.Pop(); err != ErrEmptyHistory {
		t.Fatalf("Pop on empty = %v, want ErrEmptyHistory", err)
	}
}

func TestHistoryCapacityEviction(t *testing.T) {
	h := NewHistory[Snapshot](3)
	marks := []TileKind{Pitch, Stand, Dugout, Flag} // one more than capacity
	for _, k := range marks {
		h.Push(snapWithMark(8, k))
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d after capacity+1 pushes, want 3", h.Len())
	}
	// newest is retrievable
	s, _ := h.Pop()
	if s.Cells[0].Type != "flag" {
		t.Fatalf("newest = %q, want flag", s.Cells[0].Type)
	}
	// oldest (pitch) was evicted: draining yields dugout then stand
	s, _ = h.Pop()
	s2, _ := h.Pop()
	if s.Cells[0].Type != "dugout" || s2.Cells[0].Type != "stand" {
		t.Fatalf("drain = %q,%q, want dugout,stand", s.Cells[0].Type, s2.Cells[0].Type)
	}
	if _, err := h.Pop(); err != ErrEmptyHistory {
		t.Fatal("pitch snapshot should be unrecoverable")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory[Snapshot](10)
	h.Push(snapWithMark(8, Pitch))
	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("Len = %d after Clear", h.Len())
	}
}
