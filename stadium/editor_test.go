package stadium

import "testing"

func newTestEditor(t *testing.T, n int) *Editor {
	t.Helper()
	e, err := NewEditor(n, DefaultCellSize)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func kindAt(t *testing.T, m *Model, ix, iz int) TileKind {
	t.Helper()
	tile, err := m.At(ix, iz)
	if err != nil {
		t.Fatal(err)
	}
	return tile.Kind
}

func TestPaintReplacesOccupant(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolStand)
	e.Apply(2, 2)
	e.SetTool(ToolFlag)
	e.Apply(2, 2)
	if got := kindAt(t, e.Model(), 2, 2); got != Flag {
		t.Fatalf("cell = %v after repaint, want Flag", got)
	}
}

func TestPaintTwiceIsIdempotent(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolPitch)
	e.Apply(1, 1)
	first := e.Model().Snapshot()
	e.Apply(1, 1)
	second := e.Model().Snapshot()
	for i := range first.Cells {
		if first.Cells[i] != second.Cells[i] {
			t.Fatalf("cell %d differs after second paint", i)
		}
	}
	if e.HistoryLen() != 2 {
		t.Fatalf("HistoryLen = %d, want 2 (each paint records an entry)", e.HistoryLen())
	}
}

func TestEraseOnEmptyStillPushesHistory(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolErase)
	e.Apply(4, 4)
	if got := kindAt(t, e.Model(), 4, 4); got != Empty {
		t.Fatalf("cell = %v, want Empty", got)
	}
	if e.HistoryLen() != 1 {
		t.Fatalf("HistoryLen = %d, want 1", e.HistoryLen())
	}
}

func TestSelectToggleRestoresPrior(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolDugout)
	e.Apply(3, 3)
	e.SetTool(ToolSelect)
	e.Apply(3, 3)
	tile, _ := e.Model().At(3, 3)
	if tile.Kind != Selected || tile.Prior != Dugout {
		t.Fatalf("tile = %v after select, want Selected with Prior=Dugout", tile)
	}
	e.Apply(3, 3) // toggle off
	if got := kindAt(t, e.Model(), 3, 3); got != Dugout {
		t.Fatalf("tile = %v after toggle off, want Dugout", got)
	}
}

func TestSelectionsAreIndependent(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolSelect)
	e.Apply(1, 1)
	e.Apply(5, 5)
	a, _ := e.Model().At(1, 1)
	b, _ := e.Model().At(5, 5)
	if a.Kind != Selected || b.Kind != Selected {
		t.Fatalf("selecting a second cell disturbed the first: %v %v", a, b)
	}
}

func TestUndoIsStrictlyOneStep(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolPitch)
	e.Apply(0, 0)
	e.SetTool(ToolStand)
	e.Apply(1, 0)

	if !e.Undo() {
		t.Fatal("first undo failed")
	}
	if kindAt(t, e.Model(), 1, 0) != Empty || kindAt(t, e.Model(), 0, 0) != Pitch {
		t.Fatal("first undo did not restore the immediately prior state")
	}
	if !e.Undo() {
		t.Fatal("second undo failed")
	}
	if kindAt(t, e.Model(), 0, 0) != Empty {
		t.Fatal("second undo did not restore the state before the first paint")
	}
	if e.Undo() {
		t.Fatal("undo on empty history should be a no-op")
	}
}

func TestResizeClearsHistory(t *testing.T) {
	e := newTestEditor(t, 24)
	e.SetTool(ToolPitch)
	e.Apply(0, 0)
	e.Resize(8, 0)
	if e.Dimension() != 8 {
		t.Fatalf("Dimension = %d after resize, want 8", e.Dimension())
	}
	if e.HistoryLen() != 0 {
		t.Fatalf("HistoryLen = %d after resize, want 0", e.HistoryLen())
	}
	if e.Undo() {
		t.Fatal("undo after resize should be a no-op")
	}
	if kindAt(t, e.Model(), 0, 0) != Empty {
		t.Fatal("resize should produce a fresh all-empty grid")
	}
}

func TestResizeClampsDimension(t *testing.T) {
	e := newTestEditor(t, 24)
	e.Resize(3, 0)
	if e.Dimension() != MinDimension {
		t.Fatalf("Dimension = %d, want clamp to %d", e.Dimension(), MinDimension)
	}
	e.Resize(4096, 0)
	if e.Dimension() != MaxDimension {
		t.Fatalf("Dimension = %d, want clamp to %d", e.Dimension(), MaxDimension)
	}
}

func TestStrokeKeepsToolFromPointerDown(t *testing.T) {
	e := newTestEditor(t, 8)
	cell := e.CellSize()
	e.SetTool(ToolPitch)
	e.PointerDown(0.5*cell, 0.5*cell)

	// tool switched mid-drag, without pointer-up
	e.SetTool(ToolStand)
	e.PointerMove(1.5*cell, 0.5*cell)

	if got := kindAt(t, e.Model(), 1, 0); got != Empty {
		t.Fatalf("mid-drag tool switch painted %v at (1,0)", got)
	}
	if got := kindAt(t, e.Model(), 0, 0); got != Pitch {
		t.Fatalf("pointer-down cell = %v, want Pitch", got)
	}

	// the new tool applies to the next stroke
	e.PointerUp()
	e.PointerDown(1.5*cell, 0.5*cell)
	if got := kindAt(t, e.Model(), 1, 0); got != Stand {
		t.Fatalf("next stroke painted %v, want Stand", got)
	}
}

func TestStrokeDragPaintsEachCellOnce(t *testing.T) {
	e := newTestEditor(t, 8)
	cell := e.CellSize()
	e.SetTool(ToolPitch)
	e.PointerDown(0.5*cell, 0.5*cell)
	// several move samples inside the same cell, then into the next
	e.PointerMove(0.6*cell, 0.5*cell)
	e.PointerMove(0.9*cell, 0.5*cell)
	e.PointerMove(1.5*cell, 0.5*cell)
	e.PointerUp()

	if kindAt(t, e.Model(), 0, 0) != Pitch || kindAt(t, e.Model(), 1, 0) != Pitch {
		t.Fatal("drag did not paint both cells")
	}
	if e.HistoryLen() != 2 {
		t.Fatalf("HistoryLen = %d, want 2 (one per cell entered)", e.HistoryLen())
	}
}

func TestMoveWithoutDownDoesNothing(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolPitch)
	e.PointerMove(10, 10)
	if e.HistoryLen() != 0 {
		t.Fatal("move outside a stroke must not mutate")
	}
}

func TestClearAllIsUndoable(t *testing.T) {
	e := newTestEditor(t, 8)
	e.SetTool(ToolFlag)
	e.Apply(2, 6)
	e.ClearAll()
	if kindAt(t, e.Model(), 2, 6) != Empty {
		t.Fatal("ClearAll left a tile behind")
	}
	if !e.Undo() {
		t.Fatal("undo after ClearAll failed")
	}
	if kindAt(t, e.Model(), 2, 6) != Flag {
		t.Fatal("undo did not restore the cleared layout")
	}
}
