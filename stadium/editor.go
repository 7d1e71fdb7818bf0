package stadium

// Editor owns the canvas-variant editing state: the dense grid model, its
// undo history, the active tool and the in-flight stroke. There are no
// package-level globals; everything flows through one of these.
type Editor struct {
	model   *Model
	history *History[Snapshot]
	tool    Tool
	stroke  session
}

// NewEditor creates an editor over a fresh all-Empty grid.
func NewEditor(n int, cell float64) (*Editor, error) {
	m, err := NewModel(n, cell)
	if err != nil {
		return nil, err
	}
	return &Editor{model: m, history: NewHistory[Snapshot](CanvasHistoryDepth)}, nil
}

func (e *Editor) Model() *Model     { return e.model }
func (e *Editor) Dimension() int    { return e.model.Dimension() }
func (e *Editor) CellSize() float64 { return e.model.CellSize() }
func (e *Editor) HistoryLen() int   { return e.history.Len() }

func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool. An in-progress stroke keeps painting
// with the tool it started with; the new tool applies to later strokes.
func (e *Editor) SetTool(t Tool) { e.tool = t }

// Apply performs one mutation at (ix, iz) with the current tool, pushing a
// history snapshot first.
func (e *Editor) Apply(ix, iz int) error {
	return e.apply(e.tool, ix, iz)
}

func (e *Editor) apply(tool Tool, ix, iz int) error {
	cur, err := e.model.At(ix, iz)
	if err != nil {
		return err
	}
	e.history.Push(e.model.Snapshot())

	if kind, ok := tool.PaintKind(); ok {
		// replacement semantics: any occupant is overwritten, never rejected
		return e.model.Set(ix, iz, Tile{Kind: kind})
	}
	switch tool {
	case ToolErase:
		// erasing an already-empty cell is a valid no-op mutation
		return e.model.Set(ix, iz, Tile{})
	case ToolSelect:
		if cur.Kind == Selected {
			return e.model.Set(ix, iz, Tile{Kind: cur.Prior})
		}
		return e.model.Set(ix, iz, Tile{Kind: Selected, Prior: cur.Kind})
	}
	return nil
}

// PointerDown begins a stroke at a grid-local pixel position and places
// immediately.
func (e *Editor) PointerDown(x, z float64) error {
	ix, iz := GridCoord(x, z, e.model.n, e.model.cell)
	e.stroke.begin(e.tool, ix, iz)
	return e.apply(e.stroke.strokeTool, ix, iz)
}

// PointerMove continues a stroke. It places only when the pointer enters a
// new cell and the active tool still matches the stroke tool.
func (e *Editor) PointerMove(x, z float64) error {
	ix, iz := GridCoord(x, z, e.model.n, e.model.cell)
	if !e.stroke.move(e.tool, ix, iz) {
		return nil
	}
	return e.apply(e.stroke.strokeTool, ix, iz)
}

// PointerUp ends the stroke wherever the pointer is.
func (e *Editor) PointerUp() {
	e.stroke.end()
}

// Undo restores the most recent snapshot. Undo with no history is a silent
// no-op.
func (e *Editor) Undo() bool {
	s, err := e.history.Pop()
	if err != nil {
		return false
	}
	return e.model.restore(s) == nil
}

// Resize atomically replaces the model with a fresh grid and clears the
// history, since old snapshots are meaningless against new indices. The
// dimension is clamped, not rejected, because interactive controls drive it.
func (e *Editor) Resize(n int, cell float64) {
	n = ClampDimension(n)
	if cell <= 0 {
		cell = e.model.cell
	}
	m, err := NewModel(n, cell)
	if err != nil {
		return // unreachable after clamping
	}
	e.model = m
	e.history.Clear()
	e.stroke.end()
}

// ClearAll resets every cell to Empty, undoably.
func (e *Editor) ClearAll() {
	e.history.Push(e.model.Snapshot())
	e.model.Clear()
}

// Placements lists the non-empty cells for rendering.
func (e *Editor) Placements() []Placement {
	return e.model.Placements()
}
