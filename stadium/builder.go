package stadium

// Builder owns the arena-variant editing state. It mirrors Editor but works
// over the sparse Plan, takes pointer input in origin-centred world space,
// and treats Select as a transient visual emphasis that touches neither the
// plan nor the history.
type Builder struct {
	plan    *Plan
	history *History[PlanSnapshot]
	tool    Tool
	stroke  session

	// highlighted cell, or (-1,-1) when nothing is emphasised
	hiIx, hiIz int
}

// NewBuilder creates a builder over an empty plan.
func NewBuilder(n int, cell float64) (*Builder, error) {
	p, err := NewPlan(n, cell)
	if err != nil {
		return nil, err
	}
	return &Builder{plan: p, history: NewHistory[PlanSnapshot](ArenaHistoryDepth), hiIx: -1, hiIz: -1}, nil
}

func (b *Builder) Plan() *Plan       { return b.plan }
func (b *Builder) Dimension() int    { return b.plan.Dimension() }
func (b *Builder) CellSize() float64 { return b.plan.CellSize() }
func (b *Builder) HistoryLen() int   { return b.history.Len() }

func (b *Builder) Tool() Tool     { return b.tool }
func (b *Builder) SetTool(t Tool) { b.tool = t }

// Highlight reports the currently emphasised cell, if any.
func (b *Builder) Highlight() (int, int, bool) {
	return b.hiIx, b.hiIz, b.hiIx >= 0
}

// Apply performs one mutation at (ix, iz) with the current tool.
func (b *Builder) Apply(ix, iz int) error {
	return b.apply(b.tool, ix, iz)
}

func (b *Builder) apply(tool Tool, ix, iz int) error {
	if tool == ToolSelect {
		// emphasis only: no plan mutation, no history entry
		if b.hiIx == ix && b.hiIz == iz {
			b.hiIx, b.hiIz = -1, -1
		} else {
			b.hiIx, b.hiIz = ix, iz
		}
		return nil
	}
	b.history.Push(b.plan.Snapshot())
	if kind, ok := tool.PaintKind(); ok {
		return b.plan.Place(kind, ix, iz)
	}
	if tool == ToolErase {
		b.plan.RemoveAt(ix, iz)
	}
	return nil
}

// PointerDown begins a stroke at an origin-centred world position.
func (b *Builder) PointerDown(wx, wz float64) error {
	ix, iz := WorldToGrid(wx, wz, b.plan.n, b.plan.cell)
	b.stroke.begin(b.tool, ix, iz)
	return b.apply(b.stroke.strokeTool, ix, iz)
}

// PointerMove continues a stroke, placing once per cell entered while the
// active tool still matches the stroke tool.
func (b *Builder) PointerMove(wx, wz float64) error {
	ix, iz := WorldToGrid(wx, wz, b.plan.n, b.plan.cell)
	if !b.stroke.move(b.tool, ix, iz) {
		return nil
	}
	return b.apply(b.stroke.strokeTool, ix, iz)
}

// PointerUp ends the stroke.
func (b *Builder) PointerUp() {
	b.stroke.end()
}

// Undo restores the most recent plan snapshot; a no-op on empty history.
func (b *Builder) Undo() bool {
	s, err := b.history.Pop()
	if err != nil {
		return false
	}
	return b.plan.restore(s) == nil
}

// Resize atomically replaces the plan and clears history and highlight.
func (b *Builder) Resize(n int, cell float64) {
	n = ClampDimension(n)
	if cell <= 0 {
		cell = b.plan.cell
	}
	p, err := NewPlan(n, cell)
	if err != nil {
		return // unreachable after clamping
	}
	b.plan = p
	b.history.Clear()
	b.stroke.end()
	b.hiIx, b.hiIz = -1, -1
}

// ClearAll removes every placement, undoably.
func (b *Builder) ClearAll() {
	b.history.Push(b.plan.Snapshot())
	b.plan.items = nil
}

// Placements lists the plan contents for rendering.
func (b *Builder) Placements() []Placement {
	return b.plan.Items()
}
