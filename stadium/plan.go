package stadium

// Placement is one tile anchored at a grid coordinate, the arena variant's
// sparse unit of content. The coordinates double as the back-reference a 3D
// renderer needs to find and remove the matching object later.
type Placement struct {
	Kind TileKind
	IX   int
	IZ   int

	// Selected marks a canvas cell under a selection toggle; Kind then
	// holds the prior kind. Never set for arena placements.
	Selected bool
}

// PlanSnapshot is the sparse serialized form used for the arena undo path.
type PlanSnapshot struct {
	N     int        `json:"n"`
	Cell  float64    `json:"cell"`
	Items []CellItem `json:"items"`
}

// CellItem is the serialized form of one placement.
type CellItem struct {
	Type string `json:"type"`
	IX   int    `json:"ix"`
	IZ   int    `json:"iz"`
}

// Plan is the arena variant's model: a sparse, ordered list of placements
// over an N×N grid, at most one per coordinate.
type Plan struct {
	n     int
	cell  float64
	items []Placement
}

// NewPlan allocates an empty plan.
func NewPlan(n int, cell float64) (*Plan, error) {
	if n < MinDimension || n > MaxDimension {
		return nil, ErrInvalidDimension
	}
	if cell <= 0 {
		cell = DefaultCellSize
	}
	return &Plan{n: n, cell: cell}, nil
}

func (p *Plan) Dimension() int    { return p.n }
func (p *Plan) CellSize() float64 { return p.cell }

// At returns the placement occupying (ix, iz), if any.
func (p *Plan) At(ix, iz int) (Placement, bool) {
	for _, it := range p.items {
		if it.IX == ix && it.IZ == iz {
			return it, true
		}
	}
	return Placement{}, false
}

// Place puts kind at (ix, iz), removing any prior occupant first.
func (p *Plan) Place(kind TileKind, ix, iz int) error {
	if ix < 0 || ix >= p.n || iz < 0 || iz >= p.n {
		return ErrOutOfBounds
	}
	p.RemoveAt(ix, iz)
	p.items = append(p.items, Placement{Kind: kind, IX: ix, IZ: iz})
	return nil
}

// RemoveAt deletes the placement at (ix, iz), reporting whether one existed.
func (p *Plan) RemoveAt(ix, iz int) bool {
	for i, it := range p.items {
		if it.IX == ix && it.IZ == iz {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the placements in insertion order.
func (p *Plan) Items() []Placement { return p.items }

// Snapshot serializes the plan.
func (p *Plan) Snapshot() PlanSnapshot {
	s := PlanSnapshot{N: p.n, Cell: p.cell, Items: make([]CellItem, len(p.items))}
	for i, it := range p.items {
		s.Items[i] = CellItem{Type: it.Kind.String(), IX: it.IX, IZ: it.IZ}
	}
	return s
}

// FromPlanSnapshot rebuilds a plan from its serialized form.
func FromPlanSnapshot(s PlanSnapshot) (*Plan, error) {
	p, err := NewPlan(s.N, s.Cell)
	if err != nil {
		return nil, err
	}
	for _, it := range s.Items {
		kind, err := ParseTileKind(it.Type)
		if err != nil {
			return nil, err
		}
		if err := p.Place(kind, it.IX, it.IZ); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Plan) restore(s PlanSnapshot) error {
	prev, err := FromPlanSnapshot(s)
	if err != nil {
		return err
	}
	*p = *prev
	return nil
}
