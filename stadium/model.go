package stadium

import "errors"

const (
	// MinDimension and MaxDimension bound the grid size policy.
	MinDimension = 8
	MaxDimension = 128

	// DefaultCellSize is the spatial scale of one cell; pixels for the
	// canvas variant, world units for the arena variant.
	DefaultCellSize = 32.0
)

var (
	ErrInvalidDimension = errors.New("stadium: dimension outside [8,128]")
	ErrOutOfBounds      = errors.New("stadium: grid coordinate out of bounds")
	ErrEmptyHistory     = errors.New("stadium: undo stack is empty")
)

// ClampDimension forces n into the policy bounds. Interactive resize
// controls clamp rather than fail, so the editor never crashes on input.
func ClampDimension(n int) int {
	if n < MinDimension {
		return MinDimension
	}
	if n > MaxDimension {
		return MaxDimension
	}
	return n
}

// Model is the authoritative grid of cells, stored row-major
// (index = iz*n + ix) like every other grid in this codebase.
type Model struct {
	n     int
	cell  float64
	cells []Tile
}

// NewModel allocates a fresh all-Empty grid.
func NewModel(n int, cell float64) (*Model, error) {
	if n < MinDimension || n > MaxDimension {
		return nil, ErrInvalidDimension
	}
	if cell <= 0 {
		cell = DefaultCellSize
	}
	return &Model{n: n, cell: cell, cells: make([]Tile, n*n)}, nil
}

func (m *Model) Dimension() int    { return m.n }
func (m *Model) CellSize() float64 { return m.cell }

func (m *Model) index(ix, iz int) (int, error) {
	if ix < 0 || ix >= m.n || iz < 0 || iz >= m.n {
		return 0, ErrOutOfBounds
	}
	return iz*m.n + ix, nil
}

// At returns the tile at (ix, iz).
func (m *Model) At(ix, iz int) (Tile, error) {
	i, err := m.index(ix, iz)
	if err != nil {
		return Tile{}, err
	}
	return m.cells[i], nil
}

// Set overwrites the tile at (ix, iz) in place. Rendering is a separate,
// caller-driven step.
func (m *Model) Set(ix, iz int, t Tile) error {
	i, err := m.index(ix, iz)
	if err != nil {
		return err
	}
	m.cells[i] = t
	return nil
}

// Clear resets every cell to Empty.
func (m *Model) Clear() {
	for i := range m.cells {
		m.cells[i] = Tile{}
	}
}

// Placements lists the non-empty cells as placements, for rendering.
// Selected cells come back flagged, with Kind holding the prior kind.
func (m *Model) Placements() []Placement {
	var items []Placement
	for i, t := range m.cells {
		kind, selected := t.Kind, false
		if t.Kind == Selected {
			kind, selected = t.Prior, true
		}
		if kind == Empty && !selected {
			continue
		}
		items = append(items, Placement{Kind: kind, IX: i % m.n, IZ: i / m.n, Selected: selected})
	}
	return items
}
