package stadium

// CellState is the serialized form of one cell. Prior is carried so that a
// Selected cell survives the undo round-trip intact.
type CellState struct {
	Type  string `json:"type"`
	Prior string `json:"prior,omitempty"`
}

// Snapshot is a fully self-contained serialized copy of a Model, used for
// both undo history and export.
type Snapshot struct {
	N     int         `json:"n"`
	Cell  float64     `json:"cell"`
	Cells []CellState `json:"cells"`
}

// Snapshot serializes the model.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{N: m.n, Cell: m.cell, Cells: make([]CellState, len(m.cells))}
	for i, t := range m.cells {
		cs := CellState{Type: t.Kind.String()}
		if t.Kind == Selected {
			cs.Prior = t.Prior.String()
		}
		s.Cells[i] = cs
	}
	return s
}

// FromSnapshot rebuilds a model from a snapshot, the exact inverse of
// Model.Snapshot.
func FromSnapshot(s Snapshot) (*Model, error) {
	m, err := NewModel(s.N, s.Cell)
	if err != nil {
		return nil, err
	}
	if len(s.Cells) != s.N*s.N {
		return nil, ErrOutOfBounds
	}
	for i, cs := range s.Cells {
		kind, err := ParseTileKind(cs.Type)
		if err != nil {
			return nil, err
		}
		t := Tile{Kind: kind}
		if kind == Selected {
			prior, err := ParseTileKind(cs.Prior)
			if err != nil {
				return nil, err
			}
			t.Prior = prior
		}
		m.cells[i] = t
	}
	return m, nil
}

// restore replaces the live cells wholesale from a snapshot taken from a
// model with the same dimension. Used by undo.
func (m *Model) restore(s Snapshot) error {
	prev, err := FromSnapshot(s)
	if err != nil {
		return err
	}
	m.n = prev.n
	m.cell = prev.cell
	m.cells = prev.cells
	return nil
}
