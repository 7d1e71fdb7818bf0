package stadium

import (
	"encoding/json"
	"io"
	"time"
)

// Meta carries the export header. Created is the only time-varying field in
// an export; callers inject it so output is otherwise stable.
type Meta struct {
	Name    string `json:"name"`
	Created string `json:"created"`
}

// Document is the canvas-variant interchange form: a dense cell list.
type Document struct {
	Meta  Meta        `json:"meta"`
	N     int         `json:"n"`
	Cells []CellEntry `json:"cells"`
}

// CellEntry holds one dense cell. Only the kind is exported; a selection is
// transient UI state, so Selected cells export as their prior kind.
type CellEntry struct {
	Type string `json:"type"`
}

// PlanDocument is the arena-variant interchange form: a sparse item list.
type PlanDocument struct {
	Meta  Meta       `json:"meta"`
	N     int        `json:"n"`
	Cell  float64    `json:"cell"`
	Items []CellItem `json:"items"`
}

func exportKind(t Tile) TileKind {
	if t.Kind == Selected {
		return t.Prior
	}
	return t.Kind
}

// ExportModel builds the canonical dense document for a model.
func ExportModel(m *Model, name string, created time.Time) Document {
	d := Document{
		Meta:  Meta{Name: name, Created: created.UTC().Format(time.RFC3339)},
		N:     m.n,
		Cells: make([]CellEntry, len(m.cells)),
	}
	for i, t := range m.cells {
		d.Cells[i] = CellEntry{Type: exportKind(t).String()}
	}
	return d
}

// ExportPlan builds the canonical sparse document for a plan.
func ExportPlan(p *Plan, name string, created time.Time) PlanDocument {
	d := PlanDocument{
		Meta:  Meta{Name: name, Created: created.UTC().Format(time.RFC3339)},
		N:     p.n,
		Cell:  p.cell,
		Items: make([]CellItem, 0, len(p.items)),
	}
	for _, it := range p.items {
		d.Items = append(d.Items, CellItem{Type: it.Kind.String(), IX: it.IX, IZ: it.IZ})
	}
	return d
}

// EncodeJSON writes any export document as indented JSON.
func EncodeJSON(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
