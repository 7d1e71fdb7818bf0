package stadium

// Tool is the active editing mode. Exactly one is active at a time, and it
// changes only through explicit user selection (button or shortcut key),
// never implicitly.
type Tool uint8

const (
	ToolPitch Tool = iota
	ToolStand
	ToolDugout
	ToolFlag
	ToolErase
	ToolSelect
)

var toolNames = map[Tool]string{
	ToolPitch:  "pitch",
	ToolStand:  "stand",
	ToolDugout: "dugout",
	ToolFlag:   "flag",
	ToolErase:  "erase",
	ToolSelect: "select",
}

func (t Tool) String() string {
	if s, ok := toolNames[t]; ok {
		return s
	}
	return "pitch"
}

// PaintKind returns the tile kind a paint tool lays down, and whether the
// tool paints at all (Erase and Select do not).
func (t Tool) PaintKind() (TileKind, bool) {
	switch t {
	case ToolPitch:
		return Pitch, true
	case ToolStand:
		return Stand, true
	case ToolDugout:
		return Dugout, true
	case ToolFlag:
		return Flag, true
	}
	return Empty, false
}

// Tools lists every tool in display order.
func Tools() []Tool {
	return []Tool{ToolPitch, ToolStand, ToolDugout, ToolFlag, ToolErase, ToolSelect}
}
