package stadium

// session tracks one pointer gesture from down to up. The tool active at
// pointer-down is captured as the stroke tool; a tool change mid-drag must
// not retroactively paint with the new tool, so moves only place while the
// live tool still matches.
type session struct {
	active     bool
	strokeTool Tool
	lastIx     int
	lastIz     int
}

// begin starts a stroke at (ix, iz) with the given tool and reports that a
// placement should happen immediately.
func (s *session) begin(tool Tool, ix, iz int) {
	s.active = true
	s.strokeTool = tool
	s.lastIx, s.lastIz = ix, iz
}

// move reports whether a drag step at (ix, iz) should place. Placement
// happens once per cell entered, not once per raw move sample.
func (s *session) move(current Tool, ix, iz int) bool {
	if !s.active {
		return false
	}
	if current != s.strokeTool {
		return false
	}
	if ix == s.lastIx && iz == s.lastIz {
		return false
	}
	s.lastIx, s.lastIz = ix, iz
	return true
}

// end terminates the stroke. Pointer-up is global, so a drag that finishes
// outside the grid still ends here.
func (s *session) end() {
	s.active = false
}
