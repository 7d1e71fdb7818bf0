package stadium

import "fmt"

// TileKind is the closed set of things a grid cell can hold.
type TileKind uint8

const (
	Empty TileKind = iota
	Pitch
	Stand
	Dugout
	Flag
	Selected
)

var kindNames = map[TileKind]string{
	Empty:    "empty",
	Pitch:    "pitch",
	Stand:    "stand",
	Dugout:   "dugout",
	Flag:     "flag",
	Selected: "selected",
}

func (k TileKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "empty"
}

// ParseTileKind is the inverse of String
func ParseTileKind(s string) (TileKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return Empty, fmt.Errorf("unknown tile kind %q", s)
}

// Tile is one cell of the grid. Prior is only meaningful when Kind is
// Selected: it remembers the kind the selection temporarily replaced, so
// toggling the selection off restores it.
type Tile struct {
	Kind  TileKind
	Prior TileKind
}
