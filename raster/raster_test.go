package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/Charliewilliams270/football-stadium-creator/stadium"
)

func centrePixel(t *testing.T, s stadium.Snapshot, ix, iz int) color.RGBA {
	t.Helper()
	img := Render(s, "")
	cell := int(s.Cell)
	c := img.At(ix*cell+cell/2, iz*cell+cell/2)
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestRenderCellColors(t *testing.T) {
	m, _ := stadium.NewModel(8, 32)
	m.Set(0, 0, stadium.Tile{Kind: stadium.Pitch})
	m.Set(1, 0, stadium.Tile{Kind: stadium.Stand})
	m.Set(2, 0, stadium.Tile{Kind: stadium.Dugout})
	s := m.Snapshot()

	tests := []struct {
		name   string
		ix, iz int
		want   stadium.TileKind
	}{
		{"pitch is green", 0, 0, stadium.Pitch},
		{"stand is brown", 1, 0, stadium.Stand},
		{"dugout is slate", 2, 0, stadium.Dugout},
		{"untouched is dark", 5, 5, stadium.Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centrePixel(t, s, tt.ix, tt.iz)
			if got != KindColor(tt.want) {
				t.Fatalf("pixel = %v, want %v", got, KindColor(tt.want))
			}
		})
	}
}

func TestRenderFlagMarker(t *testing.T) {
	m, _ := stadium.NewModel(8, 32)
	m.Set(3, 3, stadium.Tile{Kind: stadium.Flag})
	img := Render(m.Snapshot(), "")

	// marker sits in the upper middle of the tile, on yellow ground
	r, g, b, _ := img.At(3*32+16, 3*32+8).RGBA()
	if uint8(r>>8) != 0xd6 || uint8(g>>8) != 0x00 || uint8(b>>8) != 0x00 {
		t.Fatalf("marker pixel = %x %x %x, want d6 00 00", r>>8, g>>8, b>>8)
	}
	got := centrePixel(t, m.Snapshot(), 3, 3)
	if got != KindColor(stadium.Flag) {
		t.Fatalf("flag ground = %v, want %v", got, KindColor(stadium.Flag))
	}
}

func TestRenderSelectedShowsPriorKind(t *testing.T) {
	m, _ := stadium.NewModel(8, 32)
	m.Set(4, 4, stadium.Tile{Kind: stadium.Selected, Prior: stadium.Pitch})
	got := centrePixel(t, m.Snapshot(), 4, 4)
	if got != KindColor(stadium.Pitch) {
		t.Fatalf("selected cell centre = %v, want the prior kind's colour", got)
	}
}

func TestRenderDimensions(t *testing.T) {
	m, _ := stadium.NewModel(8, 32)
	img := Render(m.Snapshot(), "")
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Fatalf("bounds = %v, want 256x256", img.Bounds())
	}
	img = Render(m.Snapshot(), "Old Trafford")
	if img.Bounds().Dy() != 256+captionHeight {
		t.Fatalf("captioned bounds = %v", img.Bounds())
	}
}

func TestWritePNG(t *testing.T) {
	m, _ := stadium.NewModel(8, 32)
	m.Set(0, 0, stadium.Tile{Kind: stadium.Pitch})
	var buf bytes.Buffer
	if err := WritePNG(&buf, Render(m.Snapshot(), "test")); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("output is not a decodable png: %v", err)
	}
}
