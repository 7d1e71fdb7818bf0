// Package raster renders a stadium snapshot to a plain image, for the PNG
// export path. Drawing goes through gg, the same way the game draws its
// on-screen tile images.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Charliewilliams270/football-stadium-creator/stadium"
)

// captionHeight is the strip under the grid that carries the stadium name.
const captionHeight = 28

var background = color.RGBA{0x20, 0x20, 0x20, 0xff}

var kindColors = map[stadium.TileKind]color.RGBA{
	stadium.Empty:  {0x28, 0x28, 0x28, 0xff},
	stadium.Pitch:  {0x2e, 0x8b, 0x57, 0xff},
	stadium.Stand:  {0x8b, 0x5a, 0x2b, 0xff},
	stadium.Dugout: {0x70, 0x80, 0x90, 0xff},
	stadium.Flag:   {0xff, 0xd7, 0x00, 0xff},
}

var (
	MarkerColor    = color.RGBA{0xd6, 0x00, 0x00, 0xff}
	selectionColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	captionColor   = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
)

// KindColor returns the fill colour for a tile kind.
func KindColor(k stadium.TileKind) color.RGBA {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return kindColors[stadium.Empty]
}

// Render draws a snapshot into a new image, one square of s.Cell pixels per
// grid cell, with an optional title caption underneath. Idempotent: the
// same snapshot always yields the same image.
func Render(s stadium.Snapshot, title string) image.Image {
	cell := int(s.Cell)
	if cell < 4 {
		cell = int(stadium.DefaultCellSize)
	}
	w := s.N * cell
	h := w
	if title != "" {
		h += captionHeight
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(background)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	for i, cs := range s.Cells {
		ix := i % s.N
		iz := i / s.N
		drawCell(dc, cs, ix, iz, float64(cell))
	}

	if title != "" {
		if face := captionFace(); face != nil {
			dc.SetFontFace(face)
		}
		dc.SetColor(captionColor)
		dc.DrawStringAnchored(title, float64(w)/2, float64(w)+captionHeight/2, 0.5, 0.35)
	}
	return dc.Image()
}

func drawCell(dc *gg.Context, cs stadium.CellState, ix, iz int, cell float64) {
	kind, err := stadium.ParseTileKind(cs.Type)
	if err != nil {
		kind = stadium.Empty
	}
	selected := kind == stadium.Selected
	if selected {
		if prior, err := stadium.ParseTileKind(cs.Prior); err == nil {
			kind = prior
		} else {
			kind = stadium.Empty
		}
	}

	px, pz := stadium.PixelPosition(ix, iz, cell)
	gap := cell / 16

	dc.SetColor(KindColor(kind))
	dc.DrawRectangle(px+gap, pz+gap, cell-gap*2, cell-gap*2)
	dc.Fill()

	if kind == stadium.Flag {
		// red marker in the upper half of the flag tile
		dc.SetColor(MarkerColor)
		dc.DrawRectangle(px+cell*0.4, pz+gap, cell*0.2, cell*0.4)
		dc.Fill()
	}
	if selected {
		dc.SetColor(selectionColor)
		dc.SetLineWidth(2)
		dc.DrawRectangle(px+gap, pz+gap, cell-gap*2, cell-gap*2)
		dc.Stroke()
	}
}

func captionFace() font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil
	}
	return truetype.NewFace(f, &truetype.Options{Size: 15})
}

// WritePNG encodes the rendered image.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
