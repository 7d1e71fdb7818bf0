package main

import (
	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Charliewilliams270/football-stadium-creator/raster"
	"github.com/Charliewilliams270/football-stadium-creator/stadium"
)

// theKindImgLib caches one rendered tile image per kind at the current
// on-screen cell size. Invalidated whenever the layout changes.
var theKindImgLib = make(map[stadium.TileKind]*ebiten.Image)

func clearKindImgs() {
	clear(theKindImgLib)
}

func kindImage(k stadium.TileKind, isz int) *ebiten.Image {
	if img, ok := theKindImgLib[k]; ok {
		return img
	}
	img := makeKindImg(k, isz)
	if img != nil {
		theKindImgLib[k] = img
	}
	return img
}

func makeKindImg(k stadium.TileKind, isz int) *ebiten.Image {
	if isz == 0 {
		return nil
	}
	fsz := float64(isz)
	gap := fsz / 16.0

	dc := gg.NewContext(isz, isz)
	dc.SetColor(raster.KindColor(k))
	dc.DrawRoundedRectangle(gap, gap, fsz-(gap*2), fsz-(gap*2), fsz/10)
	dc.Fill()

	if k == stadium.Flag {
		dc.SetColor(raster.MarkerColor)
		dc.DrawRectangle(fsz*0.4, gap, fsz*0.2, fsz*0.4)
		dc.Fill()
	}
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}
