package main

import (
	"image"
	"image/color"
	"math"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/fogleman/gg"
)

var SplashBackground = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

var _ GameScene = (*Splash)(nil)

// Splash represents a game scene.
type Splash struct {
	badgeImage *ebiten.Image
	badgePos   image.Point
	skew       float64
}

// NewSplash creates and initializes a Splash/GameScene object
func NewSplash() *Splash {
	s := &Splash{}

	// a little top-down pitch badge, drawn rather than loaded
	dc := gg.NewContext(280, 200)

	dc.SetColor(color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff})
	dc.DrawRoundedRectangle(0, 0, 280, 200, 24)
	dc.Fill()

	dc.SetColor(color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff})
	dc.DrawRoundedRectangle(20, 20, 240, 160, 12)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetLineWidth(3)
	dc.DrawLine(140, 20, 140, 180)
	dc.DrawCircle(140, 100, 28)
	dc.DrawRectangle(20, 60, 36, 80)
	dc.DrawRectangle(224, 60, 36, 80)
	dc.Stroke()

	s.badgeImage = ebiten.NewImageFromImage(dc.Image())

	return s
}

// Layout implements ebiten.Game's Layout
func (s *Splash) Layout(outsideWidth, outsideHeight int) (int, int) {

	xCenter := outsideWidth / 2
	yCenter := outsideHeight / 2

	cx := s.badgeImage.Bounds().Dx()
	cy := s.badgeImage.Bounds().Dy()
	s.badgePos = image.Point{X: xCenter - (cx / 2), Y: yCenter - (cy / 2)}

	return outsideWidth, outsideHeight
}

// Update updates the current game scene.
func (s *Splash) Update() error {

	if inpututil.IsKeyJustReleased(ebiten.KeyBackspace) {
		if runtime.GOARCH != "wasm" {
			os.Exit(0)
		}
	}

	if s.skew < 90.0 {
		s.skew += 1.5
	} else {
		theSM.Switch(NewMenu())
	}

	return nil
}

// Draw draws the current GameScene to the given screen
func (s *Splash) Draw(screen *ebiten.Image) {
	screen.Fill(SplashBackground)

	skewRadians := s.skew * math.Pi / 180

	op := &ebiten.DrawImageOptions{}
	sx := s.badgeImage.Bounds().Dx() / 2
	sy := s.badgeImage.Bounds().Dy() / 2
	op.GeoM.Translate(float64(-sx), float64(-sy))
	op.GeoM.Skew(skewRadians, skewRadians)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.GeoM.Translate(float64(s.badgePos.X), float64(s.badgePos.Y))
	screen.DrawImage(s.badgeImage, op)
}
