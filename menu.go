package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Menu represents a game state.
type Menu struct {
	widgets []Widget
	input   *Input
}

var MenuBackground = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

// NewMenu creates and initializes a Menu/GameState object
func NewMenu() *Menu {
	i := NewInput()
	s := &Menu{input: i}

	s.widgets = []Widget{
		NewLabel("Stadium Creator", theFonts.large),
		NewTextButton("Pitch 16", 200, 50, theFonts.normal, func() {
			theSM.Switch(NewEditorScene(VariantCanvas, 16))
		}, i),
		NewTextButton("Pitch 24", 200, 50, theFonts.normal, func() {
			theSM.Switch(NewEditorScene(VariantCanvas, 24))
		}, i),
		NewTextButton("Pitch 48", 200, 50, theFonts.normal, func() {
			theSM.Switch(NewEditorScene(VariantCanvas, 48))
		}, i),
		NewTextButton("Arena 24", 200, 50, theFonts.normal, func() {
			theSM.Switch(NewEditorScene(VariantArena, 24))
		}, i),
		NewTextButton("Arena 48", 200, 50, theFonts.normal, func() {
			theSM.Switch(NewEditorScene(VariantArena, 48))
		}, i),
	}

	return s
}

// Layout implements ebiten.Game's Layout
func (s *Menu) Layout(outsideWidth, outsideHeight int) (int, int) {

	xCenter := outsideWidth / 2
	yPlaces := []int{} // golang gotcha: can't use len(s.widgets) to make an array
	slots := len(s.widgets) + 1
	for i := 0; i < slots; i++ {
		yPlaces = append(yPlaces, (outsideHeight/slots)*i)
	}

	for i, w := range s.widgets {
		w.SetPosition(xCenter, yPlaces[i+1])
	}

	return outsideWidth, outsideHeight
}

// Update updates the current game state.
func (s *Menu) Update() error {

	s.input.Update()

	return nil
}

// Draw draws the current GameState to the given screen
func (s *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(MenuBackground)

	for _, d := range s.widgets {
		d.Draw(screen)
	}
}
