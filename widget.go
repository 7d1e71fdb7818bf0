package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/Charliewilliams270/football-stadium-creator/util"
)

// Widget is anything a scene can position and draw
type Widget interface {
	SetPosition(int, int)
	Draw(*ebiten.Image)
}

// Input routes mouse-button releases to the buttons registered with it
type Input struct {
	buttons []*TextButton
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) register(b *TextButton) {
	i.buttons = append(i.buttons, b)
}

// Update fires the first button under a just-released click
func (i *Input) Update() {
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	for _, b := range i.buttons {
		if util.InRect(x, y, b.rect) {
			if b.onClick != nil {
				b.onClick()
			}
			return
		}
	}
}

// Label is a piece of static centred text
type Label struct {
	text string
	face font.Face
	x, y int
}

func NewLabel(str string, face font.Face) *Label {
	return &Label{text: str, face: face}
}

func (l *Label) SetPosition(x, y int) {
	l.x, l.y = x, y
}

func (l *Label) Draw(screen *ebiten.Image) {
	bound := text.BoundString(l.face, l.text)
	text.Draw(screen, l.text, l.face, l.x-bound.Dx()/2, l.y, color.White)
}

var (
	buttonFace    = color.RGBA{0x50, 0x50, 0x50, 0xff}
	buttonLitFace = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	buttonText    = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

// TextButton is a clickable rounded rectangle with a caption. A lit button
// marks the active tool.
type TextButton struct {
	text          string
	width, height int
	face          font.Face
	onClick       func()
	pos           image.Point // top left
	lit           bool
	img           *ebiten.Image
}

func NewTextButton(str string, w, h int, face font.Face, cb func(), i *Input) *TextButton {
	b := &TextButton{text: str, width: w, height: h, face: face, onClick: cb}
	i.register(b)
	return b
}

func (b *TextButton) rect() (int, int, int, int) {
	return b.pos.X, b.pos.Y, b.pos.X + b.width, b.pos.Y + b.height
}

// SetPosition positions the button by its centre, like Label
func (b *TextButton) SetPosition(x, y int) {
	b.pos = image.Point{X: x - b.width/2, Y: y - b.height/2}
}

// SetLit changes the highlight state, invalidating the cached image
func (b *TextButton) SetLit(lit bool) {
	if b.lit != lit {
		b.lit = lit
		b.img = nil
	}
}

func (b *TextButton) makeImg() *ebiten.Image {
	dc := gg.NewContext(b.width, b.height)
	if b.lit {
		dc.SetColor(buttonLitFace)
	} else {
		dc.SetColor(buttonFace)
	}
	dc.DrawRoundedRectangle(1, 1, float64(b.width-2), float64(b.height-2), float64(b.height)/5)
	dc.Fill()
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func (b *TextButton) Draw(screen *ebiten.Image) {
	if b.img == nil {
		b.img = b.makeImg()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.pos.X), float64(b.pos.Y))
	screen.DrawImage(b.img, op)

	bound := text.BoundString(b.face, b.text)
	tx := b.pos.X + (b.width-bound.Dx())/2
	ty := b.pos.Y + (b.height+bound.Dy())/2
	text.Draw(screen, b.text, b.face, tx, ty, buttonText)
}
