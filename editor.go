package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/Charliewilliams270/football-stadium-creator/glb"
	"github.com/Charliewilliams270/football-stadium-creator/raster"
	"github.com/Charliewilliams270/football-stadium-creator/stadium"
	"github.com/Charliewilliams270/football-stadium-creator/stroke"
	"github.com/Charliewilliams270/football-stadium-creator/util"
)

// Variant selects which core the editor scene drives.
type Variant int

const (
	VariantCanvas Variant = iota // dense grid, PNG export
	VariantArena                 // sparse placements, GLB export
)

// editorCore is the slice of Editor/Builder the scene needs; both satisfy
// it, so the scene never branches on variant for editing.
type editorCore interface {
	Dimension() int
	CellSize() float64
	Tool() stadium.Tool
	SetTool(stadium.Tool)
	PointerDown(float64, float64) error
	PointerMove(float64, float64) error
	PointerUp()
	Undo() bool
	Resize(int, float64)
	ClearAll()
	Placements() []stadium.Placement
	HistoryLen() int
}

var _ GameScene = (*EditorScene)(nil)

var (
	ColorBackground = color.RGBA{R: 0x30, G: 0x30, B: 0x32, A: 0xff}
	gridLineColor   = color.RGBA{R: 0x48, G: 0x48, B: 0x48, A: 0xff}
)

const headerHeight = 52

// EditorScene hosts one editing session: pointer gestures arrive through
// stroke, queue up as resolved coordinates, and drain into the core in
// order, so a down's placement always lands before that gesture's moves.
type EditorScene struct {
	variant Variant
	core    editorCore
	canvas  *stadium.Editor  // set for VariantCanvas
	arena   *stadium.Builder // set for VariantArena

	queue  *stadium.InputQueue
	stroke *stroke.Stroke
	input  *Input

	toolButtons map[stadium.Tool]*TextButton
	buttons     []*TextButton

	oldWindowWidth, oldWindowHeight int
	cellPx                          int
	gridRectangle                   image.Rectangle
	ticks                           int
}

func NewEditorScene(variant Variant, n int) *EditorScene {
	s := &EditorScene{
		variant: variant,
		queue:   stadium.NewInputQueue(64),
		input:   NewInput(),
	}

	switch variant {
	case VariantArena:
		b, err := stadium.NewBuilder(n, stadium.DefaultCellSize)
		if err != nil {
			log.Panic(err)
		}
		s.arena = b
		s.core = b
	default:
		e, err := stadium.NewEditor(n, stadium.DefaultCellSize)
		if err != nil {
			log.Panic(err)
		}
		s.canvas = e
		s.core = e
	}

	s.toolButtons = make(map[stadium.Tool]*TextButton)
	for _, tool := range stadium.Tools() {
		tool := tool
		b := NewTextButton(tool.String(), 76, 32, theFonts.small, func() {
			s.core.SetTool(tool)
		}, s.input)
		s.toolButtons[tool] = b
		s.buttons = append(s.buttons, b)
	}
	s.buttons = append(s.buttons,
		NewTextButton("undo", 66, 32, theFonts.small, func() { s.core.Undo() }, s.input),
		NewTextButton("clear", 66, 32, theFonts.small, func() { s.core.ClearAll() }, s.input),
		NewTextButton("save", 66, 32, theFonts.small, func() { s.export() }, s.input),
		NewTextButton("menu", 66, 32, theFonts.small, func() { theSM.Switch(NewMenu()) }, s.input),
	)

	return s
}

// Layout implements ebiten.Game's Layout
func (s *EditorScene) Layout(outsideWidth, outsideHeight int) (int, int) {

	if outsideWidth == s.oldWindowWidth && outsideHeight == s.oldWindowHeight {
		return outsideWidth, outsideHeight
	}

	n := s.core.Dimension()
	szw := (outsideWidth - 16) / n
	szh := (outsideHeight - headerHeight - 16) / n
	if szw < szh {
		s.cellPx = szw
	} else {
		s.cellPx = szh
	}
	s.cellPx = util.ClampInt(s.cellPx, 4, 96)

	leftMargin := (outsideWidth - (n * s.cellPx)) / 2
	topMargin := headerHeight + (outsideHeight-headerHeight-(n*s.cellPx))/2
	s.gridRectangle = image.Rectangle{
		Min: image.Point{X: leftMargin, Y: topMargin},
		Max: image.Point{X: leftMargin + (n * s.cellPx), Y: topMargin + (n * s.cellPx)},
	}

	clearKindImgs()

	step := outsideWidth / (len(s.buttons) + 1)
	for i, b := range s.buttons {
		b.SetPosition(step*(i+1), headerHeight/2)
	}

	s.oldWindowWidth = outsideWidth
	s.oldWindowHeight = outsideHeight

	return outsideWidth, outsideHeight
}

// resolvePointer maps a screen position onto the interactive surface in the
// core's own convention: grid-local pixels for the canvas, origin-centred
// world units for the arena. Events that miss the surface resolve to
// nothing at all.
func (s *EditorScene) resolvePointer(sx, sy int) (float64, float64, bool) {
	if !image.Pt(sx, sy).In(s.gridRectangle) {
		return 0, 0, false
	}
	cell := s.core.CellSize()
	fx := float64(sx-s.gridRectangle.Min.X) / float64(s.cellPx) * cell
	fz := float64(sy-s.gridRectangle.Min.Y) / float64(s.cellPx) * cell
	if s.variant == VariantArena {
		half := float64(s.core.Dimension()) * cell / 2
		return fx - half, fz - half, true
	}
	return fx, fz, true
}

// NotifyCallback receives gesture events from the stroke package.
func (s *EditorScene) NotifyCallback(v stroke.StrokeEvent) {
	switch v.Event {
	case stroke.Start:
		s.stroke = v.Stroke
		if x, z, ok := s.resolvePointer(v.X, v.Y); ok {
			s.queue.Insert(stadium.PointerEvent{Kind: stadium.PointerDown, X: x, Z: z})
		} else {
			v.Stroke.Cancel()
		}
	case stroke.Move:
		if x, z, ok := s.resolvePointer(v.X, v.Y); ok {
			s.queue.Insert(stadium.PointerEvent{Kind: stadium.PointerMove, X: x, Z: z})
		}
	case stroke.Stop, stroke.Tap, stroke.Cancel:
		// release is global: a drag ending off-grid still terminates
		s.queue.Insert(stadium.PointerEvent{Kind: stadium.PointerUp})
	default:
		log.Panic("*** unknown stroke event ***", v.Event)
	}
}

var toolKeys = map[ebiten.Key]stadium.Tool{
	ebiten.KeyDigit1: stadium.ToolPitch,
	ebiten.KeyDigit2: stadium.ToolStand,
	ebiten.KeyDigit3: stadium.ToolDugout,
	ebiten.KeyDigit4: stadium.ToolFlag,
	ebiten.KeyE:      stadium.ToolErase,
	ebiten.KeyS:      stadium.ToolSelect,
}

// Update updates the current game scene.
func (s *EditorScene) Update() error {

	s.input.Update()

	if s.stroke == nil {
		stroke.StartStroke(s) // sets s.stroke when "Start" reaches NotifyCallback
	} else {
		s.stroke.Update()
		if s.stroke.IsReleased() || s.stroke.IsCancelled() {
			s.stroke = nil
		}
	}

	for {
		ev, err := s.queue.Remove()
		if err != nil {
			break
		}
		switch ev.Kind {
		case stadium.PointerDown:
			s.core.PointerDown(ev.X, ev.Z)
		case stadium.PointerMove:
			s.core.PointerMove(ev.X, ev.Z)
		case stadium.PointerUp:
			s.core.PointerUp()
		}
	}

	for key, tool := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.core.SetTool(tool)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyU) {
		s.core.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.core.ClearAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.export()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.resizeGrid(s.core.Dimension() - 8)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.resizeGrid(s.core.Dimension() + 8)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		theSM.Switch(NewMenu())
	}

	s.ticks++
	return nil
}

// resizeGrid swaps in a fresh grid (clamped, history cleared by the core)
// and forces a re-layout so the cell size fits the new dimension.
func (s *EditorScene) resizeGrid(n int) {
	s.core.Resize(n, 0)
	s.queue = stadium.NewInputQueue(64)
	s.stroke = nil
	s.oldWindowWidth, s.oldWindowHeight = 0, 0
}

func (s *EditorScene) cellOrigin(ix, iz int) (int, int) {
	return s.gridRectangle.Min.X + ix*s.cellPx, s.gridRectangle.Min.Y + iz*s.cellPx
}

func (s *EditorScene) drawCellOutline(screen *ebiten.Image, ix, iz int, c color.Color) {
	x, y := s.cellOrigin(ix, iz)
	x0, y0 := float64(x), float64(y)
	x1, y1 := float64(x+s.cellPx), float64(y+s.cellPx)
	ebitenutil.DrawLine(screen, x0, y0, x1, y0, c)
	ebitenutil.DrawLine(screen, x1, y0, x1, y1, c)
	ebitenutil.DrawLine(screen, x1, y1, x0, y1, c)
	ebitenutil.DrawLine(screen, x0, y1, x0, y0, c)
}

// Draw draws the current GameScene to the given screen
func (s *EditorScene) Draw(screen *ebiten.Image) {

	screen.Fill(ColorBackground)

	n := s.core.Dimension()
	min := s.gridRectangle.Min
	max := s.gridRectangle.Max
	for i := 0; i <= n; i++ {
		x := float64(min.X + i*s.cellPx)
		y := float64(min.Y + i*s.cellPx)
		ebitenutil.DrawLine(screen, x, float64(min.Y), x, float64(max.Y), gridLineColor)
		ebitenutil.DrawLine(screen, float64(min.X), y, float64(max.X), y, gridLineColor)
	}

	// the selection pulse breathes over a second
	pulse := util.Lerp(0.35, 1.0, float64(s.ticks%60)/60.0)
	pulseColor := color.RGBA{0xff, 0xff, 0xff, uint8(pulse * 0xff)}

	for _, it := range s.core.Placements() {
		if img := kindImage(it.Kind, s.cellPx); img != nil {
			x, y := s.cellOrigin(it.IX, it.IZ)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(img, op)
		}
		if it.Selected {
			s.drawCellOutline(screen, it.IX, it.IZ, pulseColor)
		}
	}

	if s.arena != nil {
		if ix, iz, ok := s.arena.Highlight(); ok {
			s.drawCellOutline(screen, ix, iz, pulseColor)
		}
	}

	for tool, b := range s.toolButtons {
		b.SetLit(tool == s.core.Tool())
	}
	for _, b := range s.buttons {
		b.Draw(screen)
	}

	caption := fmt.Sprintf("%s  %dx%d", StadiumName, n, n)
	text.Draw(screen, caption, theFonts.small, min.X, max.Y+18, color.White)

	if DebugMode {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("tool %s undo %d", s.core.Tool(), s.core.HistoryLen()),
			8, WindowHeight-20)
	}
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(s, " ", "-")
}

// export writes the JSON document plus the rendered artifact (PNG for the
// canvas, GLB for the arena) into OutputDir.
func (s *EditorScene) export() {
	if err := os.MkdirAll(OutputDir, 0o755); err != nil {
		log.Println("export:", err)
		return
	}
	stamp := time.Now()
	base := filepath.Join(OutputDir,
		fmt.Sprintf("%s-%s", slugify(StadiumName), stamp.Format("20060102-150405")))

	var buf bytes.Buffer
	switch s.variant {
	case VariantArena:
		if err := stadium.EncodeJSON(&buf, stadium.ExportPlan(s.arena.Plan(), StadiumName, stamp)); err != nil {
			log.Println("export:", err)
			return
		}
		writeExport(base+".json", buf.Bytes())
		scene, err := glb.Export(s.arena.Plan())
		if err != nil {
			log.Println("export:", err)
			return
		}
		writeExport(base+".glb", scene)
	default:
		if err := stadium.EncodeJSON(&buf, stadium.ExportModel(s.canvas.Model(), StadiumName, stamp)); err != nil {
			log.Println("export:", err)
			return
		}
		writeExport(base+".json", buf.Bytes())
		var img bytes.Buffer
		if err := raster.WritePNG(&img, raster.Render(s.canvas.Model().Snapshot(), StadiumName)); err != nil {
			log.Println("export:", err)
			return
		}
		writeExport(base+".png", img.Bytes())
	}
}

func writeExport(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Println("export:", err)
		return
	}
	log.Println("exported", path)
}
