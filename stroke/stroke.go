// Package stroke turns raw ebiten mouse/touch input into one gesture: a
// pointer-down-to-pointer-up sequence delivered to a notifiable as Start,
// Move, Stop, Cancel and Tap events. Release is detected globally, so a
// drag that ends outside the interactive area still terminates.
package stroke

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type EventKind int

const (
	Start EventKind = iota
	Move
	Stop
	Cancel
	Tap
)

// StrokeEvent is one notification in a gesture's lifecycle.
type StrokeEvent struct {
	Event  EventKind
	Stroke *Stroke
	X, Y   int
}

// StrokeNotifiable receives the gesture's events.
type StrokeNotifiable interface {
	NotifyCallback(StrokeEvent)
}

// Stroke tracks a single in-progress gesture.
type Stroke struct {
	notifiable StrokeNotifiable
	dragged    any

	start   image.Point
	current image.Point

	isTouch bool
	touchID ebiten.TouchID

	moved     bool
	released  bool
	cancelled bool
}

// StartStroke begins a new gesture if a mouse button or touch was just
// pressed, sending Start to the notifiable. It is cheap to call every
// frame; most calls do nothing.
func StartStroke(n StrokeNotifiable) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s := &Stroke{notifiable: n, start: image.Point{x, y}, current: image.Point{x, y}}
		n.NotifyCallback(StrokeEvent{Event: Start, Stroke: s, X: x, Y: y})
		return
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		s := &Stroke{notifiable: n, isTouch: true, touchID: ids[0],
			start: image.Point{x, y}, current: image.Point{x, y}}
		n.NotifyCallback(StrokeEvent{Event: Start, Stroke: s, X: x, Y: y})
	}
}

// Update advances the gesture: Move while the pointer travels, then Stop on
// release (or Tap then Cancel if it never moved).
func (s *Stroke) Update() {
	if s.released || s.cancelled {
		return
	}

	if s.isTouch && inpututil.IsTouchJustReleased(s.touchID) {
		s.finish()
		return
	}
	if !s.isTouch && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.finish()
		return
	}

	var x, y int
	if s.isTouch {
		x, y = ebiten.TouchPosition(s.touchID)
	} else {
		x, y = ebiten.CursorPosition()
	}
	if x != s.current.X || y != s.current.Y {
		s.current = image.Point{x, y}
		s.moved = true
		s.notifiable.NotifyCallback(StrokeEvent{Event: Move, Stroke: s, X: x, Y: y})
	}
}

func (s *Stroke) finish() {
	s.released = true
	if s.moved {
		s.notifiable.NotifyCallback(StrokeEvent{Event: Stop, Stroke: s, X: s.current.X, Y: s.current.Y})
		return
	}
	// a press without travel is a tap; the cancel that follows lets the
	// receiver tidy up shared drag state
	s.notifiable.NotifyCallback(StrokeEvent{Event: Tap, Stroke: s, X: s.current.X, Y: s.current.Y})
	s.notifiable.NotifyCallback(StrokeEvent{Event: Cancel, Stroke: s, X: s.current.X, Y: s.current.Y})
}

// Cancel abandons the gesture; the receiver gets one Cancel event.
func (s *Stroke) Cancel() {
	if s.released || s.cancelled {
		return
	}
	s.cancelled = true
	s.notifiable.NotifyCallback(StrokeEvent{Event: Cancel, Stroke: s, X: s.current.X, Y: s.current.Y})
}

// Position returns the pointer's current screen position.
func (s *Stroke) Position() (int, int) {
	return s.current.X, s.current.Y
}

// PositionDiff returns the travel since the gesture started.
func (s *Stroke) PositionDiff() (int, int) {
	return s.current.X - s.start.X, s.current.Y - s.start.Y
}

// SetDraggedObject attaches an arbitrary payload to the gesture.
func (s *Stroke) SetDraggedObject(obj any) { s.dragged = obj }

// DraggedObject returns the attached payload, if any.
func (s *Stroke) DraggedObject() any { return s.dragged }

func (s *Stroke) IsReleased() bool  { return s.released }
func (s *Stroke) IsCancelled() bool { return s.cancelled }
