package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"FreehandBoard/internal/logging"
	"FreehandBoard/internal/render"
	"FreehandBoard/internal/state"
)

// BoardWidget is the drawing surface. It forwards pointer, key and focus
// events to a state.Recorder and paints the recorder's strokes.
type BoardWidget struct {
	widget.BaseWidget

	recorder   *state.Recorder
	projector  render.Projector
	background color.Color

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Focusable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Keyable = (*BoardWidget)(nil)

func NewBoardWidget(rec *state.Recorder, background color.Color) *BoardWidget {
	b := &BoardWidget{
		recorder:   rec,
		background: background,
		statusBar:  widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

// StatusBar returns the label that reports the stroke count.
func (b *BoardWidget) StatusBar() *widget.Label {
	return b.statusBar
}

// Undo removes the last stroke, as the toolbar button does.
func (b *BoardWidget) Undo() {
	if b.recorder.Undo() {
		b.changed()
	}
}

// Clear starts a new canvas.
func (b *BoardWidget) Clear() {
	b.recorder.ClearAll()
	b.changed()
}

func (b *BoardWidget) changed() {
	b.statusBar.SetText(statusText(b.recorder))
	b.Refresh()
}

// statusText reports the stroke count and the width of the next stroke.
func statusText(rec *state.Recorder) string {
	_, thickness := rec.Brush()
	return fmt.Sprintf("%d strokes, %dpx brush", rec.Len(), thickness)
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{
		X: int(math.Round(float64(p.X))),
		Y: int(math.Round(float64(p.Y))),
	}
}

func toButton(b desktop.MouseButton) state.Button {
	if b == desktop.MouseButtonPrimary {
		return state.ButtonPrimary
	}
	return state.ButtonOther
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	before := b.recorder.Version()
	b.recorder.PointerDown(toPoint(e.Position), toButton(e.Button))
	if b.recorder.Version() != before {
		b.changed()
	}
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent) {
	b.recorder.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	before := b.recorder.Version()
	b.recorder.PointerMove(toPoint(e.Position), true)
	if b.recorder.Version() != before {
		b.Refresh()
	}
}

func (b *BoardWidget) DragEnd() {
	b.recorder.PointerUp()
}

// MouseIn takes keyboard focus so the undo chord works without a click
// on the board first.
func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(b); c != nil {
		c.Focus(b)
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.recorder.PointerMove(toPoint(e.Position), false)
}

func (b *BoardWidget) MouseOut() {}

func (b *BoardWidget) KeyDown(e *fyne.KeyEvent) {
	if b.recorder.KeyDown(state.Key(e.Name)) {
		logging.Logger().Debug("[UI] undo chord", "key", e.Name)
		b.changed()
	}
}

func (b *BoardWidget) KeyUp(e *fyne.KeyEvent) {
	b.recorder.KeyUp(state.Key(e.Name))
}

func (b *BoardWidget) FocusGained() {}

func (b *BoardWidget) FocusLost() {
	b.recorder.FocusLost()
}

func (b *BoardWidget) TypedRune(rune)           {}
func (b *BoardWidget) TypedKey(*fyne.KeyEvent) {}
