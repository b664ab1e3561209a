package state

import (
	"image/color"
	"sync"

	"FreehandBoard/internal/logging"
)

// DefaultThickness matches the pen width the board starts with.
const DefaultThickness = 10

// Recorder turns pointer and keyboard events into an ordered stroke history.
//
// Every primary press starts a new stroke and commits it to history at
// once, so a click without a drag still leaves a dot. Drag events then
// extend that same stroke until the pointer is released.
//
// All methods are safe to call from different callback goroutines; each
// call runs under a single lock.
type Recorder struct {
	mu sync.Mutex

	history  []*Stroke // commit order, tail is most recent
	active   *Stroke   // stroke receiving points, nil when idle
	dragging bool

	color     color.Color
	thickness int

	chord   *Chord
	version versionClock
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithColor sets the color of the first strokes.
func WithColor(c color.Color) Option {
	return func(r *Recorder) { r.color = c }
}

// WithThickness sets the thickness of the first strokes.
func WithThickness(n int) Option {
	return func(r *Recorder) { r.thickness = clampThickness(n) }
}

// WithUndoChord replaces the default Ctrl+Z undo binding.
func WithUndoChord(c *Chord) Option {
	return func(r *Recorder) { r.chord = c }
}

// DefaultUndoChord is Ctrl+Z with either control key.
func DefaultUndoChord() *Chord {
	return NewChord("Z", "LeftControl", "RightControl")
}

// NewRecorder creates an empty recorder drawing black 10px strokes
// unless options say otherwise.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		color:     color.Black,
		thickness: DefaultThickness,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.chord == nil {
		r.chord = DefaultUndoChord()
	}
	return r
}

// PointerDown starts and commits a new stroke at p. Presses of any
// button other than the primary one are ignored.
func (r *Recorder) PointerDown(p Point, b Button) {
	if b != ButtonPrimary {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := newStroke(r.color, r.thickness, p)
	r.history = append(r.history, s)
	r.active = s
	r.dragging = true
	r.version.tick()

	logging.Logger().Debug("[STATE] stroke committed",
		"id", s.ID, "x", p.X, "y", p.Y, "strokes", len(r.history))
}

// PointerMove extends the active stroke with p. It does nothing unless a
// gesture is in progress, or when p repeats the stroke's last point.
func (r *Recorder) PointerMove(p Point, dragging bool) {
	if !dragging {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.dragging || r.active == nil {
		return
	}
	if last, ok := r.active.last(); ok && last == p {
		return
	}
	r.active.Points = append(r.active.Points, p)
	r.version.tick()
}

// PointerUp ends the current gesture. The stroke stays in history.
func (r *Recorder) PointerUp() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.endGesture()
}

// Undo removes the most recently committed stroke. It reports false,
// without error, when there is nothing to undo.
func (r *Recorder) Undo() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.undoLocked()
}

func (r *Recorder) undoLocked() bool {
	if len(r.history) == 0 {
		return false
	}

	n := len(r.history) - 1
	s := r.history[n]
	r.history[n] = nil
	r.history = r.history[:n]

	// A move arriving after the pop must not revive the removed stroke.
	r.endGesture()
	r.version.tick()

	logging.Logger().Debug("[STATE] stroke undone", "id", s.ID, "strokes", len(r.history))
	return true
}

// ClearAll empties the history, as for a new canvas.
func (r *Recorder) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cleared := len(r.history)
	r.history = nil
	r.endGesture()
	r.version.tick()

	logging.Logger().Debug("[STATE] canvas cleared", "strokes", cleared)
}

func (r *Recorder) endGesture() {
	r.dragging = false
	r.active = nil
}

// SetColor sets the color used by strokes started after this call.
func (r *Recorder) SetColor(c color.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.color = c
}

// SetThickness sets the thickness used by strokes started after this
// call. Values below MinThickness are clamped to MinThickness.
func (r *Recorder) SetThickness(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.thickness = clampThickness(n)
}

// Brush returns the color and thickness the next stroke will use.
func (r *Recorder) Brush() (color.Color, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.color, r.thickness
}

func clampThickness(n int) int {
	if n < MinThickness {
		logging.Logger().Debug("[STATE] thickness clamped", "requested", n, "used", MinThickness)
		return MinThickness
	}
	return n
}

// KeyDown records a key press and runs Undo when it completes the undo
// chord. It reports whether a stroke was removed.
func (r *Recorder) KeyDown(k Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.chord.Down(k) {
		return false
	}
	return r.undoLocked()
}

// KeyUp records a key release.
func (r *Recorder) KeyUp(k Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chord.Up(k)
}

// FocusLost drops every held key and ends any gesture in progress. Key-up
// and pointer-up events are not delivered once focus has moved away.
func (r *Recorder) FocusLost() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chord.Reset()
	r.endGesture()
}

func (r *Recorder) drawing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dragging
}

// Len returns the number of strokes in history.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.history)
}

// Version returns a counter that changes whenever the history does.
func (r *Recorder) Version() uint64 {
	return r.version.now()
}

// Snapshot returns a deep copy of the history in commit order.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	strokes := make([]Stroke, 0, len(r.history))
	for _, s := range r.history {
		strokes = append(strokes, s.clone())
	}
	return Snapshot{
		Version: r.version.now(),
		Strokes: strokes,
	}
}
