package state

// Key names a keyboard key. Values follow fyne.KeyName ("Z", "LeftControl").
type Key string

type chordState int

const (
	chordIdle chordState = iota
	chordActive
)

// Chord detects a modifier+key combination and fires once per press.
// Holding the keys down, and the key repeats that come with it, never
// fire a second time. The chord must be released before it can fire again.
type Chord struct {
	modifiers map[Key]bool
	trigger   Key

	pressed map[Key]bool
	state   chordState
}

// NewChord returns a detector that fires when trigger goes down while any
// of modifiers is held.
func NewChord(trigger Key, modifiers ...Key) *Chord {
	c := &Chord{
		modifiers: make(map[Key]bool, len(modifiers)),
		trigger:   trigger,
		pressed:   make(map[Key]bool),
	}
	for _, m := range modifiers {
		c.modifiers[m] = true
	}
	return c
}

// Down records a key press and reports whether the chord fired. A Down
// for a key that is already held is an auto-repeat and never fires.
func (c *Chord) Down(k Key) bool {
	if c.pressed[k] {
		return false
	}
	c.pressed[k] = true
	if c.state == chordActive || k != c.trigger || !c.modifierHeld() {
		return false
	}
	c.state = chordActive
	return true
}

// Up records a key release.
func (c *Chord) Up(k Key) {
	delete(c.pressed, k)
	if c.state == chordActive && (!c.pressed[c.trigger] || !c.modifierHeld()) {
		c.state = chordIdle
	}
}

// Reset forgets every held key. Call it when the surface loses focus,
// since the matching key-up events will never arrive.
func (c *Chord) Reset() {
	clear(c.pressed)
	c.state = chordIdle
}

func (c *Chord) held(k Key) bool {
	return c.pressed[k]
}

func (c *Chord) active() bool {
	return c.state == chordActive
}

func (c *Chord) modifierHeld() bool {
	for m := range c.modifiers {
		if c.pressed[m] {
			return true
		}
	}
	return false
}
