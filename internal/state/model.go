package state

import (
	"image/color"

	"github.com/google/uuid"
)

// MinThickness is the smallest stroke thickness the recorder will store.
const MinThickness = 1

// Point is a canvas position in whole pixels.
type Point struct{ X, Y int }

// Button identifies which pointer button produced a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonOther
)

// Stroke is one continuous pointer gesture.
type Stroke struct {
	ID        string
	Color     color.Color
	Thickness int
	Points    []Point
}

func newStroke(c color.Color, thickness int, first Point) *Stroke {
	return &Stroke{
		ID:        uuid.NewString(),
		Color:     c,
		Thickness: thickness,
		Points:    []Point{first},
	}
}

// last returns the most recently captured point.
func (s *Stroke) last() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

func (s *Stroke) clone() Stroke {
	cp := *s
	cp.Points = make([]Point, len(s.Points))
	copy(cp.Points, s.Points)
	return cp
}

// Snapshot is a detached copy of the recorder's history.
type Snapshot struct {
	Version uint64
	Strokes []Stroke
}
