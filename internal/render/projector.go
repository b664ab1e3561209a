// Package render turns recorded strokes into draw instructions and
// paints those instructions into images.
package render

import (
	"image/color"
	"sync"

	"FreehandBoard/internal/state"
)

// Kind tells a renderer which primitive an Instruction describes.
type Kind int

const (
	// Dot is a filled circle centered at From with diameter Thickness.
	Dot Kind = iota
	// Segment is a line from From to To, Thickness wide.
	Segment
)

func (k Kind) String() string {
	switch k {
	case Dot:
		return "dot"
	case Segment:
		return "segment"
	default:
		return "unknown"
	}
}

// Instruction is a renderer-agnostic drawing primitive.
type Instruction struct {
	Kind      Kind
	From, To  state.Point
	Color     color.Color
	Thickness int
}

// Project returns the instructions for snap in history order, so that
// later strokes paint over earlier ones. A one-point stroke becomes a dot
// and an n-point stroke becomes n-1 segments. Empty strokes produce
// nothing.
func Project(snap state.Snapshot) []Instruction {
	n := 0
	for _, s := range snap.Strokes {
		switch len(s.Points) {
		case 0:
		case 1:
			n++
		default:
			n += len(s.Points) - 1
		}
	}

	out := make([]Instruction, 0, n)
	for _, s := range snap.Strokes {
		switch len(s.Points) {
		case 0:
			continue
		case 1:
			p := s.Points[0]
			out = append(out, Instruction{Kind: Dot, From: p, To: p, Color: s.Color, Thickness: s.Thickness})
		default:
			for i := 1; i < len(s.Points); i++ {
				out = append(out, Instruction{
					Kind:      Segment,
					From:      s.Points[i-1],
					To:        s.Points[i],
					Color:     s.Color,
					Thickness: s.Thickness,
				})
			}
		}
	}
	return out
}

// Source is anything that can hand out a versioned snapshot.
// *state.Recorder implements it.
type Source interface {
	Version() uint64
	Snapshot() state.Snapshot
}

// Projector caches the projection of the last snapshot it saw, keyed by
// the snapshot version.
type Projector struct {
	mu      sync.Mutex
	valid   bool
	version uint64
	cached  []Instruction
}

// Instructions pulls the current instruction list from src. When src has
// not changed since the previous call the cached list is returned.
// Callers must not modify the returned slice.
func (p *Projector) Instructions(src Source) []Instruction {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid && src.Version() == p.version {
		return p.cached
	}
	snap := src.Snapshot()
	p.cached = Project(snap)
	p.version = snap.Version
	p.valid = true
	return p.cached
}
