package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"FreehandBoard/internal/logging"
)

// Canvas describes the pixel surface instructions are painted onto.
// Scale converts stroke coordinates to pixels; zero means 1.
type Canvas struct {
	Width, Height int
	Scale         float64
	Background    color.Color
}

// Rasterize paints instrs, in order, onto a fresh image. Segments use
// round caps and joins so that consecutive segments of a stroke read as
// one continuous line.
func (c Canvas) Rasterize(instrs []Instruction) image.Image {
	w, h := max(c.Width, 1), max(c.Height, 1)
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	bg := c.Background
	if bg == nil {
		bg = color.White
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(bg))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, in := range instrs {
		if err := paint(dc, in, scale); err != nil {
			logging.Logger().Warn("[RENDER] instruction dropped", "kind", in.Kind, "err", err)
		}
	}
	_ = dc.FlushGPU()
	return dc.Image()
}

func paint(dc *gg.Context, in Instruction, scale float64) error {
	x1, y1 := float64(in.From.X)*scale, float64(in.From.Y)*scale
	width := float64(in.Thickness) * scale

	dc.SetColor(in.Color)
	switch in.Kind {
	case Dot:
		dc.DrawCircle(x1, y1, width/2)
		return dc.Fill()
	case Segment:
		x2, y2 := float64(in.To.X)*scale, float64(in.To.Y)*scale
		dc.SetLineWidth(width)
		dc.DrawLine(x1, y1, x2, y2)
		return dc.Stroke()
	}
	return nil
}
