package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"FreehandBoard/internal/render"
)

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	raster *canvas.Raster
}

// draw is called by fyne with the raster size in device pixels. Strokes
// are recorded in fyne units, so the ratio becomes the paint scale.
func (r *boardWidgetRenderer) draw(w, h int) image.Image {
	scale := 1.0
	if size := r.board.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}
	c := render.Canvas{
		Width:      w,
		Height:     h,
		Scale:      scale,
		Background: r.board.background,
	}
	return c.Rasterize(r.board.projector.Instructions(r.board.recorder))
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
