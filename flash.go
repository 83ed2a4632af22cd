package trellis

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flashDuration is how long a cell flash takes to fade out, in seconds.
const flashDuration = 0.35

// flashAlpha is the overlay's starting opacity.
const flashAlpha = 0.8

// cellFlash is a white overlay on one cell fading out over flashDuration.
type cellFlash struct {
	cell  Cell
	tween *gween.Tween
	alpha float32
}

// whitePixel is a 1x1 white image scaled over cells for flash overlays
// (no sync.Once — trellis is single-threaded).
var whitePixel *ebiten.Image

func flashPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Flash starts a brief white overlay over the given cell that eases out.
// Useful as edit feedback in painting tools. Out-of-bounds coordinates are
// ignored.
func (w *Window) Flash(x, y int) {
	if !w.grid.InBounds(x, y) {
		return
	}
	w.flashes = append(w.flashes, &cellFlash{
		cell:  Cell{X: x, Y: y},
		tween: gween.New(flashAlpha, 0, flashDuration, ease.OutQuad),
		alpha: flashAlpha,
	})
}

// updateFlashes advances all flash tweens by dt seconds and drops the
// finished ones.
func (w *Window) updateFlashes(dt float32) {
	n := 0
	for _, f := range w.flashes {
		a, finished := f.tween.Update(dt)
		f.alpha = a
		if !finished {
			w.flashes[n] = f
			n++
		}
	}
	w.flashes = w.flashes[:n]
}

// drawFlashes draws the active overlays above the grid raster.
func (w *Window) drawFlashes(screen *ebiten.Image) {
	step := w.grid.cellSize + w.grid.gridlineWeight
	for _, f := range w.flashes {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w.grid.cellSize), float64(w.grid.cellSize))
		op.GeoM.Translate(
			float64(f.cell.X*step+w.grid.gridlineWeight),
			float64(f.cell.Y*step+w.grid.gridlineWeight),
		)
		op.ColorScale.ScaleAlpha(f.alpha)
		screen.DrawImage(flashPixel(), op)
	}
}
