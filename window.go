package trellis

import (
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window displays a grid in a fixed-size, non-resizable desktop window and
// reports mouse activity. It implements ebiten.Game: either call Run for a
// ready-made loop, or embed it in a larger game and forward Update, Draw,
// and Layout yourself.
//
// Ebiten delivers input on the game loop's execution context while callers
// may poll MouseDown from their own code inside OnFrame; the button flag is
// atomic so both sides see consistent values. Everything else on the grid
// must be touched from the game loop only.
type Window struct {
	grid  *Grid
	title string

	frame *ebiten.Image // cached grid raster, rebuilt when the grid is dirty

	mouseDown atomic.Bool

	flashes []*cellFlash

	// OnButtonDown and OnButtonUp, when set, are invoked once per press and
	// release of any mouse button, with the cell under the cursor at that
	// moment.
	OnButtonDown func(ButtonEvent)
	OnButtonUp   func(ButtonEvent)

	// OnFrame, when set, runs once per tick after input processing. This is
	// where application edit logic belongs. Returning an error stops Run.
	OnFrame func() error
}

// NewWindow wraps a grid in a window shell with the given title. The window
// is not opened until Run (or an enclosing ebiten game) starts.
func NewWindow(g *Grid, title string) *Window {
	return &Window{grid: g, title: title}
}

// Grid returns the displayed grid.
func (w *Window) Grid() *Grid { return w.grid }

// MouseDown reports whether any mouse button is currently held.
func (w *Window) MouseDown() bool { return w.mouseDown.Load() }

// MousePosition returns the cell the cursor is currently over. It reports
// false when the cursor is outside the grid or on a gridline band.
func (w *Window) MousePosition() (Cell, bool) {
	mx, my := ebiten.CursorPosition()
	return w.grid.CellAt(mx, my)
}

// PixelSize returns the window dimensions in device pixels.
func (w *Window) PixelSize() (int, int) {
	step := w.grid.cellSize + w.grid.gridlineWeight
	return w.grid.width*step + w.grid.gridlineWeight,
		w.grid.height*step + w.grid.gridlineWeight
}

// Update polls mouse state, emits button events, advances flash overlays,
// and runs OnFrame. Part of the ebiten.Game interface.
func (w *Window) Update() error {
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if down != w.mouseDown.Load() {
		w.mouseDown.Store(down)
		ev := ButtonEvent{Kind: ButtonUp}
		if down {
			ev.Kind = ButtonDown
		}
		ev.Cell, ev.OnCell = w.MousePosition()
		if down && w.OnButtonDown != nil {
			w.OnButtonDown(ev)
		} else if !down && w.OnButtonUp != nil {
			w.OnButtonUp(ev)
		}
	}

	w.updateFlashes(float32(1.0 / float64(ebiten.TPS())))

	if w.OnFrame != nil {
		return w.OnFrame()
	}
	return nil
}

// Draw re-renders the grid raster if a repaint is pending and blits it,
// then draws any active flash overlays. Part of the ebiten.Game interface.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.grid.takePaint() || w.frame == nil {
		raster := w.grid.RenderImage()
		if w.frame == nil {
			b := raster.Bounds()
			w.frame = ebiten.NewImage(b.Dx(), b.Dy())
		}
		// The raster is fully opaque, so its straight-alpha bytes are
		// already valid premultiplied RGBA.
		w.frame.WritePixels(raster.Pix)
	}
	screen.DrawImage(w.frame, nil)
	w.drawFlashes(screen)
}

// Layout reports the fixed pixel size of the grid. Part of the ebiten.Game
// interface.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.PixelSize()
}

// Run opens the window sized to the grid and runs the game loop until the
// window is closed or OnFrame returns an error.
func (w *Window) Run() error {
	pw, ph := w.PixelSize()
	ebiten.SetWindowSize(pw, ph)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("trellis: run window: %w", err)
	}
	return nil
}
