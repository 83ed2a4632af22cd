package trellis

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// termCellCols is the number of terminal columns one grid cell spans.
// Terminal cells are roughly twice as tall as wide, so two columns per
// grid cell keeps cells close to square.
const termCellCols = 2

// Terminal displays a grid on a terminal screen using tcell. Each cell is
// drawn as a block with the composited color as background and the glyph
// centered in the block; a one-character gridline band separates cells when
// the grid's gridline weight is non-zero. Images have no terminal
// representation and are skipped.
//
// tcell delivers events on the Run loop while callers may poll MouseDown
// from elsewhere; the button flag is atomic. All other grid access must
// stay on the Run loop's context.
type Terminal struct {
	grid   *Grid
	screen tcell.Screen
	border int // 1 when gridlines are drawn, else 0

	mouseDown atomic.Bool

	// OnButtonDown and OnButtonUp, when set, are invoked on mouse button
	// transitions with the cell under the pointer.
	OnButtonDown func(ButtonEvent)
	OnButtonUp   func(ButtonEvent)

	// OnEvent, when set, runs after every processed terminal event. This is
	// where application edit logic belongs. Returning an error stops Run.
	OnEvent func() error
}

// NewTerminal creates a terminal front end for the grid on the default
// tty screen.
func NewTerminal(g *Grid) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("trellis: new terminal: %w", err)
	}
	return NewTerminalScreen(g, s), nil
}

// NewTerminalScreen creates a terminal front end on the given screen.
// Tests use this with a tcell.SimulationScreen.
func NewTerminalScreen(g *Grid, s tcell.Screen) *Terminal {
	border := 0
	if g.gridlineWeight > 0 {
		border = 1
	}
	return &Terminal{grid: g, screen: s, border: border}
}

// MouseDown reports whether a mouse button is currently held.
func (t *Terminal) MouseDown() bool { return t.mouseDown.Load() }

// CellAt maps a screen position in character units to the cell under it,
// applying the same gridline-band rule as the pixel mapping: positions on
// a gridline character or outside the grid map to no cell.
func (t *Terminal) CellAt(col, row int) (Cell, bool) {
	if col < 0 || row < 0 {
		return Cell{}, false
	}
	stepX := termCellCols + t.border
	stepY := 1 + t.border

	x := col / stepX
	y := row / stepY
	if col%stepX < t.border || row%stepY < t.border {
		return Cell{}, false
	}
	if x >= t.grid.width || y >= t.grid.height {
		return Cell{}, false
	}
	return Cell{X: x, Y: y}, true
}

// Run initializes the screen, enables mouse reporting, and processes events
// until Esc, q, or Ctrl+C is pressed or OnEvent returns an error. The grid
// is redrawn whenever a repaint is pending.
func (t *Terminal) Run() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("trellis: init terminal: %w", err)
	}
	defer t.screen.Fini()
	t.screen.EnableMouse()

	t.Draw()
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventMouse:
			t.handleMouse(ev)
		case *tcell.EventResize:
			t.screen.Sync()
			t.grid.Repaint()
		case nil:
			return nil
		}

		if t.OnEvent != nil {
			if err := t.OnEvent(); err != nil {
				return err
			}
		}
		if t.grid.takePaint() {
			t.Draw()
		}
	}
}

// handleMouse tracks button transitions and emits button events.
func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.ButtonMask(0xff) != 0
	if down == t.mouseDown.Load() {
		return
	}
	t.mouseDown.Store(down)

	bev := ButtonEvent{Kind: ButtonUp}
	if down {
		bev.Kind = ButtonDown
	}
	col, row := ev.Position()
	bev.Cell, bev.OnCell = t.CellAt(col, row)

	if down && t.OnButtonDown != nil {
		t.OnButtonDown(bev)
	} else if !down && t.OnButtonUp != nil {
		t.OnButtonUp(bev)
	}
}

// Draw renders the whole grid to the screen and shows it.
func (t *Terminal) Draw() {
	lineStyle := tcell.StyleDefault.Background(termColor(t.grid.gridlineColor))
	t.screen.Fill(' ', lineStyle)

	stepX := termCellCols + t.border
	stepY := 1 + t.border

	stack := make([]int, 0, len(t.grid.layers))
	for y := 0; y < t.grid.height; y++ {
		for x := 0; x < t.grid.width; x++ {
			stack = t.grid.stackAt(x, y, stack[:0])
			p := Composite(stack, t.grid.table)

			style := tcell.StyleDefault.
				Background(termColor(p.Color)).
				Foreground(termColor(p.GlyphColor))

			baseCol := x*stepX + t.border
			row := y*stepY + t.border
			mid := termCellCols / 2
			for c := 0; c < termCellCols; c++ {
				r := ' '
				if p.Glyph != 0 && c == mid {
					r = p.Glyph
				}
				t.screen.SetContent(baseCol+c, row, r, nil, style)
			}
		}
	}
	t.screen.Show()
}

// termColor converts a color.Color to the nearest tcell RGB color.
func termColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
