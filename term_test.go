package trellis

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, g *Grid) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(40, 20)
	return NewTerminalScreen(g, sim), sim
}

// --- Character cell mapping ---

func TestTerminalCellAt(t *testing.T) {
	g, _ := New(3, 3, 10, 1)
	term, _ := newSimTerminal(t, g)

	// border 1: cells span columns [1,2], [4,5], [7,8] and rows 1, 3, 5.
	tests := []struct {
		name     string
		col, row int
		want     Cell
		onCell   bool
	}{
		{"top-left gridline", 0, 0, Cell{}, false},
		{"first cell", 1, 1, Cell{0, 0}, true},
		{"first cell second column", 2, 1, Cell{0, 0}, true},
		{"vertical gridline", 3, 1, Cell{}, false},
		{"second cell", 4, 1, Cell{1, 0}, true},
		{"horizontal gridline", 1, 2, Cell{}, false},
		{"second row", 1, 3, Cell{0, 1}, true},
		{"past the grid", 10, 1, Cell{}, false},
		{"negative", -1, 1, Cell{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := term.CellAt(tt.col, tt.row)
			if ok != tt.onCell || got != tt.want {
				t.Errorf("CellAt(%d, %d) = %v, %v, want %v, %v",
					tt.col, tt.row, got, ok, tt.want, tt.onCell)
			}
		})
	}
}

func TestTerminalCellAtNoGridline(t *testing.T) {
	g, _ := New(3, 3, 10, 0)
	term, _ := newSimTerminal(t, g)

	if c, ok := term.CellAt(0, 0); !ok || (c != Cell{0, 0}) {
		t.Errorf("CellAt(0, 0) = %v, %v, want {0 0}, true", c, ok)
	}
	if c, ok := term.CellAt(5, 2); !ok || (c != Cell{2, 2}) {
		t.Errorf("CellAt(5, 2) = %v, %v, want {2 2}, true", c, ok)
	}
}

// --- Drawing ---

func TestTerminalDraw(t *testing.T) {
	g, _ := New(2, 1, 10, 1)
	g.Values().SetColor(1, red)
	g.Values().SetGlyph(1, 'R')
	g.Set(0, 0, 0, 1)

	term, sim := newSimTerminal(t, g)
	term.Draw()

	cells, w, _ := sim.GetContents()
	styleAt := func(col, row int) tcell.Style {
		return cells[row*w+col].Style
	}
	runeAt := func(col, row int) rune {
		return cells[row*w+col].Runes[0]
	}

	// (0,0) is gridline background.
	_, bg, _ := styleAt(0, 0).Decompose()
	if bg != termColor(DefaultGridlineColor) {
		t.Errorf("gridline bg = %v, want %v", bg, termColor(DefaultGridlineColor))
	}

	// Cell (0,0) spans columns 1-2 on row 1: red background, glyph in the
	// middle column.
	_, bg, _ = styleAt(1, 1).Decompose()
	if bg != termColor(red) {
		t.Errorf("cell (0,0) bg = %v, want %v", bg, termColor(red))
	}
	if r := runeAt(2, 1); r != 'R' {
		t.Errorf("cell (0,0) glyph column = %q, want 'R'", r)
	}
	if r := runeAt(1, 1); r != ' ' {
		t.Errorf("cell (0,0) non-glyph column = %q, want space", r)
	}

	// Cell (1,0): value 0 renders as the default cell color.
	_, bg, _ = styleAt(4, 1).Decompose()
	if bg != termColor(DefaultCellColor) {
		t.Errorf("cell (1,0) bg = %v, want %v", bg, termColor(DefaultCellColor))
	}
}

// --- Mouse transitions ---

func TestTerminalMouse(t *testing.T) {
	g, _ := New(3, 3, 10, 1)
	term, _ := newSimTerminal(t, g)

	var events []ButtonEvent
	term.OnButtonDown = func(ev ButtonEvent) { events = append(events, ev) }
	term.OnButtonUp = func(ev ButtonEvent) { events = append(events, ev) }

	press := tcell.NewEventMouse(1, 1, tcell.Button1, 0)
	drag := tcell.NewEventMouse(2, 1, tcell.Button1, 0)
	release := tcell.NewEventMouse(4, 1, tcell.ButtonNone, 0)

	term.handleMouse(press)
	if !term.MouseDown() {
		t.Fatal("MouseDown() = false after press")
	}
	term.handleMouse(drag) // no transition, no event
	term.handleMouse(release)
	if term.MouseDown() {
		t.Fatal("MouseDown() = true after release")
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	down, up := events[0], events[1]
	if down.Kind != ButtonDown || !down.OnCell || (down.Cell != Cell{0, 0}) {
		t.Errorf("down event = %+v, want ButtonDown on cell {0 0}", down)
	}
	if up.Kind != ButtonUp || !up.OnCell || (up.Cell != Cell{1, 0}) {
		t.Errorf("up event = %+v, want ButtonUp on cell {1 0}", up)
	}
}

func TestTerminalMouseOnGridline(t *testing.T) {
	g, _ := New(3, 3, 10, 1)
	term, _ := newSimTerminal(t, g)

	var ev ButtonEvent
	term.OnButtonDown = func(e ButtonEvent) { ev = e }

	term.handleMouse(tcell.NewEventMouse(0, 0, tcell.Button1, 0))
	if ev.Kind != ButtonDown || ev.OnCell {
		t.Errorf("event = %+v, want ButtonDown with OnCell false", ev)
	}
}
