package trellis

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
)

// Grid is a fixed-size 2D grid of integer-valued cells organized in stacked
// layers. Layer 0 always exists; AddLayer appends further layers on top.
// Each cell value maps through the grid's Table to a color, glyph, and image
// that the compositor reduces to one paint instruction per cell.
//
// A Grid is not safe for concurrent use. Front ends only share the
// pointer-down flag across execution contexts; see Window and Terminal.
type Grid struct {
	width          int
	height         int
	cellSize       int
	gridlineWeight int
	gridlineColor  color.Color

	// layers holds one flat row-major value slice per layer,
	// each of length width*height. Index 0 is the base layer.
	layers [][]int

	table *Table

	autoRepaint bool
	dirty       bool

	// Cached glyph face for the current cell size. Built on first render.
	face     font.Face
	faceSize int
}

// New creates a grid of width x height cells, each cellSize pixels square,
// separated by gridlineWeight pixels of gridline. The grid starts with a
// single layer (layer 0) of all-zero cells, black gridlines, and auto
// repaint enabled. Value 0 is pre-registered with no color (transparent
// above layer 0, white on layer 0), no glyph, and black glyph color.
func New(width, height, cellSize, gridlineWeight int) (*Grid, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("trellis: grid dimensions and cell size must be positive: %w", ErrInvalidArgument)
	}
	if gridlineWeight < 0 {
		return nil, fmt.Errorf("trellis: gridline weight must not be negative: %w", ErrInvalidArgument)
	}
	g := &Grid{
		width:          width,
		height:         height,
		cellSize:       cellSize,
		gridlineWeight: gridlineWeight,
		gridlineColor:  DefaultGridlineColor,
		autoRepaint:    true,
		dirty:          true,
	}
	g.table = newTable(g.tryRepaint)
	g.table.seedZero()
	g.AddLayer()
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// CellSize returns the size of one cell in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// GridlineWeight returns the gridline thickness in pixels.
func (g *Grid) GridlineWeight() int { return g.gridlineWeight }

// Layers returns the number of layers in the grid.
func (g *Grid) Layers() int { return len(g.layers) }

// Values returns the grid's value-appearance table. The table is shared by
// the editing API and the compositor and lives as long as the grid.
func (g *Grid) Values() *Table { return g.table }

// AddLayer appends a new all-zero layer on top of all existing layers.
// Layers are never removed.
func (g *Grid) AddLayer() {
	g.layers = append(g.layers, make([]int, g.width*g.height))
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// validLayer reports whether layer is an existing layer index.
func (g *Grid) validLayer(layer int) bool {
	return layer >= 0 && layer < len(g.layers)
}

// SetGridlineColor sets the color painted between and around cells.
func (g *Grid) SetGridlineColor(c color.Color) {
	if c == nil {
		c = DefaultGridlineColor
	}
	g.gridlineColor = c
	g.tryRepaint()
}

// GridlineColor returns the current gridline color.
func (g *Grid) GridlineColor() color.Color { return g.gridlineColor }

// SetAutoRepaint controls whether mutations mark the grid for repaint
// automatically. Enabled by default. With it disabled, call Repaint to
// flag the grid after a batch of edits.
func (g *Grid) SetAutoRepaint(on bool) { g.autoRepaint = on }

// AutoRepaint reports whether auto repaint is enabled.
func (g *Grid) AutoRepaint() bool { return g.autoRepaint }

// Repaint marks the grid for repaint regardless of the auto-repaint setting.
func (g *Grid) Repaint() { g.dirty = true }

// tryRepaint marks the grid dirty if auto repaint is enabled.
func (g *Grid) tryRepaint() {
	if g.autoRepaint {
		g.dirty = true
	}
}

// takePaint consumes the pending-repaint flag. Front ends call it once per
// frame and re-render when it reports true.
func (g *Grid) takePaint() bool {
	d := g.dirty
	g.dirty = false
	return d
}

// Set assigns value to the cell at (x, y) on the given layer. Writing to a
// layer that does not exist is a silent no-op, never an error; callers rely
// on that to write against layers that may not have been added yet. An
// out-of-range coordinate on an existing layer returns ErrOutOfBounds.
func (g *Grid) Set(layer, x, y, value int) error {
	if !g.validLayer(layer) {
		return nil
	}
	if !g.InBounds(x, y) {
		return fmt.Errorf("trellis: set (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	g.layers[layer][y*g.width+x] = value
	g.table.ensure(value)
	g.tryRepaint()
	return nil
}

// SetCell is Set with a cell pointer. A nil cell leaves the grid unchanged.
func (g *Grid) SetCell(layer int, c *Cell, value int) error {
	if c == nil {
		return nil
	}
	return g.Set(layer, c.X, c.Y, value)
}

// Get returns the value of the cell at (x, y) on the given layer. Unlike
// the write paths, reading a non-existent layer is an error.
func (g *Grid) Get(layer, x, y int) (int, error) {
	if !g.validLayer(layer) {
		return 0, fmt.Errorf("trellis: get layer %d of %d: %w", layer, len(g.layers), ErrInvalidArgument)
	}
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("trellis: get (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return g.layers[layer][y*g.width+x], nil
}

// GetCell is Get with a cell pointer. A nil cell returns ErrNilInput.
func (g *Grid) GetCell(layer int, c *Cell) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("trellis: get: %w", ErrNilInput)
	}
	return g.Get(layer, c.X, c.Y)
}

// Fill sets every cell on the given layer to value. An invalid layer is a
// silent no-op.
func (g *Grid) Fill(layer, value int) {
	if !g.validLayer(layer) {
		return
	}
	cells := g.layers[layer]
	for i := range cells {
		cells[i] = value
	}
	g.table.ensure(value)
	g.tryRepaint()
}

// FillRow sets every cell in the given row of a layer to value. An invalid
// layer or row is a silent no-op.
func (g *Grid) FillRow(layer, row, value int) {
	if !g.validLayer(layer) || row < 0 || row >= g.height {
		return
	}
	cells := g.layers[layer][row*g.width : (row+1)*g.width]
	for i := range cells {
		cells[i] = value
	}
	g.table.ensure(value)
	g.tryRepaint()
}

// FillColumn sets every cell in the given column of a layer to value. An
// invalid layer or column is a silent no-op.
func (g *Grid) FillColumn(layer, column, value int) {
	if !g.validLayer(layer) || column < 0 || column >= g.width {
		return
	}
	cells := g.layers[layer]
	for y := 0; y < g.height; y++ {
		cells[y*g.width+column] = value
	}
	g.table.ensure(value)
	g.tryRepaint()
}

// Replace sets every cell on the given layer currently holding old to new.
// An invalid layer is a silent no-op.
func (g *Grid) Replace(layer, old, new int) {
	if !g.validLayer(layer) {
		return
	}
	cells := g.layers[layer]
	for i, v := range cells {
		if v == old {
			cells[i] = new
		}
	}
	g.table.ensure(new)
	g.tryRepaint()
}

// stackAt appends the per-layer values at (x, y), bottom to top, to buf.
// The coordinate must be in bounds.
func (g *Grid) stackAt(x, y int, buf []int) []int {
	i := y*g.width + x
	for _, layer := range g.layers {
		buf = append(buf, layer[i])
	}
	return buf
}
