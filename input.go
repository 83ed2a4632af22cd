package trellis

// CellAt maps a pixel position in grid-local coordinates to the cell under
// it. Positions over a gridline band — including the band's boundary pixel —
// and positions outside the grid map to no cell:
//
//	cellIndex   = pixel / (cellSize + gridlineWeight)
//	localOffset = pixel % (cellSize + gridlineWeight)
//
// and the position is inside a cell only when localOffset is strictly
// greater than gridlineWeight on both axes.
func (g *Grid) CellAt(px, py int) (Cell, bool) {
	if px < 0 || py < 0 {
		return Cell{}, false
	}
	step := g.cellSize + g.gridlineWeight

	x := px / step
	y := py / step
	ox := px % step
	oy := py % step

	if ox <= g.gridlineWeight || oy <= g.gridlineWeight {
		return Cell{}, false
	}
	if x >= g.width || y >= g.height {
		return Cell{}, false
	}
	return Cell{X: x, Y: y}, true
}
