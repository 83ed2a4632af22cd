package trellis

import (
	"fmt"
	"strconv"
	"strings"
)

// layerSeparator splits layer blocks in the saved form.
const layerSeparator = ":"

// Save returns a plain-text representation of every layer's cell values.
// Within a layer, values appear in row-major order separated by single
// spaces; layers are joined by ":". Only cell values are saved — grid
// dimensions, gridline configuration, and value appearances are not.
func (g *Grid) Save() string {
	var sb strings.Builder
	for li, layer := range g.layers {
		if li > 0 {
			sb.WriteString(layerSeparator)
		}
		for i, v := range layer {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// Load overwrites layer values from data previously produced by Save.
// Layers are appended as needed to hold every saved layer; if the grid has
// more layers than the data, the extra layers are left untouched. The data
// must come from a grid of equal dimensions: no dimension check is
// performed, and a layer block with too few values or a malformed token is
// reported as an error. Layers parsed before the failing one remain
// written.
func (g *Grid) Load(data string) error {
	blocks := strings.Split(data, layerSeparator)
	for len(blocks) > len(g.layers) {
		g.AddLayer()
	}

	need := g.width * g.height
	for li, block := range blocks {
		tokens := strings.Fields(block)
		if len(tokens) < need {
			return fmt.Errorf("trellis: load layer %d: %d values, want %d: %w",
				li, len(tokens), need, ErrOutOfBounds)
		}
		cells := g.layers[li]
		for i := 0; i < need; i++ {
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				return fmt.Errorf("trellis: load layer %d cell %d: %w", li, i, err)
			}
			cells[i] = v
			g.table.ensure(v)
		}
	}
	g.tryRepaint()
	return nil
}
