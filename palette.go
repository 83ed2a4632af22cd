package trellis

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SpreadColors assigns a perceptually distinct color to each of the given
// values in the table, creating entries as needed. Existing color
// assignments for these values are overwritten; other appearance fields are
// untouched. Useful when a demo needs N distinguishable values without
// hand-picking a palette.
func SpreadColors(t *Table, values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("trellis: spread colors: no values: %w", ErrInvalidArgument)
	}
	colors, err := colorful.HappyPalette(len(values))
	if err != nil {
		return fmt.Errorf("trellis: spread colors: %w", err)
	}
	for i, v := range values {
		t.SetColor(v, colors[i])
	}
	return nil
}
