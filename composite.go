package trellis

import (
	"image"
	"image/color"
)

// CellPaint is the flattened paint instruction for one cell: the single
// background color, the surviving glyph (0 if none), and the ordered image
// stack a renderer should draw over the color.
//
// Images are ordered bottom to top. GlyphBelow is the number of leading
// images that paint under the glyph: a renderer draws Images[:GlyphBelow],
// then the glyph, then Images[GlyphBelow:]. It is meaningless when Glyph
// is 0.
type CellPaint struct {
	Color      color.Color
	Glyph      rune
	GlyphColor color.Color
	Images     []image.Image
	GlyphBelow int
}

// Composite reduces the stacked layer values of one cell to a single
// CellPaint. values holds the cell's value on each layer, bottom (layer 0)
// to top; table supplies each value's appearance. Values without a table
// entry read as the default appearance; no entry is created.
//
// The reduction rules:
//
//   - The color is the topmost non-nil appearance color. Layer 0 alone
//     substitutes DefaultCellColor for nil, since nothing exists below it.
//   - The glyph is the topmost non-zero glyph, unless a non-nil color sits
//     on a higher layer, which occludes it. A layer carrying both a color
//     and a glyph shows its own glyph.
//   - The image stack collects every non-nil image from the topmost opaque
//     color's layer upward; images below that color are fully occluded.
//     The glyph paints directly above the image on its own layer.
func Composite(values []int, table *Table) CellPaint {
	p := CellPaint{Color: DefaultCellColor, GlyphColor: DefaultGlyphColor}
	if len(values) == 0 {
		return p
	}

	base := table.get(values[0])
	if base.Color != nil {
		p.Color = base.Color
	}
	p.Glyph = base.Glyph
	p.GlyphColor = base.GlyphColor

	// topOpaque is the highest layer with a non-nil color, topText the
	// highest layer with a non-zero glyph.
	topOpaque, topText := 0, 0
	for i := 1; i < len(values); i++ {
		a := table.get(values[i])
		if a.Color != nil {
			p.Color = a.Color
			p.Glyph = 0
			topOpaque = i
		}
		if a.Glyph != 0 {
			p.Glyph = a.Glyph
			p.GlyphColor = a.GlyphColor
			topText = i
		}
	}

	// Collect images from the topmost opaque color upward. The glyph sits
	// above the image found on its own layer and below any image above it.
	for i := topOpaque; i < len(values); i++ {
		if a := table.get(values[i]); a.Image != nil {
			p.Images = append(p.Images, a.Image)
		}
		if i == topText {
			p.GlyphBelow = len(p.Images)
		}
	}
	return p
}
