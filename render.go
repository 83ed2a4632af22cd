package trellis

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// glyphFont is the parsed monospaced bold font used for cell glyphs,
// loaded on first render (no sync.Once — trellis is single-threaded).
var glyphFont *sfnt.Font

// RenderImage renders the full grid to an in-memory raster: the gridline
// color as background, then each cell's composited color, images (stretched
// to the cell box), and centered glyph. The raster is
// W*(cellSize+gridlineWeight)+gridlineWeight pixels wide and the analogous
// height, with each cell at
//
//	cellPixel = index*(cellSize+gridlineWeight) + gridlineWeight.
//
// Callers may encode the result in any raster format; see SavePNG.
func (g *Grid) RenderImage() *image.NRGBA {
	step := g.cellSize + g.gridlineWeight
	img := image.NewNRGBA(image.Rect(0, 0,
		g.width*step+g.gridlineWeight,
		g.height*step+g.gridlineWeight))

	draw.Draw(img, img.Bounds(), image.NewUniform(g.gridlineColor), image.Point{}, draw.Src)

	stack := make([]int, 0, len(g.layers))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			stack = g.stackAt(x, y, stack[:0])
			p := Composite(stack, g.table)

			origin := image.Pt(x*step+g.gridlineWeight, y*step+g.gridlineWeight)
			box := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(g.cellSize, g.cellSize))}

			draw.Draw(img, box, image.NewUniform(p.Color), image.Point{}, draw.Src)

			for i, im := range p.Images {
				if p.Glyph != 0 && i == p.GlyphBelow {
					g.drawGlyph(img, box, p)
				}
				draw.ApproxBiLinear.Scale(img, box, im, im.Bounds(), draw.Over, nil)
			}
			if p.Glyph != 0 && p.GlyphBelow == len(p.Images) {
				g.drawGlyph(img, box, p)
			}
		}
	}
	return img
}

// SavePNG renders the grid and writes it to path as a PNG file.
func (g *Grid) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trellis: create %s: %w", path, err)
	}
	if err := png.Encode(f, g.RenderImage()); err != nil {
		f.Close()
		return fmt.Errorf("trellis: encode %s: %w", path, err)
	}
	return f.Close()
}

// glyphFace returns a monospaced bold face sized so one glyph fills the
// cell, growing the point size until the line height reaches the cell size.
// The face is cached until the cell size changes.
func (g *Grid) glyphFace() (font.Face, error) {
	if g.face != nil && g.faceSize == g.cellSize {
		return g.face, nil
	}
	if glyphFont == nil {
		f, err := opentype.Parse(gomonobold.TTF)
		if err != nil {
			return nil, fmt.Errorf("trellis: parse glyph font: %w", err)
		}
		glyphFont = f
	}

	var face font.Face
	for size := 1; ; size++ {
		f, err := opentype.NewFace(glyphFont, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("trellis: size glyph font: %w", err)
		}
		face = f
		if face.Metrics().Height.Ceil() >= g.cellSize {
			break
		}
	}
	g.face = face
	g.faceSize = g.cellSize
	return face, nil
}

// drawGlyph draws the paint's glyph centered in the cell box.
func (g *Grid) drawGlyph(img *image.NRGBA, box image.Rectangle, p CellPaint) {
	face, err := g.glyphFace()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[trellis] glyph: %v\n", err)
		return
	}

	s := string(p.Glyph)
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(p.GlyphColor),
		Face: face,
		Dot: fixed.P(
			box.Min.X+(g.cellSize-w)/2,
			box.Min.Y+(g.cellSize-h)/2+m.Ascent.Ceil(),
		),
	}
	d.DrawString(s)
}
