package trellis

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// --- Raster geometry ---

func TestRenderImageSize(t *testing.T) {
	tests := []struct {
		name          string
		w, h, cs, glw int
		wantW, wantH  int
	}{
		{"10x10 demo geometry", 10, 10, 50, 5, 555, 555},
		{"no gridlines", 4, 2, 10, 0, 40, 20},
		{"single cell", 1, 1, 7, 3, 13, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := New(tt.w, tt.h, tt.cs, tt.glw)
			b := g.RenderImage().Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("raster = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

// --- Colors ---

func nrgba(c color.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestRenderGridlinesAndCells(t *testing.T) {
	g, _ := New(2, 2, 10, 2)
	g.Values().SetColor(1, red)
	g.Set(0, 0, 0, 1)

	img := g.RenderImage()

	// Corner pixel is gridline (default black).
	if got := img.NRGBAAt(0, 0); got != nrgba(DefaultGridlineColor) {
		t.Errorf("gridline pixel = %v, want %v", got, nrgba(DefaultGridlineColor))
	}
	// Center of cell (0,0): red. Cell box starts at 2, size 10.
	if got := img.NRGBAAt(7, 7); got != nrgba(red) {
		t.Errorf("cell (0,0) center = %v, want red", got)
	}
	// Center of cell (1,1): value 0, nil color on layer 0 → default white.
	if got := img.NRGBAAt(19, 19); got != nrgba(DefaultCellColor) {
		t.Errorf("cell (1,1) center = %v, want default cell color", got)
	}
}

func TestRenderGridlineColorConfigurable(t *testing.T) {
	g, _ := New(1, 1, 10, 2)
	g.SetGridlineColor(blue)
	if got := g.RenderImage().NRGBAAt(0, 0); got != nrgba(blue) {
		t.Errorf("gridline pixel = %v, want blue", got)
	}
}

func TestRenderLayerOcclusion(t *testing.T) {
	g, _ := New(1, 1, 10, 0)
	g.Values().SetColor(1, red)
	g.Values().SetGlyph(1, 'X')
	g.Values().SetColor(2, green)
	g.AddLayer()
	g.Set(0, 0, 0, 1)
	g.Set(1, 0, 0, 2)

	img := g.RenderImage()
	// Layer 1's opaque green covers both layer 0's red and its glyph,
	// so every cell pixel is exactly green.
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got := img.NRGBAAt(x, y); got != nrgba(green) {
				t.Fatalf("pixel (%d, %d) = %v, want green everywhere", x, y, got)
			}
		}
	}
}

func TestRenderImageStretchedOverCell(t *testing.T) {
	tile := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(tile.Pix); i += 4 {
		tile.Pix[i+2] = 0xff // opaque blue
		tile.Pix[i+3] = 0xff
	}

	g, _ := New(1, 1, 10, 0)
	g.Values().SetColor(1, red)
	g.Values().SetImage(1, tile)
	g.Set(0, 0, 0, 1)

	if got := g.RenderImage().NRGBAAt(5, 5); got != nrgba(blue) {
		t.Errorf("cell center = %v, want the stretched image's blue", got)
	}
}

func TestRenderGlyphMarksCell(t *testing.T) {
	g, _ := New(1, 1, 20, 0)
	plain := g.RenderImage()

	g.Values().SetGlyph(0, 'X')
	marked := g.RenderImage()

	same := true
	for i := range plain.Pix {
		if plain.Pix[i] != marked.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("rendering a glyph left the raster unchanged")
	}
}

// --- PNG export ---

func TestSavePNG(t *testing.T) {
	g, _ := New(2, 2, 8, 1)
	path := filepath.Join(t.TempDir(), "grid.png")
	if err := g.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode written PNG: %v", err)
	}
	want := g.RenderImage().Bounds()
	if img.Bounds() != want {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), want)
	}
}
