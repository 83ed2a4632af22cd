// Package trellis displays a rectangular grid of colored, labeled, and
// optionally image-decorated cells in a desktop window or a terminal.
//
// Each cell holds a single integer value per layer. Values map to an
// appearance — cell color, text glyph, glyph color, image — through the
// grid's [Table], and the stacked layers of a cell are reduced to one paint
// instruction by [Composite]. Trellis is a teaching and prototyping
// utility: boards, mazes, cellular automata, sprite mockups.
//
// # Quick start
//
//	grid, err := trellis.New(10, 10, 50, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	grid.Values().SetColor(1, color.RGBA{B: 0xff, A: 0xff})
//	grid.Set(0, 3, 4, 1)
//
//	win := trellis.NewWindow(grid, "My Grid")
//	win.OnFrame = func() error {
//		if c, ok := win.MousePosition(); ok && win.MouseDown() {
//			return grid.Set(0, c.X, c.Y, 1)
//		}
//		return nil
//	}
//	if err := win.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Layers
//
// Layers stack bottom to top; [Grid.AddLayer] appends one and layers are
// never removed. A cell's rendered appearance takes the topmost non-nil
// color, the topmost glyph not occluded by an opaque color above it, and
// every image from the topmost opaque color upward. Writes to layers that
// do not exist yet are deliberate no-ops, so editing code can target a
// layer scheme before all layers are added; reads of missing layers are
// errors.
//
// # Front ends
//
// [Window] opens a fixed-size desktop window via [Ebitengine] and polls the
// mouse; [Terminal] renders the same grid to a terminal via [tcell] with
// mouse support. Both deliver [ButtonDown] and [ButtonUp] events and expose
// an atomically readable button flag. [Grid.RenderImage] produces the full
// grid as an in-memory raster for export; [Grid.SavePNG] writes it to disk.
//
// # Persistence
//
// [Grid.Save] dumps all layer values as plain text and [Grid.Load] restores
// them, growing the layer stack as needed. Appearance assignments and grid
// geometry are not part of the format.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
package trellis
