package trellis

import (
	"fmt"
	"image"
	"image/color"
)

// Appearance is the color/glyph/image bundle attached to one cell value.
//
// A nil Color means the value paints nothing: cells holding it are
// transparent on layers above 0 and fall back to DefaultCellColor on
// layer 0. A zero Glyph means no text. A nil Image means no image; a
// non-nil one is stretched to the cell's pixel box at render time.
type Appearance struct {
	Color      color.Color
	Glyph      rune
	GlyphColor color.Color
	Image      image.Image
}

// defaultAppearance is the entry created the first time a value is written
// or configured: opaque white, black glyph color, no glyph, no image.
func defaultAppearance() *Appearance {
	return &Appearance{Color: DefaultCellColor, GlyphColor: DefaultGlyphColor}
}

// Table maps integer cell values to their Appearance. Entries are created
// lazily the first time a value is written into a layer or configured
// through a setter, and are never deleted. A Table is owned by one Grid and
// shared with the compositor; it lives as long as the grid.
type Table struct {
	entries  map[int]*Appearance
	onChange func() // repaint hook, set by the owning grid
}

// newTable creates an empty table. onChange is invoked after every
// appearance mutation; nil disables the hook.
func newTable(onChange func()) *Table {
	return &Table{entries: make(map[int]*Appearance), onChange: onChange}
}

// seedZero registers value 0 with a nil (transparent) color so that
// untouched cells on upper layers do not cover the layers below them.
func (t *Table) seedZero() {
	t.entries[0] = &Appearance{GlyphColor: DefaultGlyphColor}
}

// ensure creates the entry for value with defaults if it does not exist,
// and returns it.
func (t *Table) ensure(value int) *Appearance {
	a, ok := t.entries[value]
	if !ok {
		a = defaultAppearance()
		t.entries[value] = a
	}
	return a
}

// get returns a copy of the entry for value, or the default appearance if
// the value has never been registered. It never creates an entry, so it is
// safe to call from the read-only compositor path.
func (t *Table) get(value int) Appearance {
	if a, ok := t.entries[value]; ok {
		return *a
	}
	return *defaultAppearance()
}

// Lookup returns a copy of the entry for value and whether it exists.
func (t *Table) Lookup(value int) (Appearance, bool) {
	a, ok := t.entries[value]
	if !ok {
		return Appearance{}, false
	}
	return *a, true
}

// Len returns the number of registered values.
func (t *Table) Len() int { return len(t.entries) }

// changed runs the mutation hook.
func (t *Table) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}

// SetColor assigns a cell color to a value. A nil color is allowed and
// means transparent: cells holding the value show whatever is below them,
// or DefaultCellColor on layer 0.
func (t *Table) SetColor(value int, c color.Color) {
	t.ensure(value).Color = c
	t.changed()
}

// SetGlyph assigns a text glyph to a value. A zero rune clears the glyph.
func (t *Table) SetGlyph(value int, r rune) {
	t.ensure(value).Glyph = r
	t.changed()
}

// SetGlyphColor assigns a glyph color to a value. The color must not be
// nil; glyph color has no transparent form.
func (t *Table) SetGlyphColor(value int, c color.Color) error {
	if c == nil {
		return fmt.Errorf("trellis: glyph color: %w", ErrNilInput)
	}
	t.ensure(value).GlyphColor = c
	t.changed()
	return nil
}

// SetImage assigns an image to a value. The image is stretched to the cell
// box when drawn. A nil image clears the assignment.
func (t *Table) SetImage(value int, img image.Image) {
	t.ensure(value).Image = img
	t.changed()
}
