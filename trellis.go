package trellis

import "image/color"

// Cell is a grid coordinate in cell units. The origin is the top-left cell,
// with X increasing rightward and Y increasing downward.
type Cell struct {
	X, Y int
}

// Default appearance colors. DefaultCellColor is substituted on layer 0 when
// a value's color is nil; higher layers treat nil as fully transparent.
var (
	DefaultCellColor     = color.Color(color.White)
	DefaultGlyphColor    = color.Color(color.Black)
	DefaultGridlineColor = color.Color(color.Black)
)

// EventKind identifies a pointer notification delivered by a front end.
type EventKind uint8

const (
	ButtonDown EventKind = iota // fires when a pointer button is pressed
	ButtonUp                    // fires when a pointer button is released
)

// ButtonEvent carries one pointer notification. Cell is only meaningful when
// OnCell is true; a press on a gridline band or outside the grid reports
// OnCell false.
type ButtonEvent struct {
	Kind   EventKind
	Cell   Cell
	OnCell bool
}
