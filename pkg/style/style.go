package style

import "quill/pkg/geom"

// Direction specifies which axis a block container stacks its
// children along.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

func (d Direction) String() string {
	if d == DirectionHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Length is an optional logical length. The zero value means "not
// set" (auto).
type Length struct {
	Value float64
	Set   bool
}

// Len returns a set Length with the given value.
func Len(v float64) Length {
	return Length{Value: v, Set: true}
}

// Or returns the length's value if set, otherwise fallback.
func (l Length) Or(fallback float64) float64 {
	if l.Set {
		return l.Value
	}
	return fallback
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Black returns opaque black.
func Black() Color { return Color{A: 0xff} }

// Transparent returns the fully transparent color.
func Transparent() Color { return Color{} }

// DisplayKind discriminates the two layout modes.
type DisplayKind int

const (
	DisplayBlock DisplayKind = iota
	DisplayInline
)

func (k DisplayKind) String() string {
	if k == DisplayInline {
		return "inline"
	}
	return "block"
}

// InlineValues carries the per-element inputs of inline layout.
// Inline elements take their text styling from the inherited
// attributes, so there is nothing here yet.
type InlineValues struct{}

// BlockValues carries the per-element inputs of block layout.
// Width/height left unset resolve from the children ("auto"); the
// min/max bounds clamp only auto-resolved extents.
type BlockValues struct {
	Direction Direction
	Margin    geom.SideOffsets
	Padding   geom.SideOffsets
	Width     Length
	Height    Length
	MinWidth  Length
	MinHeight Length
	MaxWidth  Length
	MaxHeight Length
}

// Display is a tagged union of the two layout modes. Only the values
// selected by Kind are meaningful.
type Display struct {
	Kind   DisplayKind
	Block  BlockValues
	Inline InlineValues
}

// BlockDisplay returns a block display with the given values.
func BlockDisplay(v BlockValues) Display {
	return Display{Kind: DisplayBlock, Block: v}
}

// InlineDisplay returns an inline display.
func InlineDisplay() Display {
	return Display{Kind: DisplayInline}
}

// Resolved is the complete set of visual attributes for one element,
// produced by the cascade. It is a plain comparable value: the whole
// struct is overwritten on every cascade run, never merged in place.
type Resolved struct {
	Display         Display
	TextSize        float64
	TextColor       Color
	BackgroundColor Color
	BorderRadius    float64
	BorderThickness geom.SideOffsets
	BorderColor     Color
}

// DefaultResolved returns the starting point of the cascade for every
// element: a vertical block with no explicit sizing, 16-unit black
// text, and transparent background and border.
func DefaultResolved() Resolved {
	return Resolved{
		Display:   BlockDisplay(BlockValues{}),
		TextSize:  16,
		TextColor: Black(),
	}
}
