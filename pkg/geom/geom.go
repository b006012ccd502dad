package geom

// Resolution-independent logical units. The embedding application
// decides what one unit maps to on the output device.

// Point is a 2D position in logical units.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in logical units.
type Size struct {
	Width  float64
	Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Inset shrinks the size by the given offsets on all four sides,
// clamping at zero.
func (s Size) Inset(o SideOffsets) Size {
	return Size{
		Width:  max(0, s.Width-o.Horizontal()),
		Height: max(0, s.Height-o.Vertical()),
	}
}

// SideOffsets holds one value per box edge (top, right, bottom, left).
type SideOffsets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform returns offsets with the same value on every edge.
func Uniform(v float64) SideOffsets {
	return SideOffsets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right offsets.
func (o SideOffsets) Horizontal() float64 {
	return o.Left + o.Right
}

// Vertical returns the sum of the top and bottom offsets.
func (o SideOffsets) Vertical() float64 {
	return o.Top + o.Bottom
}

// IsZero reports whether all four offsets are zero.
func (o SideOffsets) IsZero() bool {
	return o == SideOffsets{}
}
