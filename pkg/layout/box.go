package layout

import (
	"fmt"
	"strings"

	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/text"
)

// The layout output tree. Boxes are immutable once returned from a
// pass: a later pass builds new boxes or re-returns previous ones, it
// never edits a published box in place.

// TextFragment is one uninterrupted stretch of shaped text on a line.
// Glyph offsets are relative to the owning line box, with Y on the
// baseline.
type TextFragment struct {
	Face   *text.Face
	Text   string
	Glyphs []text.Glyph
}

// TextRun carries the text content of a line box: the element whose
// attributes style it, the text size it was shaped at, and the
// fragments in line order. Fragments split where a child box
// interrupts the text.
type TextRun struct {
	Element   *dom.Node
	Size      float64
	Fragments []TextFragment
}

// PositionedChild places a child box relative to its parent box's
// origin.
type PositionedChild struct {
	Position geom.Point
	Box      *Box
}

// Box is one node of the layout output: an extent, the element it was
// produced for, and positioned children. A line box additionally
// carries a text run. Margin is reported alongside the size so the
// parent can account for it; it is not part of Size.
type Box struct {
	Size     geom.Size
	Margin   geom.SideOffsets
	Element  *dom.Node
	Text     *TextRun
	Children []PositionedChild
}

// Equal reports whether two box trees describe the same layout.
// Geometry and text compare by value; the element tree and font faces
// they reference compare by identity.
func (b *Box) Equal(o *Box) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil {
		return false
	}
	if b.Size != o.Size || b.Margin != o.Margin || b.Element != o.Element {
		return false
	}
	if !b.Text.equal(o.Text) {
		return false
	}
	if len(b.Children) != len(o.Children) {
		return false
	}
	for i := range b.Children {
		p, q := &b.Children[i], &o.Children[i]
		if p.Position != q.Position || !p.Box.Equal(q.Box) {
			return false
		}
	}
	return true
}

func (r *TextRun) equal(o *TextRun) bool {
	if r == o {
		return true
	}
	if r == nil || o == nil {
		return false
	}
	if r.Element != o.Element || r.Size != o.Size || len(r.Fragments) != len(o.Fragments) {
		return false
	}
	for i := range r.Fragments {
		f, g := &r.Fragments[i], &o.Fragments[i]
		if f.Face != g.Face || f.Text != g.Text || len(f.Glyphs) != len(g.Glyphs) {
			return false
		}
		for j := range f.Glyphs {
			if f.Glyphs[j] != g.Glyphs[j] {
				return false
			}
		}
	}
	return true
}

// Dump renders the box tree as an indented listing, one box per line
// with its absolute position, for debugging and golden comparisons.
func (b *Box) Dump() string {
	var sb strings.Builder
	b.dump(&sb, 0, geom.Point{})
	return sb.String()
}

func (b *Box) dump(sb *strings.Builder, depth int, at geom.Point) {
	name := "box"
	if b.Element != nil && b.Element.TagName != "" {
		name = b.Element.TagName
	}
	fmt.Fprintf(sb, "%s%s %gx%g at %g,%g",
		strings.Repeat("  ", depth), name, b.Size.Width, b.Size.Height, at.X, at.Y)
	if b.Text != nil {
		parts := make([]string, 0, len(b.Text.Fragments))
		for _, f := range b.Text.Fragments {
			parts = append(parts, f.Text)
		}
		fmt.Fprintf(sb, " %q", strings.Join(parts, " "))
	}
	sb.WriteByte('\n')
	for _, c := range b.Children {
		c.Box.dump(sb, depth+1, at.Add(c.Position))
	}
}
