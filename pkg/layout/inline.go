package layout

import (
	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/style"
	"quill/pkg/text"
)

// Inline layout: flow text and inline children into greedily wrapped
// lines. The unit of packing is a shaped word or a nested child box;
// a unit is never split, so a unit wider than the available width
// gets a line of its own.

// inlineUnit is one unbreakable packing unit: either a shaped word or
// an opaque child box.
type inlineUnit struct {
	word   string
	glyphs []text.Glyph
	width  float64

	box *Box

	// spaceBefore records that the source had whitespace between this
	// unit and the previous one. Ignored at the start of a line.
	spaceBefore bool
}

func (e *Engine) layoutInline(el *dom.Node, res *style.Resolved, available geom.Size) (*Box, uint64) {
	h := newHasher()
	h.str("inline")
	h.resolved(res)
	h.size(available)
	units := e.collectUnits(el.Children, res, available, h)
	box := e.packLines(el, res, units, available)
	return e.retain(el, h.sum(), box)
}

// layoutTextChild flows a raw text leaf found directly inside a block
// container as an anonymous inline run, styled by the containing
// element. The box is cached against the text leaf itself.
func (e *Engine) layoutTextChild(owner *dom.Node, res *style.Resolved, leaf *dom.Node, available geom.Size) (*Box, uint64) {
	h := newHasher()
	h.str("text")
	h.f64(res.TextSize)
	h.color(res.TextColor)
	h.size(available)
	units := e.collectUnits([]*dom.Node{leaf}, res, available, h)
	box := e.packLines(owner, res, units, available)
	return e.retain(leaf, h.sum(), box)
}

// collectUnits flattens the given children into packing units in
// document order: text leaves become shaped words, element children
// are recursively laid out into opaque boxes. Everything that feeds a
// unit is folded into h.
func (e *Engine) collectUnits(children []*dom.Node, res *style.Resolved, available geom.Size, h *hasher) []inlineUnit {
	face := e.fonts.Primary()
	var units []inlineUnit
	pending := false
	for _, child := range children {
		switch child.Type {
		case dom.TextNode:
			s := child.Text
			h.str(s)
			if hasBoundarySpace(s, 0) {
				pending = true
			}
			for i, w := range text.Words(s) {
				if i > 0 {
					pending = true
				}
				glyphs, width := face.ShapeWord(w, res.TextSize)
				units = append(units, inlineUnit{
					word:        w,
					glyphs:      glyphs,
					width:       width,
					spaceBefore: pending,
				})
				pending = false
			}
			if hasBoundarySpace(s, len(s)-1) {
				pending = true
			}
		case dom.ElementNode:
			cb, ch := e.layoutNode(child, available)
			h.u64(ch)
			units = append(units, inlineUnit{box: cb, spaceBefore: pending})
			pending = false
		}
	}
	return units
}

func hasBoundarySpace(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	return s[i] == ' ' || s[i] == '\t' || s[i] == '\n'
}

// packLines greedily fills lines and materializes one line box per
// line under the owner's box. Text on a line becomes fragments whose
// glyph offsets are relative to the line box, with Y on the baseline;
// child boxes become positioned children of the line box.
func (e *Engine) packLines(owner *dom.Node, res *style.Resolved, units []inlineUnit, available geom.Size) *Box {
	if len(units) == 0 {
		// Empty content still yields a (zero-size) text run.
		return &Box{Element: owner, Text: &TextRun{Element: owner, Size: res.TextSize}}
	}

	face := e.fonts.Primary()
	metrics := face.Metrics(res.TextSize)
	space := face.SpaceAdvance(res.TextSize)

	type placedUnit struct {
		u *inlineUnit
		x float64
	}
	var lines [][]placedUnit
	var cur []placedUnit
	pen := 0.0
	for i := range units {
		u := &units[i]
		lead := 0.0
		if len(cur) > 0 && u.spaceBefore {
			lead = space
		}
		w := u.width
		if u.box != nil {
			w = u.box.Size.Width + u.box.Margin.Horizontal()
		}
		// The first unit of a line is always placed, however wide.
		if len(cur) > 0 && pen+lead+w > available.Width {
			lines = append(lines, cur)
			cur = nil
			pen = 0
			lead = 0
		}
		cur = append(cur, placedUnit{u: u, x: pen + lead})
		pen += lead + w
	}
	lines = append(lines, cur)

	var children []PositionedChild
	y := 0.0
	maxWidth := 0.0
	for _, line := range lines {
		lineHeight := metrics.LineHeight
		lineWidth := 0.0
		var kids []PositionedChild
		var frags []TextFragment
		open := false // an in-progress fragment at the end of frags
		for _, p := range line {
			if p.u.box != nil {
				b := p.u.box
				kids = append(kids, PositionedChild{
					Position: geom.Pt(p.x+b.Margin.Left, b.Margin.Top),
					Box:      b,
				})
				lineHeight = max(lineHeight, b.Size.Height+b.Margin.Vertical())
				lineWidth = max(lineWidth, p.x+b.Size.Width+b.Margin.Horizontal())
				open = false // a box interrupts the text stretch
				continue
			}
			if !open {
				frags = append(frags, TextFragment{Face: face})
				open = true
			}
			f := &frags[len(frags)-1]
			if f.Text != "" {
				f.Text += " "
			}
			f.Text += p.u.word
			for _, g := range p.u.glyphs {
				f.Glyphs = append(f.Glyphs, text.Glyph{
					Index:  g.Index,
					Offset: geom.Pt(p.x+g.Offset.X, metrics.Ascent),
				})
			}
			lineWidth = max(lineWidth, p.x+p.u.width)
		}

		lineBox := &Box{
			Size:     geom.Sz(lineWidth, lineHeight),
			Element:  owner,
			Children: kids,
		}
		if len(frags) > 0 {
			lineBox.Text = &TextRun{Element: owner, Size: res.TextSize, Fragments: frags}
		}
		children = append(children, PositionedChild{Position: geom.Pt(0, y), Box: lineBox})
		y += lineHeight
		maxWidth = max(maxWidth, lineWidth)
	}

	return &Box{
		Size:     geom.Sz(maxWidth, y),
		Element:  owner,
		Children: children,
	}
}
