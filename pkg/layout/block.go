package layout

import (
	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/style"
)

// Block layout: stack the children along the configured axis, then
// resolve any auto extent from what they consumed.

func (e *Engine) layoutBlock(el *dom.Node, res *style.Resolved, available geom.Size) (*Box, uint64) {
	blk := &res.Display.Block

	h := newHasher()
	h.str("block")
	h.resolved(res)
	h.size(available)

	// Content budget for the children: the explicit extent when set,
	// otherwise what the parent handed down, minus our padding.
	budget := geom.Size{
		Width:  blk.Width.Or(available.Width),
		Height: blk.Height.Or(available.Height),
	}.Inset(blk.Padding)

	horizontal := blk.Direction == style.DirectionHorizontal

	var children []PositionedChild
	main := 0.0  // running offset along the layout direction
	cross := 0.0 // widest outer extent across it
	for _, child := range el.Children {
		remaining := budget
		if horizontal {
			remaining.Width = max(0, budget.Width-main)
		} else {
			remaining.Height = max(0, budget.Height-main)
		}

		var cb *Box
		var ch uint64
		switch child.Type {
		case dom.ElementNode:
			cb, ch = e.layoutNode(child, remaining)
		case dom.TextNode:
			// Raw text directly inside a block flows as an anonymous
			// inline run styled by the containing element.
			cb, ch = e.layoutTextChild(el, res, child, remaining)
		}
		if cb == nil {
			continue
		}
		h.u64(ch)

		// The next child's leading edge is the previous child's
		// trailing edge; margins are part of the outer extent.
		m := cb.Margin
		var pos geom.Point
		if horizontal {
			pos = geom.Pt(blk.Padding.Left+main+m.Left, blk.Padding.Top+m.Top)
			main += m.Left + cb.Size.Width + m.Right
			cross = max(cross, cb.Size.Height+m.Vertical())
		} else {
			pos = geom.Pt(blk.Padding.Left+m.Left, blk.Padding.Top+main+m.Top)
			main += m.Top + cb.Size.Height + m.Bottom
			cross = max(cross, cb.Size.Width+m.Horizontal())
		}
		children = append(children, PositionedChild{Position: pos, Box: cb})
	}

	var width, height float64
	if horizontal {
		width = main + blk.Padding.Horizontal()
		height = cross + blk.Padding.Vertical()
	} else {
		width = cross + blk.Padding.Horizontal()
		height = main + blk.Padding.Vertical()
	}
	// An explicit extent wins outright; min/max clamp only what was
	// resolved from the content.
	if blk.Width.Set {
		width = blk.Width.Value
	} else {
		width = clampLength(width, blk.MinWidth, blk.MaxWidth)
	}
	if blk.Height.Set {
		height = blk.Height.Value
	} else {
		height = clampLength(height, blk.MinHeight, blk.MaxHeight)
	}

	box := &Box{
		Size:     geom.Sz(width, height),
		Margin:   blk.Margin,
		Element:  el,
		Children: children,
	}
	return e.retain(el, h.sum(), box)
}

func clampLength(v float64, lo, hi style.Length) float64 {
	if lo.Set && v < lo.Value {
		v = lo.Value
	}
	if hi.Set && v > hi.Value {
		v = hi.Value
	}
	return v
}
