package main

import (
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/require"

	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/layout"
	"quill/pkg/style"
)

// A block with raw text produces an anonymous flow box that re-carries
// the block's element. The painter must fill the translucent
// background exactly once: a repaint under the flow box would composite
// the color twice and darken the pixels there.
func TestPaintBox_TextChildDoesNotRepaintBackground(t *testing.T) {
	root := dom.NewElement("card")
	root.Rule = &style.Rule{
		Attributes: style.Attributes{
			Width:           style.Len(200),
			Height:          style.Len(100),
			BackgroundColor: style.Opt(style.Color{B: 0xff, A: 0x80}),
			TextColor:       style.Opt(style.Transparent()),
		},
	}
	root.AppendText("hi")
	style.Resolve(root)
	box := layout.NewEngine().Layout(root, geom.Sz(200, 100))

	dc := gg.NewContext(200, 100)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	require.NoError(t, paintBox(dc, box, geom.Point{}, nil))

	img := dc.Image()
	underText := img.At(4, 8)
	plain := img.At(190, 90)
	require.Equal(t, plain, underText,
		"background under the text flow box painted more than once")
}

func TestPaintBox_SampleTreePaints(t *testing.T) {
	tree := sampleTree()
	style.Resolve(tree)
	box := layout.NewEngine().Layout(tree, geom.Sz(640, 480))

	dc := gg.NewContext(640, 480)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	require.NoError(t, paintBox(dc, box, geom.Point{}, nil))
}
