package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/layout"
	"quill/pkg/style"
)

func blockRule(attrs style.Attributes) *style.Rule {
	return &style.Rule{Attributes: attrs}
}

func sizedBlock(tag string, w, h float64) *dom.Node {
	n := dom.NewElement(tag)
	n.Rule = blockRule(style.Attributes{
		Width:  style.Len(w),
		Height: style.Len(h),
	})
	return n
}

func run(t *testing.T, root *dom.Node, available geom.Size) *layout.Box {
	t.Helper()
	style.Resolve(root)
	return layout.NewEngine().Layout(root, available)
}

func TestBlock_ExplicitWidthWinsOverContent(t *testing.T) {
	root := dom.NewElement("container")
	root.Rule = blockRule(style.Attributes{Width: style.Len(200)})
	root.AddChild(sizedBlock("child", 500, 40))

	box := run(t, root, geom.Sz(1000, 1000))

	require.Equal(t, 200.0, box.Size.Width)
}

func TestBlock_VerticalStackingOffsets(t *testing.T) {
	root := dom.NewElement("container")
	root.Rule = blockRule(style.Attributes{})
	heights := []float64{10, 20, 30}
	for _, h := range heights {
		root.AddChild(sizedBlock("child", 50, h))
	}

	box := run(t, root, geom.Sz(1000, 1000))

	require.Len(t, box.Children, 3)
	wantY := 0.0
	for i, c := range box.Children {
		require.Equal(t, wantY, c.Position.Y, "child %d offset", i)
		require.Equal(t, 0.0, c.Position.X, "child %d cross offset", i)
		// No overlap: the next leading edge is this trailing edge.
		wantY += c.Box.Size.Height
	}
	require.Equal(t, 60.0, box.Size.Height, "auto height sums children")
	require.Equal(t, 50.0, box.Size.Width, "auto width is widest child")
}

func TestBlock_HorizontalRow(t *testing.T) {
	// A 200-wide horizontal container with 80- and 50-wide children:
	// children at x=0 and x=80, container height = max child height.
	root := dom.NewElement("row")
	root.Rule = blockRule(style.Attributes{
		Direction: style.Opt(style.DirectionHorizontal),
		Width:     style.Len(200),
	})
	root.AddChild(sizedBlock("a", 80, 30))
	root.AddChild(sizedBlock("b", 50, 45))

	box := run(t, root, geom.Sz(1000, 1000))

	require.Equal(t, 200.0, box.Size.Width)
	require.Len(t, box.Children, 2)
	require.Equal(t, 0.0, box.Children[0].Position.X)
	require.Equal(t, 80.0, box.Children[1].Position.X)
	require.Equal(t, 45.0, box.Size.Height)
}

func TestBlock_MinMaxClampAutoOnly(t *testing.T) {
	t.Run("auto clamps up to min", func(t *testing.T) {
		root := dom.NewElement("c")
		root.Rule = blockRule(style.Attributes{MinWidth: style.Len(80)})
		root.AddChild(sizedBlock("child", 50, 10))
		box := run(t, root, geom.Sz(1000, 1000))
		require.Equal(t, 80.0, box.Size.Width)
	})

	t.Run("auto clamps down to max", func(t *testing.T) {
		root := dom.NewElement("c")
		root.Rule = blockRule(style.Attributes{MaxWidth: style.Len(200)})
		root.AddChild(sizedBlock("child", 300, 10))
		box := run(t, root, geom.Sz(1000, 1000))
		require.Equal(t, 200.0, box.Size.Width)
	})

	t.Run("explicit extent is not clamped", func(t *testing.T) {
		root := dom.NewElement("c")
		root.Rule = blockRule(style.Attributes{
			Width:    style.Len(500),
			MaxWidth: style.Len(100),
		})
		box := run(t, root, geom.Sz(1000, 1000))
		require.Equal(t, 500.0, box.Size.Width)
	})
}

func TestBlock_PaddingOffsetsChildren(t *testing.T) {
	root := dom.NewElement("c")
	root.Rule = blockRule(style.Attributes{Padding: style.Opt(geom.Uniform(10))})
	root.AddChild(sizedBlock("child", 30, 20))

	box := run(t, root, geom.Sz(1000, 1000))

	require.Equal(t, geom.Pt(10, 10), box.Children[0].Position)
	require.Equal(t, 50.0, box.Size.Width, "auto width includes padding")
	require.Equal(t, 40.0, box.Size.Height, "auto height includes padding")
}

func TestBlock_MarginsSeparateSiblings(t *testing.T) {
	root := dom.NewElement("c")
	root.Rule = blockRule(style.Attributes{})
	for i := 0; i < 2; i++ {
		child := sizedBlock("child", 40, 10)
		child.Rule = blockRule(style.Attributes{
			Width:  style.Len(40),
			Height: style.Len(10),
			Margin: style.Opt(geom.Uniform(5)),
		})
		root.AddChild(child)
	}

	box := run(t, root, geom.Sz(1000, 1000))

	require.Equal(t, geom.Pt(5, 5), box.Children[0].Position)
	// First child consumes 5+10+5 = 20 along the axis.
	require.Equal(t, geom.Pt(5, 25), box.Children[1].Position)
	require.Equal(t, 40.0, box.Size.Height)
	require.Equal(t, 50.0, box.Size.Width)
}

func TestBlock_MarginTakenFromValues(t *testing.T) {
	root := dom.NewElement("c")
	root.Rule = blockRule(style.Attributes{
		Margin: style.Opt(geom.SideOffsets{Top: 1, Right: 2, Bottom: 3, Left: 4}),
	})

	box := run(t, root, geom.Sz(100, 100))

	require.Equal(t, geom.SideOffsets{Top: 1, Right: 2, Bottom: 3, Left: 4}, box.Margin)
}

func TestBlock_EmptyContainerIsZeroSized(t *testing.T) {
	root := dom.NewElement("c")
	root.Rule = blockRule(style.Attributes{})

	box := run(t, root, geom.Sz(100, 100))

	require.Equal(t, geom.Sz(0, 0), box.Size)
	require.Empty(t, box.Children)
}

func TestLayout_PanicsWithoutCascade(t *testing.T) {
	root := dom.NewElement("c")
	engine := layout.NewEngine()
	require.Panics(t, func() {
		engine.Layout(root, geom.Sz(100, 100))
	})
}
