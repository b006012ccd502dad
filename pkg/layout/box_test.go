package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quill/pkg/geom"
	"quill/pkg/layout"
	"quill/pkg/style"
)

func TestBox_EqualComparesByValue(t *testing.T) {
	root := retainFixture()
	style.Resolve(root)
	available := geom.Sz(200, 400)

	a := layout.NewEngine(layout.WithoutRetention()).Layout(root, available)
	b := layout.NewEngine(layout.WithoutRetention()).Layout(root, available)

	require.NotSame(t, a, b)
	require.True(t, a.Equal(b), "independent passes over the same inputs agree")

	b.Children[2].Box.Size.Width++
	require.False(t, a.Equal(b), "a geometry change anywhere breaks equality")
}

func TestBox_EqualDistinguishesText(t *testing.T) {
	first := run(t, inlineElement("same words"), geom.Sz(1000, 100))
	same := run(t, inlineElement("same words"), geom.Sz(1000, 100))
	other := run(t, inlineElement("other words"), geom.Sz(1000, 100))

	// The runs belong to different owner elements, so whole-tree
	// equality fails either way; compare the text runs themselves.
	require.Len(t, first.Children, 1)
	a := first.Children[0].Box.Text
	b := same.Children[0].Box.Text
	c := other.Children[0].Box.Text
	require.Equal(t, a.Fragments, b.Fragments)
	require.NotEqual(t, a.Fragments, c.Fragments)
}

func TestBox_DumpListsEveryBoxWithAbsolutePosition(t *testing.T) {
	root := retainFixture()
	style.Resolve(root)
	box := layout.NewEngine().Layout(root, geom.Sz(200, 400))

	dump := box.Dump()
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")

	require.True(t, strings.HasPrefix(lines[0], "app "), "root on the first line: %q", lines[0])
	for i, l := range lines[1:] {
		require.True(t, strings.HasPrefix(l, "  "), "line %d not indented: %q", i+1, l)
	}
	// The sized children appear with the padding folded into their
	// absolute positions.
	require.Contains(t, dump, "a 60x20 at 8,")
	require.Contains(t, dump, "b 30x40 at 8,")
	require.Contains(t, dump, `"some wrapping text`)
}
