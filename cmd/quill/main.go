// Command quill runs the style/layout pipeline over a built-in sample
// tree and dumps the resulting box tree. With -o it also paints the
// tree into a PNG, standing in for the real renderer.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/layout"
	"quill/pkg/style"
)

func main() {
	var (
		width   float64
		height  float64
		out     string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "quill",
		Short: "Resolve and lay out the sample element tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr)
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			tree := sampleTree()
			style.Resolve(tree)

			engine := layout.NewEngine(layout.WithLogger(logger))
			box := engine.Layout(tree, geom.Sz(width, height))
			fmt.Print(box.Dump())

			stats := engine.Stats()
			logger.Info("done", "boxes", stats.Boxes, "reused", stats.Reused)

			if out != "" {
				if err := paint(box, width, height, out); err != nil {
					return err
				}
				logger.Info("painted", "path", out)
			}
			return nil
		},
	}
	root.Flags().Float64VarP(&width, "width", "w", 640, "content width in logical units")
	root.Flags().Float64VarP(&height, "height", "H", 480, "content height in logical units")
	root.Flags().StringVarP(&out, "out", "o", "", "paint the box tree into this PNG file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	appRule = &style.Rule{
		Name: "app",
		Attributes: style.Attributes{
			Padding:         style.Opt(geom.Uniform(16)),
			BackgroundColor: style.Opt(style.RGB(0xf5, 0xf2, 0xea)),
		},
	}

	titleRule = &style.Rule{
		Name: "title",
		Attributes: style.Attributes{
			Display:   style.Opt(style.InlineDisplay()),
			TextSize:  style.Len(28),
			TextColor: style.Opt(style.RGB(0x24, 0x24, 0x60)),
		},
	}

	bodyRule = &style.Rule{
		Name: "body",
		Attributes: style.Attributes{
			Display: style.Opt(style.InlineDisplay()),
		},
	}

	rowRule = &style.Rule{
		Name: "row",
		Attributes: style.Attributes{
			Direction: style.Opt(style.DirectionHorizontal),
			Margin:    style.Opt(geom.SideOffsets{Top: 12}),
		},
	}

	tileRule = &style.Rule{
		Name: "tile",
		Attributes: style.Attributes{
			Width:           style.Len(120),
			Height:          style.Len(60),
			Margin:          style.Opt(geom.Uniform(4)),
			BackgroundColor: style.Opt(style.RGB(0xb9, 0xd2, 0xe8)),
			BorderRadius:    style.Len(6),
		},
		SubRules: []style.SubRule{
			{
				Selector: style.AttrSelector{Name: "accent"},
				Attributes: style.Attributes{
					BackgroundColor: style.Opt(style.RGB(0xe8, 0xb9, 0xc8)),
					BorderThickness: style.Opt(geom.Uniform(2)),
					BorderColor:     style.Opt(style.RGB(0x60, 0x24, 0x3c)),
				},
			},
		},
	}
)

func sampleTree() *dom.Node {
	app := dom.NewElement("app")
	app.Rule = appRule

	title := app.AddChild(dom.NewElement("title"))
	title.Rule = titleRule
	title.AppendText("quill layout demo")

	body := app.AddChild(dom.NewElement("p"))
	body.Rule = bodyRule
	body.AppendText("A styled element tree resolves top-down, then flows " +
		"into a box tree: blocks stack along their axis and text wraps " +
		"greedily into lines.")

	row := app.AddChild(dom.NewElement("row"))
	row.Rule = rowRule
	for i := 0; i < 3; i++ {
		tile := row.AddChild(dom.NewElement("tile"))
		tile.Rule = tileRule
		if i == 1 {
			tile.SetAttribute("accent", "")
		}
	}
	return app
}

// paint rasterizes the box tree with gg. Backgrounds, borders and
// text only; this is a debugging stand-in for the real renderer.
func paint(box *layout.Box, width, height float64, path string) error {
	dc := gg.NewContext(int(width), int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if err := paintBox(dc, box, geom.Point{}, nil); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func paintBox(dc *gg.Context, box *layout.Box, origin geom.Point, parent *dom.Node) error {
	var res style.Resolved
	if box.Element != nil {
		res, _ = box.Element.Resolved()
	}

	// Backgrounds and borders belong to an element's own block box.
	// Line boxes and anonymous flow boxes re-carry the owner's element
	// and must not repaint its decorations.
	isBlock := res.Display.Kind == style.DisplayBlock &&
		box.Element != nil && box.Element != parent

	if res.BackgroundColor.A > 0 && isBlock {
		dc.SetColor(res.BackgroundColor)
		if res.BorderRadius > 0 {
			dc.DrawRoundedRectangle(origin.X, origin.Y, box.Size.Width, box.Size.Height, res.BorderRadius)
		} else {
			dc.DrawRectangle(origin.X, origin.Y, box.Size.Width, box.Size.Height)
		}
		dc.Fill()
	}
	if res.BorderColor.A > 0 && !res.BorderThickness.IsZero() && isBlock {
		dc.SetColor(res.BorderColor)
		t := res.BorderThickness
		w, h := box.Size.Width, box.Size.Height
		dc.DrawRectangle(origin.X, origin.Y, w, t.Top)
		dc.DrawRectangle(origin.X, origin.Y+h-t.Bottom, w, t.Bottom)
		dc.DrawRectangle(origin.X, origin.Y, t.Left, h)
		dc.DrawRectangle(origin.X+w-t.Right, origin.Y, t.Right, h)
		dc.Fill()
	}

	if box.Text != nil {
		dc.SetColor(res.TextColor)
		for _, frag := range box.Text.Fragments {
			if len(frag.Glyphs) == 0 {
				continue
			}
			face, err := frag.Face.Raster(box.Text.Size)
			if err != nil {
				return err
			}
			dc.SetFontFace(face)
			at := origin.Add(frag.Glyphs[0].Offset)
			dc.DrawString(frag.Text, at.X, at.Y)
		}
	}

	for _, child := range box.Children {
		if err := paintBox(dc, child.Box, origin.Add(child.Position), box.Element); err != nil {
			return err
		}
	}
	return nil
}
