// Package text is the font service used by layout: it owns the
// embedded default font and turns runs of text into glyph indices,
// advances and line metrics.
package text

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"quill/pkg/geom"
)

// Glyph is one shaped glyph: the index into the face and the offset
// from the origin of the run it belongs to. The offset's Y sits on
// the baseline.
type Glyph struct {
	Index  uint32
	Offset geom.Point
}

// LineMetrics are the vertical metrics of a face at a given size.
type LineMetrics struct {
	Ascent     float64 // baseline to top
	Descent    float64 // baseline to bottom
	LineHeight float64 // recommended distance between baselines
}

// Face wraps one parsed font. A Face is not safe for concurrent use:
// the shaping buffer is reused across calls, matching the engine's
// single-threaded traversal model.
type Face struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// Collection is the set of faces available to layout. The default
// collection holds the single embedded face and lives for the
// process lifetime.
type Collection struct {
	faces []*Face
}

var (
	defaultOnce sync.Once
	defaultColl *Collection
)

// Default returns the process-wide default collection, parsing the
// embedded font on the first call and reusing the handle afterwards.
// A default font that fails to parse is fatal: no text could ever be
// rendered without it.
func Default() *Collection {
	defaultOnce.Do(func() {
		c, err := NewCollection(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("text: embedded default font is unusable: %v", err))
		}
		defaultColl = c
	})
	return defaultColl
}

// NewCollection parses the given font files into a collection.
func NewCollection(fonts ...[]byte) (*Collection, error) {
	if len(fonts) == 0 {
		return nil, fmt.Errorf("text: collection needs at least one font")
	}
	c := &Collection{}
	for i, data := range fonts {
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("text: parsing font %d: %w", i, err)
		}
		c.faces = append(c.faces, &Face{font: f})
	}
	return c, nil
}

// Primary returns the first face of the collection.
func (c *Collection) Primary() *Face {
	return c.faces[0]
}

func ppem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Metrics returns the line metrics of the face at the given text size.
func (f *Face) Metrics(size float64) LineMetrics {
	m, err := f.font.Metrics(&f.buf, ppem(size), font.HintingNone)
	if err != nil {
		// Degrade to the conventional approximation rather than fail
		// a whole layout pass over a missing hhea table.
		return LineMetrics{Ascent: size * 0.8, Descent: size * 0.2, LineHeight: size * 1.2}
	}
	return LineMetrics{
		Ascent:     fromFixed(m.Ascent),
		Descent:    fromFixed(m.Descent),
		LineHeight: fromFixed(m.Height),
	}
}

// ShapeWord shapes a single unbreakable unit of text at the given
// size. Glyph offsets are relative to the word origin with Y on the
// baseline; the second return is the total advance width. Runes the
// face has no glyph for map to the .notdef glyph.
func (f *Face) ShapeWord(word string, size float64) ([]Glyph, float64) {
	pp := ppem(size)
	glyphs := make([]Glyph, 0, len(word))
	pen := 0.0
	var prev sfnt.GlyphIndex
	havePrev := false
	for _, r := range word {
		gi, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			gi = 0
		}
		if havePrev {
			if k, err := f.font.Kern(&f.buf, prev, gi, pp, font.HintingNone); err == nil {
				pen += fromFixed(k)
			}
		}
		glyphs = append(glyphs, Glyph{Index: uint32(gi), Offset: geom.Pt(pen, 0)})
		adv, err := f.font.GlyphAdvance(&f.buf, gi, pp, font.HintingNone)
		if err == nil {
			pen += fromFixed(adv)
		}
		prev, havePrev = gi, true
	}
	return glyphs, pen
}

// SpaceAdvance returns the advance of a space at the given size.
func (f *Face) SpaceAdvance(size float64) float64 {
	gi, err := f.font.GlyphIndex(&f.buf, ' ')
	if err != nil {
		return size / 4
	}
	adv, err := f.font.GlyphAdvance(&f.buf, gi, ppem(size), font.HintingNone)
	if err != nil {
		return size / 4
	}
	return fromFixed(adv)
}

// Raster returns a rasterizable font.Face at the given size, for
// renderers that draw strings rather than glyph runs.
func (f *Face) Raster(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: building raster face: %w", err)
	}
	return face, nil
}

// Words splits text into unbreakable units on whitespace. Line
// breaking never splits inside a unit.
func Words(s string) []string {
	return strings.Fields(s)
}
