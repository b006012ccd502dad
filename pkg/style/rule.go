package style

import "quill/pkg/geom"

// Attributes is a set of optional attribute overrides. A nil/unset
// field leaves the corresponding resolved value untouched; each
// present field overwrites its target independently of the others.
type Attributes struct {
	Display   *Display
	Direction *Direction

	// Block-level properties. Applied only while the working display
	// is a block; an inline element has no box of its own to size.
	Margin    *geom.SideOffsets
	Padding   *geom.SideOffsets
	Width     Length
	Height    Length
	MinWidth  Length
	MinHeight Length
	MaxWidth  Length
	MaxHeight Length

	TextSize        Length
	TextColor       *Color
	BackgroundColor *Color
	BorderRadius    Length
	BorderThickness *geom.SideOffsets
	BorderColor     *Color
}

// Opt returns a pointer to v, for building Attributes literals.
func Opt[T any](v T) *T { return &v }

// Apply overwrites the fields of r that this attribute set carries.
func (a *Attributes) Apply(r *Resolved) {
	if a.Display != nil {
		r.Display = *a.Display
	}
	if r.Display.Kind == DisplayBlock {
		blk := &r.Display.Block
		if a.Direction != nil {
			blk.Direction = *a.Direction
		}
		if a.Margin != nil {
			blk.Margin = *a.Margin
		}
		if a.Padding != nil {
			blk.Padding = *a.Padding
		}
		if a.Width.Set {
			blk.Width = a.Width
		}
		if a.Height.Set {
			blk.Height = a.Height
		}
		if a.MinWidth.Set {
			blk.MinWidth = a.MinWidth
		}
		if a.MinHeight.Set {
			blk.MinHeight = a.MinHeight
		}
		if a.MaxWidth.Set {
			blk.MaxWidth = a.MaxWidth
		}
		if a.MaxHeight.Set {
			blk.MaxHeight = a.MaxHeight
		}
	}
	if a.TextSize.Set {
		r.TextSize = a.TextSize.Value
	}
	if a.TextColor != nil {
		r.TextColor = *a.TextColor
	}
	if a.BackgroundColor != nil {
		r.BackgroundColor = *a.BackgroundColor
	}
	if a.BorderRadius.Set {
		r.BorderRadius = a.BorderRadius.Value
	}
	if a.BorderThickness != nil {
		r.BorderThickness = *a.BorderThickness
	}
	if a.BorderColor != nil {
		r.BorderColor = *a.BorderColor
	}
}

// SubRule pairs a selector with the attributes applied when the
// selector matches the element being resolved.
type SubRule struct {
	Selector   Selector
	Attributes Attributes
}

// Rule is an immutable style rule: a base attribute set plus an
// ordered list of conditional sub-rules. Sub-rules are evaluated in
// declaration order and later matches win per property.
//
// Rules are identified by pointer: two rules with identical content
// are still distinct rules.
type Rule struct {
	Name       string
	Attributes Attributes
	SubRules   []SubRule
}
