package style

// The cascade: computing the final visual attributes for every
// element from inherited values, the element's rule, and its
// conditionally matched sub-rules.

// Resolve walks the subtree rooted at root depth-first, pre-order,
// and publishes a freshly computed Resolved value onto every element.
// It is a full recompute on every call; any cross-frame memoization
// belongs to the caller, not here.
func Resolve(root Element) {
	resolve(root, nil)
}

func resolve(el Element, parent *Resolved) {
	r := DefaultResolved()

	// Only text size and text color inherit. Display, background and
	// border reset to their type defaults on every element.
	if parent != nil {
		r.TextSize = parent.TextSize
		r.TextColor = parent.TextColor
	}

	if rule := el.StyleRule(); rule != nil {
		rule.Attributes.Apply(&r)
		for i := range rule.SubRules {
			sub := &rule.SubRules[i]
			if sub.Selector != nil && sub.Selector.Matches(el) {
				sub.Attributes.Apply(&r)
			}
		}
	}

	el.SetResolved(r)

	for _, child := range el.ChildElements() {
		resolve(child, &r)
	}
}
