package style

// Element is the cascade's view of one node in the host element tree:
// read-only identity and ancestry, the optional rule reference, and
// the write slot for the resolved attributes.
type Element interface {
	// Tag returns the element's tag name.
	Tag() string
	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)
	// ParentElement returns the parent element, or nil at the root.
	ParentElement() Element
	// ChildElements returns the structural children that are
	// themselves elements, in document order. Non-element leaf
	// content is not included.
	ChildElements() []Element
	// StyleRule returns the rule referenced by this element, or nil.
	StyleRule() *Rule
	// SetResolved publishes the resolved attributes onto the element.
	SetResolved(Resolved)
	// Resolved returns the published attributes and whether any have
	// been published since the element was created.
	Resolved() (Resolved, bool)
}

// Selector decides whether a sub-rule applies to an element. The
// common kinds are tagged variants below; Func is the escape hatch
// for arbitrary predicates.
type Selector interface {
	Matches(Element) bool
}

// TagSelector matches elements with the given tag name.
type TagSelector string

func (s TagSelector) Matches(e Element) bool {
	return e.Tag() == string(s)
}

// AttrSelector matches elements carrying an attribute. An empty Value
// matches mere presence; otherwise the value must be equal.
type AttrSelector struct {
	Name  string
	Value string
}

func (s AttrSelector) Matches(e Element) bool {
	v, ok := e.Attr(s.Name)
	if !ok {
		return false
	}
	return s.Value == "" || v == s.Value
}

// AncestorSelector matches elements with at least one proper ancestor
// matching the inner selector.
type AncestorSelector struct {
	Of Selector
}

func (s AncestorSelector) Matches(e Element) bool {
	for p := e.ParentElement(); p != nil; p = p.ParentElement() {
		if s.Of.Matches(p) {
			return true
		}
	}
	return false
}

// Func is an arbitrary predicate selector.
type Func func(Element) bool

func (f Func) Matches(e Element) bool {
	return f(e)
}
