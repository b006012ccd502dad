package dom

import "quill/pkg/style"

// A minimal retained element tree: elements with attributes and an
// optional style rule reference, plus raw text leaves. The cascade
// and layout engines traverse it but never restructure it.

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node

	// Rule is the optional style rule this element references.
	// At most one rule per element; identity is by pointer.
	Rule *style.Rule

	resolved    style.Resolved
	hasResolved bool
}

// NewElement creates an element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, TagName: tag}
}

// NewText creates a raw text leaf.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// AddChild appends child and sets up the parent relationship.
func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// AppendText creates a text leaf and adds it as a child. Empty text
// is dropped.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(NewText(text))
}

// SetAttribute sets a named attribute on the node.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// GetAttribute returns the named attribute and whether it is present.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	v, ok := n.Attributes[name]
	return v, ok
}

// style.Element implementation.

var _ style.Element = (*Node)(nil)

func (n *Node) Tag() string {
	return n.TagName
}

func (n *Node) Attr(name string) (string, bool) {
	return n.GetAttribute(name)
}

func (n *Node) ParentElement() style.Element {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

func (n *Node) ChildElements() []style.Element {
	var els []style.Element
	for _, c := range n.Children {
		if c.Type == ElementNode {
			els = append(els, c)
		}
	}
	return els
}

func (n *Node) StyleRule() *style.Rule {
	return n.Rule
}

func (n *Node) SetResolved(r style.Resolved) {
	n.resolved = r
	n.hasResolved = true
}

func (n *Node) Resolved() (style.Resolved, bool) {
	return n.resolved, n.hasResolved
}
