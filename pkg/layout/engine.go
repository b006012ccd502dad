// Package layout turns a resolved element tree into a sized,
// positioned, immutable box tree. One pass per frame: the driver
// dispatches each element to the block or inline algorithm based on
// its resolved display kind, and unchanged subtrees are carried over
// from the previous pass.
package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/style"
	"quill/pkg/text"
)

// Stats counts what one layout pass did.
type Stats struct {
	Boxes  int // nodes laid out this pass
	Reused int // nodes whose previous box was carried over
}

// Engine performs layout passes. It owns the long-lived font
// collection handle and the retained-box cache. An Engine is not safe
// for concurrent use; a pass assumes exclusive access to the element
// tree for its duration.
type Engine struct {
	fonts  *text.Collection
	cache  *boxCache
	logger *log.Logger
	stats  Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithFonts supplies a font collection, replacing the lazily loaded
// default.
func WithFonts(c *text.Collection) Option {
	return func(e *Engine) { e.fonts = c }
}

// WithLogger routes the engine's debug tracing to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithoutRetention disables cross-pass box reuse; every pass builds a
// fully fresh tree.
func WithoutRetention() Option {
	return func(e *Engine) { e.cache = nil }
}

// NewEngine creates a layout engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache:  newBoxCache(),
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Stats returns the counters of the most recent pass.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Layout performs one layout pass over root with the given content
// size budget and returns the root box. Every element under root must
// already carry resolved attributes from style.Resolve; an unresolved
// element is a pipeline-ordering bug and panics.
//
// The first call parses the embedded default font; the handle is
// reused for the rest of the process lifetime.
func (e *Engine) Layout(root *dom.Node, available geom.Size) *Box {
	if e.fonts == nil {
		e.fonts = text.Default()
	}
	e.stats = Stats{}
	box, _ := e.layoutNode(root, available)
	e.logger.Debug("layout pass",
		"boxes", e.stats.Boxes,
		"reused", e.stats.Reused,
		"width", available.Width,
		"height", available.Height)
	return box
}

// layoutNode dispatches one element on its resolved display kind. The
// parent never overrides the child's chosen mode.
func (e *Engine) layoutNode(el *dom.Node, available geom.Size) (*Box, uint64) {
	res, ok := el.Resolved()
	if !ok {
		panic("layout: element has no resolved attributes; run style.Resolve before layout")
	}
	if res.Display.Kind == style.DisplayInline {
		return e.layoutInline(el, &res, available)
	}
	return e.layoutBlock(el, &res, available)
}

// retain finishes one node: if the previous pass produced a box for
// el from identical inputs, that allocation is returned and fresh is
// dropped; otherwise fresh is recorded and returned.
func (e *Engine) retain(el *dom.Node, hash uint64, fresh *Box) (*Box, uint64) {
	e.stats.Boxes++
	if e.cache == nil {
		return fresh, hash
	}
	if prev, ok := e.cache.lookup(el, hash); ok {
		e.stats.Reused++
		return prev, hash
	}
	e.cache.store(el, hash, fresh)
	return fresh, hash
}
