package layout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"quill/pkg/dom"
	"quill/pkg/geom"
	"quill/pkg/style"
)

// The retained-box cache: boxes are keyed by element identity and
// guarded by a content hash over everything that fed their layout.
// A matching hash means the previous pass's allocation is returned
// unchanged; child hashes fold into the parent's, so a parent hit
// implies the whole subtree matched.

type cacheEntry struct {
	hash uint64
	box  *Box
}

type boxCache struct {
	entries map[*dom.Node]cacheEntry
}

func newBoxCache() *boxCache {
	return &boxCache{entries: make(map[*dom.Node]cacheEntry)}
}

func (c *boxCache) lookup(el *dom.Node, hash uint64) (*Box, bool) {
	e, ok := c.entries[el]
	if !ok || e.hash != hash {
		return nil, false
	}
	return e.box, true
}

func (c *boxCache) store(el *dom.Node, hash uint64, box *Box) {
	c.entries[el] = cacheEntry{hash: hash, box: box}
}

// hasher accumulates one node's layout inputs into an xxhash digest:
// the algorithm tag, the resolved attributes, the available size, any
// text content, and the child hashes.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher() *hasher {
	return &hasher{d: xxhash.New()}
}

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.d.Write(h.buf[:])
}

func (h *hasher) f64(v float64) {
	h.u64(math.Float64bits(v))
}

// str writes the length first so adjacent strings cannot collide by
// shifting bytes across their boundary.
func (h *hasher) str(s string) {
	h.u64(uint64(len(s)))
	h.d.WriteString(s)
}

func (h *hasher) size(s geom.Size) {
	h.f64(s.Width)
	h.f64(s.Height)
}

func (h *hasher) offsets(o geom.SideOffsets) {
	h.f64(o.Top)
	h.f64(o.Right)
	h.f64(o.Bottom)
	h.f64(o.Left)
}

func (h *hasher) length(l style.Length) {
	if !l.Set {
		h.u64(0)
		return
	}
	h.u64(1)
	h.f64(l.Value)
}

func (h *hasher) color(c style.Color) {
	h.u64(uint64(c.R)<<24 | uint64(c.G)<<16 | uint64(c.B)<<8 | uint64(c.A))
}

func (h *hasher) resolved(res *style.Resolved) {
	h.u64(uint64(res.Display.Kind))
	blk := &res.Display.Block
	h.u64(uint64(blk.Direction))
	h.offsets(blk.Margin)
	h.offsets(blk.Padding)
	h.length(blk.Width)
	h.length(blk.Height)
	h.length(blk.MinWidth)
	h.length(blk.MinHeight)
	h.length(blk.MaxWidth)
	h.length(blk.MaxHeight)
	h.f64(res.TextSize)
	h.color(res.TextColor)
	h.color(res.BackgroundColor)
	h.f64(res.BorderRadius)
	h.offsets(res.BorderThickness)
	h.color(res.BorderColor)
}

func (h *hasher) sum() uint64 {
	return h.d.Sum64()
}
