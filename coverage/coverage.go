// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package coverage implements the per-pixel-row coverage buffer used when
// the sweep cannot recognize a run of simple trapezoids: an interval list
// of (x, Δcoverage) pairs at 8x sub-x resolution, flushed once per pixel
// row as a complex scan.
package coverage

import (
	"github.com/gogpu/trapraster/internal/edge"
	"github.com/gogpu/trapraster/internal/fixedmath"
)

// Interval is one node of the sorted coverage interval list for a single
// pixel row. Summing Delta left-to-right yields coverage in
// [0, ShiftSize^2] at any x. The list is terminated by a sentinel node
// with X == math.MaxInt32 (see Buffer.Head).
type Interval struct {
	X     int32
	Delta int32
	Next  *Interval
}

// Buffer accumulates coverage intervals across up to ShiftSize
// sub-scanlines before a single pixel row is flushed. Storage is reused
// across rows by Reset.
type Buffer struct {
	head     Interval // sentinel head, X == math.MinInt32, never flushed
	tail     Interval // sentinel tail, X == math.MaxInt32
	freeList []*Interval
}

// New returns an empty coverage buffer.
func New() *Buffer {
	b := &Buffer{}
	b.Reset()
	return b
}

// Reset empties the buffer between pixel rows (and, per the flagged open
// question in the design notes, at the start of every RasterizePath call
// as well, so an aborted prior sweep never leaks intervals into the
// next). Any nodes still linked in the row just finished are returned to
// freeList rather than dropped, so addDelta doesn't re-allocate a fresh
// node for every transition on every row.
func (b *Buffer) Reset() {
	for cur := b.head.Next; cur != nil && cur != &b.tail; {
		next := cur.Next
		b.freeList = append(b.freeList, cur)
		cur = next
	}
	b.head = Interval{X: minInt32}
	b.tail = Interval{X: maxInt32}
	b.head.Next = &b.tail
}

const (
	minInt32 = -1 << 31
	maxInt32 = 1<<31 - 1
)

// Head returns the sentinel head of the interval list; iterate via
// Head().Next until reaching a node with X == math.MaxInt32.
func (b *Buffer) Head() *Interval {
	return &b.head
}

// IsEmpty reports whether the buffer currently holds no intervals.
func (b *Buffer) IsEmpty() bool {
	return b.head.Next == &b.tail
}

// addDelta inserts a (x, delta) contribution into the sorted interval
// list, splitting or merging nodes as needed so the list stays strictly
// increasing in X.
func (b *Buffer) addDelta(x, delta int32) {
	prev := &b.head
	cur := prev.Next
	for cur.X < x {
		prev = cur
		cur = cur.Next
	}
	if cur.X == x {
		cur.Delta += delta
		return
	}

	node := b.alloc()
	node.X = x
	node.Delta = delta
	node.Next = cur
	prev.Next = node
}

func (b *Buffer) alloc() *Interval {
	if n := len(b.freeList); n > 0 {
		node := b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
		return node
	}
	return &Interval{}
}

// rowWeight is the coverage contributed by a single sub-scanline crossing
// a subpixel column. Each pixel row folds in fixedmath.ShiftSize
// sub-scanlines, and each carries rowWeight == fixedmath.ShiftSize, so a
// column covered by every sub-scanline in the row accumulates exactly
// fixedmath.ShiftSize*fixedmath.ShiftSize == 64, matching the documented
// coverage bound.
const rowWeight = fixedmath.ShiftSize

// FillEdgesAlternating walks active-edge pairs (1st-2nd, 3rd-4th, ...)
// and adds coverage to [edge1.X, edge2.X) for the given sub-scanline.
func (b *Buffer) FillEdgesAlternating(head *edge.Edge, y int32) {
	for cur := head.Next; cur != nil && !edge.IsTailSentinel(cur); {
		left := cur
		right := cur.Next
		if right == nil || edge.IsTailSentinel(right) {
			break
		}
		b.addDelta(left.X, rowWeight)
		b.addDelta(right.X, -rowWeight)
		cur = right.Next
	}
	_ = y // sub-scanline index is implicit in caller's accumulation cadence
}

// FillEdgesWinding walks active edges as singletons, accumulating signed
// WindingDirection; an interval is "in" while the running sum is
// non-zero. Coverage is expressed the same weighted-transition way as
// FillEdgesAlternating so both rules share one accumulation model.
func (b *Buffer) FillEdgesWinding(head *edge.Edge, y int32) {
	winding := int32(0)
	var spanStartX int32
	inSpan := false

	for cur := head.Next; cur != nil && !edge.IsTailSentinel(cur); cur = cur.Next {
		wasZero := winding == 0
		winding += cur.WindingDirection
		nowZero := winding == 0

		switch {
		case wasZero && !nowZero && !inSpan:
			spanStartX = cur.X
			inSpan = true
		case !wasZero && nowZero && inSpan:
			b.addDelta(spanStartX, rowWeight)
			b.addDelta(cur.X, -rowWeight)
			inSpan = false
		}
	}
	_ = y
}

// FlushRow returns the accumulated interval list: up to
// fixedmath.ShiftSize sub-scanlines' worth of +rowWeight/-rowWeight
// transitions, one pair per filled span in each call to
// FillEdgesAlternating/FillEdgesWinding, summing left-to-right to
// a coverage count in [0, fixedmath.ShiftSize^2] at any x. The returned
// list aliases the buffer's live storage; call Reset once the sink has
// consumed it, before accumulating the next row.
func (b *Buffer) FlushRow() *Interval {
	return b.head.Next
}

// ShiftSize re-exports fixedmath.ShiftSize for documentation purposes in
// this package's doc comments without importing fixedmath into callers
// that only need the buffer.
const ShiftSize = fixedmath.ShiftSize
