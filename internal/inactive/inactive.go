// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package inactive holds the sorted array of edges waiting to enter the
// active list as the sweep descends.
package inactive

import (
	"math"
	"sort"

	"github.com/gogpu/trapraster/internal/edge"
)

// StackCapacity is the number of entries (including both sentinels) kept
// in a caller-supplied backing array before Build falls back to a heap
// allocation, mirroring the original's INACTIVE_LIST_NUMBER stack buffer.
const StackCapacity = 64

// Entry pairs an edge reference with the (StartY, StartX) sort key used
// to bin it into the sweep at the right sub-scanline.
type Entry struct {
	Edge   *edge.Edge
	StartY int32
	StartX int32
}

// Array is the sorted, sentinel-bracketed inactive-edge queue. Edges
// migrate out of it (via Cursor) as the sweep-y reaches their StartY and
// are never returned.
type Array struct {
	entries []Entry
}

// Build sorts edges from the store into backing (reused across calls when
// it has enough capacity) ascending by (StartY, StartX), bracketed by a
// head and tail sentinel so Cursor never needs a bounds check.
func Build(edges []*edge.Edge, backing []Entry) *Array {
	n := len(edges)
	total := n + 2 // + head and tail sentinel

	var entries []Entry
	if cap(backing) >= total {
		entries = backing[:total]
	} else {
		entries = make([]Entry, total)
	}

	entries[0] = Entry{StartY: math.MinInt32, StartX: math.MinInt32}
	for i, e := range edges {
		entries[i+1] = Entry{Edge: e, StartY: e.StartY, StartX: e.X}
	}
	entries[total-1] = Entry{StartY: math.MaxInt32, StartX: math.MaxInt32}

	body := entries[1 : total-1]
	sort.Slice(body, func(i, j int) bool {
		if body[i].StartY != body[j].StartY {
			return body[i].StartY < body[j].StartY
		}
		return body[i].StartX < body[j].StartX
	})

	return &Array{entries: entries}
}

// Cursor walks the array forward, never backward, as the sweep descends.
type Cursor struct {
	arr *Array
	pos int // index into arr.entries, starts at 1 (past the head sentinel)
}

// NewCursor returns a cursor positioned just past the head sentinel.
func (a *Array) NewCursor() *Cursor {
	return &Cursor{arr: a, pos: 1}
}

// StartY returns the StartY of the entry the cursor currently points at,
// or math.MaxInt32 once the array is exhausted (the tail sentinel).
func (c *Cursor) StartY() int32 {
	return c.arr.entries[c.pos].StartY
}

// Take returns the edge the cursor points at and advances it one step.
// Callers must check StartY first; Take at the tail sentinel returns nil
// and leaves the cursor past the end of the array, where further StartY
// or Take calls index out of range.
func (c *Cursor) Take() *edge.Edge {
	e := c.arr.entries[c.pos].Edge
	c.pos++
	return e
}
