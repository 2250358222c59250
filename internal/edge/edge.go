// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package edge owns the Edge record and the append-only store that the
// path enumerator populates and the sweep driver consumes by reference.
package edge

import "math"

// Edge is a half-open vertical interval [StartY, EndY) of a y-monotonic
// segment, carried at sub-scanline resolution by a fixed-point DDA.
//
// Invariant: Error is always in [-ErrorDown, 0).
type Edge struct {
	X         int32 // current subpixel-x at the current sub-scanline
	Error     int32 // DDA fractional remainder, biased by -1
	ErrorUp   int32 // numerator of dx_frac = ErrorUp/ErrorDown, in [0, ErrorDown)
	ErrorDown int32 // denominator of dx_frac, in (0, 1<<30)
	Dx        int32 // integer part of dx/dy per sub-scanline step

	StartY int32 // first subpixel-y this edge is active at
	EndY   int32 // terminal subpixel-y, exclusive

	WindingDirection int32 // +1 or -1

	Next *Edge // link in the active list
}

// CurX, CurError, DxStep, ErrUp and ErrDown satisfy fixedmath.DDAEdge
// without internal/fixedmath importing this package (avoids an import
// cycle since edge.Edge is the concrete DDA participant).
func (e *Edge) CurX() int32     { return e.X }
func (e *Edge) CurError() int32 { return e.Error }
func (e *Edge) DxStep() int32   { return e.Dx }
func (e *Edge) ErrUp() int32    { return e.ErrorUp }
func (e *Edge) ErrDown() int32  { return e.ErrorDown }

// NewHeadSentinel returns the sentinel that begins every active list.
// Its X is the minimum possible value so inner loops never need a null
// check on the left.
func NewHeadSentinel() *Edge {
	return &Edge{X: math.MinInt32}
}

// NewTailSentinel returns the sentinel that terminates every active and
// inactive list. EndY == math.MinInt32 is the universal "end of list"
// test used throughout the sweep.
func NewTailSentinel() *Edge {
	return &Edge{
		X:      math.MaxInt32,
		StartY: math.MaxInt32,
		EndY:   math.MinInt32,
	}
}

// IsTailSentinel reports whether e terminates a list.
func IsTailSentinel(e *Edge) bool {
	return e.EndY == math.MinInt32
}

const chunkSize = 512

// Store is an append-only chunked vector of edges. It is populated once
// by path enumeration and never mutated during the sweep; edge pointers
// handed out by Append remain valid for the store's lifetime because
// chunks are never reallocated once allocated.
type Store struct {
	chunks [][]Edge
	count  int
}

// NewStore returns an empty edge store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a new edge to the store and returns a stable pointer to it.
func (s *Store) Append(e Edge) *Edge {
	if len(s.chunks) == 0 || len(s.chunks[len(s.chunks)-1]) == cap(s.chunks[len(s.chunks)-1]) {
		s.chunks = append(s.chunks, make([]Edge, 0, chunkSize))
	}
	last := len(s.chunks) - 1
	s.chunks[last] = append(s.chunks[last], e)
	s.count++
	return &s.chunks[last][len(s.chunks[last])-1]
}

// Count returns the number of edges appended so far.
func (s *Store) Count() int {
	return s.count
}

// StartEnumeration returns the total edge count and resets nothing; it
// exists so callers can size the inactive array before walking the store.
func (s *Store) StartEnumeration() int {
	return s.count
}

// Each calls fn once per edge in append order.
func (s *Store) Each(fn func(e *Edge)) {
	for ci := range s.chunks {
		chunk := s.chunks[ci]
		for i := range chunk {
			fn(&chunk[i])
		}
	}
}

// Reset empties the store, releasing chunk storage for reuse by a
// subsequent RasterizePath call without deallocating the outer slice.
func (s *Store) Reset() {
	for i := range s.chunks {
		s.chunks[i] = s.chunks[i][:0]
	}
	s.chunks = s.chunks[:0]
	s.count = 0
}
