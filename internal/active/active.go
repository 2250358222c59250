// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package active maintains the sweep's active-edge list: a singly linked,
// x-sorted chain bounded by head/tail sentinels that is mutated once per
// sub-scanline.
package active

import (
	"github.com/gogpu/trapraster/internal/assert"
	"github.com/gogpu/trapraster/internal/edge"
	"github.com/gogpu/trapraster/internal/inactive"
)

// InsertNewEdges splices every inactive edge whose StartY equals y into
// the active list, preserving the x-sort, and reports the StartY of the
// next inactive edge (math.MaxInt32 once the inactive array is
// exhausted).
func InsertNewEdges(head *edge.Edge, y int32, cursor *inactive.Cursor) (nextInactiveY int32) {
	for cursor.StartY() == y {
		e := cursor.Take()
		insertSorted(head, e)
	}
	return cursor.StartY()
}

// insertSorted splices e into the list starting at head, keeping the
// list sorted ascending by (X, Error/ErrorDown).
func insertSorted(head *edge.Edge, e *edge.Edge) {
	prev := head
	cur := head.Next
	for cur != nil && isBeforeOrEqual(cur, e) {
		prev = cur
		cur = cur.Next
	}
	e.Next = cur
	prev.Next = e
}

// isBeforeOrEqual reports whether a sorts at or before b by (X,
// Error/ErrorDown). The tail sentinel (X == math.MaxInt32) always sorts
// last because no finite edge can have a larger X.
func isBeforeOrEqual(a, b *edge.Edge) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	// Both Error are negative (biased), with the same ErrorDown-free
	// comparison used in the fraction helpers: a sorts first when its
	// fractional remainder is algebraically smaller.
	return int64(a.Error)*int64(b.ErrorDown) <= int64(b.Error)*int64(a.ErrorDown)
}

// AdvanceDDAAndUpdateActiveEdgeList performs one sub-scanline DDA step
// for every active edge, drops edges whose EndY <= y, and re-sorts the
// (small, mostly-sorted) list with insertion sort.
func AdvanceDDAAndUpdateActiveEdgeList(y int32, head *edge.Edge) {
	prev := head
	cur := head.Next
	for cur != nil && !edge.IsTailSentinel(cur) {
		next := cur.Next

		// Inlined dy=1 case of fixedmath.AdvanceDDASingleStep: kept as a
		// direct field mutation rather than a DDAEdge interface call
		// since this runs per active edge on every sub-scanline.
		cur.X += cur.Dx
		cur.Error += cur.ErrorUp
		if cur.Error >= 0 {
			cur.X++
			cur.Error -= cur.ErrorDown
		}

		if cur.EndY <= y {
			prev.Next = next
		} else {
			prev = cur
		}
		cur = next
	}

	insertionSort(head)
	assert.Check(func() bool { return Count(head)%2 == 0 }, "active edge count must stay even")
}

// insertionSort re-sorts the active list in place. The list is small and
// mostly sorted after a single DDA step, so a plain insertion sort over
// the gathered real edges (sentinels excluded) is both simple and cheap.
func insertionSort(head *edge.Edge) {
	var tail *edge.Edge
	n := 0
	for cur := head.Next; cur != nil; cur = cur.Next {
		if edge.IsTailSentinel(cur) {
			tail = cur
			break
		}
		n++
	}
	if n < 2 {
		return
	}

	real := make([]*edge.Edge, 0, n)
	for cur := head.Next; cur != tail; cur = cur.Next {
		real = append(real, cur)
	}

	for i := 1; i < len(real); i++ {
		key := real[i]
		j := i - 1
		for j >= 0 && !isBeforeOrEqual(real[j], key) {
			real[j+1] = real[j]
			j--
		}
		real[j+1] = key
	}

	prev := head
	for _, e := range real {
		prev.Next = e
		prev = e
	}
	prev.Next = tail
}

// Count returns the number of non-sentinel edges currently active.
// Exposed for the ASSERTACTIVELIST-style invariant checks in tests: the
// count must always be even.
func Count(head *edge.Edge) int {
	n := 0
	for cur := head.Next; cur != nil && !edge.IsTailSentinel(cur); cur = cur.Next {
		n++
	}
	return n
}
