package coitrees

import "sort"

// Query invokes visit once for every node overlapping the closed
// interval [q0, q1], in unspecified order. q1 < q0 yields zero calls,
// not an error (spec.md §4.6, §7).
func (t Tree[M]) Query(q0, q1 int32, visit func(*Node[M])) {
	if len(t.nodes) == 0 {
		return
	}
	t.queryRecurse(0, q0, q1, visit)
}

func (t Tree[M]) queryRecurse(idx int32, q0, q1 int32, visit func(*Node[M])) {
	n := &t.nodes[idx]

	if Overlaps(n.First, n.Last, q0, q1) {
		visit(n)
	}

	if n.Left != noChild {
		left := &t.nodes[n.Left]
		if Overlaps(left.SubtreeFirst, left.SubtreeLast, q0, q1) {
			t.queryRecurse(n.Left, q0, q1, visit)
		}
	}

	if n.Right != noChild {
		right := &t.nodes[n.Right]
		if Overlaps(right.SubtreeFirst, right.SubtreeLast, q0, q1) {
			t.queryRecurse(n.Right, q0, q1, visit)
		}
	}
}

// QueryCount returns the number of nodes overlapping [q0, q1], by running
// Query with a visitor that only counts.
func (t Tree[M]) QueryCount(q0, q1 int32) int {
	count := 0
	t.Query(q0, q1, func(*Node[M]) { count++ })
	return count
}

// Coverage returns the fraction of [q0, q1] covered by the union of
// overlapping stored intervals, clipped to the query. Returns 0 for an
// empty tree or an inverted query (q1 < q0).
//
// Tree traversal order is not sorted by First, so the overlapping nodes
// are collected first and sorted once before the sweep (spec.md §9's
// open question, resolved as option (a): sort, don't assume order).
func (t Tree[M]) Coverage(q0, q1 int32) float64 {
	if q1 < q0 || len(t.nodes) == 0 {
		return 0
	}

	var overlaps []Node[M]
	t.Query(q0, q1, func(n *Node[M]) { overlaps = append(overlaps, *n) })

	if len(overlaps) == 0 {
		return 0
	}

	sort.Slice(overlaps, func(i, j int) bool { return overlaps[i].First < overlaps[j].First })

	lastCovered := q0 - 1
	var uncovered int64
	for _, n := range overlaps {
		if n.First > lastCovered {
			uncovered += int64(n.First) - int64(lastCovered) - 1
		}
		if n.Last > lastCovered {
			lastCovered = n.Last
		}
	}
	if lastCovered < q1 {
		uncovered += int64(q1) - int64(lastCovered)
	}

	span := int64(q1) - int64(q0) + 1
	return 1 - float64(uncovered)/float64(span)
}
