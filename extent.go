package coitrees

// fillSubtreeExtents runs a post-order pass from rootIdx, setting every
// node's SubtreeFirst/SubtreeLast to the componentwise min/max of its own
// interval and its children's subtree extents. Recursion depth tracks
// tree depth, which Build's balanced shape bounds at O(log n) — safe for
// any practical n (spec.md §9).
func fillSubtreeExtents[M any](nodes []Node[M], rootIdx int32) {
	n := &nodes[rootIdx]

	subtreeFirst := n.First
	subtreeLast := n.Last

	if n.Left != noChild {
		fillSubtreeExtents(nodes, n.Left)
		left := &nodes[n.Left]
		if left.SubtreeFirst < subtreeFirst {
			subtreeFirst = left.SubtreeFirst
		}
		if left.SubtreeLast > subtreeLast {
			subtreeLast = left.SubtreeLast
		}
	}

	if n.Right != noChild {
		fillSubtreeExtents(nodes, n.Right)
		right := &nodes[n.Right]
		if right.SubtreeFirst < subtreeFirst {
			subtreeFirst = right.SubtreeFirst
		}
		if right.SubtreeLast > subtreeLast {
			subtreeLast = right.SubtreeLast
		}
	}

	n.SubtreeFirst = subtreeFirst
	n.SubtreeLast = subtreeLast
}

// countReachable returns the number of nodes reachable from rootIdx via
// Left/Right, used by Build to assert the vEB permutation didn't corrupt
// any links (spec.md §4.5 invariant 5).
func countReachable[M any](nodes []Node[M], rootIdx int32) int {
	if rootIdx == noChild {
		return 0
	}
	n := &nodes[rootIdx]
	return 1 + countReachable(nodes, n.Left) + countReachable(nodes, n.Right)
}
