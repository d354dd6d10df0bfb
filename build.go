package coitrees

// Tree is the handle for a built, immutable interval index over one
// chromosome/key's worth of intervals. The zero Tree is empty and valid
// to query (every operation is a no-op / returns zero values).
type Tree[M any] struct {
	// nodes is the vEB-ordered array; nodes[0] is the root once len > 0.
	nodes []Node[M]
}

// Build constructs a Tree from a flat slice of nodes. Only First, Last
// and Metadata need be set on each input node — SubtreeFirst, SubtreeLast,
// Left and Right are overwritten. The input slice is copied; Build never
// mutates its argument.
//
// Build panics if the resulting tree is not reachable from the root with
// exactly len(nodes) distinct nodes, which would indicate a bug in the
// vEB permutation rather than anything the caller did (spec.md §7: this
// is the one checked invariant intrinsic to the core, and it is a
// programming error, not a user error).
func Build[M any](nodes []Node[M]) Tree[M] {
	if len(nodes) == 0 {
		return Tree[M]{}
	}

	sorted := make([]Node[M], len(nodes))
	copy(sorted, nodes)
	sortSlice(sorted, func(a, b Node[M]) bool { return a.First < b.First })

	info := bstShape(len(sorted))
	vebReorder(sorted, info)

	fillSubtreeExtents(sorted, 0)

	if got := countReachable(sorted, 0); got != len(sorted) {
		panic("coitrees: internal error, reachable node count does not match input size")
	}

	return Tree[M]{nodes: sorted}
}

// Len returns the number of intervals in the tree.
func (t Tree[M]) Len() int {
	return len(t.nodes)
}
