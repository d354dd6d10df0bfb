package coitrees

// shapeInfo describes where one position in a sorted-by-First array sits
// in the perfectly balanced implicit BST over that array: its depth, its
// pre-order visit number, and the (sorted-array) indices of its two
// children. It depends only on n and the position, never on interval
// values — the shape of the tree is fixed before a single comparison of
// interval bounds happens.
type shapeInfo struct {
	depth       int
	dfs         int
	left, right int32 // sorted-array indices, or noChild
}

// bstShape computes shapeInfo for every position in [0, n), treating the
// sorted-by-First array as the in-order traversal of a balanced BST:
// root at start+(end-start)/2, left child over [start, root), right
// child over [root+1, end).
func bstShape(n int) []shapeInfo {
	info := make([]shapeInfo, n)
	dfs := 0
	bstShapeRecurse(info, 0, n, 0, &dfs)
	return info
}

// bstShapeRecurse assigns depth and dfs number to every node in
// [start, end) and returns the sorted-array index of the subtree root,
// or noChild if the range is empty.
func bstShapeRecurse(info []shapeInfo, start, end, depth int, dfs *int) int32 {
	if start >= end {
		return noChild
	}

	rootIdx := start + (end-start)/2
	info[rootIdx].depth = depth
	info[rootIdx].dfs = *dfs
	*dfs++

	info[rootIdx].left = bstShapeRecurse(info, start, rootIdx, depth+1, dfs)
	info[rootIdx].right = bstShapeRecurse(info, rootIdx+1, end, depth+1, dfs)

	return int32(rootIdx)
}
