package coitrees

// vebReorder permutes sorted (the node array, already sorted by First)
// into van Emde Boas order in place, and rewrites every Left/Right link
// to the new positions. info must be the shapeInfo computed by bstShape
// for len(sorted).
//
// In vEB layout a tree of height h is split at depth h/2: the top half
// (a subtree of height h/2) is laid out contiguously first, followed by
// each bottom subtree laid out recursively in vEB order. This bounds
// cache misses at O(log_B n) for any block size B, without tuning for a
// particular cache hierarchy.
func vebReorder[M any](sorted []Node[M], info []shapeInfo) {
	n := len(sorted)
	if n == 0 {
		return
	}

	maxDepth := 0
	for i := range info {
		if info[i].depth > maxDepth {
			maxDepth = info[i].depth
		}
	}

	// idxs starts as the pre-order (dfs) sequence of the balanced BST,
	// expressed as sorted-array indices; vEB recursion is defined over
	// pre-order sequences (spec.md C3 step 1).
	idxs := make([]int32, n)
	for i := range idxs {
		idxs[i] = int32(i)
	}
	sortByDFS(idxs, info)

	tmp := make([]int32, n)
	vebRecurse(idxs, tmp, info, 0, n, 0, maxDepth)

	// idxs[i] now names the sorted-array index that should occupy vEB
	// position i. rev is its inverse: rev[sortedIdx] = vEB position.
	rev := tmp // reuse the scratch buffer, its old contents are dead
	for vebPos, sortedIdx := range idxs {
		rev[sortedIdx] = int32(vebPos)
	}

	veb := make([]Node[M], n)
	for vebPos, sortedIdx := range idxs {
		veb[vebPos] = sorted[sortedIdx]

		veb[vebPos].Left = rewriteChild(info[sortedIdx].left, rev)
		veb[vebPos].Right = rewriteChild(info[sortedIdx].right, rev)
	}

	copy(sorted, veb)
}

func rewriteChild(sortedChildIdx int32, rev []int32) int32 {
	if sortedChildIdx == noChild {
		return noChild
	}
	return rev[sortedChildIdx]
}

// sortByDFS reorders idxs so that idxs[i] is the sorted-array index of
// the node with pre-order number i. A plain insertion would do, but
// sort.Slice keeps this symmetric with the rest of the package's sorts
// and n is small relative to the rest of Build's O(n log n) work.
func sortByDFS(idxs []int32, info []shapeInfo) {
	sortSlice(idxs, func(a, b int32) bool {
		return info[a].dfs < info[b].dfs
	})
}

// vebRecurse implements the recursive step of the vEB permutation over
// idxs[start:end], whose elements all have depth in [minDepth, maxDepth].
// tmp is scratch space of length len(idxs), reused across the whole
// recursion by stablePartitionByDepth.
func vebRecurse(idxs, tmp []int32, info []shapeInfo, start, end, minDepth, maxDepth int) {
	if minDepth == maxDepth {
		// exactly one node in this range (spec.md C3 step 3)
		return
	}

	pivotDepth := minDepth + (maxDepth-minDepth)/2
	topSize := stablePartitionByDepth(idxs, tmp, info, pivotDepth, start, end)

	// top half: one subtree of height pivotDepth-minDepth, laid out
	// contiguously first.
	vebRecurse(idxs, tmp, info, start, start+topSize, minDepth, pivotDepth)

	// bottom half: zero or more subtrees, each rooted at depth
	// pivotDepth+1, laid out one after another in vEB order.
	bottomDepth := pivotDepth + 1
	i := start + topSize
	for i < end {
		j := i + 1
		subtreeMaxDepth := info[idxs[i]].depth
		for j < end && info[idxs[j]].depth != bottomDepth {
			if info[idxs[j]].depth > subtreeMaxDepth {
				subtreeMaxDepth = info[idxs[j]].depth
			}
			j++
		}
		vebRecurse(idxs, tmp, info, i, j, bottomDepth, subtreeMaxDepth)
		i = j
	}
}

// stablePartitionByDepth stably partitions idxs[start:end] into elements
// with depth <= pivot (kept first, relative order preserved) followed by
// elements with depth > pivot (also order-preserved), using tmp as
// scratch space, and returns the size of the first class.
//
// Relative-order preservation is what keeps each lower subtree
// contiguous after the partition: a two-pass counting partition (count,
// then place) achieves it without the swaps an in-place partition would
// need, at the cost of the scratch buffer.
func stablePartitionByDepth(idxs, tmp []int32, info []shapeInfo, pivot, start, end int) int {
	leftSize := 0
	for i := start; i < end; i++ {
		if info[idxs[i]].depth <= pivot {
			leftSize++
		}
	}

	l, r := start, start+leftSize
	for i := start; i < end; i++ {
		if info[idxs[i]].depth <= pivot {
			tmp[l] = idxs[i]
			l++
		} else {
			tmp[r] = idxs[i]
			r++
		}
	}
	copy(idxs[start:end], tmp[start:end])

	return leftSize
}
