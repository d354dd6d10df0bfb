package coitrees

// noChild is the sentinel stored in Node.Left/Node.Right for an absent
// child. A tagged -1 avoids a pointer or separate "present" bool per
// node, at the cost of one comparison at each descent.
const noChild = -1

// Node is one interval plus the bookkeeping the tree needs around it.
// Fields are exported so a caller can read back metadata and bounds from
// a query's visitor callback; nothing outside this package ever mutates
// a Node after Build returns.
type Node[M any] struct {
	// First and Last are the node's own closed interval, First <= Last
	// for any non-empty interval. An interval with Last < First is
	// permitted and overlaps nothing (see Overlaps).
	First, Last int32

	// SubtreeFirst and SubtreeLast are the min First / max Last over
	// this node and everything reachable from it through Left/Right.
	// Filled once, bottom-up, by the subtree-extent pass; they are what
	// let Query prune whole branches without visiting them.
	SubtreeFirst, SubtreeLast int32

	// Left and Right are indices into the owning Tree's node slice, or
	// noChild if absent. They are rewritten once, at build time, to
	// follow the vEB permutation.
	Left, Right int32

	// Metadata is the caller's opaque payload, copied by value.
	Metadata M
}

// Overlaps reports whether two closed intervals intersect. An interval
// with last < first (an "empty" interval, see Node) overlaps nothing,
// including itself.
func Overlaps(firstA, lastA, firstB, lastB int32) bool {
	return firstA <= lastA && firstB <= lastB && firstA <= lastB && lastA >= firstB
}
