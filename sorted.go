package coitrees

import "math"

// frontierEntry is one subtree root kept in a SortedQuerent's frontier.
// exploreChildren distinguishes two states a kept node can be in:
//
//   - true:  this node's own interval and its children have not been
//     looked at for the current query at all — a from-scratch subtree,
//     either the root or a child that was deferred untouched.
//   - false: this node's children are already independently accounted
//     for elsewhere in the frontier (dropped as dead, merged into a
//     from-scratch entry of their own, or visited and re-queued the
//     same way), so only this node's own interval still needs checking
//     on future queries. Re-descending into its children here would
//     visit them a second time.
type frontierEntry struct {
	idx             int32
	exploreChildren bool
}

// SortedQuerent amortizes work across a stream of queries whose q0
// arrives in non-decreasing order, by remembering which parts of the
// tree can never matter again instead of re-descending from the root
// every time.
//
// Correctness argument: every node reachable from the root is, at all
// times, in exactly one of two states — "proven dead" (its whole subtree
// has SubtreeLast < the largest q0 seen so far, so it can never overlap
// a future query, since q0 only grows) or "present in the current
// frontier, exactly once". A node's own interval can keep overlapping
// queries even after its subtree has been fully explored (q0 only
// disqualifies it once q0 > its own Last), so absorb re-queues a
// surviving node as a childless (exploreChildren = false) entry after
// visiting it, instead of letting it drop out of the frontier the moment
// it's been looked at once. Its children are never re-descended into
// from that re-queued entry — they were already independently classified
// (dropped, merged into the current traversal, or deferred as their own
// frontier entries) in the very same pass that produced the re-queued
// entry, so no node is ever present, or visited, twice in one frontier.
// q1 is NOT required to be monotone, so a node irrelevant to the current
// q1 is deferred whole (exploreChildren = true) rather than discarded, in
// case a later, wider q1 needs it.
//
// If q0 regresses (the caller did not actually present queries in
// ascending order), the frontier is discarded and the next query runs a
// full fresh traversal from the root, exactly like Tree.Query — observed
// results are identical to Tree.Query regardless of query order.
type SortedQuerent[M any] struct {
	tree   *Tree[M]
	stack  []frontierEntry
	prevQ0 int32
}

// NewSortedQuerent creates a querent over tree. tree must outlive the
// querent.
func NewSortedQuerent[M any](tree *Tree[M]) *SortedQuerent[M] {
	sq := &SortedQuerent[M]{tree: tree}
	sq.reset()
	return sq
}

func (sq *SortedQuerent[M]) reset() {
	sq.stack = sq.stack[:0]
	if len(sq.tree.nodes) > 0 {
		sq.stack = append(sq.stack, frontierEntry{idx: 0, exploreChildren: true})
	}
	sq.prevQ0 = math.MinInt32
}

// Query invokes visit once for every node overlapping [q0, q1]. Results
// are identical to Tree.Query(q0, q1, visit) no matter the order queries
// arrive in; ascending q0 is only an opportunity to do less work, never
// a correctness requirement.
func (sq *SortedQuerent[M]) Query(q0, q1 int32, visit func(*Node[M])) {
	if q0 < sq.prevQ0 {
		sq.reset()
	}
	sq.prevQ0 = q0

	if len(sq.tree.nodes) == 0 {
		return
	}

	next := make([]frontierEntry, 0, len(sq.stack))
	for _, entry := range sq.stack {
		next = sq.absorb(entry, q0, q1, visit, next)
	}
	sq.stack = next
}

// absorb classifies entry's node for the current query and appends to
// next whatever of its subtree should remain in the frontier afterward.
// It is the single place the dead/expand/defer decision is made for an
// as-yet-unexplored subtree (entry.exploreChildren true), applied
// recursively once a child is chosen for expansion; with
// exploreChildren false it only re-checks the node's own interval.
func (sq *SortedQuerent[M]) absorb(entry frontierEntry, q0, q1 int32, visit func(*Node[M]), next []frontierEntry) []frontierEntry {
	idx := entry.idx
	n := &sq.tree.nodes[idx]

	if n.SubtreeLast < q0 {
		// dead: this whole subtree (including this node's own interval,
		// since SubtreeLast >= Last) can never overlap a future query
		// either, since q0 only increases from here. Drop it.
		return next
	}

	if Overlaps(n.First, n.Last, q0, q1) {
		visit(n)
	}

	if entry.exploreChildren {
		if n.Left != noChild {
			next = sq.absorbChild(n.Left, q0, q1, visit, next)
		}
		if n.Right != noChild {
			next = sq.absorbChild(n.Right, q0, q1, visit, next)
		}
	}

	if n.Last >= q0 {
		// This node's own interval might still overlap a future, wider
		// query even though its subtree has now been fully accounted
		// for elsewhere — keep it, but never re-descend from here.
		next = append(next, frontierEntry{idx: idx, exploreChildren: false})
	}

	return next
}

// absorbChild decides, for a child reached from an already-alive parent
// whose children haven't been explored yet this round, whether to expand
// it now (it might matter to the current query) or defer it untouched in
// the frontier (it is alive but irrelevant to this query's q1, so a
// future, wider query may still need it).
func (sq *SortedQuerent[M]) absorbChild(idx int32, q0, q1 int32, visit func(*Node[M]), next []frontierEntry) []frontierEntry {
	n := &sq.tree.nodes[idx]

	if n.SubtreeLast < q0 {
		return next // dead, drop
	}
	if n.SubtreeFirst <= q1 {
		// relevant now: expand from scratch, as a subtree no ancestor
		// has looked at yet this round.
		return sq.absorb(frontierEntry{idx: idx, exploreChildren: true}, q0, q1, visit, next)
	}
	// alive but deferred, whole and untouched, for a future round.
	return append(next, frontierEntry{idx: idx, exploreChildren: true})
}
