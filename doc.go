// Package coitrees is an immutable, in-memory interval index for fast
// overlap queries over large collections of closed integer intervals.
//
// The implementation is a cache-oblivious interval tree (COITree): an
// implicit, perfectly balanced binary search tree over the intervals,
// physically laid out in van Emde Boas (vEB) order and augmented with
// per-node subtree extents so overlap queries prune effectively. Unlike
// mutable tree packages (see [gaissmai/interval], a treap, and
// [gaissmai/bart], a popcount-compressed trie), this tree is built once
// from a flat slice and never mutated again — there is no insert, upsert
// or delete. That tradeoff buys a flat array representation whose
// traversal locality is independent of any particular cache-line size.
//
// Immutability means a built [Tree] may be shared freely across
// concurrent readers; there is no internal synchronization because there
// is nothing to synchronize.
//
//	Build()        O(n log n)
//	Query()        O(log n + k)
//	QueryCount()   O(log n + k)
//	Coverage()     O(log n + k log k)
//
// where k is the number of intervals overlapping the query.
//
// The algorithm is ported from the coitrees reference implementation
// (Jones, "coitrees": cache oblivious interval trees), which observes
// that an implicit balanced BST laid out in vEB order bounds cache misses
// at O(log_B n) for any block size B, without tuning for a particular
// cache hierarchy.
//
// [gaissmai/interval]: https://github.com/gaissmai/interval
// [gaissmai/bart]: https://github.com/gaissmai/bart
package coitrees
