package coitrees_test

import (
	"math/rand"
	"sort"

	"github.com/noamteyssier/coitrees"
)

// overlaps mirrors coitrees.Overlaps for the brute-force oracle, kept as
// a separate definition so a bug in the real Overlaps wouldn't also hide
// in the test oracle.
func overlaps(firstA, lastA, firstB, lastB int32) bool {
	return firstA <= lastA && firstB <= lastB && firstA <= lastB && lastA >= firstB
}

// bruteQuery returns the metadata of every node in nodes overlapping
// [q0, q1], the reference the tree's Query is checked against.
func bruteQuery(nodes []coitrees.Node[int], q0, q1 int32) []int {
	var hits []int
	for _, n := range nodes {
		if overlaps(n.First, n.Last, q0, q1) {
			hits = append(hits, n.Metadata)
		}
	}
	return hits
}

// bruteCoverage computes coverage by the same sweep Tree.Coverage uses,
// but over nodes pre-sorted by First, exactly as
// original_source/tests/query.rs's brute_force_coverage does.
func bruteCoverage(nodes []coitrees.Node[int], q0, q1 int32) float64 {
	if q1 < q0 {
		return 0
	}

	sorted := make([]coitrees.Node[int], len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].First < sorted[j].First })

	lastCovered := q0 - 1
	var uncovered int64
	found := false
	for _, n := range sorted {
		if !overlaps(n.First, n.Last, q0, q1) {
			continue
		}
		found = true
		if n.First > lastCovered {
			uncovered += int64(n.First) - int64(lastCovered) - 1
		}
		if n.Last > lastCovered {
			lastCovered = n.Last
		}
	}
	if !found {
		return 0
	}
	if lastCovered < q1 {
		uncovered += int64(q1) - int64(lastCovered)
	}

	span := int64(q1) - int64(q0) + 1
	return 1 - float64(uncovered)/float64(span)
}

// sortInts is a tiny helper so test failure messages compare sorted
// slices rather than depending on traversal order, which spec.md §4.6
// explicitly leaves unspecified.
func sortInts(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

// randomInterval mirrors original_source/tests/query.rs's
// random_interval: a uniform-length interval within [minFirst, maxLast].
func randomInterval(rng *rand.Rand, minFirst, maxLast, minLen, maxLen int32) (int32, int32) {
	length := minLen
	if maxLen > minLen {
		length += rng.Int31n(maxLen - minLen + 1)
	}
	start := minFirst
	span := maxLast - length - minFirst + 1
	if span > 0 {
		start += rng.Int31n(span)
	}
	return start, start + length - 1
}

// genRandomNodes generates n random intervals with metadata set to their
// generation index, mirroring tests/query.rs's check_random_queries.
func genRandomNodes(rng *rand.Rand, n int, maxLast, minLen, maxLen int32) []coitrees.Node[int] {
	nodes := make([]coitrees.Node[int], n)
	for i := range nodes {
		first, last := randomInterval(rng, 0, maxLast, minLen, maxLen)
		nodes[i] = coitrees.Node[int]{First: first, Last: last, Metadata: i}
	}
	return nodes
}
