package coitrees_test

import (
	"math/rand"
	"testing"

	"github.com/noamteyssier/coitrees"
)

// checkSortedQuerentQueries feeds random queries, sorted by q0, through a
// SortedQuerent and checks every answer against the brute-force oracle.
// Mirrors original_source/tests/query.rs's check_sorted_querent_queries.
func checkSortedQuerentQueries(t *testing.T, seed int64, nNodes, nQueries int, maxLast, minLen, maxLen int32) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	nodes := genRandomNodes(rng, nNodes, maxLast, minLen, maxLen)
	tree := coitrees.Build(nodes)

	type query = struct{ q0, q1 int32 }
	queries := make([]query, nQueries)
	for i := range queries {
		q0, q1 := randomInterval(rng, 0, maxLast, 1, maxLen)
		queries[i] = query{q0, q1}
	}
	sortQueriesByQ0(queries)

	sq := coitrees.NewSortedQuerent(&tree)
	for _, q := range queries {
		want := sortInts(bruteQuery(nodes, q.q0, q.q1))

		var got []int
		sq.Query(q.q0, q.q1, func(n *coitrees.Node[int]) { got = append(got, n.Metadata) })
		got = sortInts(got)

		if len(got) != len(want) {
			t.Fatalf("sorted query [%d,%d]: got %d hits, want %d (got=%v want=%v)", q.q0, q.q1, len(got), len(want), got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("sorted query [%d,%d]: hit %d differs: got %v want %v", q.q0, q.q1, i, got, want)
			}
		}
	}
}

func sortQueriesByQ0(qs []struct{ q0, q1 int32 }) {
	for i := 1; i < len(qs); i++ {
		for j := i; j > 0 && qs[j].q0 < qs[j-1].q0; j-- {
			qs[j], qs[j-1] = qs[j-1], qs[j]
		}
	}
}

func TestSortedQuerentAscendingQueries(t *testing.T) {
	for n := 0; n <= 15; n++ {
		checkSortedQuerentQueries(t, int64(2000+n), n, 100, 1000, 1, 100)
	}
	checkSortedQuerentQueries(t, 99, 5000, 400, 500_000, 1, 5000)
}

// TestSortedQuerentUnsortedQueries checks that SortedQuerent still
// returns correct (if less efficiently computed) answers when fed
// queries whose q0 is not actually ascending: a regression in q0
// triggers a fresh traversal rather than returning stale results.
// Mirrors check_sorted_querent_unsorted_queries.
func TestSortedQuerentUnsortedQueries(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	nodes := genRandomNodes(rng, 400, 100_000, 1, 1000)
	tree := coitrees.Build(nodes)
	sq := coitrees.NewSortedQuerent(&tree)

	for q := 0; q < 300; q++ {
		q0, q1 := randomInterval(rng, 0, 100_000, 1, 5000)

		want := sortInts(bruteQuery(nodes, q0, q1))
		var got []int
		sq.Query(q0, q1, func(n *coitrees.Node[int]) { got = append(got, n.Metadata) })
		got = sortInts(got)

		if len(got) != len(want) {
			t.Fatalf("unsorted query %d [%d,%d]: got %d hits, want %d", q, q0, q1, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unsorted query %d [%d,%d]: hit %d differs: got %v want %v", q, q0, q1, i, got, want)
			}
		}
	}
}

// TestSortedQuerentMatchesTreeQuery runs the exact same ascending query
// sequence through both Tree.Query and SortedQuerent and checks their
// results never diverge, query by query.
func TestSortedQuerentMatchesTreeQuery(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	nodes := genRandomNodes(rng, 2000, 200_000, 1, 3000)
	tree := coitrees.Build(nodes)
	sq := coitrees.NewSortedQuerent(&tree)

	q0 := int32(0)
	for i := 0; i < 500; i++ {
		q0 += rng.Int31n(500)
		length := int32(1 + rng.Intn(2000))
		q1 := q0 + length

		var want []int
		tree.Query(q0, q1, func(n *coitrees.Node[int]) { want = append(want, n.Metadata) })
		want = sortInts(want)

		var got []int
		sq.Query(q0, q1, func(n *coitrees.Node[int]) { got = append(got, n.Metadata) })
		got = sortInts(got)

		if len(got) != len(want) {
			t.Fatalf("step %d query [%d,%d]: got %d hits, want %d", i, q0, q1, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("step %d query [%d,%d]: hit %d differs: got %v want %v", i, q0, q1, j, got, want)
			}
		}
	}
}

func TestSortedQuerentEmptyTree(t *testing.T) {
	tree := coitrees.Build([]coitrees.Node[int]{})
	sq := coitrees.NewSortedQuerent(&tree)
	sq.Query(0, 100, func(*coitrees.Node[int]) {
		t.Fatal("Query invoked visit on empty tree")
	})
}
