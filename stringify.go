package coitrees

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// String returns a hierarchical diagram of the tree's array-parent/child
// shape, a wrapper around Fprint. Useful for debugging small trees only.
func (t Tree[M]) String() string {
	w := new(strings.Builder)
	_ = t.Fprint(w)
	return w.String()
}

// Fprint writes a hierarchical diagram of the tree to w, following
// Left/Right from the root. Unlike the interval-covers-interval diagrams
// the teacher package prints (which need a covers-scan to reconstruct
// parent/child relationships because its backing store has no explicit
// child links), this tree already carries Left/Right indices, so the
// walk is a direct array descent.
func (t Tree[M]) Fprint(w io.Writer) error {
	if len(t.nodes) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}
	return t.fprintNode(w, 0, "")
}

func (t Tree[M]) fprintNode(w io.Writer, idx int32, pad string) error {
	n := &t.nodes[idx]
	if _, err := fmt.Fprintf(w, "%d...%d\n", n.First, n.Last); err != nil {
		return err
	}

	children := make([]int32, 0, 2)
	if n.Left != noChild {
		children = append(children, n.Left)
	}
	if n.Right != noChild {
		children = append(children, n.Right)
	}

	glyph, spacer := "├─ ", "│  "
	for i, child := range children {
		if i == len(children)-1 {
			glyph, spacer = "└─ ", "   "
		}
		if _, err := fmt.Fprint(w, pad+glyph); err != nil {
			return err
		}
		if err := t.fprintNode(w, child, pad+spacer); err != nil {
			return err
		}
	}
	return nil
}

// Statistics returns the maximum BST depth and the mean/standard
// deviation of node depth, reading Left/Right indices instead of the
// teacher's Node pointers. The implicit BST shape depends only on the
// number of intervals, never on their values, so these figures are a
// function of Len alone.
//
// Note: for debugging only, not part of the stable API.
func (t Tree[M]) Statistics() (maxDepth int, average, deviation float64) {
	if len(t.nodes) == 0 {
		return 0, 0, 0
	}

	depths := make(map[int]int)
	t.walkDepths(0, 0, depths)

	var weightedSum, sum int
	for depth, count := range depths {
		weightedSum += depth * count
		sum += count
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	average = float64(weightedSum) / float64(sum)

	var variance float64
	for depth, count := range depths {
		variance += float64(count) * math.Pow(float64(depth)-average, 2.0)
	}
	variance /= float64(sum)
	deviation = math.Sqrt(variance)

	return maxDepth, average, deviation
}

func (t Tree[M]) walkDepths(idx int32, depth int, depths map[int]int) {
	depths[depth]++
	n := &t.nodes[idx]
	if n.Left != noChild {
		t.walkDepths(n.Left, depth+1, depths)
	}
	if n.Right != noChild {
		t.walkDepths(n.Right, depth+1, depths)
	}
}
