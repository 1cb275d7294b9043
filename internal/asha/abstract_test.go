package asha

import "testing"

// TestReverseInorderFibonacciCFG reproduces the canonical worked example
// (the "Fibonacci" shaped CFG: 0->4, 0->1, 1->2, 1->4, 2->3, 2->4, 3->2)
// and checks the traversal order it's meant to illustrate: a reverse-
// inorder DFS from vertex 0 visits the deepest, latest-reached vertices
// first and never revisits a vertex once the cycle through 2/3 is
// entered.
func TestReverseInorderFibonacciCFG(t *testing.T) {
	ids := []int{0, 1, 2, 3, 4}
	edges := []Edge{
		{0, 4}, {0, 1},
		{1, 2}, {1, 4},
		{2, 3}, {2, 4},
		{3, 2},
	}
	g := newTestGraph(ids, edges)

	got := g.reverseInorder(0)
	want := []int{4, 3, 2, 1, 0}

	if len(got) != len(want) {
		t.Fatalf("reverseInorder(0) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reverseInorder(0) = %v, want %v", got, want)
		}
	}
}
