package asha

// Structural Reducer (spec.md §4.5): repeatedly rewrites the abstract
// graph by absorbing vertices into their parent, in the "No More Gotos"
// tradition. Each pass walks the graph in reverse-inorder from vertex 0
// and tries, at each vertex in turn, the four local rewrites below in
// priority order; the first rewrite that fires anywhere ends the pass,
// and a fresh pass begins from the now-smaller graph. This terminates in
// at most O(V) passes, since every successful rewrite strictly reduces
// the vertex count by at least one.

// absorb folds child into parent: child's subtree is appended to
// parent.Nested, the parent-to-child edge is dropped, every edge that
// used to leave child now leaves parent instead, and any edge that this
// retargeting turns into a self-edge on parent is dropped too. This is
// the single edge-retarget invariant all four rewrites share.
func (g *AbstractGraph) absorb(parent, child *AbstractNode) {
	delete(g.Vertices, child.ID)
	parent.Nested = append(parent.Nested, child)

	var kept []Edge
	for _, e := range g.Edges {
		if e.Src == parent.ID && e.Dst == child.ID {
			continue
		}
		if e.Src == child.ID {
			e = Edge{Src: parent.ID, Dst: e.Dst}
		}
		if e.Src == e.Dst {
			continue
		}
		kept = append(kept, e)
	}
	g.Edges = nil
	for _, e := range kept {
		g.addEdge(e)
	}
}

// trySequence: p has exactly one outgoing edge, to c; c has exactly one
// incoming edge, from p; c has at most one outgoing edge. p's region
// kind is left untouched (it may already be If/IfElse/While from an
// earlier rewrite; absorbing a trailing block in sequence after it is
// exactly how the emitter's "remaining nested siblings" case arises).
func (g *AbstractGraph) trySequence(p *AbstractNode) bool {
	out := g.outEdges(p.ID)
	if len(out) != 1 {
		return false
	}
	c := out[0]
	if c == p.ID {
		return false
	}
	in := g.inEdges(c)
	if len(in) != 1 || in[0] != p.ID {
		return false
	}
	if len(g.outEdges(c)) > 1 {
		return false
	}
	g.absorb(p, g.Vertices[c])
	return true
}

// trySingleWhile: p has exactly two outgoing edges; one successor q has
// a single incoming edge (from p) and a single outgoing edge back to p.
func (g *AbstractGraph) trySingleWhile(p *AbstractNode) bool {
	out := g.outEdges(p.ID)
	if len(out) != 2 {
		return false
	}
	for _, q := range out {
		if q == p.ID {
			continue
		}
		in := g.inEdges(q)
		if len(in) != 1 || in[0] != p.ID {
			continue
		}
		qOut := g.outEdges(q)
		if len(qOut) != 1 || qOut[0] != p.ID {
			continue
		}
		g.absorb(p, g.Vertices[q])
		p.RegionKind = RegionSingleWhile
		return true
	}
	return false
}

// tryIfThen: p has exactly two outgoing edges, to a and b; one of them,
// q, has a single incoming edge (from p), at most one outgoing edge, and
// if it has one it goes to the other sibling r (r != p). q becomes
// p.Nested[0], the then-body.
func (g *AbstractGraph) tryIfThen(p *AbstractNode) bool {
	out := g.outEdges(p.ID)
	if len(out) != 2 {
		return false
	}
	pairs := [2][2]int{{out[0], out[1]}, {out[1], out[0]}}
	for _, pair := range pairs {
		q, r := pair[0], pair[1]
		if q == p.ID || r == p.ID {
			continue
		}
		in := g.inEdges(q)
		if len(in) != 1 || in[0] != p.ID {
			continue
		}
		qOut := g.outEdges(q)
		if len(qOut) > 1 {
			continue
		}
		if len(qOut) == 1 && qOut[0] != r {
			continue
		}
		g.absorb(p, g.Vertices[q])
		p.RegionKind = RegionIf
		return true
	}
	return false
}

// tryIfElse: p has exactly two outgoing edges, to a and b; both have a
// single incoming edge (from p); and either both are terminal (no
// outgoing edges) or both have exactly one outgoing edge to the same
// merge point. a becomes p.Nested[0] (then), b becomes p.Nested[1]
// (else).
func (g *AbstractGraph) tryIfElse(p *AbstractNode) bool {
	out := g.outEdges(p.ID)
	if len(out) != 2 {
		return false
	}
	a, b := out[0], out[1]
	if a == p.ID || b == p.ID {
		return false
	}
	inA, inB := g.inEdges(a), g.inEdges(b)
	if len(inA) != 1 || inA[0] != p.ID {
		return false
	}
	if len(inB) != 1 || inB[0] != p.ID {
		return false
	}
	outA, outB := g.outEdges(a), g.outEdges(b)
	merge := len(outA) == 0 && len(outB) == 0
	if !merge && len(outA) == 1 && len(outB) == 1 && outA[0] == outB[0] {
		merge = true
	}
	if !merge {
		return false
	}
	nodeA, nodeB := g.Vertices[a], g.Vertices[b]
	g.absorb(p, nodeA)
	g.absorb(p, nodeB)
	p.RegionKind = RegionIfElse
	return true
}

// reducePass attempts exactly one rewrite and reports whether it fired.
func (g *AbstractGraph) reducePass(root int) bool {
	for _, id := range g.reverseInorder(root) {
		p, ok := g.Vertices[id]
		if !ok {
			continue
		}
		if g.trySequence(p) {
			return true
		}
		if g.trySingleWhile(p) {
			return true
		}
		if g.tryIfThen(p) {
			return true
		}
		if g.tryIfElse(p) {
			return true
		}
	}
	return false
}

// Reduce repeatedly applies reducePass from root (vertex 0 in practice)
// until no rewrite fires. Any vertices left over are residual: cyclic or
// irreducible shapes that spec.md's Non-goals explicitly exclude from
// recognition (ReductionStuck: not an error, just left in the graph for
// the emitter to turn into goto-labeled sections).
func Reduce(g *AbstractGraph, root int) {
	passes := len(g.Vertices)
	for i := 0; i < passes; i++ {
		if !g.reducePass(root) {
			return
		}
	}
}
