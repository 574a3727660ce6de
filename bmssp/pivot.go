package bmssp

// pivotResult is the output of discoverPivots: P is the set of pivot
// vertices the recursive driver should hand to the next-level BMSSP call,
// and W is the full frontier explored while discovering them (every
// vertex in W already has its best-known distance improved in dist/pred).
type pivotResult struct {
	pivots []int
	w      []int
}

// discoverPivots runs k rounds of bounded Bellman-Ford-style relaxation
// out of the vertices in s (the current working set), then collapses the
// resulting tight-edge forest into a small set of pivots: roots whose
// subtree (by tight predecessor edges) has at least k vertices.
//
// The forest-root test is what lets BMSSP recurse on O(|S|/k) pivots
// instead of the full frontier: a root with a small subtree contributes
// little work relative to the cost of recursing on it separately, so
// only "heavy" roots are promoted to pivots; everything else stays
// folded into w and gets resolved by the caller's bounded base case.
func discoverPivots(g *Graph, dist []float64, pred []int, bound float64, s []int, k int) pivotResult {
	n := g.N()
	inW := make(map[int]bool, len(s)*2)
	w := make([]int, 0, len(s))
	for _, u := range s {
		if !inW[u] {
			inW[u] = true
			w = append(w, u)
		}
	}

	frontier := append([]int(nil), s...)
	limit := k * len(s)
	if limit < k {
		limit = k
	}

	for i := 0; i < k && len(frontier) > 0; i++ {
		next := make([]int, 0, len(frontier))
		for _, u := range frontier {
			du := dist[u]
			for _, e := range g.Neighbors(u) {
				cand := du + e.Weight
				if cand > bound+epsCompare {
					continue
				}
				if cand < dist[e.To]-epsCompare ||
					(cand <= dist[e.To]+epsCompare && (pred[e.To] == -1 || lessTie(cand, u, dist[e.To], pred[e.To]))) {
					dist[e.To] = cand
					pred[e.To] = u
					if !inW[e.To] {
						inW[e.To] = true
						next = append(next, e.To)
					}
				}
			}
		}
		w = append(w, next...)
		if len(w) > limit {
			// Frontier grew past the allotted budget: treat every
			// source vertex as its own pivot rather than paying for
			// forest construction over an oversized w.
			return pivotResult{pivots: append([]int(nil), s...), w: w}
		}
		frontier = next
	}

	// Build the tight-edge forest restricted to w: child -> parent is
	// pred[child] when pred[child] is itself in w (edges reaching back
	// into s or nowhere root the forest).
	inWSet := make(map[int]bool, len(w))
	for _, v := range w {
		inWSet[v] = true
	}
	children := make(map[int][]int, len(w))
	roots := make([]int, 0, len(s))
	sSet := make(map[int]bool, len(s))
	for _, u := range s {
		sSet[u] = true
	}
	for _, v := range w {
		if sSet[v] {
			roots = append(roots, v)
			continue
		}
		p := pred[v]
		if p >= 0 && p < n && inWSet[p] {
			children[p] = append(children[p], v)
		}
	}

	size := computeSubtreeSizes(roots, children)

	pivots := make([]int, 0, len(s))
	for _, r := range roots {
		if size[r] >= k {
			pivots = append(pivots, r)
		}
	}
	if len(pivots) == 0 {
		// Degenerate: nothing qualifies, fall back to the whole
		// working set so the caller always makes progress.
		pivots = append([]int(nil), s...)
	}
	return pivotResult{pivots: pivots, w: w}
}

// lessTie breaks a distance tie in favor of the smaller predecessor id,
// matching the driver's (distance, path length, vertex id) ordering at
// the edge-relaxation granularity: pred comparison stands in for "path
// already recorded" since path length isn't tracked mid-relaxation here.
func lessTie(candDist float64, candPred int, curDist float64, curPred int) bool {
	if candDist+epsCompare < curDist {
		return true
	}
	if curDist+epsCompare < candDist {
		return false
	}
	return candPred < curPred
}

// computeSubtreeSizes returns, for every vertex that appears in the
// forest described by children, the number of vertices in its subtree
// (including itself). It walks the forest with an explicit work stack
// rather than recursion: PivotDiscovery's forest depth is bounded only
// by |W|, and an adversarial chain-shaped graph must not blow the Go
// call stack.
func computeSubtreeSizes(roots []int, children map[int][]int) map[int]int {
	size := make(map[int]int)

	type frame struct {
		v        int
		childIdx int
	}

	for _, root := range roots {
		if _, done := size[root]; done {
			continue
		}
		stack := []frame{{v: root}}
		size[root] = 1
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			kids := children[top.v]
			if top.childIdx < len(kids) {
				c := kids[top.childIdx]
				top.childIdx++
				size[c] = 1
				stack = append(stack, frame{v: c})
				continue
			}
			// Post-order: top.v is fully sized, fold it into its
			// parent (the frame beneath it on the stack, if any)
			// and pop.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				size[parent.v] += size[top.v]
			}
		}
	}
	return size
}
