package bmssp

import "math"

// Solver holds the shared mutable state for one Solve call: the
// tentative distance, predecessor, and path-length tables that every
// level of the recursion reads from and improves in place. A Solver is
// single-use - construct one per Solve call, do not reuse it across
// sources.
type Solver struct {
	g       *Graph
	tune    tuning
	dist    []float64
	pred    []int
	pathLen []int
	source  int
	solved  bool
}

// NewSolver prepares a solver for g rooted at source. source must be a
// valid vertex id; this is a caller contract, enforced with a panic.
func NewSolver(g *Graph, source int) *Solver {
	n := g.N()
	if source < 0 || source >= n {
		panic("bmssp: NewSolver: source out of range")
	}
	dist := make([]float64, n)
	pred := make([]int, n)
	pathLen := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = -1
		pathLen[i] = -1
	}
	dist[source] = 0
	pathLen[source] = 0

	return &Solver{
		g:       g,
		tune:    newTuning(n),
		dist:    dist,
		pred:    pred,
		pathLen: pathLen,
		source:  source,
	}
}

// Solve runs the recursive driver to completion and returns the final
// distance table, indexed by vertex id. Unreachable vertices hold
// math.Inf(1).
func (s *Solver) Solve() []float64 {
	if s.solved {
		return s.dist
	}
	n := s.g.N()
	if n == 0 {
		s.solved = true
		return s.dist
	}
	_, _ = s.bmssp(s.tune.lMax, math.Inf(1), []int{s.source})
	s.solved = true
	return s.dist
}

// Dist returns the solved distance to v, or math.Inf(1) if v is
// unreachable from the source.
func (s *Solver) Dist(v int) float64 { return s.dist[v] }

// Pred returns the predecessor of v on its shortest path, or -1 if v is
// the source or unreachable.
func (s *Solver) Pred(v int) int { return s.pred[v] }

// PathLen returns the number of edges on v's shortest path, or -1 if v
// is unreachable.
func (s *Solver) PathLen(v int) int { return s.pathLen[v] }

// PathTo reconstructs the shortest path from the source to v as a
// sequence of vertex ids, inclusive of both endpoints. It returns nil if
// v is unreachable.
func (s *Solver) PathTo(v int) []int {
	if math.IsInf(s.dist[v], 1) {
		return nil
	}
	path := []int{v}
	for v != s.source {
		v = s.pred[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// relax applies a single candidate improvement, respecting the solver's
// lexicographic (distance, path length, vertex id) tie-break. It returns
// whether the improvement was applied.
func (s *Solver) relax(u, v int, w float64) bool {
	cand := s.dist[u] + w
	cur := s.dist[v]
	if cand < cur-epsCompare {
		s.dist[v] = cand
		s.pred[v] = u
		s.pathLen[v] = s.pathLen[u] + 1
		return true
	}
	if cand <= cur+epsCompare {
		candLen := s.pathLen[u] + 1
		if s.pred[v] == -1 || candLen < s.pathLen[v] || (candLen == s.pathLen[v] && u < s.pred[v]) {
			s.dist[v] = cand
			s.pred[v] = u
			s.pathLen[v] = candLen
			return true
		}
	}
	return false
}

// bmssp is the recursive driver. It returns the boundary value achieved
// (every returned vertex has dist strictly under it, and it never
// exceeds bound) and the set of vertices it settled during this call.
//
// At l==0 it is literally the bounded base case on the single vertex in
// s. At l>0 it discovers pivots, pulls batches of size
// M = max(1, 2*(l-1)*t) from a fresh BatchedPriority, recurses one
// level down on each batch, and feeds newly tightened edges back in -
// as an ordinary insert when the candidate lands in [Bi, bound), or
// into the next BatchPrepend when it lands in [B', Bi) (B' being the
// boundary the sub-call just returned). Any pulled vertex left
// dangling in that same lower band, because the sub-call didn't
// settle it, is carried into the BatchPrepend too.
//
// The loop runs while |U| stays under k^2*max(2,l) and the structure
// isn't drained. A second threshold (k^2*l*t), checked after each
// batch's relax pass, caps the work of a single call: once |U| reaches
// it, the call exits early with retB = min(B', bound) and folds in every
// pivot-discovery vertex still under retB. On an ordinary exit the
// same fold-in happens against bound itself.
func (s *Solver) bmssp(l int, bound float64, set []int) (float64, []int) {
	k, t := s.tune.k, s.tune.t

	if l == 0 {
		if len(set) == 0 {
			return bound, nil
		}
		res := baseCase(s.g, s.dist, s.pred, bound, set[0], k+1)
		s.fixPathLens(res.settled)
		return res.boundary, res.settled
	}

	pr := discoverPivots(s.g, s.dist, s.pred, bound, set, k)
	s.fixPathLens(pr.w)

	d := NewBatchedPriority(bound)
	for _, p := range pr.pivots {
		d.Insert(p, s.dist[p])
	}

	m := 2 * (l - 1) * t
	if m < 1 {
		m = 1
	}
	innerLimit := k * k * l * t
	if innerLimit < 1 {
		innerLimit = 1
	}
	loopLimit := k * k * maxInt(2, l)

	u := make([]int, 0, len(pr.w))
	uSeen := make(map[int]bool, len(pr.w))
	addSettled := func(vs []int) {
		for _, v := range vs {
			if !uSeen[v] {
				uSeen[v] = true
				u = append(u, v)
			}
		}
	}

	for len(u) < loopLimit && !d.IsEmpty() {
		si, bi := d.Pull(m)
		if len(si) == 0 {
			break
		}
		keys := make([]int, len(si))
		for i, r := range si {
			keys[i] = r.key
		}

		var bPrime float64
		var ui []int
		if l == 1 {
			res := baseCase(s.g, s.dist, s.pred, bi, keys[0], k+1)
			bPrime, ui = res.boundary, res.settled
		} else {
			bPrime, ui = s.bmssp(l-1, bi, keys)
		}
		s.fixPathLens(ui)
		addSettled(ui)

		k0 := make([]record, 0, len(ui))
		for _, x := range ui {
			for _, e := range s.g.Neighbors(x) {
				cand := s.dist[x] + e.Weight
				if cand > s.dist[e.To]+epsCompare {
					continue
				}
				s.relax(x, e.To, e.Weight)
				nv := s.dist[e.To]
				switch {
				case bi-epsCompare <= cand && cand < bound-epsCompare:
					d.Insert(e.To, nv)
				case bPrime-epsCompare <= cand && cand < bi-epsCompare:
					k0 = append(k0, record{key: e.To, val: nv})
				}
			}
		}
		for _, x := range keys {
			if bPrime-epsCompare <= s.dist[x] && s.dist[x] < bi-epsCompare {
				k0 = append(k0, record{key: x, val: s.dist[x]})
			}
		}
		if len(k0) > 0 {
			d.BatchPrepend(k0)
		}

		if len(u) >= innerLimit {
			retB := bPrime
			if bound < retB {
				retB = bound
			}
			for _, w := range pr.w {
				if s.dist[w] < retB-epsCompare {
					addSettled([]int{w})
				}
			}
			return retB, u
		}
	}

	for _, w := range pr.w {
		if s.dist[w] < bound-epsCompare {
			addSettled([]int{w})
		}
	}
	return bound, u
}

// fixPathLens recomputes pathLen for freshly touched vertices by walking
// predecessor chains; cheap relative to the relaxation work that
// produced them, and keeps the externally visible PathLen/PathTo
// accessors consistent regardless of which code path last improved a
// vertex.
func (s *Solver) fixPathLens(vs []int) {
	for _, v := range vs {
		if v == s.source {
			s.pathLen[v] = 0
			continue
		}
		p := s.pred[v]
		if p == -1 {
			continue
		}
		s.pathLen[v] = s.pathLen[p] + 1
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
