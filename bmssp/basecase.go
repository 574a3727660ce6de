package bmssp

import "container/heap"

// pqItem is one entry in the base case's bounded Dijkstra frontier.
type pqItem struct {
	v    int
	dist float64
}

// vertexPQ is a standard container/heap binary min-heap ordered by
// (dist, v) lexicographically. Path length is not part of this order:
// among entries with equal distance the smaller vertex id pops first.
type vertexPQ []pqItem

func (pq vertexPQ) Len() int { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].dist+epsCompare < pq[j].dist {
		return true
	}
	if pq[j].dist+epsCompare < pq[i].dist {
		return false
	}
	return pq[i].v < pq[j].v
}
func (pq vertexPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x any)        { *pq = append(*pq, x.(pqItem)) }
func (pq *vertexPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// baseCaseResult reports the vertices the bounded Dijkstra run settled
// (in nondecreasing distance order) and the boundary value separating
// them from everything left unsettled under bound.
type baseCaseResult struct {
	settled  []int
	boundary float64
}

// baseCase runs a bounded Dijkstra out of the single pivot source,
// extracting vertices until the processed set reaches limit members or
// the queue empties. It is the recursion's l==0 floor: rather than
// recursing further, the driver falls back to ordinary best-first
// search once the remaining work fits in one batch.
//
// dist and pred are the solver's shared tentative-distance tables;
// baseCase only ever improves them, it never resets entries outside its
// own source.
//
// Return contract: if the processed set U0 has at most limit-1
// members, every one of them is already known-final under bound, so
// baseCase hands back (bound, U0) unchanged. Otherwise U0 overflowed
// the batch: B' is set to the largest dHat reached, and only the
// strict subset of U0 lying under B' is reported settled - the
// vertex(es) that hit B' exactly are left for the caller to re-resolve
// at a tighter bound, matching the boundary every other component in
// the driver produces.
func baseCase(g *Graph, dist []float64, pred []int, bound float64, source int, limit int) baseCaseResult {
	k := limit - 1

	pq := &vertexPQ{{v: source, dist: dist[source]}}
	heap.Init(pq)

	settledSet := make(map[int]bool, limit+1)
	settled := make([]int, 0, limit+1)

	for pq.Len() > 0 && len(settled) < limit {
		item := heap.Pop(pq).(pqItem)
		if settledSet[item.v] {
			continue
		}
		if item.dist > dist[item.v]+epsCompare {
			// Stale entry from an earlier, worse push.
			continue
		}
		settledSet[item.v] = true
		settled = append(settled, item.v)

		for _, e := range g.Neighbors(item.v) {
			cand := dist[item.v] + e.Weight
			if cand >= bound-epsCompare {
				continue
			}
			if cand < dist[e.To]-epsCompare ||
				(cand <= dist[e.To]+epsCompare && (pred[e.To] == -1 || lessTie(cand, item.v, dist[e.To], pred[e.To]))) {
				dist[e.To] = cand
				pred[e.To] = item.v
				heap.Push(pq, pqItem{v: e.To, dist: cand})
			}
		}
	}

	if len(settled) <= k {
		return baseCaseResult{settled: settled, boundary: bound}
	}

	bPrime := settled[0]
	for _, v := range settled {
		if dist[v] > dist[bPrime] {
			bPrime = v
		}
	}
	boundary := dist[bPrime]

	filtered := make([]int, 0, len(settled))
	for _, v := range settled {
		if dist[v] < boundary-epsCompare {
			filtered = append(filtered, v)
		}
	}

	return baseCaseResult{settled: filtered, boundary: boundary}
}
