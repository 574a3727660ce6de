package bmssp

import "math"

// tuning holds the derived constants that size the recursion and the
// batched priority structure for a solve over n vertices:
//
//	L    = max(2, ln n)
//	k    = max(2, floor(L^(1/3)))
//	t    = max(1, floor(L^(2/3)))
//	lMax = max(0, ceil(ln(max(2,n)) / max(1,t)))
//
// k is the number of relaxation rounds PivotDiscovery runs and the
// subtree size a root needs to become a pivot, and BaseCase extracts at
// most k+1 vertices per call; t sizes the driver's pull batch
// M = max(1, 2*(l-1)*t) and its k^2*l*t overflow check; lMax bounds the
// recursion depth of the driver.
type tuning struct {
	n    int
	l    float64
	k    int
	t    int
	lMax int
}

func newTuning(n int) tuning {
	L := math.Log(float64(n))
	if L < 2 {
		L = 2
	}

	k := int(math.Floor(math.Pow(L, 1.0/3.0)))
	if k < 2 {
		k = 2
	}

	t := int(math.Floor(math.Pow(L, 2.0/3.0)))
	if t < 1 {
		t = 1
	}

	nn := n
	if nn < 2 {
		nn = 2
	}
	denom := t
	if denom < 1 {
		denom = 1
	}
	lMax := int(math.Ceil(math.Log(float64(nn)) / float64(denom)))
	if lMax < 0 {
		lMax = 0
	}

	return tuning{n: n, l: L, k: k, t: t, lMax: lMax}
}
