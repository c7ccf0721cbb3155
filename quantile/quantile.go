package quantile

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile (p in [0,1]) of data, without mutating
// data. p=0 returns the minimum, p=1 the maximum. For interior p, let
// idx = n*p: if idx is an integer and n is even, the result is the average
// of the two order statistics straddling idx; otherwise it is the order
// statistic at ceil(idx)-1.
//
// Quantile of an empty slice returns 0 (a defined zero, per the pipeline's
// "numeric edge case" error-handling rule rather than a panic).
func Quantile(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return data[0]
	}

	cp := make([]float64, n)
	copy(cp, data)

	switch {
	case p <= 0:
		return QuickSelect(cp, 0)
	case p >= 1:
		return QuickSelect(cp, n-1)
	}

	idx := float64(n) * p
	if isInteger(idx) && n%2 == 0 {
		i := int(idx)
		vals := selectMultiple(cp, []int{i - 1, i})
		return (vals[i-1] + vals[i]) / 2
	}
	i := int(math.Ceil(idx)) - 1
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return QuickSelect(cp, i)
}

// MultiQuantile returns the p-quantile of data for every p in ps, in the
// same order as ps, without mutating data and performing only one
// quickselect pass per distinct order-statistic index needed (via
// selectMultiple) rather than one full sort.
func MultiQuantile(data []float64, ps []float64) []float64 {
	out := make([]float64, len(ps))
	n := len(data)
	if n == 0 {
		return out
	}
	if n == 1 {
		for i := range out {
			out[i] = data[0]
		}
		return out
	}

	cp := make([]float64, n)
	copy(cp, data)

	// Collect every order-statistic index required across all requested p's.
	type request struct {
		lo, hi   int // one or two indices to average
		needsAvg bool
	}
	reqs := make([]request, len(ps))
	indexSet := make(map[int]struct{})
	for k, p := range ps {
		switch {
		case p <= 0:
			reqs[k] = request{lo: 0}
			indexSet[0] = struct{}{}
		case p >= 1:
			reqs[k] = request{lo: n - 1}
			indexSet[n-1] = struct{}{}
		default:
			idx := float64(n) * p
			if isInteger(idx) && n%2 == 0 {
				i := int(idx)
				reqs[k] = request{lo: i - 1, hi: i, needsAvg: true}
				indexSet[i-1] = struct{}{}
				indexSet[i] = struct{}{}
			} else {
				i := int(math.Ceil(idx)) - 1
				if i < 0 {
					i = 0
				}
				if i > n-1 {
					i = n - 1
				}
				reqs[k] = request{lo: i}
				indexSet[i] = struct{}{}
			}
		}
	}

	idxs := make([]int, 0, len(indexSet))
	for i := range indexSet {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)

	values := selectMultiple(cp, idxs)
	for k, r := range reqs {
		if r.needsAvg {
			out[k] = (values[r.lo] + values[r.hi]) / 2
		} else {
			out[k] = values[r.lo]
		}
	}

	return out
}

// isInteger reports whether f has no fractional part, within a small
// epsilon to absorb floating point noise from n*p.
func isInteger(f float64) bool {
	return math.Abs(f-math.Round(f)) < 1e-9
}
