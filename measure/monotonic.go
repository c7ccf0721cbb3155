package measure

import (
	"math"
	"sort"

	"github.com/katalvlaran/scagnostics/mstgraph"
)

// Monotonic scores how monotone the relationship between a scatter's X and Y
// is: the squared Spearman rank correlation of the pruned MST's node
// coordinates. Fewer than 2 nodes, or a coordinate with no variance in rank,
// scores 0.
//
// Rank correlation is computed directly: ranks are assigned with ties
// averaged, then Pearson correlation is taken over the rank sequences.
func Monotonic(mst mstgraph.Graph) float64 {
	n := len(mst.Nodes)
	if n < 2 {
		return 0
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, node := range mst.Nodes {
		xs[i] = node.X
		ys[i] = node.Y
	}

	rx := rank(xs)
	ry := rank(ys)

	rho := pearson(rx, ry)

	return clamp01(rho * rho)
}

// rank assigns each element of xs its 1-based rank among xs, averaging ranks
// across tied values.
func rank(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j < n && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// Positions i..j-1 (0-based) are tied; their shared rank is the
		// average of the 1-based positions i+1..j.
		avgRank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avgRank
		}
		i = j
	}

	return ranks
}

// pearson returns the Pearson correlation coefficient of a and b, or 0 if
// either has zero variance.
func pearson(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}

	var sumA, sumB float64
	for i := 0; i < n; i++ {
		sumA += a[i]
		sumB += b[i]
	}
	meanA, meanB := sumA/float64(n), sumB/float64(n)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0
	}

	return cov / math.Sqrt(varA*varB)
}
