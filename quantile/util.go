package quantile

import (
	"math"

	"github.com/katalvlaran/scagnostics/point"
)

// weightRoundTo is the precision edge weights are rounded to for stable
// comparisons (sorting, equality checks) downstream in mstgraph.
const weightRoundTo = 1e10

// Distance returns the Euclidean distance between a and b, rounded to
// 1e-10 so that equal-length edges compare equal despite floating point
// noise.
func Distance(a, b point.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	d := math.Sqrt(dx*dx + dy*dy)
	return math.Round(d*weightRoundTo) / weightRoundTo
}

// Sum returns the sum of xs.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// Pair bundles two values of possibly-different types, as produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up corresponding elements of a and b, truncating to the shorter
// slice's length.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}
