package measure

import (
	"github.com/katalvlaran/scagnostics/mstgraph"
	"github.com/katalvlaran/scagnostics/quantile"
)

// Skewed scores the asymmetry of the pruned MST's edge-weight distribution:
// (q90-q50)/(q90-q10), clamped to [0,1]. A zero denominator (every edge the
// same length) scores 0.
//
// A node-count correction factor |nodes|/(|nodes|+c) sometimes appears
// alongside this ratio in other implementations; c has no fixed value
// here, so no such correction is applied.
func Skewed(mst mstgraph.Graph) float64 {
	weights := mst.Weights()
	if len(weights) == 0 {
		return 0
	}

	qs := quantile.MultiQuantile(weights, []float64{0.9, 0.5, 0.1})
	q90, q50, q10 := qs[0], qs[1], qs[2]

	denom := q90 - q10
	if denom == 0 {
		return 0
	}

	return clamp01((q90 - q50) / denom)
}
