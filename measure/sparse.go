package measure

import (
	"github.com/katalvlaran/scagnostics/mstgraph"
	"github.com/katalvlaran/scagnostics/quantile"
)

// Sparse scores how spread out the pruned MST's edges are: the 0.9
// quantile of edge weights, clamped to [0,1].
func Sparse(mst mstgraph.Graph) float64 {
	weights := mst.Weights()
	if len(weights) == 0 {
		return 0
	}
	return clamp01(quantile.Quantile(weights, 0.9))
}
