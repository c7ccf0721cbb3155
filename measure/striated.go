package measure

import "github.com/katalvlaran/scagnostics/mstgraph"

// Striated scores how often the pruned MST runs nearly straight through a
// vertex: the fraction of V2 corners (vertices of degree exactly 2) whose interior angle exceeds
// 135 degrees. A tree with no V2 corners scores 0.
func Striated(mst mstgraph.Graph) float64 {
	corners := V2Corners(mst)
	if len(corners) == 0 {
		return 0
	}
	obtuse := ObtuseV2Corners(corners)

	return clamp01(float64(len(obtuse)) / float64(len(corners)))
}
