package scagnostics

import (
	"github.com/katalvlaran/scagnostics/delaunay"
	"github.com/katalvlaran/scagnostics/hexbin"
	"github.com/katalvlaran/scagnostics/hull"
	"github.com/katalvlaran/scagnostics/measure"
	"github.com/katalvlaran/scagnostics/mstgraph"
	"github.com/katalvlaran/scagnostics/point"
)

// Result is the complete output of Compute: every intermediate artifact of
// the pipeline alongside the nine scagnostic scores, so a caller can
// inspect or render any stage without recomputing it.
type Result struct {
	NormalizedPoints []point.Point

	Bins      []hexbin.Cell
	BinSize   int
	BinRadius float64
	// BinningConverged reports whether adaptive binning found a grid size
	// within [MinBins, MaxBins] before hitting the iteration cap. false
	// means Bins is the best effort found within that cap; this is never
	// surfaced as an error.
	BinningConverged bool

	Delaunay            delaunay.Triangulation
	Triangles           [][3]int
	TriangleCoordinates [][3]point.Point

	Graph mstgraph.Graph
	MST   mstgraph.Graph

	OutlyingScore      float64
	OutlyingUpperBound float64
	OutlyingLinks      []mstgraph.Link
	OutlyingPoints     []point.Point
	NoOutlyingTree     mstgraph.Graph

	ConvexHull hull.Polygon
	AlphaHull  []hull.Polygon

	SkewedScore    float64
	SparseScore    float64
	ClumpyScore    float64
	StriatedScore  float64
	ConvexScore    float64
	SkinnyScore    float64
	StringyScore   float64
	MonotonicScore float64

	V1s             []point.Point
	V2Corners       []measure.Corner
	ObtuseV2Corners []measure.Corner
}
