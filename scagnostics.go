package scagnostics

import (
	"github.com/katalvlaran/scagnostics/delaunay"
	"github.com/katalvlaran/scagnostics/hexbin"
	"github.com/katalvlaran/scagnostics/hull"
	"github.com/katalvlaran/scagnostics/measure"
	"github.com/katalvlaran/scagnostics/mstgraph"
	"github.com/katalvlaran/scagnostics/point"
)

// Compute runs the full scagnostics pipeline over points and returns every
// intermediate artifact alongside the nine scalar scores.
//
// Compute fails fast with ErrInsufficientPoints for fewer than 3 points, and
// ErrInvalidOption for a malformed Options value. Downstream pipeline
// stages assume validated input; no partial Result is returned on error.
func Compute(points []point.Point, opts Options) (*Result, error) {
	if len(points) < 3 {
		return nil, ErrInsufficientPoints
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	res := &Result{}

	working := points
	if !opts.IsNormalized {
		working = point.Normalize(points)
	}
	res.NormalizedPoints = working

	var sites []point.Point
	if opts.IsBinned {
		sites = point.Distinct(working)
	} else {
		binResult, err := hexbin.Bin(working, opts.hexbinOptions())
		if err != nil {
			return nil, err
		}
		res.Bins = binResult.Bins
		res.BinSize = binResult.GridSize
		res.BinRadius = binResult.Radius
		res.BinningConverged = binResult.Converged
		sites = binResult.Sites()
	}

	tri, collinear, err := delaunay.Triangulate(sites)
	if err != nil {
		return nil, err
	}
	res.Delaunay = tri
	res.Triangles = tri.Triangles
	res.TriangleCoordinates = tri.Coordinates()

	graph := mstgraph.BuildGraph(tri, collinear)
	res.Graph = graph

	mst, err := mstgraph.Kruskal(graph)
	if err != nil {
		return nil, err
	}
	res.MST = mst

	outliers := mstgraph.PruneOutliers(mst, opts.OutlyingUpperBound)
	res.OutlyingScore = outliers.Score
	res.OutlyingUpperBound = outliers.UpperBound
	res.OutlyingLinks = outliers.OutlyingLinks
	res.OutlyingPoints = outliers.OutlyingPoints
	res.NoOutlyingTree = outliers.PrunedMST

	res.ConvexHull = hull.ConvexHull(tri, collinear)

	alpha := 0.0
	if outliers.UpperBound > 0 {
		alpha = 1 / outliers.UpperBound
	}
	res.AlphaHull = hull.AlphaShape(tri, collinear, hull.WithAlpha(alpha))

	prunedMST := outliers.PrunedMST
	res.SkewedScore = measure.Skewed(prunedMST)
	res.SparseScore = measure.Sparse(prunedMST)
	res.ClumpyScore = measure.Clumpy(prunedMST)
	res.StriatedScore = measure.Striated(prunedMST)
	res.ConvexScore = measure.Convex(res.AlphaHull, res.ConvexHull)
	res.SkinnyScore = measure.Skinny(res.AlphaHull)
	res.StringyScore = measure.Stringy(prunedMST)
	res.MonotonicScore = measure.Monotonic(prunedMST)

	res.V1s = measure.V1s(prunedMST)
	res.V2Corners = measure.V2Corners(prunedMST)
	res.ObtuseV2Corners = measure.ObtuseV2Corners(res.V2Corners)

	return res, nil
}
