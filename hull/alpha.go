package hull

import (
	"math"

	"github.com/katalvlaran/scagnostics/delaunay"
	"github.com/katalvlaran/scagnostics/quantile"
)

// AlphaShape builds the alpha-complex boundary of tri's sites: the set of
// triangles whose circumradius does not exceed 1/alpha, partitioned into
// one Polygon per connected boundary component, each ordered
// counter-clockwise around its centroid.
//
// alpha=0 (the default) admits every triangle: this is exactly the convex
// hull. If the chosen alpha leaves no boundary edges (too few triangles
// qualify), AlphaShape falls back to concaveHull1, which relaxes an
// edge-length threshold starting at 1/alpha-0.01 (in steps of 0.01) against
// the triangulation's actual boundary edges until at least one passes.
//
// Collinear sites have no triangulation; AlphaShape returns the sites
// themselves, in the order given by Triangulate, as a single degenerate
// Polygon.
func AlphaShape(tri delaunay.Triangulation, collinear bool, opts ...AlphaOption) []Polygon {
	if collinear {
		return []Polygon{Polygon(tri.Sites)}
	}
	if len(tri.Triangles) == 0 {
		return nil
	}

	cfg := newAlphaConfig(opts)

	threshold := math.Inf(1)
	if cfg.alpha > 0 {
		threshold = 1 / cfg.alpha
	}

	keep := func(i int) bool { return circumradius(tri, i) <= threshold }
	edges := boundaryEdgesFiltered(tri, keep)

	if len(edges) == 0 {
		edges = concaveHull1(tri, threshold)
	}

	return groupIntoPolygons(tri.Sites, edges)
}

// concaveHull1 relaxes an edge-length threshold, starting at start-0.01 and
// incrementing by 0.01, against the triangulation's true boundary edges
// (those appearing exactly once across ALL triangles, regardless of alpha),
// until at least one edge's length is within the threshold.
func concaveHull1(tri delaunay.Triangulation, start float64) []boundaryEdge {
	all := boundaryEdgesFiltered(tri, func(int) bool { return true })
	if len(all) == 0 {
		return nil
	}

	t := start - 0.01
	const maxSteps = 1_000_000
	for step := 0; step < maxSteps; step++ {
		var passing []boundaryEdge
		for _, e := range all {
			if edgeLength(tri, e) <= t {
				passing = append(passing, e)
			}
		}
		if len(passing) > 0 {
			return passing
		}
		t += 0.01
	}

	// Every boundary edge eventually passes once t exceeds the longest
	// edge; returning all of them is the safe terminal fallback.
	return all
}

func edgeLength(tri delaunay.Triangulation, e boundaryEdge) float64 {
	return quantile.Distance(tri.Sites[e.u], tri.Sites[e.v])
}

// circumradius returns the circumradius of triangle i in tri, or +Inf for a
// degenerate (zero-area) triangle so it never qualifies for inclusion.
func circumradius(tri delaunay.Triangulation, i int) float64 {
	idx := tri.Triangles[i]
	a, b, c := tri.Sites[idx[0]], tri.Sites[idx[1]], tri.Sites[idx[2]]

	la := quantile.Distance(b, c)
	lb := quantile.Distance(c, a)
	lc := quantile.Distance(a, b)

	area2 := math.Abs((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
	if area2 == 0 {
		return math.Inf(1)
	}

	return (la * lb * lc) / (2 * area2)
}
