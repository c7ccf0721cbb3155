package hull

import "github.com/katalvlaran/scagnostics/delaunay"

// ConvexHull returns the ordered (counter-clockwise) boundary of tri's
// sites. For collinear sites it returns the sites themselves, as
// Triangulate already sorts them.
//
// Internally this is the alpha=0 special case of AlphaShape: every triangle
// qualifies, so the boundary is exactly the triangulation's outer edge. A
// fully triangulated site set has a single connected boundary component; if,
// for a degenerate input, AlphaShape still reports more than one, ConvexHull
// returns the largest (by vertex count) as the hull.
func ConvexHull(tri delaunay.Triangulation, collinear bool) Polygon {
	polys := AlphaShape(tri, collinear, WithAlpha(0))
	if len(polys) == 0 {
		return nil
	}

	largest := polys[0]
	for _, p := range polys[1:] {
		if len(p) > len(largest) {
			largest = p
		}
	}

	return largest
}
