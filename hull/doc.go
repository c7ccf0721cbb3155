// Package hull builds the convex hull and alpha-shape of a site set from
// its Delaunay triangulation, and provides the polygon geometry (area,
// perimeter) the measure package scores them with.
//
// The convex hull is the special case of the alpha-shape at alpha=0: every
// triangle qualifies, so the boundary edges (those appearing in exactly one
// triangle) are exactly the Delaunay triangulation's outer boundary. For
// collinear sites, both return the sites themselves, ordered
// lexicographically, since no triangulation exists to derive a boundary
// from.
package hull
