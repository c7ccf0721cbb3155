package delaunay

import "github.com/katalvlaran/scagnostics/point"

// Triangulation is a flat list of vertex-index triples into Sites. Each
// triangle's three vertices are distinct.
//
// When the input sites are collinear, Triangles is empty and Sites is
// sorted lexicographically (x then y) so that callers can treat consecutive
// sites as the edges of a line graph; Coordinates then returns no triangles.
type Triangulation struct {
	Sites     []point.Point
	Triangles [][3]int
}

// Coordinates returns each triangle as a triple of 2-D points, resolving
// the index triples in Triangles against Sites.
func (t Triangulation) Coordinates() [][3]point.Point {
	out := make([][3]point.Point, len(t.Triangles))
	for i, tri := range t.Triangles {
		out[i] = [3]point.Point{t.Sites[tri[0]], t.Sites[tri[1]], t.Sites[tri[2]]}
	}
	return out
}
