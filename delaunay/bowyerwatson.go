package delaunay

import (
	"math"

	"github.com/katalvlaran/scagnostics/point"
)

// Triangulate computes the Delaunay triangulation of sites via the
// incremental Bowyer-Watson algorithm.
//
// If sites are collinear, Triangulate returns collinear=true and a
// Triangulation whose Sites are sorted lexicographically (x then y) and
// whose Triangles is empty; callers build a line graph from consecutive
// sites instead (see package doc).
//
// Triangulate requires at least 3 sites.
func Triangulate(sites []point.Point) (Triangulation, bool, error) {
	if len(sites) < 3 {
		return Triangulation{}, false, ErrTooFewSites
	}

	if isCollinear(sites) {
		sorted := append([]point.Point(nil), sites...)
		point.SortLex(sorted)
		return Triangulation{Sites: sorted}, true, nil
	}

	tris := bowyerWatson(sites)

	return Triangulation{Sites: sites, Triangles: tris}, false, nil
}

// triangle indexes three vertices into the working point list (original
// sites followed by three super-triangle vertices appended at the end).
type triangle struct {
	a, b, c int
}

// bowyerWatson runs the incremental algorithm and returns triangles indexed
// into the original sites slice only (super-triangle vertices filtered out).
func bowyerWatson(sites []point.Point) [][3]int {
	n := len(sites)

	minX, minY := sites[0].X, sites[0].Y
	maxX, maxY := sites[0].X, sites[0].Y
	for _, p := range sites[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax == 0 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	// A super-triangle comfortably containing the bounding box of sites.
	superA := point.Point{X: midX - 20*deltaMax, Y: midY - deltaMax}
	superB := point.Point{X: midX, Y: midY + 20*deltaMax}
	superC := point.Point{X: midX + 20*deltaMax, Y: midY - deltaMax}

	pts := make([]point.Point, n, n+3)
	copy(pts, sites)
	pts = append(pts, superA, superB, superC)
	superIdx := [3]int{n, n + 1, n + 2}

	tris := []triangle{{superIdx[0], superIdx[1], superIdx[2]}}

	for i := 0; i < n; i++ {
		p := pts[i]

		var bad []triangle
		badSet := make(map[triangle]bool)
		for _, tr := range tris {
			if inCircumcircle(pts, tr, p) {
				bad = append(bad, tr)
				badSet[tr] = true
			}
		}

		// Boundary of the polygonal hole: edges that belong to exactly one
		// bad triangle.
		type edge struct{ u, v int }
		edgeCount := make(map[edge]int)
		addEdge := func(u, v int) {
			if u > v {
				u, v = v, u
			}
			edgeCount[edge{u, v}]++
		}
		for _, tr := range bad {
			addEdge(tr.a, tr.b)
			addEdge(tr.b, tr.c)
			addEdge(tr.c, tr.a)
		}

		var boundary []edge
		for _, tr := range bad {
			for _, e := range [][2]int{{tr.a, tr.b}, {tr.b, tr.c}, {tr.c, tr.a}} {
				u, v := e[0], e[1]
				key := edge{u, v}
				if key.u > key.v {
					key.u, key.v = key.v, key.u
				}
				if edgeCount[key] == 1 {
					boundary = append(boundary, edge{u, v})
				}
			}
		}

		// Remove bad triangles.
		kept := tris[:0:0]
		for _, tr := range tris {
			if !badSet[tr] {
				kept = append(kept, tr)
			}
		}
		tris = kept

		// Re-triangulate the hole by connecting p to every boundary edge.
		for _, e := range boundary {
			tris = append(tris, triangle{e.u, e.v, i})
		}
	}

	out := make([][3]int, 0, len(tris))
	for _, tr := range tris {
		if tr.a >= n || tr.b >= n || tr.c >= n {
			continue
		}
		out = append(out, [3]int{tr.a, tr.b, tr.c})
	}

	return out
}

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// triangle tr (vertices resolved against pts).
func inCircumcircle(pts []point.Point, tr triangle, p point.Point) bool {
	a, b, c := pts[tr.a], pts[tr.b], pts[tr.c]

	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	// The sign convention depends on the triangle's orientation; normalize
	// by orienting a,b,c counter-clockwise first.
	if signedArea2(a, b, c) < 0 {
		det = -det
	}

	return det > 1e-12
}

// signedArea2 returns twice the signed area of triangle (a,b,c): positive
// for counter-clockwise orientation.
func signedArea2(a, b, c point.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}
