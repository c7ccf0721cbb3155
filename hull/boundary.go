package hull

import (
	"math"
	"sort"

	"github.com/katalvlaran/scagnostics/delaunay"
	"github.com/katalvlaran/scagnostics/point"
)

type boundaryEdge struct{ u, v int }

// boundaryEdgesFiltered returns the edges that appear in exactly one kept
// triangle of tri (keep(i) selects triangle i by index into tri.Triangles).
func boundaryEdgesFiltered(tri delaunay.Triangulation, keep func(i int) bool) []boundaryEdge {
	type key struct{ a, b int }
	norm := func(a, b int) key {
		if a > b {
			a, b = b, a
		}
		return key{a, b}
	}

	count := make(map[key]int)
	for i, t := range tri.Triangles {
		if !keep(i) {
			continue
		}
		count[norm(t[0], t[1])]++
		count[norm(t[1], t[2])]++
		count[norm(t[2], t[0])]++
	}

	var edges []boundaryEdge
	for k, c := range count {
		if c == 1 {
			edges = append(edges, boundaryEdge{u: k.a, v: k.b})
		}
	}
	// Deterministic order for downstream grouping.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})

	return edges
}

// groupIntoPolygons partitions edges into connected components by shared
// endpoint (union-find over vertex indices into sites), then orders each
// component's vertices counter-clockwise by angle around its centroid.
func groupIntoPolygons(sites []point.Point, edges []boundaryEdge) []Polygon {
	if len(edges) == 0 {
		return nil
	}

	parent := make(map[int]int)
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	ensure := func(x int) {
		if _, ok := parent[x]; !ok {
			parent[x] = x
		}
	}

	for _, e := range edges {
		ensure(e.u)
		ensure(e.v)
		union(e.u, e.v)
	}

	components := make(map[int][]int)
	for v := range parent {
		r := find(v)
		components[r] = append(components[r], v)
	}

	// Deterministic component order: by the index of each component's
	// union-find root.
	roots := make([]int, 0, len(components))
	for r := range components {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	polys := make([]Polygon, 0, len(roots))
	for _, r := range roots {
		verts := components[r]
		polys = append(polys, orderCCW(sites, verts))
	}

	return polys
}

// orderCCW returns the points at the given vertex indices, sorted
// counter-clockwise by angle around their centroid.
func orderCCW(sites []point.Point, verts []int) Polygon {
	var cx, cy float64
	for _, v := range verts {
		cx += sites[v].X
		cy += sites[v].Y
	}
	n := float64(len(verts))
	cx /= n
	cy /= n

	sort.Slice(verts, func(i, j int) bool {
		pi, pj := sites[verts[i]], sites[verts[j]]
		ai := math.Atan2(pi.Y-cy, pi.X-cx)
		aj := math.Atan2(pj.Y-cy, pj.X-cx)
		return ai < aj
	})

	poly := make(Polygon, len(verts))
	for i, v := range verts {
		poly[i] = sites[v]
	}
	return poly
}
