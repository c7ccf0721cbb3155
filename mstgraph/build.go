package mstgraph

import (
	"github.com/katalvlaran/scagnostics/delaunay"
	"github.com/katalvlaran/scagnostics/point"
	"github.com/katalvlaran/scagnostics/quantile"
)

// BuildGraph converts a triangulation into the weighted graph that Kruskal
// runs over: one node per distinct site, one link per distinct triangle
// edge (or, for collinear input, one link per consecutive pair of the
// triangulation's lexicographically sorted sites — the line-graph fallback
// described in package delaunay's doc comment).
func BuildGraph(tri delaunay.Triangulation, collinear bool) Graph {
	if collinear {
		return buildLineGraph(tri.Sites)
	}
	return buildTriangleGraph(tri)
}

// edgeKey is an order-independent identity for a link, used to dedup.
type edgeKey struct{ a, b [2]float64 }

func makeEdgeKey(u, v point.Point) edgeKey {
	uk, vk := u.Key(), v.Key()
	if vk[0] < uk[0] || (vk[0] == uk[0] && vk[1] < uk[1]) {
		uk, vk = vk, uk
	}
	return edgeKey{a: uk, b: vk}
}

func buildLineGraph(sites []point.Point) Graph {
	g := Graph{}
	seenNode := make(map[[2]float64]bool, len(sites))
	seenEdge := make(map[edgeKey]bool)
	for _, s := range sites {
		k := s.Key()
		if !seenNode[k] {
			seenNode[k] = true
			g.Nodes = append(g.Nodes, s)
		}
	}
	for i := 0; i+1 < len(sites); i++ {
		addEdge(&g, seenEdge, sites[i], sites[i+1])
	}
	return g
}

func buildTriangleGraph(tri delaunay.Triangulation) Graph {
	g := Graph{}
	seenNode := make(map[[2]float64]bool)
	seenEdge := make(map[edgeKey]bool)
	for _, idxs := range tri.Triangles {
		a, b, c := tri.Sites[idxs[0]], tri.Sites[idxs[1]], tri.Sites[idxs[2]]
		for _, p := range [3]point.Point{a, b, c} {
			k := p.Key()
			if !seenNode[k] {
				seenNode[k] = true
				g.Nodes = append(g.Nodes, p)
			}
		}
		addEdge(&g, seenEdge, a, b)
		addEdge(&g, seenEdge, b, c)
		addEdge(&g, seenEdge, c, a)
	}
	return g
}

// addEdge appends (u,v) to g.Links unless u and v are the same node (no
// self-loops) or an edge already connects them (dedup by unordered endpoint
// equality, tracked in seen).
func addEdge(g *Graph, seen map[edgeKey]bool, u, v point.Point) {
	if u.Equal(v) {
		return
	}
	key := makeEdgeKey(u, v)
	if seen[key] {
		return
	}
	seen[key] = true
	g.Links = append(g.Links, Link{Source: u, Target: v, Weight: quantile.Distance(u, v)})
}
