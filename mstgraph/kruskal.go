package mstgraph

import "sort"

// Kruskal computes the minimum spanning tree of g using Kruskal's algorithm
// with union-find (union by rank, path compression).
//
// Edges are considered in ascending weight order; ties are broken by the
// edge's position in g.Links (stable sort), which is itself deterministic
// (insertion order from BuildGraph).
//
// If g has zero nodes, or more than one node but is not fully connected,
// Kruskal returns ErrDisconnected.
func Kruskal(g Graph) (Graph, error) {
	n := len(g.Nodes)
	if n == 0 {
		return Graph{}, ErrDisconnected
	}
	if n == 1 {
		return Graph{Nodes: []Node{g.Nodes[0]}}, nil
	}

	links := make([]Link, len(g.Links))
	copy(links, g.Links)
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Weight < links[j].Weight
	})

	uf := newUnionFind(g.Nodes)

	mst := Graph{Nodes: append([]Node(nil), g.Nodes...)}
	for _, l := range links {
		if uf.union(l.Source.Key(), l.Target.Key()) {
			mst.Links = append(mst.Links, l)
			if len(mst.Links) == n-1 {
				break
			}
		}
	}

	if len(mst.Links) != n-1 {
		return Graph{}, ErrDisconnected
	}

	return mst, nil
}

// unionFind is a disjoint-set over node keys, with union by rank and path
// compression.
type unionFind struct {
	parent map[[2]float64][2]float64
	rank   map[[2]float64]int
}

func newUnionFind(nodes []Node) *unionFind {
	uf := &unionFind{
		parent: make(map[[2]float64][2]float64, len(nodes)),
		rank:   make(map[[2]float64]int, len(nodes)),
	}
	for _, n := range nodes {
		k := n.Key()
		uf.parent[k] = k
		uf.rank[k] = 0
	}
	return uf
}

func (uf *unionFind) find(x [2]float64) [2]float64 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing x and y, returning true if they were
// previously distinct (i.e. the edge (x,y) does not create a cycle).
func (uf *unionFind) union(x, y [2]float64) bool {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return false
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	return true
}
