package measure

import (
	"math"

	"github.com/katalvlaran/scagnostics/mstgraph"
)

// obtuseCosineBound is cos(135 degrees) = -sqrt(2)/2: a V2 corner's
// interior angle exceeds 135 degrees exactly when the cosine of the angle
// at its vertex, between its two incident edges, is below this bound.
const obtuseCosineBound = -math.Sqrt2 / 2

// Corner is a V2 vertex (degree exactly 2) together with its two
// neighbors: the (vertex, neighborA, neighborB) triple a "corner" of the
// tree's path is built from.
type Corner struct {
	Vertex    mstgraph.Node
	NeighborA mstgraph.Node
	NeighborB mstgraph.Node
}

// V1s returns every degree-1 node of g, in g.Nodes order.
func V1s(g mstgraph.Graph) []mstgraph.Node {
	deg := mstgraph.Degree(g)

	var out []mstgraph.Node
	for _, n := range g.Nodes {
		if deg[n.Key()] == 1 {
			out = append(out, n)
		}
	}
	return out
}

// V2Corners returns the (vertex, neighborA, neighborB) triple for every
// degree-2 node of g.
func V2Corners(g mstgraph.Graph) []Corner {
	deg := mstgraph.Degree(g)
	adj := mstgraph.Neighbors(g)

	var corners []Corner
	for _, n := range g.Nodes {
		k := n.Key()
		if deg[k] != 2 {
			continue
		}
		links := adj[k]
		if len(links) != 2 {
			continue
		}
		a := other(links[0], n)
		b := other(links[1], n)
		corners = append(corners, Corner{Vertex: n, NeighborA: a, NeighborB: b})
	}

	return corners
}

// ObtuseV2Corners filters corners to those whose interior angle exceeds 135
// degrees (cosine below -sqrt(2)/2).
func ObtuseV2Corners(corners []Corner) []Corner {
	var out []Corner
	for _, c := range corners {
		if cornerCosine(c) < obtuseCosineBound {
			out = append(out, c)
		}
	}
	return out
}

// cornerCosine returns the cosine of the interior angle at c.Vertex between
// the rays to c.NeighborA and c.NeighborB.
func cornerCosine(c Corner) float64 {
	ax, ay := c.NeighborA.X-c.Vertex.X, c.NeighborA.Y-c.Vertex.Y
	bx, by := c.NeighborB.X-c.Vertex.X, c.NeighborB.Y-c.Vertex.Y

	dot := ax*bx + ay*by
	na := math.Hypot(ax, ay)
	nb := math.Hypot(bx, by)
	if na == 0 || nb == 0 {
		return 1 // degenerate: treat as a zero-angle (non-obtuse) corner
	}

	return dot / (na * nb)
}

func other(l mstgraph.Link, n mstgraph.Node) mstgraph.Node {
	if n.Equal(l.Source) {
		return l.Target
	}
	return l.Source
}

// degreeCounts returns the number of nodes of g with degree 1, degree 2 and
// degree 3 or more; Stringy scores from these counts.
func degreeCounts(g mstgraph.Graph) (v1, v2, v3plus int) {
	deg := mstgraph.Degree(g)
	for _, d := range deg {
		switch {
		case d == 1:
			v1++
		case d == 2:
			v2++
		case d >= 3:
			v3plus++
		}
	}
	return v1, v2, v3plus
}
