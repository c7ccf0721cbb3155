package measure_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/scagnostics/hull"
	"github.com/katalvlaran/scagnostics/measure"
	"github.com/katalvlaran/scagnostics/mstgraph"
	"github.com/katalvlaran/scagnostics/point"
	"github.com/stretchr/testify/require"
)

// pathGraph builds a pruned-MST-shaped path 0-1-2-...-(n-1) along the X axis
// with unit-length edges.
func pathGraph(n int) mstgraph.Graph {
	g := mstgraph.Graph{}
	for i := 0; i < n; i++ {
		g.Nodes = append(g.Nodes, point.Point{X: float64(i), Y: 0})
	}
	for i := 0; i < n-1; i++ {
		g.Links = append(g.Links, mstgraph.Link{
			Source: g.Nodes[i],
			Target: g.Nodes[i+1],
			Weight: 1,
		})
	}
	return g
}

// starGraph builds a single center node connected to n leaves, each link
// carrying unit weight (the leaves sit at (i+1, i+1), not at unit distance).
func starGraph(n int) mstgraph.Graph {
	center := point.Point{X: 0, Y: 0}
	g := mstgraph.Graph{Nodes: []point.Point{center}}
	for i := 0; i < n; i++ {
		leaf := point.Point{X: float64(i + 1), Y: float64(i + 1)}
		g.Nodes = append(g.Nodes, leaf)
		g.Links = append(g.Links, mstgraph.Link{Source: center, Target: leaf, Weight: 1})
	}
	return g
}

func TestV1s_PathGraph_EndpointsOnly(t *testing.T) {
	g := pathGraph(5)
	v1 := measure.V1s(g)
	require.Len(t, v1, 2)
}

func TestV2Corners_PathGraph_InteriorNodes(t *testing.T) {
	g := pathGraph(5)
	corners := measure.V2Corners(g)
	require.Len(t, corners, 3)
}

func TestObtuseV2Corners_StraightPath_AllObtuse(t *testing.T) {
	g := pathGraph(5)
	corners := measure.V2Corners(g)
	obtuse := measure.ObtuseV2Corners(corners)
	require.Equal(t, len(corners), len(obtuse), "a straight path has no sharp bends")
}

func TestObtuseV2Corners_RightAngleBend_NotObtuse(t *testing.T) {
	g := mstgraph.Graph{
		Nodes: []point.Point{{0, 0}, {1, 0}, {1, 1}},
		Links: []mstgraph.Link{
			{Source: point.Point{0, 0}, Target: point.Point{1, 0}, Weight: 1},
			{Source: point.Point{1, 0}, Target: point.Point{1, 1}, Weight: 1},
		},
	}
	corners := measure.V2Corners(g)
	require.Len(t, corners, 1)
	obtuse := measure.ObtuseV2Corners(corners)
	require.Empty(t, obtuse, "a 90 degree bend is below the 135 degree obtuse threshold")
}

func TestSkewed_UniformWeights_IsZero(t *testing.T) {
	g := pathGraph(10)
	require.Equal(t, 0.0, measure.Skewed(g))
}

func TestSkewed_EmptyGraph_IsZero(t *testing.T) {
	require.Equal(t, 0.0, measure.Skewed(mstgraph.Graph{}))
}

func TestSparse_UniformUnitWeights(t *testing.T) {
	g := pathGraph(10)
	require.InDelta(t, 1.0, measure.Sparse(g), 1e-9)
}

func TestStriated_PathGraph_AllObtuse(t *testing.T) {
	g := pathGraph(6)
	require.InDelta(t, 1.0, measure.Striated(g), 1e-9)
}

func TestStriated_NoV2Corners_IsZero(t *testing.T) {
	g := starGraph(4)
	require.Equal(t, 0.0, measure.Striated(g))
}

func TestStringy_Classic_PathGraph(t *testing.T) {
	g := pathGraph(6)
	// v1=2, v3plus=0, n=6 => (2-0)/(6-2-0) = 0.5
	require.InDelta(t, 0.5, measure.Stringy(g), 1e-9)
}

func TestStringy_Alternative_PathGraph(t *testing.T) {
	g := pathGraph(6)
	// v1=2, v2=4, n=6 => 4/(6-2) = 1.0
	got := measure.Stringy(g, measure.WithStringyFormula(measure.StringyAlternative))
	require.InDelta(t, 1.0, got, 1e-9)
}

func TestStringy_StarGraph_IsZero(t *testing.T) {
	g := starGraph(5)
	// v1=5, v3plus=1 (center), n=6 => denom = 6-5-1 = 0
	require.Equal(t, 0.0, measure.Stringy(g))
}

func TestClumpy_TwoTightClustersOneBridge(t *testing.T) {
	// Two unit-length edges joined by a long bridge: the bridge is the
	// longest edge overall, so its removal isolates a two-node cluster
	// whose internal edge is short relative to the bridge.
	a, b := point.Point{X: 0, Y: 0}, point.Point{X: 0, Y: 1}
	c, d := point.Point{X: 0, Y: 100}, point.Point{X: 0, Y: 101}
	g := mstgraph.Graph{
		Nodes: []point.Point{a, b, c, d},
		Links: []mstgraph.Link{
			{Source: a, Target: b, Weight: 1},
			{Source: b, Target: c, Weight: 99},
			{Source: c, Target: d, Weight: 1},
		},
	}
	score := measure.Clumpy(g)
	require.Greater(t, score, 0.9)
}

func TestClumpy_FewerThanTwoEdges_IsZero(t *testing.T) {
	g := pathGraph(2)
	require.Equal(t, 0.0, measure.Clumpy(g))
}

func TestClumpy_ConcurrentInvocationsAreRaceFree(t *testing.T) {
	g := pathGraph(30)
	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(rounds)
	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			score := measure.Clumpy(g)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 1.0)
		}()
	}
	wg.Wait()
}

func TestConvex_IdenticalHulls_IsOne(t *testing.T) {
	square := hull.Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	got := measure.Convex([]hull.Polygon{square}, square)
	require.InDelta(t, 1.0, got, 1e-9)
}

func TestConvex_SmallerAlphaHull_LessThanOne(t *testing.T) {
	square := hull.Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	smaller := hull.Polygon{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}}
	got := measure.Convex([]hull.Polygon{smaller}, square)
	require.InDelta(t, 0.25, got, 1e-9)
}

func TestConvex_DegenerateConvexHull_IsZero(t *testing.T) {
	line := hull.Polygon{{0, 0}, {1, 1}}
	got := measure.Convex([]hull.Polygon{line}, line)
	require.Equal(t, 0.0, got)
}

func TestSkinny_Square_IsBelowOne(t *testing.T) {
	square := hull.Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	got := measure.Skinny([]hull.Polygon{square})
	require.Greater(t, got, 0.0)
	require.Less(t, got, 1.0)
}

func TestSkinny_DegenerateHull_IsOne(t *testing.T) {
	got := measure.Skinny(nil)
	require.Equal(t, 1.0, got)
}

func TestMonotonic_PerfectLine_IsOne(t *testing.T) {
	g := mstgraph.Graph{}
	for i := 0; i < 10; i++ {
		g.Nodes = append(g.Nodes, point.Point{X: float64(i), Y: float64(i)})
	}
	require.InDelta(t, 1.0, measure.Monotonic(g), 1e-9)
}

func TestMonotonic_VerticalScatter_IsZero(t *testing.T) {
	g := mstgraph.Graph{
		Nodes: []point.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	}
	require.Equal(t, 0.0, measure.Monotonic(g))
}

func TestMonotonic_SingleNode_IsZero(t *testing.T) {
	g := mstgraph.Graph{Nodes: []point.Point{{0, 0}}}
	require.Equal(t, 0.0, measure.Monotonic(g))
}
