package delaunay_test

import (
	"testing"

	"github.com/katalvlaran/scagnostics/delaunay"
	"github.com/katalvlaran/scagnostics/point"
	"github.com/stretchr/testify/require"
)

func TestTriangulate_Square(t *testing.T) {
	sites := []point.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tri, collinear, err := delaunay.Triangulate(sites)
	require.NoError(t, err)
	require.False(t, collinear)
	require.Len(t, tri.Triangles, 2)
	for _, idxs := range tri.Triangles {
		require.NotEqual(t, idxs[0], idxs[1])
		require.NotEqual(t, idxs[1], idxs[2])
		require.NotEqual(t, idxs[0], idxs[2])
	}
}

func TestTriangulate_Grid3x3_AllSitesCovered(t *testing.T) {
	var sites []point.Point
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sites = append(sites, point.Point{X: float64(i), Y: float64(j)})
		}
	}
	tri, collinear, err := delaunay.Triangulate(sites)
	require.NoError(t, err)
	require.False(t, collinear)
	require.NotEmpty(t, tri.Triangles)

	seen := make(map[int]bool)
	for _, idxs := range tri.Triangles {
		seen[idxs[0]] = true
		seen[idxs[1]] = true
		seen[idxs[2]] = true
	}
	require.Len(t, seen, len(sites))
}

func TestTriangulate_Collinear_ReturnsLineFallback(t *testing.T) {
	sites := []point.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	tri, collinear, err := delaunay.Triangulate(sites)
	require.NoError(t, err)
	require.True(t, collinear)
	require.Empty(t, tri.Triangles)
	require.Equal(t, point.Point{X: 0, Y: 0}, tri.Sites[0])
	require.Equal(t, point.Point{X: 4, Y: 4}, tri.Sites[len(tri.Sites)-1])
}

func TestTriangulate_TooFewSites(t *testing.T) {
	_, _, err := delaunay.Triangulate([]point.Point{{0, 0}, {1, 1}})
	require.ErrorIs(t, err, delaunay.ErrTooFewSites)
}
