package point_test

import (
	"testing"

	"github.com/katalvlaran/scagnostics/point"
	"github.com/stretchr/testify/require"
)

func TestNormalize_UnitSquare(t *testing.T) {
	pts := []point.Point{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 20}}
	norm := point.Normalize(pts)
	require.Len(t, norm, 3)
	for _, p := range norm {
		require.GreaterOrEqual(t, p.X, 0.0)
		require.LessOrEqual(t, p.X, 1.0)
		require.GreaterOrEqual(t, p.Y, 0.0)
		require.LessOrEqual(t, p.Y, 1.0)
	}
	require.Equal(t, point.Point{X: 0, Y: 0}, norm[0])
	require.Equal(t, point.Point{X: 1, Y: 1}, norm[2])
}

func TestNormalize_DegenerateAxis(t *testing.T) {
	pts := []point.Point{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}}
	norm := point.Normalize(pts)
	for _, p := range norm {
		require.Equal(t, 0.5, p.X)
	}
}

func TestDistinct_DropsDuplicates(t *testing.T) {
	pts := []point.Point{{1, 1}, {1, 1}, {2, 2}, {1.0000000000001, 1}}
	d := point.Distinct(pts)
	require.Len(t, d, 2)
}

func TestEqual_RoundedTolerance(t *testing.T) {
	a := point.Point{X: 1, Y: 1}
	b := point.Point{X: 1 + 1e-12, Y: 1}
	require.True(t, a.Equal(b))
	c := point.Point{X: 1.001, Y: 1}
	require.False(t, a.Equal(c))
}

func TestSortLex_Deterministic(t *testing.T) {
	pts := []point.Point{{2, 0}, {1, 5}, {1, 1}}
	point.SortLex(pts)
	require.Equal(t, []point.Point{{1, 1}, {1, 5}, {2, 0}}, pts)
}
