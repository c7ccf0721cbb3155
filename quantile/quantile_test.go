package quantile_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/scagnostics/point"
	"github.com/katalvlaran/scagnostics/quantile"
	"github.com/stretchr/testify/require"
)

func TestQuickSelect_MatchesSort(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := make([]float64, 500)
	for i := range data {
		data[i] = r.Float64() * 1000
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	for _, k := range []int{0, 1, 250, 498, 499} {
		cp := append([]float64(nil), data...)
		got := quantile.QuickSelect(cp, k)
		require.InDelta(t, sorted[k], got, 1e-9)
	}
}

func TestQuickSelect_LargeRange_FloydRivestPath(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	data := make([]float64, 2000)
	for i := range data {
		data[i] = r.Float64() * 1000
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	cp := append([]float64(nil), data...)
	got := quantile.QuickSelect(cp, 1000)
	require.InDelta(t, sorted[1000], got, 1e-9)
}

func TestQuantile_Endpoints(t *testing.T) {
	data := []float64{5, 1, 4, 2, 3}
	require.Equal(t, 1.0, quantile.Quantile(data, 0))
	require.Equal(t, 5.0, quantile.Quantile(data, 1))
	// Input must not be mutated.
	require.Equal(t, []float64{5, 1, 4, 2, 3}, data)
}

func TestQuantile_EvenMedianAverages(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	require.InDelta(t, 2.5, quantile.Quantile(data, 0.5), 1e-9)
}

func TestMultiQuantile_MatchesQuantile(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	data := make([]float64, 97)
	for i := range data {
		data[i] = r.Float64() * 500
	}
	ps := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}
	got := quantile.MultiQuantile(data, ps)
	for i, p := range ps {
		want := quantile.Quantile(data, p)
		require.InDelta(t, want, got[i], 1e-9)
	}
}

func TestDistance_Rounded(t *testing.T) {
	d := quantile.Distance(point.Point{X: 0, Y: 0}, point.Point{X: 3, Y: 4})
	require.Equal(t, 5.0, d)
}

func TestZip_TruncatesToShorter(t *testing.T) {
	pairs := quantile.Zip([]int{1, 2, 3}, []string{"a", "b"})
	require.Len(t, pairs, 2)
	require.Equal(t, 1, pairs[0].First)
	require.Equal(t, "b", pairs[1].Second)
}
