package hexbin

import (
	"math"
	"sort"

	"github.com/katalvlaran/scagnostics/point"
)

// maxGridSearchIterations bounds the adaptive grid-size search: comfortably
// covers the halve/+5 walk between MinBins and MaxBins for any
// StartBinGridSize up to 10,000 while staying cheap.
const maxGridSearchIterations = 64

// Bin aggregates points into hexagonal bins per opts.
//
// If the number of distinct points (by coordinate equality) is below
// opts.MinBins, Bin emits one zero-radius bin per distinct point, grouping
// duplicate originals into it, and returns immediately.
//
// Otherwise Bin searches for a grid size producing a bin count within
// [opts.MinBins, opts.MaxBins]: starting at opts.StartBinGridSize, it bins
// over [0,1]^2 with short-diagonal = 1/gridSize and radius =
// shortDiagonal/sqrt(2); if the resulting bin count exceeds opts.MaxBins it
// halves the grid size, if it falls below opts.MinBins it adds 5, and
// repeats. The search is capped at maxGridSearchIterations: if it has not
// converged by then, Bin returns the last attempt with Result.Converged set
// to false rather than looping forever.
func Bin(points []point.Point, opts Options) (Result, error) {
	if opts.BinType != "" && opts.BinType != Hexagon {
		return Result{}, ErrUnsupportedBinType
	}

	distinct := point.Distinct(points)
	if len(distinct) < opts.MinBins {
		return oneBinPerPoint(points, distinct), nil
	}

	gridSize := opts.StartBinGridSize
	if gridSize < 1 {
		gridSize = 1
	}

	var last Result
	for i := 0; i < maxGridSearchIterations; i++ {
		shortDiagonal := 1.0 / float64(gridSize)
		radius := shortDiagonal / math.Sqrt2

		bins := hexAssign(points, radius)
		last = Result{Bins: bins, GridSize: gridSize, Radius: radius}

		switch {
		case len(bins) > opts.MaxBins:
			gridSize = gridSize / 2
			if gridSize < 1 {
				gridSize = 1
			}
		case len(bins) < opts.MinBins:
			gridSize += 5
		default:
			last.Converged = true
			return last, nil
		}
	}

	return last, nil
}

// oneBinPerPoint emits one radius-0 bin per distinct coordinate, each
// grouping every original point that shares that coordinate.
func oneBinPerPoint(points []point.Point, distinct []point.Point) Result {
	index := make(map[[2]float64]int, len(distinct))
	bins := make([]Cell, len(distinct))
	for i, d := range distinct {
		index[d.Key()] = i
		bins[i] = Cell{Center: d}
	}
	for _, p := range points {
		i := index[p.Key()]
		bins[i].Points = append(bins[i].Points, p)
	}

	return Result{Bins: bins, Converged: true}
}

// hexAssign assigns every point to a hexagonal cell of circumradius r,
// using the standard axial hex-grid nearest-center rule (pointy-top
// hexagons, rows offset by half a cell on odd rows), and returns one Cell
// per occupied grid position with a deterministic (row, then column)
// ordering.
func hexAssign(points []point.Point, r float64) []Cell {
	dx := r * math.Sqrt(3)
	dy := r * 1.5

	type cellKey struct{ i, j int }
	cells := make(map[cellKey]*Cell)
	order := make([]cellKey, 0)

	for _, p := range points {
		i, j := hexCell(p.X, p.Y, dx, dy)
		k := cellKey{i, j}
		b, ok := cells[k]
		if !ok {
			cx := (float64(i) + halfOffset(j)) * dx
			cy := float64(j) * dy
			b = &Cell{Center: point.Point{X: cx, Y: cy}, Radius: r}
			cells[k] = b
			order = append(order, k)
		}
		b.Points = append(b.Points, p)
	}

	sort.Slice(order, func(a, b int) bool {
		if order[a].j != order[b].j {
			return order[a].j < order[b].j
		}
		return order[a].i < order[b].i
	})

	bins := make([]Cell, len(order))
	for idx, k := range order {
		bins[idx] = *cells[k]
	}

	return bins
}

// halfOffset returns 0.5 for odd rows, 0 for even rows: odd rows of
// pointy-top hexagons are shifted half a cell width to interlock with their
// neighbors.
func halfOffset(j int) float64 {
	if j&1 != 0 {
		return 0.5
	}
	return 0
}

// hexCell finds the hexagonal cell containing (x,y), choosing between the
// two candidate rows straddling y/dy and picking whichever candidate center
// is nearer, per the standard hex-bin nearest-center construction.
func hexCell(x, y, dx, dy float64) (int, int) {
	py := y / dy
	pj := math.Round(py)
	px := x/dx - halfOffset(int(pj))
	pi := math.Round(px)
	py1 := py - pj

	if math.Abs(py1)*3 > 1 {
		px1 := px - pi
		var piAlt, pjAlt float64
		if px < pi {
			piAlt = pi - 0.5
		} else {
			piAlt = pi + 0.5
		}
		if py < pj {
			pjAlt = pj - 1
		} else {
			pjAlt = pj + 1
		}
		px2 := px - piAlt
		py2 := py - pjAlt
		if px1*px1+py1*py1 > px2*px2+py2*py2 {
			if int(pj)&1 != 0 {
				pi = piAlt + 0.5
			} else {
				pi = piAlt - 0.5
			}
			pj = pjAlt
		}
	}

	return int(pi), int(pj)
}
