package hexbin

import (
	"errors"

	"github.com/katalvlaran/scagnostics/point"
)

// ErrUnsupportedBinType indicates an Options.BinType other than "hexagon".
var ErrUnsupportedBinType = errors.New("hexbin: unsupported bin type")

// BinType selects the spatial aggregation strategy. Only Hexagon is
// implemented; the type exists so a caller's Options can name the strategy
// explicitly and so future aggregation strategies have a home.
type BinType string

// Hexagon is the only supported BinType.
const Hexagon BinType = "hexagon"

// Options configures the adaptive binner.
type Options struct {
	// BinType selects the aggregation strategy. Zero value defaults to Hexagon.
	BinType BinType
	// StartBinGridSize is the initial hex grid resolution; default 40.
	StartBinGridSize int
	// MinBins is the minimum acceptable bin count; default 50.
	MinBins int
	// MaxBins is the maximum acceptable bin count; default 500.
	MaxBins int
}

// DefaultOptions returns the adaptive binner's documented defaults.
func DefaultOptions() Options {
	return Options{
		BinType:          Hexagon,
		StartBinGridSize: 40,
		MinBins:          50,
		MaxBins:          500,
	}
}

// Cell is a hexagonal aggregation bin: its Center is the site fed to
// Delaunay triangulation, Radius is the hexagon's circumradius (center to
// corner; 0 for the one-bin-per-point fallback), and Points holds every
// original point assigned to this cell.
type Cell struct {
	Center point.Point
	Radius float64
	Points []point.Point
}

// Result is the outcome of an adaptive binning pass.
type Result struct {
	Bins []Cell
	// GridSize is the grid resolution the search settled on (0 in the
	// one-bin-per-point fallback, since no grid was used).
	GridSize int
	// Radius is the hexagon circumradius at GridSize (0 in the fallback).
	Radius float64
	// Converged reports whether the adaptive search found a grid size whose
	// bin count falls within [MinBins, MaxBins] before hitting the
	// iteration cap; false means Bins is the best effort found within the
	// cap.
	Converged bool
}

// Sites returns the bin centers, in Bins order — the point set fed to
// Delaunay triangulation.
func (r Result) Sites() []point.Point {
	sites := make([]point.Point, len(r.Bins))
	for i, b := range r.Bins {
		sites[i] = b.Center
	}
	return sites
}
