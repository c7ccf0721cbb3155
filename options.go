package scagnostics

import "github.com/katalvlaran/scagnostics/hexbin"

// Options configures Compute. Bin settings left at zero take their
// DefaultOptions values, so the zero value behaves like DefaultOptions.
type Options struct {
	// BinType selects the binning strategy. Zero value defaults to
	// hexbin.Hexagon.
	BinType hexbin.BinType
	// StartBinGridSize is the initial hex grid resolution; default 40.
	StartBinGridSize int
	// MinBins is the minimum acceptable bin count; default 50.
	MinBins int
	// MaxBins is the maximum acceptable bin count; default 500.
	MaxBins int
	// IsNormalized, if true, skips normalization: points are assumed to
	// already lie in [0,1]x[0,1].
	IsNormalized bool
	// IsBinned, if true, skips hexagonal binning: points are treated as
	// sites directly.
	IsBinned bool
	// OutlyingUpperBound, if non-nil, overrides the IQR-derived omega used
	// to prune long MST edges.
	OutlyingUpperBound *float64
}

// DefaultOptions returns Compute's documented defaults: hexagon binning,
// grid size 40, bin-count bounds [50, 500], normalization and binning both
// enabled, and the IQR-derived outlying upper bound.
func DefaultOptions() Options {
	return Options{
		BinType:          hexbin.Hexagon,
		StartBinGridSize: 40,
		MinBins:          50,
		MaxBins:          500,
	}
}

// validate reports ErrInvalidOption for a malformed Options value.
func (o Options) validate() error {
	switch {
	case o.BinType != "" && o.BinType != hexbin.Hexagon:
		return ErrInvalidOption
	case o.StartBinGridSize < 0, o.MinBins < 0, o.MaxBins < 0:
		return ErrInvalidOption
	case o.MinBins > o.MaxBins:
		return ErrInvalidOption
	case o.OutlyingUpperBound != nil && *o.OutlyingUpperBound < 0:
		return ErrInvalidOption
	}
	return nil
}

// hexbinOptions converts o to hexbin.Options, filling in DefaultOptions'
// values for any field left at its zero value.
func (o Options) hexbinOptions() hexbin.Options {
	defaults := hexbin.DefaultOptions()

	binType := o.BinType
	if binType == "" {
		binType = defaults.BinType
	}
	gridSize := o.StartBinGridSize
	if gridSize == 0 {
		gridSize = defaults.StartBinGridSize
	}
	minBins := o.MinBins
	if minBins == 0 {
		minBins = defaults.MinBins
	}
	maxBins := o.MaxBins
	if maxBins == 0 {
		maxBins = defaults.MaxBins
	}

	return hexbin.Options{
		BinType:          binType,
		StartBinGridSize: gridSize,
		MinBins:          minBins,
		MaxBins:          maxBins,
	}
}
