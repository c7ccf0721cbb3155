package scagnostics

import "errors"

// ErrInsufficientPoints indicates fewer than 3 points were given to Compute.
var ErrInsufficientPoints = errors.New("scagnostics: at least 3 points are required")

// ErrInvalidOption indicates an Options value that cannot be satisfied:
// negative bin sizes, MinBins > MaxBins, or an unsupported BinType.
var ErrInvalidOption = errors.New("scagnostics: invalid option")
