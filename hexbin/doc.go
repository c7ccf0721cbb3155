// Package hexbin implements adaptive hexagonal spatial binning of a
// normalized point scatter: it aggregates nearby points into hexagon-shaped
// bins so that downstream triangulation operates on a bounded number of
// sites rather than on every raw point.
//
// Binning is adaptive: starting from a grid size, it grows or shrinks the
// hexagon grid until the resulting bin count falls within [MinBins, MaxBins],
// capped at maxGridSearchIterations to guarantee termination on pathological
// inputs (see Bin's doc comment for the exact search rule).
package hexbin
