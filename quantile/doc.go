// Package quantile provides the selection and statistics primitives shared
// by the rest of the scagnostics pipeline: an in-place Floyd-Rivest
// quickselect, single- and multi-target quantile extraction built on top of
// it, and small geometry/slice helpers (Euclidean distance, Zip). Packages
// mstgraph, hull, and measure use the distance and quantile functions.
//
// QuickSelect mutates its input; Quantile and MultiQuantile operate on a
// defensive copy so callers' slices are left untouched, matching the rest of
// the pipeline's "each stage treats its input as immutable" convention.
package quantile
