// Package scagnostics computes scagnostics — scatter-plot diagnostics — for
// a 2-D point scatter: nine scalar scores (Outlying, Skewed, Sparse, Clumpy,
// Striated, Convex, Skinny, Stringy, Monotonic) plus the geometric artifacts they are
// derived from (hex bins, Delaunay triangulation, minimum spanning tree,
// pruned MST, convex hull, alpha hull).
//
// The pipeline, end to end:
//
//	normalize -> hex-bin -> Delaunay triangulate bin centers -> build graph
//	-> Kruskal MST -> prune long edges (IQR) -> convex hull / alpha hull
//	-> nine scalar measures
//
// Compute is the package's single entry point; it is a pure function from
// points and Options to a Result, with no file I/O, no environment reads,
// and no persisted state. Each pipeline stage lives in its own subpackage:
//
//	point/      — the Point type, normalization, dedup
//	quantile/   — Floyd-Rivest quickselect, quantiles
//	hexbin/     — adaptive hexagonal binning
//	delaunay/   — Bowyer-Watson triangulation
//	mstgraph/   — graph construction, Kruskal MST, outlier pruning
//	hull/       — convex hull and alpha-shape geometry
//	measure/    — the nine scagnostic measures
package scagnostics
