// Package measure computes eight of the nine scagnostic scores — Skewed,
// Sparse, Clumpy, Striated, Convex, Skinny, Stringy, Monotonic — from a
// pruned minimum spanning tree and its associated convex/alpha hulls (the
// ninth, Outlying, comes from mstgraph.PruneOutliers), plus the
// derived V1/V2/obtuse-V2-corner vertex classifications every topological
// measure is built on.
//
// Every measure is a pure function over its inputs; none mutates the
// mstgraph.Graph or hull.Polygon values it is given. Clumpy's per-edge
// evaluation runs on a small bounded worker pool (see clumpy.go) since its
// per-edge subtree search is the one measure expensive enough to be worth
// parallelizing.
package measure
