// Package delaunay computes a 2-D Delaunay triangulation of a site set via
// the incremental Bowyer-Watson algorithm.
//
// Collinear input (every site on one line) has no triangulation: a
// degenerate "fan" of triangles around one site can reference indices
// outside the site slice, so Triangulate reports this case explicitly
// (collinear=true) instead of emitting one. Callers building a graph from
// the result use the lexicographically sorted sites as a line graph
// instead.
package delaunay
