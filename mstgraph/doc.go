// Package mstgraph builds the weighted graph implied by a Delaunay
// triangulation (or, for collinear input, a line graph), reduces it to a
// minimum spanning tree via Kruskal's algorithm with union-find, and prunes
// long outlying edges from the MST using an IQR-derived upper bound.
//
// Node identity is by rounded coordinate (see point.Point.Key), not by a
// formatted string: two nodes are the same node iff both coordinates are
// equal after rounding to 1e-10.
package mstgraph
