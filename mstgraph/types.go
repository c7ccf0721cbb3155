package mstgraph

import "github.com/katalvlaran/scagnostics/point"

// Node is a graph vertex, identified by its 2-D coordinate.
type Node = point.Point

// Link is an undirected, weighted edge between two Nodes. Weight is the
// Euclidean distance between Source and Target, rounded to 1e-10.
//
// A Link (u,v) is considered equal to (v,u): Graph deduplicates by
// unordered endpoint equality.
type Link struct {
	Source Node
	Target Node
	Weight float64
}

// Graph is an undirected, weighted graph: no duplicate links, no
// self-loops.
type Graph struct {
	Nodes []Node
	Links []Link
}

// TotalWeight returns the sum of every link's weight.
func (g Graph) TotalWeight() float64 {
	var sum float64
	for _, l := range g.Links {
		sum += l.Weight
	}
	return sum
}

// Weights returns the weight of every link, in Links order.
func (g Graph) Weights() []float64 {
	out := make([]float64, len(g.Links))
	for i, l := range g.Links {
		out[i] = l.Weight
	}
	return out
}

// Degree returns, for every node (keyed by its rounded coordinate), the
// number of links incident to it.
func Degree(g Graph) map[[2]float64]int {
	deg := make(map[[2]float64]int, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.Key()] = 0
	}
	for _, l := range g.Links {
		deg[l.Source.Key()]++
		deg[l.Target.Key()]++
	}
	return deg
}

// Neighbors returns an adjacency index: for each node key, the list of
// links incident to it.
func Neighbors(g Graph) map[[2]float64][]Link {
	adj := make(map[[2]float64][]Link, len(g.Nodes))
	for _, l := range g.Links {
		adj[l.Source.Key()] = append(adj[l.Source.Key()], l)
		adj[l.Target.Key()] = append(adj[l.Target.Key()], l)
	}
	return adj
}
