package mstgraph

import "github.com/katalvlaran/scagnostics/quantile"

// OutlierResult is the outcome of pruning long edges from an MST.
type OutlierResult struct {
	// Score is sum(outlying link weights) / sum(all MST link weights),
	// defined as 0 when the MST carries no weight at all.
	Score float64
	// UpperBound is omega, the edge-weight ceiling above which a link is
	// outlying: Q3 + 1.5*IQR, or the caller-supplied override.
	UpperBound float64
	// OutlyingLinks are the MST links whose weight exceeds UpperBound.
	OutlyingLinks []Link
	// OutlyingPoints are nodes left with degree 0 once OutlyingLinks are
	// removed (i.e. nodes that were only ever reachable via an outlying
	// edge).
	OutlyingPoints []Node
	// PrunedMST is the MST minus OutlyingLinks, minus any node that becomes
	// isolated as a result — the "no-outlying tree".
	PrunedMST Graph
}

// PruneOutliers removes long edges from mst using an IQR-derived upper
// bound omega = Q3 + 1.5*IQR over the MST's edge weights, or
// upperBoundOverride when non-nil.
func PruneOutliers(mst Graph, upperBoundOverride *float64) OutlierResult {
	weights := mst.Weights()

	var omega float64
	if upperBoundOverride != nil {
		omega = *upperBoundOverride
	} else if len(weights) > 0 {
		q1 := quantile.Quantile(weights, 0.25)
		q3 := quantile.Quantile(weights, 0.75)
		omega = q3 + 1.5*(q3-q1)
	}

	var outlyingLinks []Link
	var keptLinks []Link
	var outlyingWeight float64
	for _, l := range mst.Links {
		if l.Weight > omega {
			outlyingLinks = append(outlyingLinks, l)
			outlyingWeight += l.Weight
		} else {
			keptLinks = append(keptLinks, l)
		}
	}

	totalWeight := mst.TotalWeight()
	score := 0.0
	if totalWeight > 0 {
		score = outlyingWeight / totalWeight
	}

	keptDegree := make(map[[2]float64]int, len(mst.Nodes))
	for _, n := range mst.Nodes {
		keptDegree[n.Key()] = 0
	}
	for _, l := range keptLinks {
		keptDegree[l.Source.Key()]++
		keptDegree[l.Target.Key()]++
	}

	// A node is outlying iff it was an endpoint of an outlying link and
	// ends up with degree 0 once outlying links are removed.
	touchedByOutlying := make(map[[2]float64]bool)
	for _, l := range outlyingLinks {
		touchedByOutlying[l.Source.Key()] = true
		touchedByOutlying[l.Target.Key()] = true
	}

	var outlyingPoints []Node
	var prunedNodes []Node
	for _, n := range mst.Nodes {
		k := n.Key()
		if touchedByOutlying[k] && keptDegree[k] == 0 {
			outlyingPoints = append(outlyingPoints, n)
			continue
		}
		prunedNodes = append(prunedNodes, n)
	}

	return OutlierResult{
		Score:          score,
		UpperBound:     omega,
		OutlyingLinks:  outlyingLinks,
		OutlyingPoints: outlyingPoints,
		PrunedMST:      Graph{Nodes: prunedNodes, Links: keptLinks},
	}
}
