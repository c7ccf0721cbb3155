package measure

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/scagnostics/mstgraph"
)

// Clumpy scores how tightly the pruned MST clusters into tight groups
// joined by a few long bridges. For each edge e, removing e splits the tree
// into two subtrees; let S be the smaller one (by node count) and e* the
// longest edge inside S (0 if S has no internal edges). That edge's
// per-edge score is 1 - weight(e*)/weight(e); Clumpy is the maximum
// per-edge score over the whole tree, or 0 for a tree with fewer than 2
// edges.
//
// Per-edge evaluation runs on a worker pool bounded by GOMAXPROCS: each
// edge's subtree search is independent of every other edge's, so this is
// safe data parallelism over an otherwise read-only mstgraph.Graph.
func Clumpy(mst mstgraph.Graph) float64 {
	if len(mst.Links) < 2 {
		return 0
	}

	adjacency := buildAdjacency(mst)

	workers := runtime.GOMAXPROCS(0)
	if workers > len(mst.Links) {
		workers = len(mst.Links)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, len(mst.Links))
	for i := range mst.Links {
		jobs <- i
	}
	close(jobs)

	var mu sync.Mutex
	var best float64

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				score := clumpyScoreForEdge(mst, adjacency, i)
				mu.Lock()
				if score > best {
					best = score
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return clamp01(best)
}

type adjacencyEntry struct {
	neighbor [2]float64
	linkIdx  int
}

func buildAdjacency(g mstgraph.Graph) map[[2]float64][]adjacencyEntry {
	adj := make(map[[2]float64][]adjacencyEntry, len(g.Nodes))
	for i, l := range g.Links {
		sk, tk := l.Source.Key(), l.Target.Key()
		adj[sk] = append(adj[sk], adjacencyEntry{neighbor: tk, linkIdx: i})
		adj[tk] = append(adj[tk], adjacencyEntry{neighbor: sk, linkIdx: i})
	}
	return adj
}

// clumpyScoreForEdge computes the per-edge Clumpy score for mst.Links[edgeIdx].
func clumpyScoreForEdge(mst mstgraph.Graph, adj map[[2]float64][]adjacencyEntry, edgeIdx int) float64 {
	edge := mst.Links[edgeIdx]
	srcKey := edge.Source.Key()

	// BFS from edge.Source, excluding edgeIdx, to find its side of the cut.
	visited := map[[2]float64]bool{srcKey: true}
	queue := []([2]float64){srcKey}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range adj[cur] {
			if e.linkIdx == edgeIdx || visited[e.neighbor] {
				continue
			}
			visited[e.neighbor] = true
			queue = append(queue, e.neighbor)
		}
	}

	sideASize := len(visited)
	sideBSize := len(mst.Nodes) - sideASize

	// S is the smaller side; sideA (containing edge.Source) is S iff it is
	// no larger than the complement.
	sIsSideA := sideASize <= sideBSize

	var maxInS float64
	for i, l := range mst.Links {
		if i == edgeIdx {
			continue
		}
		srcIn, tgtIn := visited[l.Source.Key()], visited[l.Target.Key()]
		if srcIn != tgtIn {
			continue // straddles the cut, not internal to either side
		}
		if srcIn == sIsSideA && l.Weight > maxInS {
			maxInS = l.Weight
		}
	}

	if edge.Weight == 0 {
		return 0
	}

	return 1 - maxInS/edge.Weight
}
