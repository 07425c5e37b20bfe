// Package shortest: Bellman-Ford.
//
// The only variant that accepts negative edge costs. It never selects
// a minimum at all: it relaxes every edge, up to vertexCount−1 passes,
// and stops early once a full pass improves nothing.
package shortest

import "github.com/transitlab/reseau/core"

// BellmanFord computes the minimum-cost path from origin to dest by
// passes of whole-edge-set relaxation.
//
// Negative edge costs are legal input. If a negative cycle is
// reachable on an origin→dest route the result is unspecified: cycles
// are neither detected nor corrected, only bounded (the pass limit and
// the reconstruction guard keep the call terminating).
//
// Result and error contracts match Dijkstra, minus the negative-cost
// pre-scan.
//
// Complexity:
//
//   - Time:  O(V·E), usually far less due to the early exit
//   - Space: O(V + E) (one edge snapshot reused across passes)
func BellmanFord(n *core.Network, origin, dest int64) (int64, []int64, error) {
	// 1) Validate endpoints before any work.
	if err := validate(n, origin, dest); err != nil {
		return 0, nil, err
	}

	// 2) Shared bookkeeping plus one edge snapshot for all passes.
	vertices := n.Vertices()
	s := newSearch(vertices, origin)
	edges := n.Edges()

	// 3) Up to vertexCount−1 passes; each pass relaxes every edge.
	for pass := 1; pass < len(vertices); pass++ {
		changed := false
		for _, e := range edges {
			df := s.dist[e.From]
			// Nothing has reached e.From yet; adding to Infinity
			// would overflow, not relax.
			if df == Infinity {
				continue
			}
			if nd := df + e.Cost; nd < s.dist[e.To] {
				s.dist[e.To] = nd
				s.prev[e.To] = e.From
				changed = true
			}
		}
		// A full pass without improvement is a fixpoint.
		if !changed {
			break
		}
	}

	// 4) Walk predecessors backward and reverse.
	cost, path := s.pathTo(origin, dest)

	return cost, path, nil
}
