// Package shortest: naive Dijkstra.
//
// This variant scans the unsettled set linearly for the minimum on
// every round, the O(V) factor repeated V times that makes it O(V²).
// It exists as the baseline the heap-accelerated variant is measured
// against; both share the relaxation rule and the reconstruction walk.
package shortest

import (
	"fmt"

	"github.com/transitlab/reseau/core"
)

// Dijkstra computes the minimum-cost path from origin to dest by the
// O(V²) textbook method: linear-scan extraction over an unsettled set.
//
// Returns:
//
//   - cost: total cost of the cheapest path, Infinity if dest is
//     unreachable from origin.
//   - path: vertex ids from origin to dest inclusive, nil iff
//     unreachable. origin == dest yields (0, [origin]).
//   - err: ErrNilNetwork, core.ErrVertexNotFound (wrapped, with the
//     missing endpoint), or ErrNegativeCost from the pre-scan.
//
// The network is read, never mutated.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func Dijkstra(n *core.Network, origin, dest int64) (int64, []int64, error) {
	// 1) Validate endpoints and cost signs before any work.
	if err := validate(n, origin, dest); err != nil {
		return 0, nil, err
	}
	if err := scanNegativeCosts(n); err != nil {
		return 0, nil, err
	}

	// 2) Prepare the shared bookkeeping and the unsettled set.
	vertices := n.Vertices()
	s := newSearch(vertices, origin)
	unsettled := make(map[int64]struct{}, len(vertices))
	for _, v := range vertices {
		unsettled[v] = struct{}{}
	}

	// 3) Settle one vertex per round, vertexCount rounds at most.
	for range vertices {
		// Linear scan for the unsettled minimum. Ties fall to map
		// iteration order: any minimum is equally correct.
		u, du := noVertex, Infinity
		for v := range unsettled {
			if s.dist[v] < du {
				u, du = v, s.dist[v]
			}
		}
		// No finite distance left: everything still unsettled is
		// unreachable, and relaxing from Infinity would overflow.
		if u == noVertex {
			break
		}

		delete(unsettled, u)
		// The destination's distance is final the moment it leaves
		// the unsettled set.
		if u == dest {
			break
		}

		// 4) Relax u's outgoing edges against unsettled neighbors.
		out, err := n.OutEdges(u)
		if err != nil {
			return 0, nil, fmt.Errorf("shortest: out-edges of %d: %w", u, err)
		}
		for _, e := range out {
			if _, open := unsettled[e.To]; !open {
				continue
			}
			if nd := du + e.Cost; nd < s.dist[e.To] {
				s.dist[e.To] = nd
				s.prev[e.To] = u
			}
		}
	}

	// 5) Walk predecessors backward and reverse.
	cost, path := s.pathTo(origin, dest)

	return cost, path, nil
}
