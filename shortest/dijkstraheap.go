// Package shortest: heap-accelerated Dijkstra.
//
// Same relaxation rule as the naive variant, but extract-minimum is
// delegated to a pairing heap with true decrease-key: every vertex
// enters the heap exactly once, improvements re-key the live handle,
// and extraction retires the handle so a settled vertex can never be
// touched again.
package shortest

import (
	"fmt"

	"github.com/transitlab/reseau/core"
	"github.com/transitlab/reseau/pairingheap"
)

// DijkstraHeap computes the minimum-cost path from origin to dest
// using a pairing heap for extraction.
//
// Every vertex is inserted once with key Infinity and the origin is
// re-keyed to 0; each DeleteMin settles one vertex, whose handle is
// dropped on the spot. The heap additionally rejects any stale handle
// with ErrStaleHandle, so a settled vertex is structurally unreachable
// from the relaxation. The loop ends when dest is extracted or only
// Infinity keys remain.
//
// Result and error contracts match Dijkstra.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func DijkstraHeap(n *core.Network, origin, dest int64) (int64, []int64, error) {
	// 1) Validate endpoints and cost signs before any work.
	if err := validate(n, origin, dest); err != nil {
		return 0, nil, err
	}
	if err := scanNegativeCosts(n); err != nil {
		return 0, nil, err
	}

	// 2) Shared bookkeeping plus the heap and its handle registry.
	vertices := n.Vertices()
	s := newSearch(vertices, origin)

	h := pairingheap.New()
	handles := make(map[int64]pairingheap.Handle, len(vertices))
	for _, v := range vertices {
		handles[v] = h.Insert(Infinity, v)
	}
	// The origin must be the first extraction.
	if err := h.DecreaseKey(handles[origin], 0); err != nil {
		return 0, nil, fmt.Errorf("shortest: re-key origin %d: %w", origin, err)
	}

	// 3) Extract-settle-relax until dest is settled or nothing
	//    reachable remains.
	for !h.IsEmpty() {
		u, du, err := h.DeleteMin()
		if err != nil {
			return 0, nil, fmt.Errorf("shortest: delete-min: %w", err)
		}
		// Only unreachable vertices left in the heap.
		if du == Infinity {
			break
		}

		// Settle u: drop the handle, the vertex is done for good.
		delete(handles, u)
		if u == dest {
			break
		}

		// 4) Relax u's outgoing edges against vertices still heaped.
		out, outErr := n.OutEdges(u)
		if outErr != nil {
			return 0, nil, fmt.Errorf("shortest: out-edges of %d: %w", u, outErr)
		}
		for _, e := range out {
			hn, open := handles[e.To]
			if !open {
				continue // settled earlier
			}
			cur, keyErr := h.Key(hn)
			if keyErr != nil {
				return 0, nil, fmt.Errorf("shortest: key of %d: %w", e.To, keyErr)
			}
			if nd := du + e.Cost; nd < cur {
				if err = h.DecreaseKey(hn, nd); err != nil {
					return 0, nil, fmt.Errorf("shortest: re-key %d: %w", e.To, err)
				}
				s.dist[e.To] = nd
				s.prev[e.To] = u
			}
		}
	}

	// 5) Walk predecessors backward and reverse.
	cost, path := s.pathTo(origin, dest)

	return cost, path, nil
}
