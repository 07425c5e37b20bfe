// Package shortest provides exact minimum-cost path queries over a
// core.Network: two Dijkstra variants and Bellman-Ford, all sharing
// one result contract and one reconstruction routine.
//
// # Shared contract
//
// Every algorithm has the same shape:
//
//	cost, path, err := shortest.Dijkstra(n, origin, dest)
//
//   - cost is the exact minimum total edge cost, or Infinity when dest
//     is unreachable from origin.
//   - path lists the vertex ids from origin to dest inclusive; it is
//     nil exactly when cost is Infinity. origin == dest yields
//     (0, [origin]).
//   - err reports precondition failures only: ErrNilNetwork, a wrapped
//     core.ErrVertexNotFound naming the missing endpoint, or
//     ErrNegativeCost (Dijkstra variants only). Unreachability is a
//     result, never an error.
//
// The network is read-only to every algorithm. Callers must not mutate
// it while a query is in flight.
//
// # Choosing an algorithm
//
//	Dijkstra      O(V²+E)        dense networks, small V, no negative costs
//	DijkstraHeap  O((V+E) log V) sparse networks (transit feeds), no negative costs
//	BellmanFord   O(V·E)         negative costs, no reachable negative cycle
//
// Dijkstra scans an unsettled set linearly for each extraction, the
// textbook quadratic method, kept deliberately simple as the baseline.
// DijkstraHeap replaces the scan with a pairing heap carrying one
// handle per vertex: improvements are true decrease-key operations and
// extraction retires the vertex's handle, so a settled vertex is never
// revisited. BellmanFord relaxes the whole edge set for up to V−1
// passes with an early exit on the first pass that improves nothing;
// it is the only variant that accepts negative costs, and a reachable
// negative cycle makes its result unspecified (bounded, not detected).
//
// Both Dijkstra variants reject negative costs up front with
// ErrNegativeCost before any relaxation runs.
//
// # Example
//
//	n := core.NewNetwork()
//	for _, id := range []int64{1, 2, 3} {
//		_ = n.AddVertex(id)
//	}
//	_ = n.AddEdge(1, 2, 5, 0)
//	_ = n.AddEdge(2, 3, 5, 0)
//	_ = n.AddEdge(1, 3, 20, 0)
//
//	cost, path, err := shortest.DijkstraHeap(n, 1, 3)
//	// cost = 10, path = [1 2 3], err = nil
//
// See pairingheap for the heap structure DijkstraHeap builds on.
package shortest
