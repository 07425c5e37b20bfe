// Package reseau is an in-memory toolkit for routing over transit
// networks: load a feed of stops and weighted links, then answer
// shortest-path questions with the algorithm that fits.
//
// 🚀 What is reseau?
//
//	A small, deterministic routing core that brings together:
//		• Core primitives: a directed weighted network keyed by stop id
//		• A pairing heap: O(1) amortized DecreaseKey, stable handles
//		• Shortest paths: naive Dijkstra, heap Dijkstra, Bellman-Ford
//		• Transit feeds: CSV loading plus an R-tree stop index
//		• Investigation: seeded timing runs comparing the algorithms
//
// ✨ Why choose reseau?
//
//   - Predictable – every query is deterministic, every run replayable
//   - Honest errors – sentinel errors wrapped with context, never a panic
//   - Transparent – each algorithm documents its complexity and limits
//
// Everything is organized under five subpackages and one binary:
//
//	core/        - the Network type: vertices, edges, costs, modes
//	pairingheap/ - the priority queue backing the heap Dijkstra
//	shortest/    - Dijkstra, DijkstraHeap, BellmanFord
//	transit/     - stops.txt / links.txt loading, spatial stop index
//	investigate/ - timing harness over random stop pairs
//	cmd/reseau/  - the CLI: route, stops near, investigate
//
// Quick ASCII example:
//
//	    1 ──5── 2
//	     \      │
//	      20    5
//	       \    │
//	        ╰── 3
//
// From stop 1, the heap Dijkstra reaches stop 3 for 10 via stop 2,
// not 20 via the direct link.
//
//	go get github.com/transitlab/reseau
package reseau
