// Package core provides the in-memory directed weighted Network used by
// every shortest-path query in this module.
//
// The Network N = (V,E) is deliberately narrow:
//
//   - Vertices are non-negative int64 ids and carry no other attributes
//     (coordinates, names and modes belong to the transit feed layer).
//   - Edges are directed, weighted (int64 cost, negative allowed as
//     Bellman-Ford input) and tagged with an opaque integer Kind.
//   - At most one edge per ordered (from, to) pair, no multi-edges.
//   - Adjacency is a nested map: adjacency[from][to] = (cost, kind),
//     giving O(1) average existence, insertion and deletion.
//   - Vertex and edge counts are maintained on every mutation, never
//     recomputed by scanning.
//
// Every mutator validates all of its preconditions before touching any
// state, so a failed call leaves the Network exactly as it was
// (per-call atomicity). The Network performs no internal locking:
// callers follow a single-writer-then-readers discipline and must not
// mutate an instance while a path query reads it.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int64) error          // O(1)
//	HasVertex(id int64) bool           // O(1)
//	RemoveVertex(id int64) error       // O(V + deg(id))
//
//	// Edge lifecycle
//	AddEdge(from, to, cost int64, kind int) error // O(1)
//	RemoveEdge(from, to int64) error              // O(1)
//	HasEdge(from, to int64) (bool, error)         // O(1)
//	UpdateEdgeCost(from, to, cost int64) error    // O(1)
//	EdgeCost(from, to int64) (int64, error)       // O(1)
//	EdgeKind(from, to int64) (int, error)         // O(1)
//
//	// Enumeration (deterministic, sorted)
//	Vertices() []int64                      // O(V·log V)
//	OutEdges(from int64) ([]Edge, error)    // O(d·log d)
//	Edges() []Edge                          // O(E·log E)
//
//	// Counts
//	VertexCount() int                  // O(1)
//	EdgeCount() int                    // O(1)
//	IsEmpty() bool                     // O(1)
//
// Errors:
//
//	ErrBadVertexID     – negative vertex id
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrDuplicateVertex – vertex already present
//	ErrDuplicateEdge   – ordered pair already has an edge
package core
