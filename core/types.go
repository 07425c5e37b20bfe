// Package core: Network, Edge and the sentinel errors raised by the
// mutation and query methods.
//
// This file declares the Edge value type, the Network container and
// the NewNetwork constructor. Methods live in methods_vertices.go and
// methods_edges.go.
package core

import "errors"

// Sentinel errors for core network operations.
var (
	// ErrBadVertexID indicates a negative vertex id was supplied.
	ErrBadVertexID = errors.New("core: vertex id must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateVertex indicates the vertex id is already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrDuplicateEdge indicates the ordered (from, to) pair already has an edge.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Edge is the value form of one directed connection, as returned by the
// enumeration methods. Mutating an Edge value never affects the Network.
type Edge struct {
	// From is the origin vertex id.
	From int64

	// To is the destination vertex id.
	To int64

	// Cost is the traversal cost. Negative costs are legal input for
	// Bellman-Ford; the Dijkstra variants assume non-negative costs.
	Cost int64

	// Kind is an opaque classification tag (a transport mode in the
	// transit domain).
	Kind int
}

// link is the stored payload of one edge; the destination id is the
// enclosing map key.
type link struct {
	cost int64
	kind int
}

// Network is a directed weighted network with typed edges and at most
// one edge per ordered vertex pair.
//
// adjacency maps origin id → destination id → edge payload. Vertex
// membership is key membership in the outer map, so an isolated vertex
// owns an empty inner map. edgeCount tracks the sum of inner map sizes
// and is updated by every mutation.
type Network struct {
	adjacency map[int64]map[int64]link
	edgeCount int
}

// NewNetwork creates an empty Network: zero vertices, zero edges.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{adjacency: make(map[int64]map[int64]link)}
}
