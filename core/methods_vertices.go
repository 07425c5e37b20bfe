// Package core: vertex lifecycle and enumeration methods.
package core

import "sort"

// VertexCount returns the number of live vertices.
// Complexity: O(1).
func (n *Network) VertexCount() int {
	return len(n.adjacency)
}

// IsEmpty reports whether the Network holds no vertices.
// Complexity: O(1).
func (n *Network) IsEmpty() bool {
	return len(n.adjacency) == 0
}

// HasVertex reports whether vertex id exists. Negative ids are never
// present, so they simply report false.
// Complexity: O(1).
func (n *Network) HasVertex(id int64) bool {
	_, ok := n.adjacency[id]

	return ok
}

// AddVertex inserts a new vertex with an empty outgoing-edge set.
// Returns ErrBadVertexID if id is negative,
// ErrDuplicateVertex if the vertex is already present.
// Complexity: O(1) amortized.
func (n *Network) AddVertex(id int64) error {
	if id < 0 {
		return ErrBadVertexID
	}
	if _, exists := n.adjacency[id]; exists {
		return ErrDuplicateVertex
	}
	n.adjacency[id] = make(map[int64]link)

	return nil
}

// RemoveVertex deletes vertex id together with every incident edge,
// incoming and outgoing, decrementing the edge count per removed edge.
// Returns ErrVertexNotFound if the vertex is absent.
// Complexity: O(V + deg(id)); incoming edges require one pass over the
// remaining origins.
func (n *Network) RemoveVertex(id int64) error {
	out, exists := n.adjacency[id]
	if !exists {
		return ErrVertexNotFound
	}
	// Outgoing edges vanish with the vertex itself.
	n.edgeCount -= len(out)
	delete(n.adjacency, id)
	// Incoming edges: scan every remaining origin for a link into id.
	for _, targets := range n.adjacency {
		if _, ok := targets[id]; ok {
			delete(targets, id)
			n.edgeCount--
		}
	}

	return nil
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V·log V).
func (n *Network) Vertices() []int64 {
	ids := make([]int64, 0, len(n.adjacency))
	for id := range n.adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
