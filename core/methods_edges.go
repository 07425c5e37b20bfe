// Package core: edge lifecycle, lookup and enumeration methods.
//
// Every mutator checks all preconditions before mutating, so a failed
// call performs no partial update. Lookup methods report
// ErrVertexNotFound for missing endpoints and ErrEdgeNotFound for a
// missing pair, in that order.
package core

import "sort"

// EdgeCount returns the number of live edges. The count is maintained
// incrementally by the mutators, never recomputed by scanning.
// Complexity: O(1).
func (n *Network) EdgeCount() int {
	return n.edgeCount
}

// HasEdge reports whether a directed edge from→to exists.
// Returns ErrVertexNotFound if either endpoint is absent.
// Complexity: O(1) average.
func (n *Network) HasEdge(from, to int64) (bool, error) {
	out, ok := n.adjacency[from]
	if !ok {
		return false, ErrVertexNotFound
	}
	if _, ok = n.adjacency[to]; !ok {
		return false, ErrVertexNotFound
	}
	_, ok = out[to]

	return ok, nil
}

// AddEdge inserts a directed edge from→to with the given cost and kind
// tag and increments the edge count.
// Returns ErrVertexNotFound if either endpoint is missing,
// ErrDuplicateEdge if the ordered pair already has an edge.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to, cost int64, kind int) error {
	out, ok := n.adjacency[from]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = n.adjacency[to]; !ok {
		return ErrVertexNotFound
	}
	if _, ok = out[to]; ok {
		return ErrDuplicateEdge
	}
	out[to] = link{cost: cost, kind: kind}
	n.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to and decrements the edge count.
// Returns ErrVertexNotFound if either endpoint is missing,
// ErrEdgeNotFound if the pair has no edge.
// Complexity: O(1) average.
func (n *Network) RemoveEdge(from, to int64) error {
	out, ok := n.adjacency[from]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = n.adjacency[to]; !ok {
		return ErrVertexNotFound
	}
	if _, ok = out[to]; !ok {
		return ErrEdgeNotFound
	}
	delete(out, to)
	n.edgeCount--

	return nil
}

// UpdateEdgeCost replaces the cost of the edge from→to, keeping its kind.
// Returns ErrVertexNotFound / ErrEdgeNotFound, mirroring RemoveEdge.
// Complexity: O(1) average.
func (n *Network) UpdateEdgeCost(from, to, cost int64) error {
	out, ok := n.adjacency[from]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = n.adjacency[to]; !ok {
		return ErrVertexNotFound
	}
	l, ok := out[to]
	if !ok {
		return ErrEdgeNotFound
	}
	l.cost = cost
	out[to] = l

	return nil
}

// EdgeCost returns the cost of the edge from→to.
// Returns ErrVertexNotFound / ErrEdgeNotFound, mirroring HasEdge.
// Complexity: O(1) average.
func (n *Network) EdgeCost(from, to int64) (int64, error) {
	out, ok := n.adjacency[from]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok = n.adjacency[to]; !ok {
		return 0, ErrVertexNotFound
	}
	l, ok := out[to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return l.cost, nil
}

// EdgeKind returns the kind tag of the edge from→to.
// Returns ErrVertexNotFound / ErrEdgeNotFound, mirroring HasEdge.
// Complexity: O(1) average.
func (n *Network) EdgeKind(from, to int64) (int, error) {
	out, ok := n.adjacency[from]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok = n.adjacency[to]; !ok {
		return 0, ErrVertexNotFound
	}
	l, ok := out[to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return l.kind, nil
}

// OutEdges returns the outgoing edges of from, ordered by destination id.
// Returns ErrVertexNotFound if from is absent.
// Complexity: O(d·log d).
func (n *Network) OutEdges(from int64) ([]Edge, error) {
	out, ok := n.adjacency[from]
	if !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(out))
	for to, l := range out {
		edges = append(edges, Edge{From: from, To: to, Cost: l.cost, Kind: l.kind})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// Edges returns every edge ordered by origin id, then destination id.
// Complexity: O(E·log E).
func (n *Network) Edges() []Edge {
	edges := make([]Edge, 0, n.edgeCount)
	for from, out := range n.adjacency {
		for to, l := range out {
			edges = append(edges, Edge{From: from, To: to, Cost: l.cost, Kind: l.kind})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}
