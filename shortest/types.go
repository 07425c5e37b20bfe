// Package shortest: the Infinity sentinel, the predecessor marker and
// the sentinel errors shared by the three path algorithms.
package shortest

import (
	"errors"
	"fmt"
	"math"

	"github.com/transitlab/reseau/core"
)

// Infinity is the cost reported when the destination is unreachable
// from the origin. No real path can reach it: costs are int64 sums of
// at most V-1 edges and relaxation never starts from an Infinity
// distance.
const Infinity int64 = math.MaxInt64

// noVertex marks "no predecessor" in the predecessor map. Vertex ids
// are non-negative by construction (core.AddVertex rejects negative
// ids), so the marker can never collide with a live vertex.
const noVertex int64 = -1

// Sentinel errors returned by the path algorithms.
var (
	// ErrNilNetwork indicates a nil *core.Network was passed in.
	ErrNilNetwork = errors.New("shortest: network is nil")

	// ErrNegativeCost indicates a Dijkstra variant found a negative
	// edge cost during its pre-scan. Use BellmanFord for such input.
	ErrNegativeCost = errors.New("shortest: negative edge cost encountered")
)

// validate checks the preconditions shared by all three algorithms:
// a live network and both endpoints present. Endpoint failures wrap
// core.ErrVertexNotFound with the offending id.
func validate(n *core.Network, origin, dest int64) error {
	if n == nil {
		return ErrNilNetwork
	}
	if !n.HasVertex(origin) {
		return fmt.Errorf("shortest: origin %d: %w", origin, core.ErrVertexNotFound)
	}
	if !n.HasVertex(dest) {
		return fmt.Errorf("shortest: destination %d: %w", dest, core.ErrVertexNotFound)
	}

	return nil
}

// scanNegativeCosts fails fast when any edge carries a negative cost.
// The Dijkstra variants call this before any relaxation.
func scanNegativeCosts(n *core.Network) error {
	for _, e := range n.Edges() {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %d→%d cost=%d", ErrNegativeCost, e.From, e.To, e.Cost)
		}
	}

	return nil
}
