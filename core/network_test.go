package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/transitlab/reseau/core"
)

// buildTriangle constructs the three-stop network used across the
// method tests:
//
//	1→2 (cost 5, kind 0), 2→3 (cost 5, kind 1), 1→3 (cost 20, kind 0).
func buildTriangle(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, n.AddVertex(id))
	}
	require.NoError(t, n.AddEdge(1, 2, 5, 0))
	require.NoError(t, n.AddEdge(2, 3, 5, 1))
	require.NoError(t, n.AddEdge(1, 3, 20, 0))

	return n
}

func TestNetwork_VertexLifecycle(t *testing.T) {
	n := core.NewNetwork()
	require.True(t, n.IsEmpty())
	require.Zero(t, n.VertexCount())

	// Negative ids are rejected outright.
	require.ErrorIs(t, n.AddVertex(-1), core.ErrBadVertexID)

	// First insertion succeeds, duplicate is an error.
	require.NoError(t, n.AddVertex(7))
	require.True(t, n.HasVertex(7))
	require.ErrorIs(t, n.AddVertex(7), core.ErrDuplicateVertex)
	require.Equal(t, 1, n.VertexCount())

	// Removing a missing vertex reports the sentinel.
	require.ErrorIs(t, n.RemoveVertex(8), core.ErrVertexNotFound)

	require.NoError(t, n.RemoveVertex(7))
	require.False(t, n.HasVertex(7))
	require.True(t, n.IsEmpty())
}

func TestNetwork_AddEdgeValidation(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddVertex(1))
	require.NoError(t, n.AddVertex(2))

	// Either endpoint missing: vertex error, nothing inserted.
	require.ErrorIs(t, n.AddEdge(1, 9, 4, 0), core.ErrVertexNotFound)
	require.ErrorIs(t, n.AddEdge(9, 2, 4, 0), core.ErrVertexNotFound)
	require.Zero(t, n.EdgeCount())

	require.NoError(t, n.AddEdge(1, 2, 4, 2))
	require.Equal(t, 1, n.EdgeCount())

	// One edge per ordered pair; the reverse direction is still free.
	require.ErrorIs(t, n.AddEdge(1, 2, 8, 2), core.ErrDuplicateEdge)
	require.NoError(t, n.AddEdge(2, 1, 8, 2))
	require.Equal(t, 2, n.EdgeCount())

	// Negative costs are legal input (Bellman-Ford territory).
	require.NoError(t, n.AddVertex(3))
	require.NoError(t, n.AddEdge(2, 3, -6, 0))
	cost, err := n.EdgeCost(2, 3)
	require.NoError(t, err)
	require.Equal(t, int64(-6), cost)
}

func TestNetwork_RemoveVertexRemovesIncidentEdges(t *testing.T) {
	n := buildTriangle(t)
	require.Equal(t, 3, n.EdgeCount())

	// Vertex 2 has one incoming (1→2) and one outgoing (2→3) edge.
	require.NoError(t, n.RemoveVertex(2))
	require.Equal(t, 2, n.VertexCount())
	require.Equal(t, 1, n.EdgeCount())

	// The surviving edge is exactly 1→3.
	exists, err := n.HasEdge(1, 3)
	require.NoError(t, err)
	require.True(t, exists)

	// No dangling reference to the removed vertex anywhere.
	for _, e := range n.Edges() {
		require.NotEqual(t, int64(2), e.From)
		require.NotEqual(t, int64(2), e.To)
	}
}

func TestNetwork_EdgeLookups(t *testing.T) {
	n := buildTriangle(t)

	// HasEdge demands live endpoints before answering.
	_, err := n.HasEdge(1, 42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = n.HasEdge(42, 1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	exists, err := n.HasEdge(3, 1)
	require.NoError(t, err)
	require.False(t, exists)

	kind, err := n.EdgeKind(2, 3)
	require.NoError(t, err)
	require.Equal(t, 1, kind)

	// Cost update keeps the kind tag.
	require.NoError(t, n.UpdateEdgeCost(1, 3, 12))
	cost, err := n.EdgeCost(1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(12), cost)
	kind, err = n.EdgeKind(1, 3)
	require.NoError(t, err)
	require.Equal(t, 0, kind)

	// Lookups on a missing pair report the edge sentinel.
	require.ErrorIs(t, n.UpdateEdgeCost(3, 1, 1), core.ErrEdgeNotFound)
	_, err = n.EdgeCost(3, 1)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = n.EdgeKind(3, 1)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	require.NoError(t, n.RemoveEdge(1, 3))
	require.ErrorIs(t, n.RemoveEdge(1, 3), core.ErrEdgeNotFound)
	require.Equal(t, 2, n.EdgeCount())
}

// TestNetwork_FailedMutationIsAtomic locks in the contract that a
// rejected mutator leaves the network byte-for-byte as it was.
func TestNetwork_FailedMutationIsAtomic(t *testing.T) {
	n := buildTriangle(t)
	beforeV, beforeE := n.VertexCount(), n.EdgeCount()
	beforeEdges := n.Edges()

	require.Error(t, n.AddVertex(-4))
	require.Error(t, n.AddVertex(1))
	require.Error(t, n.AddEdge(1, 99, 3, 0))
	require.Error(t, n.AddEdge(1, 2, 3, 0))
	require.Error(t, n.RemoveVertex(99))
	require.Error(t, n.RemoveEdge(3, 1))
	require.Error(t, n.UpdateEdgeCost(2, 1, 7))

	require.Equal(t, beforeV, n.VertexCount())
	require.Equal(t, beforeE, n.EdgeCount())
	require.Equal(t, beforeEdges, n.Edges())
}

// TestNetwork_CountsNeverDrift replays a deterministic random mutation
// sequence and checks the maintained counts against a full recount
// after every step.
func TestNetwork_CountsNeverDrift(t *testing.T) {
	const vertices = 30

	n := core.NewNetwork()
	r := rand.New(rand.NewSource(42))

	for i := int64(0); i < vertices; i++ {
		require.NoError(t, n.AddVertex(i))
	}

	for step := 0; step < 500; step++ {
		from, to := int64(r.Intn(vertices)), int64(r.Intn(vertices))
		switch r.Intn(3) {
		case 0:
			// Insertion may fail on duplicates or removed endpoints.
			_ = n.AddEdge(from, to, int64(r.Intn(100)), r.Intn(4))
		case 1:
			_ = n.RemoveEdge(from, to)
		case 2:
			// Removing and re-adding a vertex churns incident edges.
			if n.HasVertex(from) {
				require.NoError(t, n.RemoveVertex(from))
				require.NoError(t, n.AddVertex(from))
			}
		}

		require.Equal(t, len(n.Vertices()), n.VertexCount(), "vertex count drift at step %d", step)
		require.Equal(t, len(n.Edges()), n.EdgeCount(), "edge count drift at step %d", step)
	}
}

func TestNetwork_EnumerationOrdering(t *testing.T) {
	n := core.NewNetwork()
	for _, id := range []int64{30, 4, 17, 2, 25} {
		require.NoError(t, n.AddVertex(id))
	}
	require.NoError(t, n.AddEdge(17, 30, 1, 0))
	require.NoError(t, n.AddEdge(17, 2, 1, 0))
	require.NoError(t, n.AddEdge(4, 25, 1, 0))
	require.NoError(t, n.AddEdge(17, 4, 1, 0))

	require.Equal(t, []int64{2, 4, 17, 25, 30}, n.Vertices())

	out, err := n.OutEdges(17)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 4, 30}, []int64{out[0].To, out[1].To, out[2].To})

	_, err = n.OutEdges(99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	all := n.Edges()
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		ordered := prev.From < cur.From || (prev.From == cur.From && prev.To < cur.To)
		require.True(t, ordered, "Edges() out of order at %d", i)
	}
}
