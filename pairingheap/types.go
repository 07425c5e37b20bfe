// Package pairingheap: Heap, Handle, node and the sentinel errors.
package pairingheap

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates Min or DeleteMin was called on an empty heap.
	ErrEmptyHeap = errors.New("pairingheap: heap is empty")

	// ErrStaleHandle indicates the handle no longer names a live node
	// (its node was removed by DeleteMin, or the handle never existed).
	ErrStaleHandle = errors.New("pairingheap: stale handle")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("pairingheap: new key exceeds current key")
)

// Handle addresses one node in the heap's arena. Handles are returned
// by Insert, stay valid across arbitrary melds and DecreaseKey calls,
// and are invalidated by the DeleteMin that removes their node.
type Handle int

// none marks an absent link or root.
const none Handle = -1

// node is one arena slot. Links are arena indices, not pointers:
// child is the leftmost child, sibling the next sibling to the right,
// prev the left sibling or the parent when the node is leftmost.
type node struct {
	key     int64
	value   int64
	child   Handle
	sibling Handle
	prev    Handle
	removed bool
}

// Heap is a min-ordered pairing heap over (key, value) pairs.
// Not safe for concurrent use.
type Heap struct {
	nodes []node
	root  Handle
	size  int

	// scratch is reused by DeleteMin's two-pass pairing to avoid a
	// per-call allocation.
	scratch []Handle
}

// New creates an empty Heap.
// Complexity: O(1).
func New() *Heap {
	return &Heap{root: none}
}
