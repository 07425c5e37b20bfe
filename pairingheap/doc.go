// Package pairingheap implements a pairing heap: a self-adjusting
// heap-ordered forest with amortized O(1) Insert and DecreaseKey and
// amortized O(log n) DeleteMin, the combination the heap-accelerated
// Dijkstra variant relies on.
//
// # Structure
//
// Nodes live in an arena ([]node) and reference each other by stable
// integer indices, never by pointers:
//
//	child   – leftmost child
//	sibling – next sibling to the right
//	prev    – left sibling, or the parent when the node is leftmost
//
// prev is only a detach anchor; no owning parent back-reference exists,
// so the structure stays a forest of singly-owned trees. Removed nodes
// are tombstoned in place and their slots are never recycled, which
// makes every Handle check exact: a handle either names a live node or
// it errors, it can never silently address a reused slot.
//
// # Operations
//
//	New() *Heap
//	Insert(key, value int64) Handle            // O(1): meld singleton with root
//	DecreaseKey(h Handle, key int64) error     // amortized O(1): detach, meld with root
//	Min() (value, key int64, err error)        // O(1)
//	DeleteMin() (value, key int64, err error)  // amortized O(log n): two-pass pairing
//	Key(h Handle) (int64, error)               // O(1): current key of a live handle
//	Len() int / IsEmpty() bool                 // O(1)
//
// DeleteMin combines the root's children with the standard two-pass
// pairing: adjacent children are melded left to right, then the paired
// trees are melded right to left into the new root.
//
// # Handle contract
//
// Insert returns a Handle for later DecreaseKey calls. The Handle is
// invalidated the moment its node leaves the heap through DeleteMin;
// any use of an invalidated Handle returns ErrStaleHandle. Callers in
// this module exploit exactly that: the Dijkstra runner drops a
// vertex's handle when the vertex is settled, and the heap itself
// guards against the settled vertex ever being re-keyed.
//
// Heap-order invariant: every node's key is ≤ each of its children's
// keys after every Insert, DecreaseKey and DeleteMin.
//
// The zero Heap is not usable; construct with New.
package pairingheap
