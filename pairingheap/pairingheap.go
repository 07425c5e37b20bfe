// Package pairingheap: operations on the arena-backed pairing heap.
package pairingheap

// Len returns the number of live nodes.
// Complexity: O(1).
func (h *Heap) Len() int {
	return h.size
}

// IsEmpty reports whether the heap holds no live nodes.
// Complexity: O(1).
func (h *Heap) IsEmpty() bool {
	return h.size == 0
}

// Insert adds a (key, value) pair and returns the Handle to use for
// later DecreaseKey calls.
// Complexity: O(1); the new singleton is melded with the root.
func (h *Heap) Insert(key, value int64) Handle {
	hn := Handle(len(h.nodes))
	h.nodes = append(h.nodes, node{
		key:     key,
		value:   value,
		child:   none,
		sibling: none,
		prev:    none,
	})
	h.root = h.meld(h.root, hn)
	h.size++

	return hn
}

// Min returns the value and key of the current minimum without
// removing it.
// Returns ErrEmptyHeap if the heap is empty.
// Complexity: O(1).
func (h *Heap) Min() (value, key int64, err error) {
	if h.root == none {
		return 0, 0, ErrEmptyHeap
	}
	n := &h.nodes[h.root]

	return n.value, n.key, nil
}

// DeleteMin removes and returns the current minimum, invalidating its
// Handle. The root's children are recombined by two-pass pairing:
// adjacent siblings melded left to right, then the paired trees melded
// right to left into the new root.
// Returns ErrEmptyHeap if the heap is empty.
// Complexity: amortized O(log n).
func (h *Heap) DeleteMin() (value, key int64, err error) {
	if h.root == none {
		return 0, 0, ErrEmptyHeap
	}
	root := h.root
	value, key = h.nodes[root].value, h.nodes[root].key

	// Collect the root's children as detached tree roots.
	h.scratch = h.scratch[:0]
	for c := h.nodes[root].child; c != none; {
		next := h.nodes[c].sibling
		h.nodes[c].prev = none
		h.nodes[c].sibling = none
		h.scratch = append(h.scratch, c)
		c = next
	}

	// Tombstone the removed root; its slot is never reused, so the
	// caller's Handle turns stale instead of aliasing a new node.
	h.nodes[root].removed = true
	h.nodes[root].child = none
	h.size--

	// Pass 1: meld adjacent children left to right, compacting in place.
	kids := h.scratch
	paired := 0
	for i := 0; i < len(kids); i += 2 {
		if i+1 < len(kids) {
			kids[paired] = h.meld(kids[i], kids[i+1])
		} else {
			kids[paired] = kids[i]
		}
		paired++
	}

	// Pass 2: meld the paired trees right to left into a single root.
	newRoot := none
	for i := paired - 1; i >= 0; i-- {
		newRoot = h.meld(newRoot, kids[i])
	}
	h.root = newRoot

	return value, key, nil
}

// DecreaseKey lowers the key of the node named by hn. Equal keys are
// accepted; a larger key returns ErrKeyIncrease. If hn no longer
// names a live node the call returns ErrStaleHandle and touches
// nothing.
// Complexity: amortized O(1); detach the subtree, meld with the root.
func (h *Heap) DecreaseKey(hn Handle, key int64) error {
	if !h.live(hn) {
		return ErrStaleHandle
	}
	if key > h.nodes[hn].key {
		return ErrKeyIncrease
	}
	h.nodes[hn].key = key
	if hn == h.root {
		// Already the minimum's position; nothing to relink.
		return nil
	}
	h.detach(hn)
	h.root = h.meld(h.root, hn)

	return nil
}

// Key returns the current key of the node named by hn.
// Returns ErrStaleHandle if hn does not name a live node.
// Complexity: O(1).
func (h *Heap) Key(hn Handle) (int64, error) {
	if !h.live(hn) {
		return 0, ErrStaleHandle
	}

	return h.nodes[hn].key, nil
}

// live reports whether hn names a live arena node.
func (h *Heap) live(hn Handle) bool {
	return hn >= 0 && int(hn) < len(h.nodes) && !h.nodes[hn].removed
}

// meld links two heap-ordered trees and returns the root of the
// combination; the larger-keyed root becomes the leftmost child of the
// smaller. Both arguments must be detached tree roots (or none).
func (h *Heap) meld(a, b Handle) Handle {
	if a == none {
		return b
	}
	if b == none {
		return a
	}
	if h.nodes[b].key < h.nodes[a].key {
		a, b = b, a
	}
	// b becomes the leftmost child of a.
	first := h.nodes[a].child
	h.nodes[b].sibling = first
	if first != none {
		h.nodes[first].prev = b
	}
	h.nodes[b].prev = a
	h.nodes[a].child = b

	return a
}

// detach unlinks the subtree rooted at hn from its surrounding child
// list; hn keeps its own children. The caller guarantees hn is live
// and not the heap root.
func (h *Heap) detach(hn Handle) {
	p := h.nodes[hn].prev
	s := h.nodes[hn].sibling
	if h.nodes[p].child == hn {
		// hn is leftmost: prev is the parent.
		h.nodes[p].child = s
	} else {
		// hn is interior: prev is the left sibling.
		h.nodes[p].sibling = s
	}
	if s != none {
		h.nodes[s].prev = p
	}
	h.nodes[hn].prev = none
	h.nodes[hn].sibling = none
}
