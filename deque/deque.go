// SPDX-License-Identifier: MIT

package deque

import (
	"fmt"
	"strings"
)

// Deque is a doubly-linked sequence with a header sentinel.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	id    uint64    // identity stamped into every handle
	slots []slot[T] // slots[0] is the header
	free  []int     // recycled slot indices
	size  int       // number of content nodes
}

// New returns an empty Deque.
func New[T any]() *Deque[T] {
	d := &Deque[T]{}
	d.lazyInit()

	return d
}

// lazyInit installs the self-linked header on first use.
func (d *Deque[T]) lazyInit() {
	if len(d.slots) == 0 {
		d.id = lastOwner.Add(1)
		d.slots = append(d.slots, slot[T]{prev: headerIndex, next: headerIndex, live: true})
	}
}

// Len returns the number of content nodes, not counting the header.
// Complexity: O(1).
func (d *Deque[T]) Len() int {
	return d.size
}

// Header returns the handle of the header sentinel. Find returns this handle
// when no node matches.
func (d *Deque[T]) Header() Node {
	return Node{owner: d.id, index: headerIndex}
}

// IsHeader reports whether n refers to the header sentinel.
func (d *Deque[T]) IsHeader(n Node) bool {
	return n.index == headerIndex
}

// AddAtHead inserts v immediately after the header and returns its handle.
// Complexity: O(1).
func (d *Deque[T]) AddAtHead(v T) Node {
	d.lazyInit()

	return d.link(v, headerIndex, d.slots[headerIndex].next)
}

// AddAtTail inserts v immediately before the header and returns its handle.
// Complexity: O(1).
func (d *Deque[T]) AddAtTail(v T) Node {
	d.lazyInit()

	return d.link(v, d.slots[headerIndex].prev, headerIndex)
}

// RemoveFromHead unlinks the node nearest the head and returns its value.
// Returns ErrEmpty if the deque has no content nodes.
// Complexity: O(1).
func (d *Deque[T]) RemoveFromHead() (T, error) {
	d.lazyInit()
	first := d.slots[headerIndex].next
	if first == headerIndex {
		var zero T
		return zero, fmt.Errorf("%w: remove from head", ErrEmpty)
	}

	return d.unlink(first), nil
}

// RemoveFromTail unlinks the node nearest the tail and returns its value.
// Returns ErrEmpty if the deque has no content nodes.
// Complexity: O(1).
func (d *Deque[T]) RemoveFromTail() (T, error) {
	d.lazyInit()
	last := d.slots[headerIndex].prev
	if last == headerIndex {
		var zero T
		return zero, fmt.Errorf("%w: remove from tail", ErrEmpty)
	}

	return d.unlink(last), nil
}

// Find returns the first node, scanning from the head, whose value satisfies
// pred. Evaluation stops at the first match. If nothing matches (or pred is
// nil) the header handle is returned.
// Complexity: O(n).
func (d *Deque[T]) Find(pred Predicate[T]) Node {
	d.lazyInit()
	if pred == nil {
		return d.Header()
	}
	for i := d.slots[headerIndex].next; i != headerIndex; i = d.slots[i].next {
		if pred(d.slots[i].value) {
			return Node{owner: d.id, index: i, gen: d.slots[i].gen}
		}
	}

	return d.Header()
}

// RemoveNode unlinks the node named by n. It is a no-op for the header, for
// handles issued by another deque and for handles whose node was removed.
// Complexity: O(n), the node is located by scanning from the head.
func (d *Deque[T]) RemoveNode(n Node) {
	if n.index == headerIndex {
		return
	}
	d.lazyInit()
	if n.owner != d.id {
		return
	}
	for i := d.slots[headerIndex].next; i != headerIndex; i = d.slots[i].next {
		if i == n.index && d.slots[i].gen == n.gen {
			d.unlink(i)
			return
		}
	}
}

// Value returns the content of node n.
// Returns ErrInvalidNode for the header and for stale or foreign handles.
func (d *Deque[T]) Value(n Node) (T, error) {
	var zero T
	if !d.valid(n) {
		return zero, fmt.Errorf("%w: slot %d", ErrInvalidNode, n.index)
	}

	return d.slots[n.index].value, nil
}

// Values returns a snapshot of the contents from head to tail.
func (d *Deque[T]) Values() []T {
	d.lazyInit()
	out := make([]T, 0, d.size)
	for i := d.slots[headerIndex].next; i != headerIndex; i = d.slots[i].next {
		out = append(out, d.slots[i].value)
	}

	return out
}

// String renders the deque head to tail, e.g. "deque[a b c]".
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteString("deque[")
	for i, v := range d.Values() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}

// valid reports whether n names a live content node.
func (d *Deque[T]) valid(n Node) bool {
	if n.owner != d.id || n.index <= headerIndex || n.index >= len(d.slots) {
		return false
	}
	s := &d.slots[n.index]

	return s.live && s.gen == n.gen
}

// link allocates a slot for v and splices it between prev and next,
// which must be adjacent live slots.
func (d *Deque[T]) link(v T, prev, next int) Node {
	var idx int
	if k := len(d.free); k > 0 {
		idx = d.free[k-1]
		d.free = d.free[:k-1]
	} else {
		d.slots = append(d.slots, slot[T]{})
		idx = len(d.slots) - 1
	}
	s := &d.slots[idx]
	s.value = v
	s.prev = prev
	s.next = next
	s.live = true
	d.slots[prev].next = idx
	d.slots[next].prev = idx
	d.size++

	return Node{owner: d.id, index: idx, gen: s.gen}
}

// unlink removes slot idx from the chain, recycles it and returns its value.
func (d *Deque[T]) unlink(idx int) T {
	s := &d.slots[idx]
	v := s.value
	d.slots[s.prev].next = s.next
	d.slots[s.next].prev = s.prev

	var zero T
	s.value = zero
	s.prev, s.next = headerIndex, headerIndex
	s.live = false
	s.gen++
	d.free = append(d.free, idx)
	d.size--

	return v
}
