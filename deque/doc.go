// Package deque provides a generic doubly-linked sequence with a header
// sentinel, O(1) insertion and removal at both ends, predicate search and
// removal of arbitrary nodes by handle.
//
// What
//
//   - Deque[T] stores its nodes in an arena (a slice of slots) and links them
//     by slot index instead of pointers. Slot 0 is the header sentinel, whose
//     next/prev links point back to itself when the deque is empty.
//   - Node is a small handle (owner, slot index and generation). The zero Node
//     is the header, which doubles as the "not found" marker returned by Find.
//     Handles from another deque are rejected even when the slot index exists.
//   - Freed slots are recycled; every reuse bumps the slot generation, so a
//     stale handle never aliases a newer node.
//
// Errors
//
//   - ErrEmpty        RemoveFromHead / RemoveFromTail on a deque with no content nodes.
//   - ErrInvalidNode  Value called with the header, a stale or a foreign handle.
//
// Complexity
//
//   - AddAtHead, AddAtTail, RemoveFromHead, RemoveFromTail, Len: O(1).
//   - Find, RemoveNode, Values: O(n).
//
// Concurrency
//
//	A Deque is not safe for concurrent use; callers own all synchronization.
//
// Usage
//
//	d := deque.New[string]()
//	d.AddAtTail("abc")
//	d.AddAtTail("bcde")
//	n := d.Find(func(s string) bool { return len(s) > 3 })
//	if !d.IsHeader(n) {
//	    v, _ := d.Value(n) // "bcde"
//	    d.RemoveNode(n)
//	}
package deque
