package deque

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for deque operations.
var (
	// ErrEmpty is returned when removing from a deque that has no content nodes.
	ErrEmpty = errors.New("deque: empty structure")

	// ErrInvalidNode is returned when a handle does not name a live content node
	// of this deque (the header, a removed node, or an out-of-range slot).
	ErrInvalidNode = errors.New("deque: invalid node handle")
)

// headerIndex is the arena slot reserved for the sentinel.
const headerIndex = 0

// lastOwner hands out deque identities; 0 is never issued.
var lastOwner atomic.Uint64

// Node is a handle to a node of a Deque.
//
// The zero value refers to the header sentinel. Handles stay valid until the
// node they name is removed; after that Value reports ErrInvalidNode and
// RemoveNode treats them as a no-op. A handle is only meaningful to the deque
// that issued it.
type Node struct {
	owner uint64
	index int
	gen   uint32
}

// slot is one arena cell. prev/next are indices into Deque.slots.
type slot[T any] struct {
	value T
	prev  int
	next  int
	gen   uint32
	live  bool
}

// Predicate reports whether a value satisfies some condition.
type Predicate[T any] func(T) bool
