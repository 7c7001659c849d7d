package deque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/deque"
)

// abcd builds the deque ["abc","bcd","cde","def"] by tail insertion.
func abcd() *deque.Deque[string] {
	d := deque.New[string]()
	for _, s := range []string{"abc", "bcd", "cde", "def"} {
		d.AddAtTail(s)
	}

	return d
}

// TestLen_MixedInsertions checks Len after k head and j tail insertions.
func TestLen_MixedInsertions(t *testing.T) {
	cases := []struct{ head, tail int }{{0, 0}, {1, 0}, {0, 1}, {3, 4}, {10, 0}, {0, 10}}
	for _, tc := range cases {
		d := deque.New[int]()
		for i := 0; i < tc.head; i++ {
			d.AddAtHead(i)
		}
		for i := 0; i < tc.tail; i++ {
			d.AddAtTail(i)
		}
		assert.Equal(t, tc.head+tc.tail, d.Len(), "head=%d tail=%d", tc.head, tc.tail)
	}
}

// TestRemoveFromHead_ReverseOrder checks stack behaviour of head insert + head remove.
func TestRemoveFromHead_ReverseOrder(t *testing.T) {
	d := deque.New[int]()
	for i := 1; i <= 5; i++ {
		d.AddAtHead(i)
	}
	for want := 5; want >= 1; want-- {
		got, err := d.RemoveFromHead()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, d.Len())
}

// TestRemoveFromTail_QueueOrder checks queue behaviour of head insert + tail remove.
func TestRemoveFromTail_QueueOrder(t *testing.T) {
	d := deque.New[int]()
	for i := 1; i <= 5; i++ {
		d.AddAtHead(i)
	}
	for want := 1; want <= 5; want++ {
		got, err := d.RemoveFromTail()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestRemove_Empty verifies both ends report ErrEmpty without corrupting the header.
func TestRemove_Empty(t *testing.T) {
	d := deque.New[string]()
	_, err := d.RemoveFromHead()
	assert.ErrorIs(t, err, deque.ErrEmpty)
	_, err = d.RemoveFromTail()
	assert.ErrorIs(t, err, deque.ErrEmpty)

	// zero value behaves the same
	var z deque.Deque[int]
	_, err = z.RemoveFromHead()
	assert.ErrorIs(t, err, deque.ErrEmpty)

	// still usable afterwards
	d.AddAtTail("x")
	v, err := d.RemoveFromHead()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	_, err = d.RemoveFromTail()
	assert.ErrorIs(t, err, deque.ErrEmpty)
}

// TestFind covers first-match semantics and the not-found marker.
func TestFind(t *testing.T) {
	d := abcd()

	n := d.Find(func(s string) bool { return len(s) > 3 })
	assert.True(t, d.IsHeader(n), "no element is longer than 3")

	n = d.Find(func(s string) bool { return len(s) == 3 })
	v, err := d.Value(n)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	n = d.Find(func(s string) bool { return s[0] == 'c' })
	v, err = d.Value(n)
	require.NoError(t, err)
	assert.Equal(t, "cde", v)

	assert.True(t, d.IsHeader(d.Find(nil)))
}

// TestFind_LongerThanThree uses a deque where the first 4-letter element is second.
func TestFind_LongerThanThree(t *testing.T) {
	d := deque.New[string]()
	for _, s := range []string{"abc", "bcde", "cdef", "def"} {
		d.AddAtTail(s)
	}
	v, err := d.Value(d.Find(func(s string) bool { return len(s) > 3 }))
	require.NoError(t, err)
	assert.Equal(t, "bcde", v)
}

// TestFind_ShortCircuits verifies the predicate is not evaluated past the first match.
func TestFind_ShortCircuits(t *testing.T) {
	d := abcd()
	calls := 0
	d.Find(func(s string) bool {
		calls++
		return s == "bcd"
	})
	assert.Equal(t, 2, calls)
}

// TestRemoveNode covers middle, ends, header and stale handles.
func TestRemoveNode(t *testing.T) {
	d := abcd()

	d.RemoveNode(d.Find(func(s string) bool { return s == "cde" }))
	assert.Equal(t, []string{"abc", "bcd", "def"}, d.Values())

	d.RemoveNode(d.Header())
	assert.Equal(t, 3, d.Len())

	first := d.Find(func(s string) bool { return s == "abc" })
	d.RemoveNode(first)
	assert.Equal(t, []string{"bcd", "def"}, d.Values())

	// stale handle: slot gets recycled by the next insert but the old handle must not alias it
	d.AddAtHead("new")
	d.RemoveNode(first)
	assert.Equal(t, []string{"new", "bcd", "def"}, d.Values())
	_, err := d.Value(first)
	assert.ErrorIs(t, err, deque.ErrInvalidNode)

	last := d.Find(func(s string) bool { return s == "def" })
	d.RemoveNode(last)
	got, err := d.RemoveFromTail()
	require.NoError(t, err)
	assert.Equal(t, "bcd", got)
}

// TestRemoveNode_Foreign verifies handles from another deque are ignored,
// whether or not their slot index exists in the receiver.
func TestRemoveNode_Foreign(t *testing.T) {
	big := abcd()
	small := deque.New[string]()
	small.AddAtTail("only")

	n := big.Find(func(s string) bool { return s == "def" })
	small.RemoveNode(n)
	assert.Equal(t, 1, small.Len())

	// same slot and generation in both deques
	a := deque.New[string]()
	b := deque.New[string]()
	na := a.AddAtTail("from-a")
	b.AddAtTail("from-b")

	_, err := b.Value(na)
	assert.ErrorIs(t, err, deque.ErrInvalidNode)
	b.RemoveNode(na)
	assert.Equal(t, []string{"from-b"}, b.Values())

	v, err := a.Value(na)
	require.NoError(t, err)
	assert.Equal(t, "from-a", v)
}

// TestFind_HandleBelongsToReceiver verifies a handle found in one deque is
// rejected by a zero-value deque holding the same layout.
func TestFind_HandleBelongsToReceiver(t *testing.T) {
	var x, y deque.Deque[int]
	x.AddAtTail(1)
	y.AddAtTail(1)

	n := x.Find(func(v int) bool { return v == 1 })
	require.False(t, x.IsHeader(n))
	_, err := y.Value(n)
	assert.ErrorIs(t, err, deque.ErrInvalidNode)
	y.RemoveNode(n)
	assert.Equal(t, 1, y.Len())
}

// TestValue_Invalid checks the invalid-argument path.
func TestValue_Invalid(t *testing.T) {
	d := abcd()
	_, err := d.Value(d.Header())
	assert.ErrorIs(t, err, deque.ErrInvalidNode)

	var zero deque.Node
	assert.True(t, d.IsHeader(zero))
}

// TestLinks_StayConsistent interleaves operations and compares with a slice model.
func TestLinks_StayConsistent(t *testing.T) {
	d := deque.New[int]()
	var model []int
	for i := 0; i < 50; i++ {
		switch i % 5 {
		case 0, 1:
			d.AddAtHead(i)
			model = append([]int{i}, model...)
		case 2:
			d.AddAtTail(i)
			model = append(model, i)
		case 3:
			v, err := d.RemoveFromTail()
			require.NoError(t, err)
			assert.Equal(t, model[len(model)-1], v)
			model = model[:len(model)-1]
		case 4:
			v, err := d.RemoveFromHead()
			require.NoError(t, err)
			assert.Equal(t, model[0], v)
			model = model[1:]
		}
		require.Equal(t, len(model), d.Len())
	}
	assert.Equal(t, model, d.Values())
}

// TestString renders contents head to tail.
func TestString(t *testing.T) {
	assert.Equal(t, "deque[abc bcd cde def]", abcd().String())
	assert.Equal(t, "deque[]", deque.New[int]().String())
}
