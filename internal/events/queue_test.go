package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueEmpty(t *testing.T) {
	q := New[string]()
	assert.True(t, q.IsEmpty())
	_, _, ok := q.PopMin()
	assert.False(t, ok)
}

func TestQueuePopMinOrdersByYThenX(t *testing.T) {
	q := New[string]()
	q.Push(Key{Y: 2, X: 1, Seq: q.NextSeq()}, "b")
	q.Push(Key{Y: 1, X: 5, Seq: q.NextSeq()}, "a-high-x")
	q.Push(Key{Y: 1, X: 2, Seq: q.NextSeq()}, "a-low-x")
	q.Push(Key{Y: 3, X: 0, Seq: q.NextSeq()}, "c")

	var order []string
	for !q.IsEmpty() {
		_, v, ok := q.PopMin()
		assert.True(t, ok)
		order = append(order, v)
	}
	assert.Equal(t, []string{"a-low-x", "a-high-x", "b", "c"}, order)
}

func TestQueueRemoveByKey(t *testing.T) {
	q := New[string]()
	k1 := Key{Y: 1, X: 1, Seq: q.NextSeq()}
	k2 := Key{Y: 2, X: 1, Seq: q.NextSeq()}
	q.Push(k1, "first")
	q.Push(k2, "second")

	q.Remove(k1)
	assert.Equal(t, 1, q.Len())

	_, v, ok := q.PopMin()
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestQueuePeekMinDoesNotRemove(t *testing.T) {
	q := New[string]()
	k := Key{Y: 1, X: 1, Seq: q.NextSeq()}
	q.Push(k, "only")

	_, v, ok := q.PeekMin()
	assert.True(t, ok)
	assert.Equal(t, "only", v)
	assert.Equal(t, 1, q.Len())
}

func TestQueueUniqueSequenceBreaksTies(t *testing.T) {
	q := New[int]()
	k1 := Key{Y: 1, X: 1, Seq: q.NextSeq()}
	k2 := Key{Y: 1, X: 1, Seq: q.NextSeq()}
	q.Push(k1, 1)
	q.Push(k2, 2)
	assert.Equal(t, 2, q.Len())
}
