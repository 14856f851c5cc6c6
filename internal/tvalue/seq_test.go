package tvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqBasics(t *testing.T) {
	s := NewSeq(ints(1, 2, 3)...)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "(1 2 3)", s.String())

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 1, first.(Scalar).Raw())

	got, ok := s.Get(Index(2))
	require.True(t, ok)
	assert.Equal(t, 3, got.(Scalar).Raw())

	_, ok = s.Get(Index(10))
	assert.False(t, ok)
}

func TestSeqRestConsSharing(t *testing.T) {
	s := NewSeq(ints(1, 2, 3)...)
	rest := s.Rest().(*Seq)
	assert.Equal(t, 2, rest.Len())
	assert.Same(t, s.head.next, rest.head)

	consed := s.Cons(NewScalar(0)).(*Seq)
	assert.Equal(t, 4, consed.Len())
	assert.Same(t, s.head, consed.head.next)
}

func TestSeqPutExtendsAndUpdateAt(t *testing.T) {
	s := NewSeq(ints(1)...)
	s2 := s.Put(Index(2), NewScalar("z"))
	assert.Equal(t, 3, s2.Len())
	got, _ := s2.Get(Index(2))
	assert.Equal(t, "z", got.(Scalar).Raw())

	updated, err := s.UpdateAt(Index(0), func(v Value) (Value, error) {
		return NewScalar(v.(Scalar).Raw().(int) + 1), nil
	})
	require.NoError(t, err)
	got, _ = updated.Get(Index(0))
	assert.Equal(t, 2, got.(Scalar).Raw())
}

func TestSeqSliceAndWithSlice(t *testing.T) {
	s := NewSeq(ints(0, 1, 2, 3, 4)...)
	sub := s.Slice(1, 3)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, 1, sub.At(0).(Scalar).Raw())

	replaced := s.WithSlice(1, 3, []Value{NewScalar("x")})
	assert.Equal(t, 4, replaced.Len())
	items := replaced.Items()
	assert.Equal(t, "x", items[1].(Scalar).Raw())
	assert.Equal(t, 3, items[2].(Scalar).Raw())
}

func TestSeqChildrenWithChildren(t *testing.T) {
	s := NewSeq(ints(1, 2)...)
	children := s.Children()
	require.Len(t, children, 2)

	out, err := s.WithChildren([]Entry{
		{Key: Index(0), Val: NewScalar(10)},
		{Key: Index(1), Val: NewScalar(20)},
	})
	require.NoError(t, err)
	got, _ := out.Get(Index(0))
	assert.Equal(t, 10, got.(Scalar).Raw())
}
