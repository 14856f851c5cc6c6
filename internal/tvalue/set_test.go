package tvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDedupAndOrder(t *testing.T) {
	s := NewSet(NewScalar("a"), NewScalar("b"), NewScalar("a"), NewScalar("c"))
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(NewScalar("a")))
	assert.False(t, s.Contains(NewScalar("z")))

	children := s.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "a", children[0].Key.(Scalar).Raw())
	assert.Equal(t, "b", children[1].Key.(Scalar).Raw())
	assert.Equal(t, "c", children[2].Key.(Scalar).Raw())
}

func TestSetPutIsImmutable(t *testing.T) {
	s := NewSet(NewScalar(1))
	s2 := s.Put(NewScalar(2), nil)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s2.Len())
}

func TestSetFirstRestCons(t *testing.T) {
	s := NewSet(NewScalar(1), NewScalar(2), NewScalar(3))
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 1, first.(Scalar).Raw())

	rest := s.Rest()
	assert.Equal(t, 2, rest.Len())

	consed := s.Cons(NewScalar(9)).(*Set)
	assert.Equal(t, 4, consed.Len())
	assert.True(t, consed.Contains(NewScalar(9)))
}

func TestSetUpdateAt(t *testing.T) {
	s := NewSet(NewScalar(1), NewScalar(2), NewScalar(3))
	updated, err := s.UpdateAt(NewScalar(2), func(Value) (Value, error) {
		return NewScalar(20), nil
	})
	require.NoError(t, err)
	us := updated.(*Set)
	assert.Equal(t, 3, us.Len())
	assert.False(t, us.Contains(NewScalar(2)))
	assert.True(t, us.Contains(NewScalar(20)))
}

func TestSetCompoundElementPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSet(NewVec(NewScalar(1)))
	})
}

func TestSetWithChildren(t *testing.T) {
	s := NewSet(NewScalar(1), NewScalar(2))
	out, err := s.WithChildren([]Entry{
		{Key: NewScalar(1), Val: NewScalar(10)},
		{Key: NewScalar(2), Val: NewScalar(20)},
	})
	require.NoError(t, err)
	os := out.(*Set)
	assert.True(t, os.Contains(NewScalar(10)))
	assert.True(t, os.Contains(NewScalar(20)))
}
