package tvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vs ...int) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = NewScalar(v)
	}
	return out
}

func TestVecGetPut(t *testing.T) {
	v := NewVec(ints(1, 2, 3)...)
	assert.Equal(t, 3, v.Len())

	got, ok := v.Get(Index(1))
	require.True(t, ok)
	assert.Equal(t, 2, got.(Scalar).Raw())

	_, ok = v.Get(Index(5))
	assert.False(t, ok)

	v2 := v.Put(Index(1), NewScalar(99))
	got, _ = v2.Get(Index(1))
	assert.Equal(t, 99, got.(Scalar).Raw())
	// original untouched
	got, _ = v.Get(Index(1))
	assert.Equal(t, 2, got.(Scalar).Raw())
}

func TestVecPutExtends(t *testing.T) {
	v := NewVec(ints(1)...)
	v2 := v.Put(Index(3), NewScalar("x"))
	assert.Equal(t, 4, v2.Len())
	got, ok := v2.Get(Index(3))
	require.True(t, ok)
	assert.Equal(t, "x", got.(Scalar).Raw())
}

func TestVecFirstRestCons(t *testing.T) {
	v := NewVec(ints(1, 2, 3)...)
	first, ok := v.First()
	require.True(t, ok)
	assert.Equal(t, 1, first.(Scalar).Raw())

	rest := v.Rest()
	assert.Equal(t, 2, rest.Len())

	consed := v.Cons(NewScalar(0))
	assert.Equal(t, 4, consed.Len())
	f, _ := consed.First()
	assert.Equal(t, 0, f.(Scalar).Raw())

	empty := NewVec()
	_, ok = empty.First()
	assert.False(t, ok)
}

func TestVecChildrenWithChildren(t *testing.T) {
	v := NewVec(ints(1, 2, 3)...)
	children := v.Children()
	require.Len(t, children, 3)
	assert.Equal(t, 0, children[0].Key.(Scalar).Raw())

	out, err := v.WithChildren([]Entry{
		{Key: Index(0), Val: NewScalar(10)},
		{Key: Index(1), Val: NewScalar(20)},
		{Key: Index(2), Val: NewScalar(30)},
	})
	require.NoError(t, err)
	got, _ := out.Get(Index(0))
	assert.Equal(t, 10, got.(Scalar).Raw())

	_, err = v.WithChildren([]Entry{{Key: Index(0), Val: NewScalar(1)}})
	assert.Error(t, err)
}

func TestVecSliceAndWithSlice(t *testing.T) {
	v := NewVec(ints(0, 1, 2, 3, 4)...)
	sub := v.Slice(1, 3)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, 1, sub.At(0).(Scalar).Raw())
	assert.Equal(t, 2, sub.At(1).(Scalar).Raw())

	replaced := v.WithSlice(1, 3, []Value{NewScalar("x"), NewScalar("y")})
	assert.Equal(t, 5, replaced.Len())
	assert.Equal(t, "x", replaced.At(1).(Scalar).Raw())
	assert.Equal(t, 3, replaced.At(3).(Scalar).Raw())

	empty := v.Slice(2, 2)
	assert.Equal(t, 0, empty.Len())
}
