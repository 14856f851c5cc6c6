package tvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGetPut(t *testing.T) {
	m := NewMap(
		Entry{Key: NewScalar("a"), Val: NewScalar(1)},
		Entry{Key: NewScalar("b"), Val: NewScalar(2)},
	)
	assert.Equal(t, 2, m.Len())

	got, ok := m.Get(NewScalar("a"))
	require.True(t, ok)
	assert.Equal(t, 1, got.(Scalar).Raw())

	_, ok = m.Get(NewScalar("z"))
	assert.False(t, ok)

	m2 := m.Put(NewScalar("a"), NewScalar(100))
	got, _ = m2.Get(NewScalar("a"))
	assert.Equal(t, 100, got.(Scalar).Raw())
	got, _ = m.Get(NewScalar("a"))
	assert.Equal(t, 1, got.(Scalar).Raw())
}

func TestMapDuplicateKeyKeepsPosition(t *testing.T) {
	m := NewMap(
		Entry{Key: NewScalar("a"), Val: NewScalar(1)},
		Entry{Key: NewScalar("b"), Val: NewScalar(2)},
		Entry{Key: NewScalar("a"), Val: NewScalar(3)},
	)
	assert.Equal(t, 2, m.Len())
	children := m.Children()
	assert.Equal(t, "a", children[0].Key.(Scalar).Raw())
	assert.Equal(t, 3, children[0].Val.(Scalar).Raw())
	assert.Equal(t, "b", children[1].Key.(Scalar).Raw())
}

func TestMapFirstRestCons(t *testing.T) {
	m := NewMap(
		Entry{Key: NewScalar("a"), Val: NewScalar(1)},
		Entry{Key: NewScalar("b"), Val: NewScalar(2)},
	)
	first, ok := m.First()
	require.True(t, ok)
	pair := first.(*Vec)
	assert.Equal(t, "a", pair.At(0).(Scalar).Raw())
	assert.Equal(t, 1, pair.At(1).(Scalar).Raw())

	rest := m.Rest()
	assert.Equal(t, 1, rest.Len())

	consed := m.Cons(NewVec(NewScalar("z"), NewScalar(9)))
	assert.Equal(t, 3, consed.Len())
	f, _ := consed.First()
	fp := f.(*Vec)
	assert.Equal(t, "z", fp.At(0).(Scalar).Raw())
}

func TestMapConsRequiresPair(t *testing.T) {
	m := NewMap()
	assert.Panics(t, func() {
		m.Cons(NewScalar("not a pair"))
	})
}

func TestMapChildrenWithChildrenRenamesKeys(t *testing.T) {
	m := NewMap(
		Entry{Key: NewScalar("a"), Val: NewScalar(1)},
		Entry{Key: NewScalar("b"), Val: NewScalar(2)},
	)
	children := m.Children()
	require.Len(t, children, 2)

	renamed := make([]Entry, len(children))
	for i, e := range children {
		renamed[i] = Entry{Key: NewScalar(e.Key.(Scalar).Raw().(string) + "!"), Val: e.Val}
	}
	out, err := m.WithChildren(renamed)
	require.NoError(t, err)
	om := out.(*Map)
	_, ok := om.Get(NewScalar("a"))
	assert.False(t, ok)
	got, ok := om.Get(NewScalar("a!"))
	require.True(t, ok)
	assert.Equal(t, 1, got.(Scalar).Raw())
}

func TestMapUpdateAtAbsentKey(t *testing.T) {
	m := NewMap()
	out, err := m.UpdateAt(NewScalar("k"), func(v Value) (Value, error) {
		assert.Equal(t, KindScalar, v.Kind())
		return NewScalar("filled"), nil
	})
	require.NoError(t, err)
	got, ok := out.(*Map).Get(NewScalar("k"))
	require.True(t, ok)
	assert.Equal(t, "filled", got.(Scalar).Raw())
}
