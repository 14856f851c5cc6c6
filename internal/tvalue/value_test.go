package tvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRaw(t *testing.T) {
	s := NewScalar(42)
	assert.Equal(t, KindScalar, s.Kind())
	assert.Equal(t, 42, s.Raw())
	assert.Equal(t, "42", s.String())
}

func TestIndexRoundTrip(t *testing.T) {
	idx := Index(3)
	i, ok := AsIndex(idx)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = AsIndex(NewScalar("not an index"))
	assert.False(t, ok)
}

func TestTruthy(t *testing.T) {
	assert.True(t, Truthy(NewScalar(0)))
	assert.True(t, Truthy(NewScalar("")))
	assert.False(t, Truthy(NewScalar(false)))
	assert.False(t, Truthy(NewScalar(nil)))
	assert.True(t, Truthy(NewScalar(true)))
	assert.True(t, Truthy(NewVec()))
}

func TestFnCall(t *testing.T) {
	fn := NewFn(func(args ...Value) (Value, error) {
		return args[0], nil
	})
	out, err := fn.Call(NewScalar("x"))
	require.NoError(t, err)
	assert.Equal(t, KindScalar, out.Kind())
	assert.Equal(t, "x", out.(Scalar).Raw())
}
