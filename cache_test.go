package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCacheHitsAndMisses(t *testing.T) {
	pc := NewPathCache()

	cp1, err := pc.Compile("a", ALL, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 0, pc.Hits())
	assert.EqualValues(t, 1, pc.Misses())

	cp2, err := pc.Compile("a", ALL, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 1, pc.Hits())
	assert.EqualValues(t, 1, pc.Misses())
	assert.Same(t, cp1, cp2)

	_, err = pc.Compile("a", ALL, "c")
	require.NoError(t, err)
	assert.EqualValues(t, 1, pc.Hits())
	assert.EqualValues(t, 2, pc.Misses())
}

func TestPathCacheUsableForSelect(t *testing.T) {
	pc := NewPathCache()
	cp, err := pc.Compile([]any{"a", ALL})
	require.NoError(t, err)

	res, err := Select(cp, mapOf("a", vecOf(1, 2, 3)))
	require.NoError(t, err)
	require.Len(t, res, 3)
}
