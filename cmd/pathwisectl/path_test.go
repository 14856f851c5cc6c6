package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traverselib/traverse"
)

func TestParsePath(t *testing.T) {
	segs, err := parsePath("people.[].name")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, "people", segs[0])
	assert.Equal(t, traverse.ALL, segs[1])
	assert.Equal(t, "name", segs[2])
}

func TestParsePathIndexSegment(t *testing.T) {
	segs, err := parsePath("items.[3]")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, 3, segs[1])
}

func TestParsePathInvalidIndex(t *testing.T) {
	_, err := parsePath("items.[x]")
	assert.Error(t, err)
}

func TestParsePathEmpty(t *testing.T) {
	segs, err := parsePath("")
	require.NoError(t, err)
	assert.Nil(t, segs)
}
