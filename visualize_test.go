package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizeLinearPath(t *testing.T) {
	cp, err := Compile("a", ALL, "b")
	require.NoError(t, err)
	out := Visualize(cp)
	assert.Contains(t, out, "digraph {")
	assert.Contains(t, out, "ALL")
	assert.Contains(t, out, "->")
}

func TestVisualizeCondPathBranches(t *testing.T) {
	even := func(x Value) bool { return asInt(x)%2 == 0 }
	cp, err := Compile(IfPath(even, "a", "b"))
	require.NoError(t, err)
	out := Visualize(cp)
	assert.Contains(t, out, "shape=diamond")
	assert.Contains(t, out, "style=dashed")
}
