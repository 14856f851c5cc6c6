package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGoAndToGoRoundTrip(t *testing.T) {
	raw := map[string]any{
		"name": "alice",
		"age":  30,
		"tags": []any{"a", "b"},
	}
	v := FromGo(raw)
	res, err := Select([]any{"tags", ALL}, v)
	require.NoError(t, err)
	require.Len(t, res, 2)

	back := ToGo(v).(map[string]any)
	assert.Equal(t, "alice", back["name"])
	assert.Equal(t, []any{"a", "b"}, back["tags"])
}

func TestFromGoNestedMaps(t *testing.T) {
	raw := map[string]any{
		"a": map[string]any{"b": 3},
	}
	v := FromGo(raw)
	out, err := Transform([]any{"a", "b"}, func(vals []Value, x Value) (Value, error) { return incInt(x) }, v)
	require.NoError(t, err)
	got := ToGo(out).(map[string]any)["a"].(map[string]any)["b"]
	assert.Equal(t, 4, got)
}
