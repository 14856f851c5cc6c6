// Copyright (c) 2026 The traverselib Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package traverse

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/traverselib/traverse/internal/tvalue"
)

// TestExampleSelectNamesFromYAML exercises the full decode-navigate
// pipeline a caller would actually use: load a document from disk,
// convert it to Value, and select through it.
func TestExampleSelectNamesFromYAML(t *testing.T) {
	raw, err := os.ReadFile("testdata/people.yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))

	structure := FromGo(doc)
	names, err := Select([]any{"people", ALL, "name"}, structure)
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "ada", names[0].(tvalue.Scalar).Raw())
}

// TestExampleRaiseEngineersAge gives every engineer a birthday.
func TestExampleRaiseEngineersAge(t *testing.T) {
	raw, err := os.ReadFile("testdata/people.yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	structure := FromGo(doc)

	isEngineer := func(x Value) bool {
		m, ok := x.(*tvalue.Map)
		if !ok {
			return false
		}
		role, ok := m.Get(scalar("role"))
		return ok && role.(tvalue.Scalar).Raw() == "engineer"
	}

	out, err := Transform([]any{"people", Filterer(isEngineer), ALL, "age"}, func(vals []Value, x Value) (Value, error) {
		return incInt(x)
	}, structure)
	require.NoError(t, err)

	ages, err := Select([]any{"people", ALL, "age"}, out)
	require.NoError(t, err)
	assert.Equal(t, 37, asInt(ages[0]))
	assert.Equal(t, 86, asInt(ages[1]))
	assert.Equal(t, 41, asInt(ages[2]))
}
