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
	"fmt"

	"github.com/traverselib/traverse/internal/tvalue"
)

// scalarOf wraps a raw Go value (or passes an existing Value through
// unchanged) as the Value used to address a container: Keypath(3),
// Keypath("name"), and Keypath(tvalue.NewScalar(3)) are all equivalent.
func scalarOf(raw any) Value {
	if v, ok := raw.(Value); ok {
		return v
	}
	return tvalue.NewScalar(raw)
}

// rawKeyOf extracts the raw Go value a scalar Value wraps, for storing
// inside a navigator after Bind resolves it from the parameter frame.
func rawKeyOf(v Value) any {
	if s, ok := v.(tvalue.Scalar); ok {
		return s.Raw()
	}
	return v
}

// absentValue is the placeholder a transform sees in place of a
// missing key: if k is absent, keypath still puts k in the updated map
// mapped to the continuation's output, so the continuation still needs
// *some* value to work from.
func absentValue() Value { return tvalue.NewScalar(nil) }

// asContainer asserts that v is one of the four container shapes.
func asContainer(v Value) (tvalue.Container, bool) {
	c, ok := v.(tvalue.Container)
	return c, ok
}

// FromGo converts a tree of plain Go values, as produced by decoding
// YAML or JSON into interface{}, into the Value representation: a
// map[string]any or map[any]any becomes a Map (its entries follow Go's
// map iteration order, so their order is not stable between calls), a
// []any becomes a Vec, and anything else becomes a Scalar.
func FromGo(v any) Value {
	switch t := v.(type) {
	case map[string]any:
		entries := make([]tvalue.Entry, 0, len(t))
		for k, val := range t {
			entries = append(entries, tvalue.Entry{Key: tvalue.NewScalar(k), Val: FromGo(val)})
		}
		return tvalue.NewMap(entries...)
	case map[any]any:
		entries := make([]tvalue.Entry, 0, len(t))
		for k, val := range t {
			entries = append(entries, tvalue.Entry{Key: FromGo(k), Val: FromGo(val)})
		}
		return tvalue.NewMap(entries...)
	case []any:
		items := make([]Value, len(t))
		for i, val := range t {
			items[i] = FromGo(val)
		}
		return tvalue.NewVec(items...)
	default:
		return tvalue.NewScalar(t)
	}
}

// ToGo is FromGo's inverse: it renders a Value back into plain Go
// values a caller can re-encode as YAML or JSON. Map keys are rendered
// via their underlying Scalar's raw value; a non-scalar map key panics,
// since JSON/YAML have no representation for one.
func ToGo(v Value) any {
	switch t := v.(type) {
	case tvalue.Scalar:
		return t.Raw()
	case *tvalue.Map:
		out := make(map[string]any, t.Len())
		for _, e := range t.Children() {
			k, ok := e.Key.(tvalue.Scalar)
			if !ok {
				panic("traverse: ToGo cannot render a non-scalar map key")
			}
			out[fmt.Sprintf("%v", k.Raw())] = ToGo(e.Val)
		}
		return out
	case *tvalue.Vec:
		items := t.Items()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = ToGo(it)
		}
		return out
	case *tvalue.Seq:
		items := t.Items()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = ToGo(it)
		}
		return out
	case *tvalue.Set:
		var out []any
		for _, e := range t.Children() {
			out = append(out, ToGo(e.Key))
		}
		return out
	default:
		panic(fmt.Sprintf("traverse: ToGo: unhandled Value kind %T", v))
	}
}

// asPredicate normalizes the handful of Go shapes a predicate argument
// (Walker, Codewalker, Selected, NotSelected's inner tests aside) may
// take into a single func(Value) (bool, error).
func asPredicate(p any) (func(Value) (bool, error), string) {
	switch v := p.(type) {
	case func(Value) (bool, error):
		return v, "<predicate>"
	case func(Value) bool:
		return func(x Value) (bool, error) { return v(x), nil }, "<predicate>"
	case *tvalue.Set:
		return func(x Value) (bool, error) { return v.Contains(x), nil }, v.String()
	default:
		panic(fmt.Sprintf("traverse: %T is not a valid predicate", p))
	}
}
