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

import "github.com/traverselib/traverse/internal/tvalue"

// selectIdentity is the bare select terminal λx.[x], reused by every
// built-in that needs to test "does select(path, x) yield anything"
// without running a user-supplied terminal.
var selectIdentity SelectContinuation = func(x Value) ([]Value, error) { return []Value{x}, nil }

// alwaysPath is the empty Compiled Path: its select-step invokes the
// terminal directly on its input, so selectIdentity against it always
// returns exactly one result. If-path's optional else-branch uses it
// as cond-path's catch-all second condition.
var alwaysPath, _ = Compile()

// asPath normalizes a path argument — already compiled, a flattenable
// slice, or a single navigator/literal — into a *CompiledPath. Bad
// input here is a caller contract violation, not a runtime condition,
// so it panics rather than threading an error back through the many
// constructors that accept a path argument (CondPath, Selected,
// Transformed, and friends).
func asPath(raw any) *CompiledPath {
	if cp, ok := raw.(*CompiledPath); ok {
		return cp
	}
	if items, ok := raw.([]any); ok {
		cp, err := Compile(items...)
		if err != nil {
			panic(err)
		}
		return cp
	}
	cp, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return cp
}

// asValueFunc normalizes the function argument View/Transformed accept
// into a single func(Value) (Value, error) shape.
func asValueFunc(f any) func(Value) (Value, error) {
	switch v := f.(type) {
	case func(Value) (Value, error):
		return v
	case func(Value) Value:
		return func(x Value) (Value, error) { return v(x), nil }
	case tvalue.Fn:
		return func(x Value) (Value, error) { return v.Call(x) }
	default:
		panic("traverse: not a valid view function")
	}
}
