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

// TransformFunc is the user transform function passed to Transform: it
// receives the collected-vals accumulated along the active branch as
// leading positional arguments, followed by the navigated value.
type TransformFunc func(vals []Value, x Value) (Value, error)

// resolvePath normalizes the handful of shapes every entry point
// accepts for its path argument: an already-compiled path, a
// flattenable composition, or a single navigator or literal. A path
// that still has unbound late parameters is rejected.
func resolvePath(path any) (*CompiledPath, error) {
	cp, ok := path.(*CompiledPath)
	if !ok {
		var err error
		if items, isSlice := path.([]any); isSlice {
			cp, err = Compile(items...)
		} else {
			cp, err = Compile(path)
		}
		if err != nil {
			return nil, err
		}
	}
	if cp.Slots() > 0 {
		return nil, &UnboundParameterError{Navigator: cp.String()}
	}
	return cp, nil
}

func pathLabel(path any) string {
	if cp, ok := path.(*CompiledPath); ok {
		return cp.String()
	}
	return "<path>"
}

// Select collects the values path points to within structure, in
// deterministic left-to-right depth-first order.
func Select(path any, structure Value) ([]Value, error) {
	cp, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return execSelect(cp.elements, 0, structure, selectIdentity)
}

// SelectOne asserts that path points to at most one position in
// structure, returning nil if it points to none.
func SelectOne(path any, structure Value) (Value, error) {
	res, err := Select(path, structure)
	if err != nil {
		return nil, err
	}
	if len(res) > 1 {
		return nil, &CardinalityError{Path: pathLabel(path), Want: "at most one", Got: len(res)}
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res[0], nil
}

// SelectOneStrict asserts that path points to exactly one position in
// structure (the source's select-one!).
func SelectOneStrict(path any, structure Value) (Value, error) {
	res, err := Select(path, structure)
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, &CardinalityError{Path: pathLabel(path), Want: "exactly one", Got: len(res)}
	}
	return res[0], nil
}

// SelectFirst returns the first value path points to in structure,
// asserting that at least one position matched.
func SelectFirst(path any, structure Value) (Value, error) {
	res, err := Select(path, structure)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, &CardinalityError{Path: pathLabel(path), Want: "at least one", Got: 0}
	}
	return res[0], nil
}

// Transform produces a new structure identical to structure except
// that every value path points to has been replaced by f's output. f
// receives the collected-vals accumulated along its branch, then the
// navigated value.
func Transform(path any, f TransformFunc, structure Value) (Value, error) {
	cp, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return execTransform(cp.elements, 0, structure, nil, func(vals []Value, x Value) (Value, error) {
		out, err := f(vals, x)
		if err != nil {
			return nil, wrapUserFunc(err, pathLabel(path))
		}
		return out, nil
	})
}

// Setval replaces every value path points to in structure with the
// constant v.
func Setval(path any, v Value, structure Value) (Value, error) {
	return Transform(path, func([]Value, Value) (Value, error) { return v, nil }, structure)
}
