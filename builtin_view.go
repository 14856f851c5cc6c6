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

// viewNav is a read/write window: select applies f to the current
// structure and continues on the result; transform applies f,
// continues, and returns the continuation's output as the new value
// directly — there is no write-back, since f is not assumed
// invertible.
type viewNav struct {
	f     func(Value) (Value, error)
	label string
}

// View applies f to the structure before continuing, with no
// write-back: whatever the rest of the path produces from f(structure)
// becomes this navigator's result outright.
func View(f any) Navigator {
	return &viewNav{f: asValueFunc(f), label: "view(<fn>)"}
}

func (v *viewNav) String() string { return v.label }

func (v *viewNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	y, err := v.f(structure)
	if err != nil {
		return nil, wrapUserFunc(err, v.label)
	}
	return k(y)
}

func (v *viewNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	y, err := v.f(structure)
	if err != nil {
		return nil, wrapUserFunc(err, v.label)
	}
	return k(y)
}

// transformedNav is a view-like navigator whose window is the
// structure after transform(path, f, _) has been applied. Like view,
// there is no write-back.
type transformedNav struct {
	inner *CompiledPath
	f     func(Value) (Value, error)
	label string
}

// Transformed views the structure through transform(path, f, _): both
// select and transform continue on that rewritten value.
func Transformed(path any, f any) Navigator {
	inner := asPath(path)
	return &transformedNav{inner: inner, f: asValueFunc(f), label: "transformed(" + inner.String() + ", <fn>)"}
}

func (t *transformedNav) String() string { return t.label }

func (t *transformedNav) window(structure Value) (Value, error) {
	return t.inner.TransformStep(structure, func(x Value) (Value, error) {
		y, err := t.f(x)
		if err != nil {
			return nil, wrapUserFunc(err, t.label)
		}
		return y, nil
	})
}

func (t *transformedNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	y, err := t.window(structure)
	if err != nil {
		return nil, err
	}
	return k(y)
}

func (t *transformedNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	y, err := t.window(structure)
	if err != nil {
		return nil, err
	}
	return k(y)
}
