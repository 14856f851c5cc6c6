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

// allNav points to every child of a container.
type allNav struct{}

// ALL points to every child of the current container: for a Map, each
// child is the 2-element [key val] pair (see tvalue.Map.Children); for
// Vec, Seq, and Set, each child is the element itself. Transform
// preserves the container's shape.
var ALL Navigator = allNav{}

func (allNav) String() string { return "ALL" }

func (allNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	c, ok := asContainer(structure)
	if !ok {
		return nil, &ShapeMismatchError{Navigator: "ALL", Detail: "structure is not a container"}
	}
	var out []Value
	for _, e := range c.Children() {
		child := childValue(c, e)
		res, err := k(child)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}

func (allNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	c, ok := asContainer(structure)
	if !ok {
		return nil, &ShapeMismatchError{Navigator: "ALL", Detail: "structure is not a container"}
	}
	children := c.Children()
	next := make([]tvalue.Entry, len(children))
	for i, e := range children {
		child := childValue(c, e)
		repl, err := k(child)
		if err != nil {
			return nil, err
		}
		entry, err := entryFromChild(c, e, repl)
		if err != nil {
			return nil, err
		}
		next[i] = entry
	}
	out, err := c.WithChildren(next)
	if err != nil {
		return nil, &ShapeMismatchError{Navigator: "ALL", Detail: err.Error()}
	}
	return out, nil
}

// childValue renders a container's child entry as the value ALL's
// continuation receives: the full [key val] pair for Map, the bare
// element for Vec/Seq/Set.
func childValue(c tvalue.Container, e tvalue.Entry) Value {
	if _, isMap := c.(*tvalue.Map); isMap {
		return tvalue.NewVec(e.Key, e.Val)
	}
	return e.Val
}

// entryFromChild is childValue's inverse: it reads the continuation's
// output back into an Entry suitable for WithChildren.
func entryFromChild(c tvalue.Container, orig tvalue.Entry, repl Value) (tvalue.Entry, error) {
	if _, isMap := c.(*tvalue.Map); isMap {
		pair, ok := repl.(*tvalue.Vec)
		if !ok || pair.Len() != 2 {
			return tvalue.Entry{}, &ShapeMismatchError{Navigator: "ALL", Detail: "on a map the continuation must return a [key val] pair"}
		}
		return tvalue.Entry{Key: pair.At(0), Val: pair.At(1)}, nil
	}
	return tvalue.Entry{Key: orig.Key, Val: repl}, nil
}
