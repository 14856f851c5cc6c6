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

import "fmt"

// predicateFilter is the navigator a bare Set or predicate function
// literal lifts to: structure passes through to the continuation iff
// pred holds on it, otherwise the path misses — select yields no
// results, transform returns structure unchanged, matching CondPath's
// own no-match behavior so a failed predicate never discards data it
// was only meant to filter.
type predicateFilter struct {
	pred  func(Value) (bool, error)
	label string
}

func (p predicateFilter) String() string { return p.label }

func (p predicateFilter) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	ok, err := p.pred(structure)
	if err != nil {
		return nil, wrapUserFunc(err, p.label)
	}
	if !ok {
		return nil, nil
	}
	return k(structure)
}

func (p predicateFilter) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	ok, err := p.pred(structure)
	if err != nil {
		return nil, wrapUserFunc(err, p.label)
	}
	if !ok {
		return structure, nil
	}
	return k(structure)
}

// keypathNav points to the value at a key in any Container. A bare
// string or int path element lifts to this navigator;
// Keypath(traverse.L) builds a late-bound, 1-slot variant.
type keypathNav struct {
	key    any // resolved key (any comparable Go value), or nil if late-bound
	late   bool
	offset int
}

// Keypath points to the value at key k in a map (or, via the shared
// Container shim, the element at index k of a vec/seq, or membership
// of k in a set). Passing traverse.L instead of a literal key produces
// a 1-slot parameterized navigator, usable only after BindParams.
func Keypath(k any) Navigator {
	if _, ok := k.(Late); ok {
		return &keypathNav{late: true}
	}
	return &keypathNav{key: k}
}

func (n *keypathNav) String() string {
	if n.late {
		return fmt.Sprintf("keypath(<late:%d>)", n.offset)
	}
	return fmt.Sprintf("keypath(%v)", n.key)
}

func (n *keypathNav) Slots() int {
	if !n.late {
		return 0
	}
	return 1
}

func (n *keypathNav) WithOffset(offset int) Parameterized {
	if !n.late {
		return n
	}
	return &keypathNav{late: true, offset: offset}
}

func (n *keypathNav) Bind(f Frame) Navigator {
	if !n.late {
		return n
	}
	return &keypathNav{key: rawKeyOf(f.At(n.offset))}
}

func (n *keypathNav) keyValue() Value {
	return scalarOf(n.key)
}

func (n *keypathNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	c, ok := asContainer(structure)
	if !ok {
		return nil, &ShapeMismatchError{Navigator: n.String(), Detail: fmt.Sprintf("%v is not a container", structure.Kind())}
	}
	v, found := c.Get(n.keyValue())
	if !found {
		return nil, nil
	}
	return k(v)
}

func (n *keypathNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	c, ok := asContainer(structure)
	if !ok {
		return nil, &ShapeMismatchError{Navigator: n.String(), Detail: fmt.Sprintf("%v is not a container", structure.Kind())}
	}
	cur, found := c.Get(n.keyValue())
	zero := absentValue()
	if found {
		zero = cur
	}
	repl, err := k(zero)
	if err != nil {
		return nil, err
	}
	return c.Put(n.keyValue(), repl), nil
}
