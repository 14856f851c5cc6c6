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

// walkerNav is the shared implementation behind Walker and Codewalker:
// it descends the value tree pre-order, depth-first, left-to-right,
// treating the first node along each branch for which pred holds as a
// match — the engine's continuation runs there and does not descend
// further into that subtree. Nodes for which pred does not hold, and
// which are eligible for descent, are recursed into instead;
// ineligible non-matching nodes contribute nothing.
type walkerNav struct {
	pred     func(Value) (bool, error)
	codeOnly bool
	label    string
}

// Walker recursively descends pred across every container shape,
// pointing to every sub-value for which pred holds; the inside of a
// matching sub-value is not searched further. Transform rebuilds
// the tree bottom-up, preserving the shape of every container it
// passes through.
func Walker(pred any) Navigator {
	p, label := asPredicate(pred)
	return &walkerNav{pred: p, label: "walker(" + label + ")"}
}

// Codewalker is Walker restricted to the syntactic-sequence
// interpretation of a structure: only Vec and Seq are descended into;
// every other container shape is treated as an opaque leaf, even when
// pred would hold somewhere inside it.
func Codewalker(pred any) Navigator {
	p, label := asPredicate(pred)
	return &walkerNav{pred: p, codeOnly: true, label: "codewalker(" + label + ")"}
}

func (w *walkerNav) String() string { return w.label }

// descend reports whether v's children should be visited when pred
// does not hold at v itself.
func (w *walkerNav) descend(v Value) (tvalue.Container, bool) {
	c, ok := v.(tvalue.Container)
	if !ok {
		return nil, false
	}
	if w.codeOnly {
		switch c.(type) {
		case *tvalue.Vec, *tvalue.Seq:
			return c, true
		default:
			return nil, false
		}
	}
	return c, true
}

func (w *walkerNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	return w.selectAt(structure, k)
}

func (w *walkerNav) selectAt(v Value, k SelectContinuation) ([]Value, error) {
	match, err := w.pred(v)
	if err != nil {
		return nil, wrapUserFunc(err, w.label)
	}
	if match {
		return k(v)
	}
	c, ok := w.descend(v)
	if !ok {
		return nil, nil
	}
	var out []Value
	for _, e := range c.Children() {
		res, err := w.selectAt(e.Val, k)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}

func (w *walkerNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	return w.transformAt(structure, k)
}

func (w *walkerNav) transformAt(v Value, k TransformContinuation) (Value, error) {
	match, err := w.pred(v)
	if err != nil {
		return nil, wrapUserFunc(err, w.label)
	}
	if match {
		return k(v)
	}
	c, ok := w.descend(v)
	if !ok {
		return v, nil
	}
	children := c.Children()
	next := make([]tvalue.Entry, len(children))
	for i, e := range children {
		repl, err := w.transformAt(e.Val, k)
		if err != nil {
			return nil, err
		}
		next[i] = tvalue.Entry{Key: e.Key, Val: repl}
	}
	out, err := c.WithChildren(next)
	if err != nil {
		return nil, &ShapeMismatchError{Navigator: w.label, Detail: err.Error()}
	}
	return out, nil
}
