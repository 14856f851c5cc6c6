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

// orderedLen reports the length of an ordered sequence (Vec or Seq),
// and whether structure is one at all.
func orderedLen(structure Value) (int, bool) {
	switch v := structure.(type) {
	case *tvalue.Vec:
		return v.Len(), true
	case *tvalue.Seq:
		return v.Len(), true
	default:
		return 0, false
	}
}

// orderedSlice returns the [s, e) subrange of an ordered sequence as a
// Vec (the representation srange's continuation always sees).
func orderedSlice(structure Value, s, e int) (*tvalue.Vec, bool) {
	switch v := structure.(type) {
	case *tvalue.Vec:
		return v.Slice(s, e), true
	case *tvalue.Seq:
		return v.Slice(s, e), true
	default:
		return nil, false
	}
}

// orderedWithSlice replaces the [s, e) subrange of an ordered sequence,
// preserving its concrete shape (Vec stays Vec, Seq stays Seq).
func orderedWithSlice(structure Value, s, e int, repl []Value) (Value, bool) {
	switch v := structure.(type) {
	case *tvalue.Vec:
		return v.WithSlice(s, e, repl), true
	case *tvalue.Seq:
		return v.WithSlice(s, e, repl), true
	default:
		return nil, false
	}
}

// orderedItems materializes an ordered sequence's elements, the slice
// representation Filterer works against.
func orderedItems(structure Value) ([]Value, bool) {
	switch v := structure.(type) {
	case *tvalue.Vec:
		return v.Items(), true
	case *tvalue.Seq:
		return v.Items(), true
	default:
		return nil, false
	}
}

func notOrderedErr(nav string, structure Value) error {
	return &ShapeMismatchError{Navigator: nav, Detail: fmt.Sprintf("%v is not an ordered sequence (vec or seq)", structure.Kind())}
}

// firstNav is FIRST: it points to the head element of an ordered
// sequence, failing with a shape mismatch on non-ordered containers or
// an empty sequence.
type firstNav struct{}

// FIRST points to the head element of a vec or seq.
var FIRST Navigator = firstNav{}

func (firstNav) String() string { return "FIRST" }

func (firstNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	n, ok := orderedLen(structure)
	if !ok {
		return nil, notOrderedErr("FIRST", structure)
	}
	if n == 0 {
		return nil, &ShapeMismatchError{Navigator: "FIRST", Detail: "sequence is empty"}
	}
	sub, _ := orderedSlice(structure, 0, 1)
	return k(sub.At(0))
}

func (firstNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	n, ok := orderedLen(structure)
	if !ok {
		return nil, notOrderedErr("FIRST", structure)
	}
	if n == 0 {
		return nil, &ShapeMismatchError{Navigator: "FIRST", Detail: "sequence is empty"}
	}
	sub, _ := orderedSlice(structure, 0, 1)
	repl, err := k(sub.At(0))
	if err != nil {
		return nil, err
	}
	out, _ := orderedWithSlice(structure, 0, 1, []Value{repl})
	return out, nil
}

// lastNav is LAST: it points to the tail element of an ordered
// sequence.
type lastNav struct{}

// LAST points to the tail element of a vec or seq.
var LAST Navigator = lastNav{}

func (lastNav) String() string { return "LAST" }

func (lastNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	n, ok := orderedLen(structure)
	if !ok {
		return nil, notOrderedErr("LAST", structure)
	}
	if n == 0 {
		return nil, &ShapeMismatchError{Navigator: "LAST", Detail: "sequence is empty"}
	}
	sub, _ := orderedSlice(structure, n-1, n)
	return k(sub.At(0))
}

func (lastNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	n, ok := orderedLen(structure)
	if !ok {
		return nil, notOrderedErr("LAST", structure)
	}
	if n == 0 {
		return nil, &ShapeMismatchError{Navigator: "LAST", Detail: "sequence is empty"}
	}
	sub, _ := orderedSlice(structure, n-1, n)
	repl, err := k(sub.At(0))
	if err != nil {
		return nil, err
	}
	out, _ := orderedWithSlice(structure, n-1, n, []Value{repl})
	return out, nil
}

// boundFn computes one end of an srange from the current structure,
// the shape srange-dynamic's fs/fe arguments take.
type boundFn func(structure Value) (int, error)

// constBound lifts a literal bound into a boundFn that ignores
// structure.
func constBound(n int) boundFn { return func(Value) (int, error) { return n, nil } }

// lenBound is the boundFn BEGINNING/END build on: the length of the
// current ordered sequence.
func lenBound(structure Value) (int, error) {
	n, ok := orderedLen(structure)
	if !ok {
		return 0, notOrderedErr("srange", structure)
	}
	return n, nil
}

// srangeNav points to the contiguous subsequence [s, e) of a vec/seq.
// The continuation receives the subsequence as a Vec; its output
// replaces that slice. start/end are recomputed from the structure on
// every invocation, so a constant srange(s, e) and the dynamic
// srange-dynamic(fs, fe) share one implementation.
type srangeNav struct {
	start, end boundFn
	label      string
}

// Srange points to the contiguous subsequence [s, e) of a vec or seq.
func Srange(s, e int) Navigator {
	return &srangeNav{start: constBound(s), end: constBound(e), label: fmt.Sprintf("srange(%d, %d)", s, e)}
}

// SrangeDynamic recomputes [fs(structure), fe(structure)) on every
// invocation, letting the bounds depend on the navigated structure
// itself (e.g. END below).
func SrangeDynamic(fs, fe func(structure Value) (int, error)) Navigator {
	return &srangeNav{start: fs, end: fe, label: "srange-dynamic(...)"}
}

// BEGINNING is srange(0, 0): an empty window at the front of a vec/seq,
// so a transform's continuation output is inserted there.
var BEGINNING Navigator = Srange(0, 0)

// END is srange-dynamic(len, len): an empty window at the back of a
// vec/seq.
var END Navigator = SrangeDynamic(lenBound, lenBound)

func (n *srangeNav) String() string { return n.label }

func (n *srangeNav) bounds(structure Value) (int, int, error) {
	s, err := n.start(structure)
	if err != nil {
		return 0, 0, err
	}
	e, err := n.end(structure)
	if err != nil {
		return 0, 0, err
	}
	return s, e, nil
}

func (n *srangeNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	if _, ok := orderedLen(structure); !ok {
		return nil, notOrderedErr(n.label, structure)
	}
	s, e, err := n.bounds(structure)
	if err != nil {
		return nil, err
	}
	sub, _ := orderedSlice(structure, s, e)
	return k(sub)
}

func (n *srangeNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	if _, ok := orderedLen(structure); !ok {
		return nil, notOrderedErr(n.label, structure)
	}
	s, e, err := n.bounds(structure)
	if err != nil {
		return nil, err
	}
	sub, _ := orderedSlice(structure, s, e)
	repl, err := k(sub)
	if err != nil {
		return nil, err
	}
	replVec, ok := repl.(*tvalue.Vec)
	if !ok {
		return nil, &ShapeMismatchError{Navigator: n.label, Detail: "continuation must return a vec to splice back into the sequence"}
	}
	out, _ := orderedWithSlice(structure, s, e, replVec.Items())
	return out, nil
}
