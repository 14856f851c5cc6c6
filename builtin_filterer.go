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

// filtererNav points to the filtered view of an ordered sequence: the
// elements for which select(path, x) is non-empty. On transform the
// continuation receives that filtered view as a vec and must return a
// vec of the same length (otherwise ArityMismatchError); its output is
// spliced back element-by-element into the original positions, leaving
// non-matching elements in place.
type filtererNav struct {
	inner *CompiledPath
	label string
}

// Filterer points to the filtered view of the current vec/seq: those
// elements for which select(path, element) is non-empty.
func Filterer(path ...any) Navigator {
	cp, err := Compile(path...)
	if err != nil {
		panic(err)
	}
	return &filtererNav{inner: cp, label: "filterer(" + cp.String() + ")"}
}

func (f *filtererNav) String() string { return f.label }

func (f *filtererNav) matchingIndices(items []Value) ([]int, error) {
	var idx []int
	for i, x := range items {
		res, err := f.inner.SelectStep(x, selectIdentity)
		if err != nil {
			return nil, err
		}
		if len(res) > 0 {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

func (f *filtererNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	items, ok := orderedItems(structure)
	if !ok {
		return nil, notOrderedErr(f.label, structure)
	}
	idx, err := f.matchingIndices(items)
	if err != nil {
		return nil, err
	}
	view := make([]Value, len(idx))
	for i, ix := range idx {
		view[i] = items[ix]
	}
	return k(tvalue.NewVec(view...))
}

func (f *filtererNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	items, ok := orderedItems(structure)
	if !ok {
		return nil, notOrderedErr(f.label, structure)
	}
	idx, err := f.matchingIndices(items)
	if err != nil {
		return nil, err
	}
	view := make([]Value, len(idx))
	for i, ix := range idx {
		view[i] = items[ix]
	}
	repl, err := k(tvalue.NewVec(view...))
	if err != nil {
		return nil, err
	}
	replVec, ok := repl.(*tvalue.Vec)
	got := 0
	if ok {
		got = replVec.Len()
	}
	if !ok || got != len(idx) {
		return nil, &ArityMismatchError{Want: len(idx), Got: got}
	}
	next := make([]Value, len(items))
	copy(next, items)
	for i, ix := range idx {
		next[ix] = replVec.At(i)
	}
	out, _ := orderedWithSlice(structure, 0, len(items), next)
	return out, nil
}
