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

package tvalue

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Vec is a finite indexed sequence of Values.
type Vec struct {
	items []Value
}

// NewVec builds a Vec holding items, in order.
func NewVec(items ...Value) *Vec {
	return &Vec{items: slices.Clone(items)}
}

// Kind implements Value.
func (*Vec) Kind() Kind { return KindVec }

// String implements Value.
func (v *Vec) String() string {
	parts := make([]string, len(v.items))
	for i, it := range v.items {
		parts[i] = fmt.Sprintf("%v", it)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Len implements Container.
func (v *Vec) Len() int { return len(v.items) }

// At returns the element at index i, panicking if out of range: callers
// that built the Vec (pair construction, srange) know it is in range.
func (v *Vec) At(i int) Value { return v.items[i] }

// Items exposes the backing elements as a read-only slice.
func (v *Vec) Items() []Value { return v.items }

// Get implements Container. key must be an Index.
func (v *Vec) Get(key Value) (Value, bool) {
	i, ok := AsIndex(key)
	if !ok || i < 0 || i >= len(v.items) {
		return nil, false
	}
	return v.items[i], true
}

// Put implements Container. Put beyond the current length extends the
// Vec with zero Scalars up to and including the new index.
func (v *Vec) Put(key Value, val Value) Container {
	i, ok := AsIndex(key)
	if !ok {
		panic("tvalue: vec keys must be an Index scalar")
	}
	next := slices.Clone(v.items)
	if i >= len(next) {
		pad := make([]Value, i+1-len(next))
		for p := range pad {
			pad[p] = Scalar{}
		}
		next = append(next, pad...)
	}
	next[i] = val
	return &Vec{items: next}
}

// First implements Container.
func (v *Vec) First() (Value, bool) {
	if len(v.items) == 0 {
		return nil, false
	}
	return v.items[0], true
}

// Rest implements Container.
func (v *Vec) Rest() Container {
	if len(v.items) == 0 {
		return &Vec{}
	}
	return &Vec{items: slices.Clone(v.items[1:])}
}

// Cons implements Container: prepends val as the new first element.
func (v *Vec) Cons(val Value) Container {
	next := make([]Value, 0, len(v.items)+1)
	next = append(next, val)
	next = append(next, v.items...)
	return &Vec{items: next}
}

// UpdateAt implements Container.
func (v *Vec) UpdateAt(key Value, fn func(Value) (Value, error)) (Container, error) {
	cur, _ := v.Get(key)
	if cur == nil {
		cur = Scalar{}
	}
	updated, err := fn(cur)
	if err != nil {
		return nil, err
	}
	return v.Put(key, updated), nil
}

// Children implements Container.
func (v *Vec) Children() []Entry {
	out := make([]Entry, len(v.items))
	for i, it := range v.items {
		out[i] = Entry{Key: Index(i), Val: it}
	}
	return out
}

// WithChildren implements Container.
func (v *Vec) WithChildren(entries []Entry) (Container, error) {
	if len(entries) != len(v.items) {
		return nil, fmt.Errorf("tvalue: vec WithChildren arity mismatch: have %d entries, want %d", len(entries), len(v.items))
	}
	out := make([]Value, len(entries))
	for i, e := range entries {
		out[i] = e.Val
	}
	return &Vec{items: out}, nil
}

// Slice returns the contiguous subsequence [s, e) as a fresh Vec, the
// representation srange hands to its continuation.
func (v *Vec) Slice(s, e int) *Vec {
	if s < 0 {
		s = 0
	}
	if e > len(v.items) {
		e = len(v.items)
	}
	if s > e {
		s = e
	}
	return &Vec{items: slices.Clone(v.items[s:e])}
}

// WithSlice replaces the [s, e) subrange with repl's elements and
// returns the resulting Vec, splicing the continuation's output for
// srange back into place.
func (v *Vec) WithSlice(s, e int, repl []Value) *Vec {
	if s < 0 {
		s = 0
	}
	if e > len(v.items) {
		e = len(v.items)
	}
	if s > e {
		s = e
	}
	out := make([]Value, 0, len(v.items)-(e-s)+len(repl))
	out = append(out, v.items[:s]...)
	out = append(out, repl...)
	out = append(out, v.items[e:]...)
	return &Vec{items: out}
}
