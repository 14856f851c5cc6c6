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

// Set is a container of unique Scalar elements, iterated in insertion
// order, matching Map's ordering guarantee.
type Set struct {
	items []Value
	index map[any]int
}

// NewSet builds a Set from elements, in order, deduplicating repeats.
func NewSet(elems ...Value) *Set {
	s := &Set{index: make(map[any]int, len(elems))}
	for _, e := range elems {
		s.add(e)
	}
	return s
}

func rawScalar(v Value) any {
	s, ok := v.(Scalar)
	if !ok {
		panic(fmt.Sprintf("tvalue: set elements must be scalar, got %v", v.Kind()))
	}
	return s.raw
}

func (s *Set) add(v Value) {
	rk := rawScalar(v)
	if _, ok := s.index[rk]; ok {
		return
	}
	s.index[rk] = len(s.items)
	s.items = append(s.items, v)
}

// Kind implements Value.
func (*Set) Kind() Kind { return KindSet }

// String implements Value.
func (s *Set) String() string {
	parts := make([]string, len(s.items))
	for i, it := range s.items {
		parts[i] = fmt.Sprintf("%v", it)
	}
	return "#{" + strings.Join(parts, " ") + "}"
}

// Len implements Container.
func (s *Set) Len() int { return len(s.items) }

// Contains reports set membership, the predicate a bare Set value acts
// as when lifted as a navigator literal.
func (s *Set) Contains(v Value) bool {
	_, ok := s.index[rawScalar(v)]
	return ok
}

// Get implements Container: membership test, returning key itself when
// present.
func (s *Set) Get(key Value) (Value, bool) {
	if s.Contains(key) {
		return key, true
	}
	return nil, false
}

// Put implements Container.
func (s *Set) Put(key Value, _ Value) Container {
	next := s.clone()
	next.add(key)
	return next
}

func (s *Set) clone() *Set {
	next := &Set{
		items: slices.Clone(s.items),
		index: make(map[any]int, len(s.index)),
	}
	for k, v := range s.index {
		next.index[k] = v
	}
	return next
}

// First implements Container.
func (s *Set) First() (Value, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[0], true
}

// Rest implements Container.
func (s *Set) Rest() Container {
	if len(s.items) == 0 {
		return NewSet()
	}
	return NewSet(s.items[1:]...)
}

// Cons implements Container: equivalent to Put(v, v).
func (s *Set) Cons(v Value) Container { return s.Put(v, v) }

// UpdateAt implements Container: fn receives key itself if present, or
// the zero Scalar otherwise, and its result becomes the new element
// (replacing key).
func (s *Set) UpdateAt(key Value, fn func(Value) (Value, error)) (Container, error) {
	cur, ok := s.Get(key)
	if !ok {
		cur = Scalar{}
	}
	updated, err := fn(cur)
	if err != nil {
		return nil, err
	}
	remaining := make([]Value, 0, len(s.items))
	for _, it := range s.items {
		if ok && it == key {
			continue
		}
		remaining = append(remaining, it)
	}
	remaining = append(remaining, updated)
	return NewSet(remaining...), nil
}

// Children implements Container.
func (s *Set) Children() []Entry {
	out := make([]Entry, len(s.items))
	for i, it := range s.items {
		out[i] = Entry{Key: it, Val: it}
	}
	return out
}

// WithChildren implements Container.
func (s *Set) WithChildren(entries []Entry) (Container, error) {
	if len(entries) != len(s.items) {
		return nil, fmt.Errorf("tvalue: set WithChildren arity mismatch: have %d entries, want %d", len(entries), len(s.items))
	}
	elems := make([]Value, len(entries))
	for i, e := range entries {
		elems[i] = e.Val
	}
	return NewSet(elems...), nil
}
