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

// Map is a keyed container of unique Scalar keys to Values, preserving
// insertion order for ALL's iteration guarantee.
type Map struct {
	entries []Entry
	index   map[any]int
}

// NewMap builds a Map from entries, in order. A later duplicate key
// overwrites an earlier one in place, keeping its original position,
// so every key in the resulting Map is unique.
func NewMap(entries ...Entry) *Map {
	m := &Map{index: make(map[any]int, len(entries))}
	for _, e := range entries {
		m.set(e)
	}
	return m
}

func (m *Map) rawKey(key Value) any {
	s, ok := key.(Scalar)
	if !ok {
		panic(fmt.Sprintf("tvalue: map keys must be scalar, got %v", key.Kind()))
	}
	return s.raw
}

func (m *Map) set(e Entry) {
	rk := m.rawKey(e.Key)
	if i, ok := m.index[rk]; ok {
		m.entries[i] = e
		return
	}
	m.index[rk] = len(m.entries)
	m.entries = append(m.entries, e)
}

// Kind implements Value.
func (*Map) Kind() Kind { return KindMap }

// String implements Value.
func (m *Map) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = fmt.Sprintf("%v: %v", e.Key, e.Val)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Len implements Container.
func (m *Map) Len() int { return len(m.entries) }

// Get implements Container.
func (m *Map) Get(key Value) (Value, bool) {
	i, ok := m.index[m.rawKey(key)]
	if !ok {
		return nil, false
	}
	return m.entries[i].Val, true
}

// Put implements Container.
func (m *Map) Put(key Value, v Value) Container {
	next := m.clone()
	next.set(Entry{Key: key, Val: v})
	return next
}

func (m *Map) clone() *Map {
	next := &Map{
		entries: slices.Clone(m.entries),
		index:   make(map[any]int, len(m.index)),
	}
	for k, v := range m.index {
		next.index[k] = v
	}
	return next
}

// First implements Container.
func (m *Map) First() (Value, bool) {
	if len(m.entries) == 0 {
		return nil, false
	}
	return entryPair(m.entries[0]), true
}

// Rest implements Container.
func (m *Map) Rest() Container {
	if len(m.entries) == 0 {
		return NewMap()
	}
	return NewMap(m.entries[1:]...)
}

// Cons implements Container. v must be a 2-element Vec pair.
func (m *Map) Cons(v Value) Container {
	e := pairEntry(v)
	next := make([]Entry, 0, len(m.entries)+1)
	next = append(next, e)
	next = append(next, m.entries...)
	return NewMap(next...)
}

// UpdateAt implements Container.
func (m *Map) UpdateAt(key Value, fn func(Value) (Value, error)) (Container, error) {
	cur, _ := m.Get(key)
	if cur == nil {
		cur = Scalar{}
	}
	updated, err := fn(cur)
	if err != nil {
		return nil, err
	}
	return m.Put(key, updated), nil
}

// Children implements Container.
func (m *Map) Children() []Entry {
	return slices.Clone(m.entries)
}

// WithChildren implements Container. Each entry's Key drives the
// rebuilt map's key, so a transform may rename keys.
func (m *Map) WithChildren(entries []Entry) (Container, error) {
	if len(entries) != len(m.entries) {
		return nil, fmt.Errorf("tvalue: map WithChildren arity mismatch: have %d entries, want %d", len(entries), len(m.entries))
	}
	return NewMap(entries...), nil
}

// entryPair renders a Map entry as the 2-element [key val] Vec pair that
// ALL hands to the continuation.
func entryPair(e Entry) *Vec {
	return NewVec(e.Key, e.Val)
}

// pairEntry is the inverse of entryPair: it reads a 2-element Vec pair
// back into an Entry, as produced by a map-ALL transform continuation.
func pairEntry(v Value) Entry {
	pair, ok := v.(*Vec)
	if !ok || pair.Len() != 2 {
		panic("tvalue: expected a 2-element [key val] pair for a map entry")
	}
	return Entry{Key: pair.At(0), Val: pair.At(1)}
}
