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
)

// seqNode is one cell of the persistent cons-list backing Seq. Sharing a
// node across two Seqs is always safe: nodes are never mutated after
// construction.
type seqNode struct {
	val  Value
	next *seqNode
}

// Seq is a linked, possibly large sequence. Unlike Vec, Rest and Cons
// are O(1) and share structure with the receiver; indexed operations
// (Get, Put, Slice) are O(n).
type Seq struct {
	head *seqNode
	n    int
}

// NewSeq builds a Seq from items, in order.
func NewSeq(items ...Value) *Seq {
	var head *seqNode
	for i := len(items) - 1; i >= 0; i-- {
		head = &seqNode{val: items[i], next: head}
	}
	return &Seq{head: head, n: len(items)}
}

func seqFromNode(head *seqNode, n int) *Seq { return &Seq{head: head, n: n} }

// Kind implements Value.
func (*Seq) Kind() Kind { return KindSeq }

// String implements Value.
func (s *Seq) String() string {
	parts := make([]string, 0, s.n)
	for n := s.head; n != nil; n = n.next {
		parts = append(parts, fmt.Sprintf("%v", n.val))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Len implements Container.
func (s *Seq) Len() int { return s.n }

// Items materializes the sequence into a slice, for callers (srange,
// filterer) that need positional or bulk access.
func (s *Seq) Items() []Value {
	out := make([]Value, 0, s.n)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// Get implements Container. key must be an Index.
func (s *Seq) Get(key Value) (Value, bool) {
	i, ok := AsIndex(key)
	if !ok || i < 0 {
		return nil, false
	}
	n := s.head
	for ; i > 0 && n != nil; i-- {
		n = n.next
	}
	if n == nil {
		return nil, false
	}
	return n.val, true
}

// Put implements Container. Indices beyond the current length extend
// the Seq with zero Scalars.
func (s *Seq) Put(key Value, val Value) Container {
	i, ok := AsIndex(key)
	if !ok {
		panic("tvalue: seq keys must be an Index scalar")
	}
	items := s.Items()
	for i >= len(items) {
		items = append(items, Scalar{})
	}
	items[i] = val
	return NewSeq(items...)
}

// First implements Container.
func (s *Seq) First() (Value, bool) {
	if s.head == nil {
		return nil, false
	}
	return s.head.val, true
}

// Rest implements Container: O(1), shares s's tail.
func (s *Seq) Rest() Container {
	if s.head == nil {
		return seqFromNode(nil, 0)
	}
	return seqFromNode(s.head.next, s.n-1)
}

// Cons implements Container: O(1), shares s's entire spine.
func (s *Seq) Cons(val Value) Container {
	return seqFromNode(&seqNode{val: val, next: s.head}, s.n+1)
}

// UpdateAt implements Container.
func (s *Seq) UpdateAt(key Value, fn func(Value) (Value, error)) (Container, error) {
	cur, _ := s.Get(key)
	if cur == nil {
		cur = Scalar{}
	}
	updated, err := fn(cur)
	if err != nil {
		return nil, err
	}
	return s.Put(key, updated), nil
}

// Children implements Container.
func (s *Seq) Children() []Entry {
	out := make([]Entry, 0, s.n)
	i := 0
	for n := s.head; n != nil; n = n.next {
		out = append(out, Entry{Key: Index(i), Val: n.val})
		i++
	}
	return out
}

// WithChildren implements Container.
func (s *Seq) WithChildren(entries []Entry) (Container, error) {
	if len(entries) != s.n {
		return nil, fmt.Errorf("tvalue: seq WithChildren arity mismatch: have %d entries, want %d", len(entries), s.n)
	}
	items := make([]Value, len(entries))
	for i, e := range entries {
		items[i] = e.Val
	}
	return NewSeq(items...), nil
}

// Slice returns the contiguous subsequence [s, e) as a Vec, the
// representation srange hands to its continuation.
func (s *Seq) Slice(start, end int) *Vec {
	items := s.Items()
	if start < 0 {
		start = 0
	}
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	return NewVec(items[start:end]...)
}

// WithSlice replaces the [start, end) subrange with repl and returns the
// resulting Seq. The result is built from fresh nodes; none are shared
// with the receiver.
func (s *Seq) WithSlice(start, end int, repl []Value) *Seq {
	items := s.Items()
	if start < 0 {
		start = 0
	}
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	out := make([]Value, 0, len(items)-(end-start)+len(repl))
	out = append(out, items[:start]...)
	out = append(out, repl...)
	out = append(out, items[end:]...)
	return NewSeq(out...)
}
