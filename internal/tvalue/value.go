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

// Package tvalue implements the engine's tagged value model and the
// container shim over it: the four container shapes (map, vec, seq, set)
// each expose the same small set of operations (Get, Put, First, Rest,
// Cons, UpdateAt) plus the Children/WithChildren pair the navigator
// protocol uses to enumerate and rebuild a container's contents.
package tvalue

import "fmt"

// Kind tags the six variants a Value may be.
type Kind int

const (
	// KindScalar is an opaque leaf: a string, number, bool, nil, or any
	// other value the engine does not look inside.
	KindScalar Kind = iota
	// KindMap is a keyed container of unique keys to Values.
	KindMap
	// KindVec is a finite indexed sequence.
	KindVec
	// KindSeq is a linked, possibly large sequence.
	KindSeq
	// KindSet is a container of unique elements.
	KindSet
	// KindFn is a callable, used as a predicate or a transform function.
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMap:
		return "map"
	case KindVec:
		return "vec"
	case KindSeq:
		return "seq"
	case KindSet:
		return "set"
	case KindFn:
		return "fn"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the sum type every location in a navigated structure holds:
// Scalar, Map, Vec, Seq, Set, or Fn.
type Value interface {
	// Kind reports which of the six variants this value is.
	Kind() Kind
	// String renders the value for diagnostics; it is not a serialization
	// format.
	String() string
}

// Container is implemented by Map, Vec, Seq, and Set: the four shapes the
// container shim abstracts over. ALL and the walkers are written
// against this interface; FIRST/LAST and srange work on Vec and Seq
// directly through their Slice/WithSlice methods.
type Container interface {
	Value

	// Get returns the value addressed by key, and whether it was present.
	// For Vec/Seq, key must be an Index scalar (see Index). For Map, key
	// is the map key. For Set, key is tested for membership and, if
	// present, returned as Get's value.
	Get(key Value) (Value, bool)

	// Put returns a new container with key bound to v, preserving every
	// other binding. Put on a Set ignores v and inserts key as an
	// element (element equality, not a separate value).
	Put(key Value, v Value) Container

	// First returns the first child in iteration order, and whether the
	// container is non-empty.
	First() (Value, bool)

	// Rest returns a container of the same shape holding every child
	// except the first.
	Rest() Container

	// Cons returns a new container with v prepended as the new first
	// child. For Map, v must be a 2-element [key val] Vec pair, the shape
	// Map.First returns; for Set, Cons is equivalent to Put(v, v).
	Cons(v Value) Container

	// UpdateAt applies fn to the value at key (or the zero Value if
	// absent) and returns a container with the result bound at key.
	UpdateAt(key Value, fn func(Value) (Value, error)) (Container, error)

	// Children enumerates this container's contents in the engine's
	// canonical iteration order as Key/Val pairs. For Vec and Seq, Key is
	// the Index of the element. For Set, Key and Val are both the
	// element. Children is the basis for ALL and for walker descent.
	Children() []Entry

	// WithChildren rebuilds a container of the same shape from entries
	// of the same length as Children(), in the same order, preserving
	// the container's shape. It is the write side of ALL: a transform
	// over every child calls Children, maps each entry through the
	// continuation, and splices the result back with WithChildren.
	WithChildren(entries []Entry) (Container, error)

	// Len reports the number of children.
	Len() int
}

// Entry pairs a container child's addressing key with its value. For Vec
// and Seq, Key is always an Index. For Map, Key is the map key. For Set,
// Key equals Val.
type Entry struct {
	Key Value
	Val Value
}

// Scalar wraps an opaque leaf value: the engine never looks inside it.
type Scalar struct {
	raw any
}

// NewScalar wraps v as a Scalar. v must be comparable if the Scalar is
// to be used as a Map key or Set element, since both index their
// entries by the wrapped Go value itself.
func NewScalar(v any) Scalar { return Scalar{raw: v} }

// Raw returns the wrapped Go value.
func (s Scalar) Raw() any { return s.raw }

// Kind implements Value.
func (Scalar) Kind() Kind { return KindScalar }

// String implements Value.
func (s Scalar) String() string { return fmt.Sprintf("%v", s.raw) }

// Index builds a Scalar carrying an int, the key Vec and Seq use to
// address their elements through Get/Put/UpdateAt.
func Index(i int) Scalar { return Scalar{raw: i} }

// AsIndex reports the int an Index scalar carries.
func AsIndex(v Value) (int, bool) {
	s, ok := v.(Scalar)
	if !ok {
		return 0, false
	}
	i, ok := s.raw.(int)
	return i, ok
}

// Fn is a callable Value: used as a predicate (returning a truthy
// Scalar) or as a transform (returning the replacement Value).
type Fn struct {
	call func(args ...Value) (Value, error)
}

// NewFn wraps a Go function as a callable Value.
func NewFn(call func(args ...Value) (Value, error)) Fn { return Fn{call: call} }

// Kind implements Value.
func (Fn) Kind() Kind { return KindFn }

// String implements Value.
func (Fn) String() string { return "<fn>" }

// Call invokes the wrapped function.
func (f Fn) Call(args ...Value) (Value, error) { return f.call(args...) }

// Truthy reports whether v should be treated as a passing predicate
// result: everything except a boolean false Scalar and a nil-wrapped
// Scalar is truthy.
func Truthy(v Value) bool {
	s, ok := v.(Scalar)
	if !ok {
		return true
	}
	switch r := s.raw.(type) {
	case bool:
		return r
	case nil:
		return false
	default:
		return true
	}
}
