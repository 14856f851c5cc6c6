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

// Package traverse is a composable navigation-and-transformation engine
// for nested immutable data: maps, ordered sequences, and sets. A user
// declares a Path — a composition of Navigators — naming a set of
// locations inside such a structure, then runs Select to collect the
// values at those locations or Transform to produce a new structure
// with them replaced.
//
// The package mirrors the shape of a dependency-injection container's
// provider graph (this library's ancestry runs through go.uber.org/dig):
// a small, closed family of element kinds, each visited through the
// same two-method contract, composed into a single linear plan and run
// once per call. Where dig resolves a graph of constructors by type,
// this package walks a path of navigators by structural position.
package traverse

import (
	"fmt"

	"github.com/traverselib/traverse/internal/tvalue"
)

// Value re-exports the engine's tagged value type so callers of this
// package never need to import internal/tvalue directly.
type Value = tvalue.Value

// SelectContinuation is the "rest of the path" a Navigator invokes,
// once per cursor position it points to, during a select. It returns
// the flattened results of running the suffix path against x.
type SelectContinuation func(x Value) ([]Value, error)

// TransformContinuation is the "rest of the path" a Navigator invokes
// during a transform. It returns the replacement for x.
type TransformContinuation func(x Value) (Value, error)

// Navigator is the two-operation contract every path element
// implements. SelectStep enumerates the cursor positions this element
// points to and flattens the continuation's results across them;
// TransformStep rewrites each such position with the continuation's
// output and splices the rewrites back into structure, preserving
// every other position untouched.
//
// The two operations are duals: for a total function g,
// Select(p, Transform(p, g, s)) == map(g, Select(p, s)) pointwise.
type Navigator interface {
	fmt.Stringer

	// SelectStep computes the positions this navigator points to within
	// structure, invokes k on each, and returns the concatenated
	// results in left-to-right order.
	SelectStep(structure Value, k SelectContinuation) ([]Value, error)

	// TransformStep invokes k to obtain a replacement for each position
	// this navigator points to within structure, and returns structure
	// with those replacements spliced in.
	TransformStep(structure Value, k TransformContinuation) (Value, error)
}

// Parameterized is implemented by a Navigator built with one or more
// late-bound arguments. The compiler assigns it a base offset into the
// path's shared parameter slots; BindParams later resolves it to a
// plain, constant Navigator by reading the bound frame.
type Parameterized interface {
	Navigator

	// Slots reports how many entries of the parameter frame this
	// navigator consumes.
	Slots() int

	// WithOffset returns a copy of this navigator with its compile-time
	// offset (relative to the path's own parameter slots) fixed to
	// offset. The path compiler calls this exactly once per
	// parameterized navigator, left to right, during specialization.
	WithOffset(offset int) Parameterized

	// Bind resolves this navigator against a concrete parameter frame,
	// returning an equivalent constant Navigator. BindParams calls this
	// once per parameterized navigator to materialize an executable
	// path.
	Bind(f Frame) Navigator
}

// slotsOf reports how many parameter slots a compiled element consumes:
// zero unless it is Parameterized.
func slotsOf(n any) int {
	if p, ok := n.(Parameterized); ok {
		return p.Slots()
	}
	return 0
}
