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

// Collector is the sibling contract to Navigator: it contributes a
// single Value into the transform call's collected-vals side channel
// without advancing the structural cursor. A Collector never
// implements Navigator — the execution engine recognizes it by type
// and dispatches to it directly, rather than through SelectStep/
// TransformStep, which is what "never advances the cursor" means
// mechanically: the engine re-invokes the rest of the path against the
// *same* structure the collector itself was handed.
//
// During select, the engine still calls CollectValue (so a collector's
// errors surface) but discards the result and passes through to the
// rest of the path unchanged, since the terminal select continuation
// never consumes collected-vals (it is plain λx.[x]).
// Collected values are only observed by the terminal transform
// continuation, which receives them as leading positional arguments
// ahead of the navigated value.
type Collector interface {
	// CollectValue computes the value this collector contributes from
	// structure, without transforming or otherwise advancing past it.
	CollectValue(structure Value) (Value, error)

	// String renders the collector for diagnostics (e.g. path
	// visualization).
	String() string
}

// ParameterizedCollector is Collector's late-bound counterpart, the
// Collector analogue of Parameterized (Putval(L) is the one built-in
// example): a collector whose argument is supplied only at bind time.
type ParameterizedCollector interface {
	Collector

	// Slots reports how many entries of the parameter frame this
	// collector consumes.
	Slots() int

	// WithOffset fixes this collector's compile-time offset, as
	// Parameterized.WithOffset does for navigators.
	WithOffset(offset int) ParameterizedCollector

	// Bind resolves this collector against a concrete parameter frame,
	// returning an equivalent constant Collector.
	Bind(f Frame) Collector
}
