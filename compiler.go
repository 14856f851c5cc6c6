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

// CompiledPath is a finite ordered sequence of Navigators (and, inline,
// Collectors) produced by Compile. It is itself a Navigator —
// composition is closed under the protocol — so a CompiledPath can be
// used wherever a single navigator is expected (a branch of CondPath,
// an argument to Filterer, and so on).
type CompiledPath struct {
	elements      []any // each is a Navigator or a Collector
	slots         int
	hasCollectors bool
}

// Slots reports how many late parameter slots this path still needs
// bound before it can be executed. Zero means the path is already
// fully executable.
func (p *CompiledPath) Slots() int { return p.slots }

// HasCollectors reports whether any collector appears in this path.
func (p *CompiledPath) HasCollectors() bool { return p.hasCollectors }

// String renders the path's elements for diagnostics.
func (p *CompiledPath) String() string {
	s := "["
	for i, el := range p.elements {
		if i > 0 {
			s += " "
		}
		if st, ok := el.(fmt.Stringer); ok {
			s += st.String()
		} else {
			s += fmt.Sprintf("%v", el)
		}
	}
	return s + "]"
}

// SelectStep implements Navigator, letting a CompiledPath be embedded
// as a single element of a larger composition (e.g. as a cond-path
// branch) without losing its own internal structure.
func (p *CompiledPath) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	return execSelect(p.elements, 0, structure, k)
}

// TransformStep implements Navigator. Collected values gathered inside
// p are local to p's own execution: a CompiledPath embedded this way
// (rather than inlined by Compile, see flatten) does not surface its
// internal collectors to an enclosing path's terminal transform. Paths
// that need a shared collected-vals channel across sub-paths should
// compose them directly with Compile rather than pre-compiling each
// branch.
func (p *CompiledPath) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	return execTransform(p.elements, 0, structure, nil, func(_ []Value, x Value) (Value, error) {
		return k(x)
	})
}

// Compile flattens navs into a single linear CompiledPath: it inlines
// nested compositions and the elements of any embedded CompiledPath
// depth-first left-to-right, lifts literal keywords/sets/predicate
// functions into their navigator equivalents, assigns each
// parameterized navigator a base offset into the path's shared
// parameter slots, and records whether any collector appears.
//
// Composition is associative: Compile(A, []any{B, C}, D) produces the
// same plan as Compile(A, B, C, D).
func Compile(navs ...any) (*CompiledPath, error) {
	flat, err := flatten(navs)
	if err != nil {
		return nil, err
	}

	elements := make([]any, len(flat))
	hasCollectors := false
	offset := 0
	for i, raw := range flat {
		el, err := liftElement(raw)
		if err != nil {
			return nil, err
		}
		if p, ok := el.(Parameterized); ok {
			el = p.WithOffset(offset)
			offset += p.Slots()
		} else if pc, ok := el.(ParameterizedCollector); ok {
			el = pc.WithOffset(offset)
			offset += pc.Slots()
		}
		if _, ok := el.(Collector); ok {
			hasCollectors = true
		}
		elements[i] = el
	}

	return &CompiledPath{elements: elements, slots: offset, hasCollectors: hasCollectors}, nil
}

// flatten depth-first inlines nested []any slices and the element lists
// of embedded *CompiledPaths, left to right.
func flatten(navs []any) ([]any, error) {
	out := make([]any, 0, len(navs))
	for _, n := range navs {
		switch v := n.(type) {
		case nil:
			continue
		case []any:
			sub, err := flatten(v)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case *CompiledPath:
			out = append(out, v.elements...)
		default:
			out = append(out, n)
		}
	}
	return out, nil
}

// liftElement converts a literal path element — a bare keyword, set,
// or predicate function acting as a navigator — into its navigator
// equivalent. Navigators and Collectors pass through unchanged.
func liftElement(raw any) (any, error) {
	switch v := raw.(type) {
	case Navigator:
		return v, nil
	case Collector:
		return v, nil
	case string:
		// A bare string is a keyword literal: equivalent to Keypath(v).
		return Keypath(v), nil
	case int:
		return Keypath(v), nil
	case *tvalue.Set:
		return predicateFilter{pred: func(x Value) (bool, error) { return v.Contains(x), nil }, label: v.String()}, nil
	case func(Value) bool:
		return predicateFilter{pred: func(x Value) (bool, error) { return v(x), nil }, label: "<predicate>"}, nil
	case func(Value) (bool, error):
		return predicateFilter{pred: v, label: "<predicate>"}, nil
	default:
		return nil, fmt.Errorf("traverse: %v (%T) is not a valid path element", raw, raw)
	}
}

// execSelect runs elements[i:] against structure, falling through to
// terminal once every element has been consumed. A collector's value is
// computed during select (so its errors, such as CollectOne's
// cardinality check, still surface) but then discarded, since the
// select terminal never consumes collected-vals; the engine advances
// past it on the same structure.
func execSelect(elements []any, i int, structure Value, terminal SelectContinuation) ([]Value, error) {
	if i >= len(elements) {
		return terminal(structure)
	}
	switch el := elements[i].(type) {
	case Collector:
		if _, err := el.CollectValue(structure); err != nil {
			return nil, err
		}
		return execSelect(elements, i+1, structure, terminal)
	case Navigator:
		k := func(next Value) ([]Value, error) {
			return execSelect(elements, i+1, next, terminal)
		}
		return el.SelectStep(structure, k)
	default:
		return nil, fmt.Errorf("traverse: unexecutable path element %T; call BindParams first", el)
	}
}

// transformTerminal is the terminal continuation for a transform run:
// it receives the collected-vals accumulated along the active branch
// and the navigated value.
type transformTerminal func(vals []Value, x Value) (Value, error)

// execTransform runs elements[i:] against structure, threading the
// collected-vals snapshot vals. Each recursive branch receives its own
// vals slice by value, never a shared mutable one, so each branch of a
// select gets its own vals snapshot for free.
func execTransform(elements []any, i int, structure Value, vals []Value, terminal transformTerminal) (Value, error) {
	if i >= len(elements) {
		return terminal(vals, structure)
	}
	switch el := elements[i].(type) {
	case Collector:
		v, err := el.CollectValue(structure)
		if err != nil {
			return nil, err
		}
		next := make([]Value, len(vals)+1)
		copy(next, vals)
		next[len(vals)] = v
		return execTransform(elements, i+1, structure, next, terminal)
	case Navigator:
		k := func(next Value) (Value, error) {
			return execTransform(elements, i+1, next, vals, terminal)
		}
		return el.TransformStep(structure, k)
	default:
		return nil, fmt.Errorf("traverse: unexecutable path element %T; call BindParams first", el)
	}
}

// BindParams materializes a late-bound path: every parameterized
// navigator in compiled is resolved against a Frame anchored at
// startIdx within params, producing an equivalent constant
// CompiledPath. Binding is cheap: it rebuilds the element slice once
// and allocates one bound copy per late-bound element.
func BindParams(compiled *CompiledPath, params []Value, startIdx int) *CompiledPath {
	frame := Frame{Params: params, Base: startIdx}
	elements := make([]any, len(compiled.elements))
	for i, el := range compiled.elements {
		if p, ok := el.(Parameterized); ok {
			elements[i] = p.Bind(frame)
			continue
		}
		if pc, ok := el.(ParameterizedCollector); ok {
			elements[i] = pc.Bind(frame)
			continue
		}
		elements[i] = el
	}
	return &CompiledPath{elements: elements, slots: 0, hasCollectors: compiled.hasCollectors}
}
