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

// valCollector is VAL: it yields the current structure, unchanged.
type valCollector struct{}

// VAL yields the structure at the collector's position in the path.
var VAL Collector = valCollector{}

func (valCollector) String() string { return "VAL" }

func (valCollector) CollectValue(structure Value) (Value, error) { return structure, nil }

// putvalCollector is putval(v): a 1-slot parameterized collector that
// yields the constant v (or, once bound, the value supplied at bind
// time in v's place).
type putvalCollector struct {
	val    any
	late   bool
	offset int
}

// Putval yields the constant v. Passing traverse.L instead of a
// literal produces a 1-slot parameterized collector, usable only after
// BindParams.
func Putval(v any) Collector {
	if _, ok := v.(Late); ok {
		return &putvalCollector{late: true}
	}
	return &putvalCollector{val: v}
}

func (p *putvalCollector) String() string {
	if p.late {
		return fmt.Sprintf("putval(<late:%d>)", p.offset)
	}
	return fmt.Sprintf("putval(%v)", p.val)
}

func (p *putvalCollector) Slots() int {
	if !p.late {
		return 0
	}
	return 1
}

func (p *putvalCollector) WithOffset(offset int) ParameterizedCollector {
	if !p.late {
		return p
	}
	return &putvalCollector{late: true, offset: offset}
}

func (p *putvalCollector) Bind(f Frame) Collector {
	if !p.late {
		return p
	}
	return &putvalCollector{val: rawKeyOf(f.At(p.offset))}
}

func (p *putvalCollector) CollectValue(Value) (Value, error) {
	return scalarOf(p.val), nil
}

// collectCollector is collect(path...): it yields select(path,
// structure) as a vec.
type collectCollector struct {
	inner *CompiledPath
	label string
}

// Collect yields select(path, structure) as a vec of the matched
// values.
func Collect(path ...any) Collector {
	cp, err := Compile(path...)
	if err != nil {
		panic(err)
	}
	return &collectCollector{inner: cp, label: "collect(" + cp.String() + ")"}
}

func (c *collectCollector) String() string { return c.label }

func (c *collectCollector) CollectValue(structure Value) (Value, error) {
	res, err := c.inner.SelectStep(structure, selectIdentity)
	if err != nil {
		return nil, err
	}
	return tvalue.NewVec(res...), nil
}

// collectOneCollector is collect-one(path...): it yields the sole
// element of select(path, structure), asserting cardinality at most
// one.
type collectOneCollector struct {
	inner *CompiledPath
	label string
}

// CollectOne yields the first (and asserted-only) element of
// select(path, structure).
func CollectOne(path ...any) Collector {
	cp, err := Compile(path...)
	if err != nil {
		panic(err)
	}
	return &collectOneCollector{inner: cp, label: "collect-one(" + cp.String() + ")"}
}

func (c *collectOneCollector) String() string { return c.label }

func (c *collectOneCollector) CollectValue(structure Value) (Value, error) {
	res, err := c.inner.SelectStep(structure, selectIdentity)
	if err != nil {
		return nil, err
	}
	if len(res) > 1 {
		return nil, &CardinalityError{Path: c.label, Want: "at most one", Got: len(res)}
	}
	if len(res) == 0 {
		return absentValue(), nil
	}
	return res[0], nil
}
