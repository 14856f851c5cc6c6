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

// Frame is the late-bound parameter frame: a read-only array shared
// across a bound path, plus the base index at which this path's own
// slots begin. params[Base+offset+k] is the k-th argument of the
// parameterized navigator that was assigned compile-time offset.
//
// A Frame is never mutated after construction and may be shared freely
// across goroutines.
type Frame struct {
	Params []Value
	Base   int
}

// At returns the value at this path's offset-th slot.
func (f Frame) At(offset int) Value {
	return f.Params[f.Base+offset]
}

// Late is the placeholder argument a parameterized builtin navigator
// constructor (Keypath, Putval) accepts in place of a
// literal value, marking that argument as filled from the parameter
// frame at bind time rather than fixed at compile time.
//
// Each distinct Late value contributes exactly one slot; a navigator
// built from n Late arguments declares Slots() == n.
type Late struct{}

// L is the singleton Late placeholder, read "late-bound" at each use
// site: Keypath(L) is a 1-slot parameterized navigator; Keypath("a") is
// a constant one.
var L = Late{}
