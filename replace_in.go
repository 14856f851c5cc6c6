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

// ReplaceResult is what a ReplaceFunc returns for one navigated
// position: Replacement drives the transform as usual, while Side is
// accumulated into ReplaceIn's auxiliary sequence. Skip means "leave
// the navigated value unchanged and record no side-value" — the
// nullish-sentinel case a caller returns when it has nothing to
// replace or accumulate at this position.
type ReplaceResult struct {
	Replacement Value
	Side        Value
	Skip        bool
}

// ReplaceFunc is the user function ReplaceIn threads through
// transform: like TransformFunc, it sees the collected-vals then the
// navigated value, but returns a ReplaceResult pair instead of a bare
// replacement.
type ReplaceFunc func(vals []Value, x Value) (ReplaceResult, error)

// MergeFunc folds one side-value into the running accumulator. The
// default, used when ReplaceIn is called with no explicit merge
// function, appends.
type MergeFunc func(acc []Value, side Value) []Value

func appendMerge(acc []Value, side Value) []Value { return append(acc, side) }

// ReplaceIn is a thin layer over Transform: f returns a pair of
// (replacement, side-value) for every navigated position; the
// replacement drives the transform as usual, while the side-value is
// folded into an auxiliary accumulator via merge (append, by default).
// A ReplaceResult with Skip set leaves the position unchanged and
// contributes nothing to the accumulator.
func ReplaceIn(path any, f ReplaceFunc, structure Value, merge ...MergeFunc) (Value, []Value, error) {
	fold := appendMerge
	if len(merge) > 0 {
		fold = merge[0]
	}
	var acc []Value
	out, err := Transform(path, func(vals []Value, x Value) (Value, error) {
		res, err := f(vals, x)
		if err != nil {
			return nil, err
		}
		if res.Skip {
			return x, nil
		}
		acc = fold(acc, res.Side)
		return res.Replacement, nil
	}, structure)
	if err != nil {
		return nil, nil, err
	}
	return out, acc, nil
}
