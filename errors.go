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

	"github.com/pkg/errors"
)

// The engine raises three kinds of error: contract violations, shape
// mismatches, and user-function failures (the last propagated
// unchanged via github.com/pkg/errors.Wrap so Cause still unwraps to
// the user's own error). None are retried and none are swallowed.

// CardinalityError reports that SelectOne, SelectOneStrict, SelectFirst,
// or CollectOne found the wrong number of results.
type CardinalityError struct {
	Path string
	Want string
	Got  int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("traverse: cardinality violation on path %s: want %s, got %d", e.Path, e.Want, e.Got)
}

// ShapeMismatchError reports that a navigator was applied to a
// container it cannot handle (e.g. FIRST on a Map, ALL's map-pair
// contract violated by a non-pair continuation result).
type ShapeMismatchError struct {
	Navigator string
	Detail    string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("traverse: shape mismatch in %s: %s", e.Navigator, e.Detail)
}

// UnboundParameterError reports that a parameterized path was executed
// without first being bound to a parameter frame via BindParams.
type UnboundParameterError struct {
	Navigator string
}

func (e *UnboundParameterError) Error() string {
	return fmt.Sprintf("traverse: %s has unbound late parameters; call BindParams first", e.Navigator)
}

// ArityMismatchError reports that a filterer's continuation returned a
// sequence of unexpected length on transform.
type ArityMismatchError struct {
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("traverse: filterer transform arity mismatch: continuation returned %d elements, want %d", e.Got, e.Want)
}

// wrapUserFunc wraps an error raised by a user-supplied predicate or
// transform with the path-level context it failed under, preserving the
// original error as the Cause so it propagates unchanged to the caller.
func wrapUserFunc(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "traverse: user function failed in %s", context)
}
