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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/traverselib/traverse"
)

// parsePath reads the CLI's small dotted-path notation into a navigator
// list: "people.[].name" means every person's name, "items.[3]" means
// the element at index 3. "[]" lifts to traverse.ALL; a bracketed
// integer segment such as "[3]" becomes an integer key; any other
// segment, digits included, lifts to a string keypath.
func parsePath(expr string) ([]any, error) {
	if expr == "" {
		return nil, nil
	}
	segs := strings.Split(expr, ".")
	out := make([]any, 0, len(segs))
	for _, s := range segs {
		switch {
		case s == "[]":
			out = append(out, traverse.ALL)
		case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
			n, err := strconv.Atoi(s[1 : len(s)-1])
			if err != nil {
				return nil, fmt.Errorf("invalid index segment %q: %w", s, err)
			}
			out = append(out, n)
		default:
			out = append(out, s)
		}
	}
	return out, nil
}
