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

	"github.com/traverselib/traverse/internal/tcache"
)

// PathCache memoizes Compile by the string form of its navigator list,
// so a path built once from a fixed set of literal/navigator arguments
// is parsed and lifted only once no matter how many times it is
// re-requested — useful when callers rebuild the same navigator list
// on every request, e.g. inside a request handler.
type PathCache struct {
	c *tcache.Cache
}

// NewPathCache returns an empty path cache.
func NewPathCache() *PathCache {
	return &PathCache{c: tcache.New()}
}

// Compile behaves like the package-level Compile, except repeated calls
// with an equivalent navs list (as rendered by fmt.Sprint) reuse the
// previously compiled path instead of recompiling it.
func (pc *PathCache) Compile(navs ...any) (*CompiledPath, error) {
	key := fmt.Sprint(navs)
	v, err := pc.c.Get(key, func() (tcache.Compiled, error) {
		return Compile(navs...)
	})
	if err != nil {
		return nil, err
	}
	return v.(*CompiledPath), nil
}

// Hits reports how many Compile calls were served from the cache.
func (pc *PathCache) Hits() int64 { return pc.c.Hits() }

// Misses reports how many Compile calls actually invoked Compile.
func (pc *PathCache) Misses() int64 { return pc.c.Misses() }
