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

// Package tcache memoizes compiled paths keyed by their source
// expression, instrumented with atomic hit/miss counters the way a
// hot-path cache in a production library would be.
package tcache

import (
	"sync"

	"go.uber.org/atomic"
)

// Compiled is the subset of *traverse.CompiledPath the cache needs to
// store; the root package supplies the concrete type via Get's build
// func so this package stays free of an import cycle back to it.
type Compiled interface{}

// Cache memoizes the result of compiling a path expression. A path's
// cache key is the caller-supplied string (typically the textual form
// of the navigator list); callers compute it however they see fit.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Compiled

	hits   atomic.Int64
	misses atomic.Int64
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]Compiled)}
}

// Get returns the cached value for key, calling build and storing its
// result if key has not been seen before. A successful build is invoked
// at most once per key; a build error is returned without being cached,
// so a later Get for the same key calls build again.
func (c *Cache) Get(key string, build func() (Compiled, error)) (Compiled, error) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Inc()
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		c.hits.Inc()
		return v, nil
	}
	c.misses.Inc()
	v, err := build()
	if err != nil {
		return nil, err
	}
	c.entries[key] = v
	return v, nil
}

// Hits reports how many Get calls were served from the cache.
func (c *Cache) Hits() int64 { return c.hits.Load() }

// Misses reports how many Get calls invoked build.
func (c *Cache) Misses() int64 { return c.misses.Load() }

// Len reports how many distinct keys are currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
