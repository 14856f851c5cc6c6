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

import "fmt"

// condBranch is one (condition, path) pair of a cond-path.
type condBranch struct {
	cond *CompiledPath
	path *CompiledPath
}

// condPathNav scans its branches in order and continues along the
// first one whose condition selects something. If none match, the
// path misses: select yields nothing, but transform returns the
// structure unchanged rather than empty — an intentional asymmetry,
// since "no branch applies" during a rewrite should leave the data as
// it found it rather than discarding it.
type condPathNav struct {
	branches []condBranch
	label    string
}

// CondPath scans (condition, path) pairs in order; the first condition
// for which select(condition, structure) is non-empty causes the
// engine to continue along its paired path.
func CondPath(pairs ...any) Navigator {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("traverse: CondPath requires an even number of arguments, got %d", len(pairs)))
	}
	branches := make([]condBranch, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		branches = append(branches, condBranch{cond: asPath(pairs[i]), path: asPath(pairs[i+1])})
	}
	return &condPathNav{branches: branches, label: "cond-path(...)"}
}

// IfPath is sugar for CondPath with one or two branches: IfPath(c, t)
// is CondPath(c, t); IfPath(c, t, e) is CondPath(c, t, <always>, e).
func IfPath(cond any, then any, els ...any) Navigator {
	args := []any{cond, then}
	if len(els) > 0 {
		args = append(args, alwaysPath, els[0])
	}
	return CondPath(args...)
}

func (c *condPathNav) String() string { return c.label }

func (c *condPathNav) matches(cond *CompiledPath, structure Value) (bool, error) {
	res, err := cond.SelectStep(structure, selectIdentity)
	if err != nil {
		return false, err
	}
	return len(res) > 0, nil
}

func (c *condPathNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	for _, br := range c.branches {
		ok, err := c.matches(br.cond, structure)
		if err != nil {
			return nil, err
		}
		if ok {
			return br.path.SelectStep(structure, k)
		}
	}
	return nil, nil
}

func (c *condPathNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	for _, br := range c.branches {
		ok, err := c.matches(br.cond, structure)
		if err != nil {
			return nil, err
		}
		if ok {
			return br.path.TransformStep(structure, k)
		}
	}
	return structure, nil
}

// multiPathNav concatenates each sub-path's selection in order, and on
// transform applies each sub-path sequentially left to right, threading
// the running structure so later paths observe earlier writes.
type multiPathNav struct {
	paths []*CompiledPath
	label string
}

// MultiPath concatenates the selections of paths in order, and applies
// each path's transform sequentially, left to right.
func MultiPath(paths ...any) Navigator {
	compiled := make([]*CompiledPath, len(paths))
	for i, p := range paths {
		compiled[i] = asPath(p)
	}
	return &multiPathNav{paths: compiled, label: "multi-path(...)"}
}

func (m *multiPathNav) String() string { return m.label }

func (m *multiPathNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	var out []Value
	for _, p := range m.paths {
		res, err := p.SelectStep(structure, k)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}

func (m *multiPathNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	cur := structure
	for _, p := range m.paths {
		next, err := p.TransformStep(cur, k)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// selectedNav filters the current structure through a non-empty (want
// = true, Selected) or empty (want = false, NotSelected) test against
// an inner path.
type selectedNav struct {
	inner *CompiledPath
	want  bool
	label string
}

// Selected passes the structure through iff select(path, structure) is
// non-empty.
func Selected(path ...any) Navigator {
	cp, err := Compile(path...)
	if err != nil {
		panic(err)
	}
	return &selectedNav{inner: cp, want: true, label: "selected?(" + cp.String() + ")"}
}

// NotSelected passes the structure through iff select(path, structure)
// is empty.
func NotSelected(path ...any) Navigator {
	cp, err := Compile(path...)
	if err != nil {
		panic(err)
	}
	return &selectedNav{inner: cp, want: false, label: "not-selected?(" + cp.String() + ")"}
}

func (s *selectedNav) String() string { return s.label }

func (s *selectedNav) test(structure Value) (bool, error) {
	res, err := s.inner.SelectStep(structure, selectIdentity)
	if err != nil {
		return false, err
	}
	return (len(res) > 0) == s.want, nil
}

func (s *selectedNav) SelectStep(structure Value, k SelectContinuation) ([]Value, error) {
	ok, err := s.test(structure)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return k(structure)
}

func (s *selectedNav) TransformStep(structure Value, k TransformContinuation) (Value, error) {
	ok, err := s.test(structure)
	if err != nil {
		return nil, err
	}
	if !ok {
		return structure, nil
	}
	return k(structure)
}
