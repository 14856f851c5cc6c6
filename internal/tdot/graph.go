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

// Package tdot builds a DOT-format graph describing the shape of a
// compiled path, the way go.uber.org/dig's internal/dot describes the
// shape of a container's constructor graph.
package tdot

// Node is a single element of a compiled path: a navigator, a
// collector, or a nested branch's own sub-graph.
type Node struct {
	ID       int
	Label    string
	Kind     string // "navigator", "collector", "branch"
	Children []*Graph
}

// Graph is a sequential chain of Nodes, one per path element, in
// left-to-right execution order. A Node whose element fans out into
// sub-paths (cond-path's branches, multi-path's paths) carries those
// as nested Graphs in Children, rather than flattening them into the
// parent chain, so the rendered picture preserves branch structure.
type Graph struct {
	Nodes []*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a node to the chain and returns it.
func (g *Graph) AddNode(label, kind string) *Node {
	n := &Node{ID: len(g.Nodes), Label: label, Kind: kind}
	g.Nodes = append(g.Nodes, n)
	return n
}
