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
	"strconv"
	"strings"

	"github.com/traverselib/traverse/internal/tdot"
)

// buildGraph renders a compiled path's elements into a tdot.Graph, one
// node per element in execution order. cond-path and multi-path
// navigators fan out into nested graphs rather than being flattened,
// so the rendered picture keeps their branch structure visible.
func buildGraph(elements []any) *tdot.Graph {
	g := tdot.New()
	for _, el := range elements {
		switch v := el.(type) {
		case *condPathNav:
			n := g.AddNode(v.String(), "branch")
			for _, br := range v.branches {
				n.Children = append(n.Children, buildGraph(br.cond.elements), buildGraph(br.path.elements))
			}
		case *multiPathNav:
			n := g.AddNode(v.String(), "branch")
			for _, p := range v.paths {
				n.Children = append(n.Children, buildGraph(p.elements))
			}
		case Collector:
			g.AddNode(fmt.Sprint(v), "collector")
		case Navigator:
			g.AddNode(fmt.Sprint(v), "navigator")
		default:
			g.AddNode(fmt.Sprintf("%v", v), "navigator")
		}
	}
	return g
}

// Visualize renders a compiled path's navigator chain as a DOT-format
// digraph, the way go.uber.org/dig's Visualize renders a container's
// constructor graph. It is read-only tooling over an already-compiled
// path: it does not change select/transform semantics.
func Visualize(p *CompiledPath) string {
	var b strings.Builder
	b.WriteString("digraph {\n\trankdir=LR;\n")
	counter := 0
	writeGraph(&b, buildGraph(p.elements), "", &counter)
	b.WriteString("}\n")
	return b.String()
}

// writeGraph emits the nodes of one nesting level, chaining each node
// to the next with a plain edge; a branch node's child graphs are
// emitted inline with node IDs prefixed by the branch node's ID, and
// the branch node is wired to the first element of each child as a
// dashed edge.
func writeGraph(b *strings.Builder, g *tdot.Graph, prefix string, counter *int) {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		*counter++
		id := prefix + "n" + strconv.Itoa(*counter)
		ids[i] = id
		shape := "box"
		if n.Kind == "collector" {
			shape = "ellipse"
		} else if n.Kind == "branch" {
			shape = "diamond"
		}
		fmt.Fprintf(b, "\t%s [shape=%s label=%s];\n", id, shape, strconv.Quote(n.Label))
		if i > 0 {
			fmt.Fprintf(b, "\t%s -> %s;\n", ids[i-1], id)
		}
		for _, child := range n.Children {
			if len(child.Nodes) == 0 {
				continue
			}
			childPrefix := id + "_"
			before := *counter
			writeGraph(b, child, childPrefix, counter)
			fmt.Fprintf(b, "\t%s -> %s%s [style=dashed];\n", id, childPrefix, "n"+strconv.Itoa(before+1))
		}
	}
}
