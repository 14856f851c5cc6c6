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

	"github.com/spf13/cobra"

	"github.com/traverselib/traverse"
)

func newVisualizeCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Print the DOT graph of a compiled path's navigator chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			segs, err := parsePath(path)
			if err != nil {
				return err
			}
			cp, err := traverse.Compile(segs...)
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}
			fmt.Print(traverse.Visualize(cp))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", `dotted path, e.g. "people.[].name"`)
	cmd.MarkFlagRequired("path")
	return cmd
}
