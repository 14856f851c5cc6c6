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
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/traverselib/traverse"
)

// builtinOps are the small set of transforms the CLI exposes directly;
// anything richer is expected to go through the library itself rather
// than the shell.
var builtinOps = map[string]func(traverse.Value) (traverse.Value, error){
	"upper": func(v traverse.Value) (traverse.Value, error) {
		s, ok := traverse.ToGo(v).(string)
		if !ok {
			return nil, fmt.Errorf("upper: value is not a string")
		}
		return traverse.FromGo(strings.ToUpper(s)), nil
	},
	"inc": func(v traverse.Value) (traverse.Value, error) {
		switch n := traverse.ToGo(v).(type) {
		case int:
			return traverse.FromGo(n + 1), nil
		default:
			return nil, fmt.Errorf("inc: value is not an integer")
		}
	},
}

func newTransformCommand() *cobra.Command {
	var file, path, op string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply a built-in transform to every value a path points to",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(file)
			if err != nil {
				return err
			}
			segs, err := parsePath(path)
			if err != nil {
				return err
			}
			fn, ok := builtinOps[op]
			if !ok {
				return fmt.Errorf("unknown --op %q (available: upper, inc)", op)
			}

			log.WithField("op", op).WithField("path", path).Debug("running transform")
			out, err := traverse.Transform(segs, func(vals []traverse.Value, x traverse.Value) (traverse.Value, error) {
				return fn(x)
			}, doc)
			if err != nil {
				return fmt.Errorf("transform: %w", err)
			}

			rendered, err := yaml.Marshal(traverse.ToGo(out))
			if err != nil {
				return err
			}
			fmt.Print(styled(cfg.Color, valueStyle, string(rendered)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML document to transform")
	cmd.Flags().StringVar(&path, "path", "", `dotted path, e.g. "people.[].name"`)
	cmd.Flags().StringVar(&op, "op", "", "built-in transform to apply: upper, inc")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("path")
	cmd.MarkFlagRequired("op")
	return cmd
}
