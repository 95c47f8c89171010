// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pathbool runs boolean operations on 2D Bézier path regions
// given as SVG path data, either from flags for a single operation or
// from a YAML batch file for many.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cogentcore/pathbool/base/errors"
	"github.com/cogentcore/pathbool/paint/ppath"
	"github.com/cogentcore/pathbool/render"
	"gopkg.in/yaml.v3"
)

// Job is one boolean operation to run, as read from a batch YAML file.
type Job struct {
	Name string `yaml:"name"`
	Op   string `yaml:"op"`
	A    string `yaml:"a"`
	B    string `yaml:"b,omitempty"`
	PNG  string `yaml:"png,omitempty"`
}

// Batch is the top-level shape of a YAML batch file.
type Batch struct {
	Jobs []Job `yaml:"jobs"`
}

func main() {
	op := flag.String("op", "", "operation: unite, intersect, subtract, exclude, divide, resolve")
	a := flag.String("a", "", "SVG path data for operand A")
	b := flag.String("b", "", "SVG path data for operand B")
	pngOut := flag.String("png", "", "write a PNG preview of the result to this path")
	batchFile := flag.String("batch", "", "run a YAML batch file of jobs instead of a single operation")
	flag.Parse()

	if *batchFile != "" {
		if err := runBatch(*batchFile); err != nil {
			slog.Error("batch run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if *op == "" || *a == "" {
		flag.Usage()
		os.Exit(2)
	}
	result, err := runOp(*op, *a, *b)
	if err != nil {
		slog.Error("operation failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(toSVGPath(result))
	if *pngOut != "" {
		errors.Must(writePNG(*pngOut, result))
	}
}

func runOp(op, a, b string) (ppath.PathItem, error) {
	itemA, err := ppath.ParseSVGPath(a)
	if err != nil {
		return nil, fmt.Errorf("operand A: %w", err)
	}
	var itemB ppath.PathItem
	if b != "" {
		itemB, err = ppath.ParseSVGPath(b)
		if err != nil {
			return nil, fmt.Errorf("operand B: %w", err)
		}
	}
	switch op {
	case "unite":
		return ppath.Unite(itemA, itemB), nil
	case "intersect":
		return ppath.Intersect(itemA, itemB), nil
	case "subtract":
		return ppath.Subtract(itemA, itemB), nil
	case "exclude":
		return ppath.ExclusiveOr(itemA, itemB), nil
	case "divide":
		return ppath.Divide(itemA, itemB), nil
	case "resolve":
		return ppath.ResolveCrossings(itemA), nil
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

func runBatch(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("parsing batch file: %w", err)
	}
	for _, job := range batch.Jobs {
		result, err := runOp(job.Op, job.A, job.B)
		if err != nil {
			slog.Error("job failed", "name", job.Name, "error", err)
			continue
		}
		fmt.Printf("%s: %s\n", job.Name, toSVGPath(result))
		if job.PNG != "" {
			if err := writePNG(job.PNG, result); err != nil {
				slog.Error("writing PNG failed", "name", job.Name, "error", err)
			}
		}
	}
	return nil
}

func writePNG(path string, item ppath.PathItem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.WritePNG(f, item, render.DefaultOptions(item))
}

// toSVGPath renders item's children back to SVG path data for display.
func toSVGPath(item ppath.PathItem) string {
	var paths []*ppath.Path
	if cp, ok := item.(*ppath.CompoundPath); ok {
		paths = cp.Children
	} else if p, ok := item.(*ppath.Path); ok {
		paths = []*ppath.Path{p}
	}
	out := ""
	for _, p := range paths {
		segs := p.Segments()
		if len(segs) == 0 {
			continue
		}
		out += fmt.Sprintf("M%g %g", segs[0].Point.X, segs[0].Point.Y)
		for i := 0; i < len(segs); i++ {
			s := segs[i]
			n := s.Next()
			if n == nil {
				break
			}
			c1 := s.Point.Add(s.HandleOut)
			c2 := n.Point.Add(n.HandleIn)
			out += fmt.Sprintf("C%g %g %g %g %g %g", c1.X, c1.Y, c2.X, c2.Y, n.Point.X, n.Point.Y)
			if n == segs[0] {
				break
			}
		}
		if p.Closed() {
			out += "Z"
		}
	}
	return out
}
