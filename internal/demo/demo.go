// Copyright 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package demo drives a bst.Tree through a scripted scenario and prints the
// results as labeled text lines.
package demo

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/bst"
	"github.com/rs/zerolog"
)

const header = "=== Binary Search Tree Demo ==="

// Scenario is a script of operations.  Inserts run first, then the three
// traversals are printed, then the searches run, then each delete is
// followed by an in-order print.
type Scenario struct {
	Insert []int
	Search []int
	Delete []int
	// Shape also renders the tree after the inserts and after each delete.
	Shape bool
}

// Report records what a run observed.
type Report struct {
	// Traversals holds the three orders taken right after the inserts.
	Traversals map[bst.Order][]int
	// Found maps each searched key to whether it was present.
	Found map[int]bool
	// AfterDelete holds the in-order traversal following each delete.
	AfterDelete [][]int
	// Final is the in-order traversal at the end of the run.
	Final []int
}

type Runner struct {
	out    io.Writer
	logger zerolog.Logger
}

func NewRunner(out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{out: out, logger: logger}
}

var labels = map[bst.Order]string{
	bst.InOrder:   "Inorder",
	bst.PreOrder:  "Preorder",
	bst.PostOrder: "Postorder",
}

// FormatTraversal renders values as "<Label>: v1 v2 ...".
func FormatTraversal(o bst.Order, values []int) string {
	var sb strings.Builder
	sb.WriteString(labels[o])
	sb.WriteString(":")
	for _, v := range values {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Run executes s against a fresh tree.  It stops between steps if ctx is
// done.
func (r *Runner) Run(ctx context.Context, s Scenario) (*Report, error) {
	tr := bst.New[int]()
	rep := &Report{
		Traversals: make(map[bst.Order][]int, len(bst.Orders)),
		Found:      make(map[int]bool, len(s.Search)),
	}

	for _, k := range s.Insert {
		added := tr.Insert(k)
		r.logger.Debug().Int("key", k).Bool("added", added).Msg("insert")
	}
	r.logger.Info().
		Int("len", tr.Len()).
		Int("height", tr.Height()).
		Msg("tree built")

	if err := r.printf("%s\n", header); err != nil {
		return nil, err
	}
	for _, o := range bst.Orders {
		values := tr.Values(o)
		rep.Traversals[o] = values
		if err := r.printf("%s\n", FormatTraversal(o, values)); err != nil {
			return nil, err
		}
	}
	if err := r.shape(s, tr); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(s.Search) > 0 {
		if err := r.printf("\n"); err != nil {
			return nil, err
		}
	}
	for _, k := range s.Search {
		found := tr.Has(k)
		rep.Found[k] = found
		r.logger.Debug().Int("key", k).Bool("found", found).Msg("search")
		result := "Not Found"
		if found {
			result = "Found"
		}
		if err := r.printf("Searching %d: %s\n", k, result); err != nil {
			return nil, err
		}
	}

	for _, k := range s.Delete {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.printf("Deleting %d...\n", k); err != nil {
			return nil, err
		}
		if !tr.Delete(k) {
			r.logger.Warn().Int("key", k).Msg("delete of absent key")
		} else {
			r.logger.Debug().Int("key", k).Msg("delete")
		}
		values := tr.Values(bst.InOrder)
		rep.AfterDelete = append(rep.AfterDelete, values)
		if err := r.printf("%s\n", FormatTraversal(bst.InOrder, values)); err != nil {
			return nil, err
		}
		if err := r.shape(s, tr); err != nil {
			return nil, err
		}
	}

	rep.Final = tr.Values(bst.InOrder)
	r.logger.Info().Int("len", tr.Len()).Msg("scenario done")
	return rep, nil
}

func (r *Runner) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (r *Runner) shape(s Scenario, tr *bst.Tree[int]) error {
	if !s.Shape {
		return nil
	}
	out, err := RenderShape(tr)
	if err != nil {
		return fmt.Errorf("render shape: %w", err)
	}
	return r.printf("%s", out)
}
