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

package demo

import (
	"fmt"

	"github.com/google/bst"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const emptyShape = "(empty)\n"

// shapeLabel prefixes children with the side they hang from, since a lone
// child would otherwise be ambiguous.
func shapeLabel[T any](value T, b bst.Branch) string {
	switch b {
	case bst.Left:
		return fmt.Sprintf("L %v", value)
	case bst.Right:
		return fmt.Sprintf("R %v", value)
	}
	return fmt.Sprint(value)
}

// RenderShape draws the tree with pterm's tree printer.
func RenderShape[T any](tr *bst.Tree[T]) (string, error) {
	var items pterm.LeveledList
	tr.Walk(func(value T, depth int, b bst.Branch) bool {
		items = append(items, pterm.LeveledListItem{
			Level: depth,
			Text:  shapeLabel(value, b),
		})
		return true
	})
	if len(items) == 0 {
		return emptyShape, nil
	}
	return pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(items)).Srender()
}
