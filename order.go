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

package bst

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrUnknownOrder is returned by ParseOrder for names it does not recognize.
var ErrUnknownOrder = errors.New("unknown traversal order")

// Order selects a depth-first visiting order.
type Order int

const (
	// InOrder visits left, self, right: values come out ascending.
	InOrder Order = iota
	// PreOrder visits self, left, right: parents before children, which is
	// enough to rebuild the same shape by re-inserting.
	PreOrder
	// PostOrder visits left, right, self: children before parents.
	PostOrder
)

// Orders lists every Order in declaration order.
var Orders = []Order{InOrder, PreOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder returns the Order named s.  Matching ignores case, and accepts
// an optional hyphen ("in-order").
func ParseOrder(s string) (Order, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "inorder":
		return InOrder, nil
	case "preorder":
		return PreOrder, nil
	case "postorder":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

func (n *node[T]) inOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(yield) && yield(n.value) && n.right.inOrder(yield)
}

func (n *node[T]) reverseOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.right.reverseOrder(yield) && yield(n.value) && n.left.reverseOrder(yield)
}

func (n *node[T]) preOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.value) && n.left.preOrder(yield) && n.right.preOrder(yield)
}

func (n *node[T]) postOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.postOrder(yield) && n.right.postOrder(yield) && yield(n.value)
}

// InOrder returns a sequence of every value in ascending order.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.inOrder(yield)
	}
}

// PreOrder returns a sequence of every value, each node before its children
// and left subtrees before right ones.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.preOrder(yield)
	}
}

// PostOrder returns a sequence of every value, each node after its children.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.postOrder(yield)
	}
}

// Traverse returns the sequence for the given order.
func (t *Tree[T]) Traverse(o Order) iter.Seq[T] {
	switch o {
	case InOrder:
		return t.InOrder()
	case PreOrder:
		return t.PreOrder()
	case PostOrder:
		return t.PostOrder()
	}
	panic(fmt.Sprintf("bst: invalid order %d", int(o)))
}

// Values returns the values of the tree in the given order.  The returned
// slice is never nil.
func (t *Tree[T]) Values(o Order) []T {
	out := make([]T, 0, t.length)
	for v := range t.Traverse(o) {
		out = append(out, v)
	}
	return out
}

// Ascend calls the iterator for every value in the tree within the range
// [first, last], until iterator returns false.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	t.root.inOrder(iterator)
}

// Descend calls the iterator for every value in the tree within the range
// [last, first], until iterator returns false.
func (t *Tree[T]) Descend(iterator ItemIterator[T]) {
	t.root.reverseOrder(iterator)
}
