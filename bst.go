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

// Package bst implements an in-memory, unbalanced binary search tree.
//
// Each node holds a single value and (possibly nil) left and right
// children.  Every value reachable through a node's left child is strictly
// less than the node's value, and every value reachable through its right
// child is strictly greater.  Equal values are never stored twice:
// inserting a value that is already present leaves the tree unchanged.
//
// The tree performs no rebalancing, so its shape depends entirely on the
// order of insertions.  Inserting already-sorted input produces a tree as
// deep as it is long; callers that cannot control input order should
// prefer a balanced structure such as github.com/google/btree.
//
// Deleting a node with two children copies the value of its in-order
// successor (the smallest value in its right subtree) into the node and then
// removes the successor, so the node that is released is always one with at
// most one child.
//
// Traversals are exposed both as iterator sequences (InOrder, PreOrder,
// PostOrder) and as callback iteration in the style of gollrb
// (Ascend, Descend).
//
// A Tree is not safe for concurrent use; see SafeTree.
package bst

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	DefaultFreeListSize = 32
)

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
//
// If !less(a, b) && !less(b, a), a and b are treated as equal and only one of
// them can be held in the tree.
type LessFunc[T any] func(a, b T) bool

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// ItemIterator allows callers of Ascend and Descend to iterate in-order over
// the tree.  When this function returns false, iteration will stop and the
// associated function will immediately return.
type ItemIterator[T any] func(item T) bool

// FreeList represents a free list of tree nodes. By default each Tree has
// its own FreeList, but multiple Trees can share the same FreeList.
// Two Trees using the same freelist are safe for concurrent write access.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

// freeNode adds n to the list, returning false if the list was full.
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// node is a single stored value.  A node exclusively owns its children; no
// node is ever reachable from two parents.
type node[T any] struct {
	value       T
	left, right *node[T]
}

// leftmost returns the node holding the smallest value in the subtree.
func leftmost[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the node holding the largest value in the subtree.
func rightmost[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// height returns the number of levels in the subtree rooted at n.
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// release zeroes the subtree rooted at n in post-order, handing each node to
// f.  It stops and returns false once f is full; the remaining nodes are left
// to the garbage collector.
func (n *node[T]) release(f *FreeList[T]) bool {
	if n.left != nil && !n.left.release(f) {
		return false
	}
	if n.right != nil && !n.right.release(f) {
		return false
	}
	*n = node[T]{}
	return f.freeNode(n)
}

// Tree is a binary search tree.
//
// Tree stores values of type T in an ordered structure, allowing insertion,
// removal, lookup and iteration.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Tree[T any] struct {
	root     *node[T]
	length   int
	freelist *FreeList[T]
	less     LessFunc[T]
}

// New creates a new, empty tree for ordered types.
func New[T Ordered]() *Tree[T] {
	return NewWithLess[T](Less[T]())
}

// NewWithLess creates a new, empty tree.
//
// The passed-in LessFunc determines how objects of type T are ordered.
func NewWithLess[T any](less LessFunc[T]) *Tree[T] {
	return NewWithFreeList(less, NewFreeList[T](DefaultFreeListSize))
}

// NewWithFreeList creates a new, empty tree that uses the given node free list.
func NewWithFreeList[T any](less LessFunc[T], f *FreeList[T]) *Tree[T] {
	if less == nil {
		panic("bst: nil less func")
	}
	if f == nil {
		panic("bst: nil free list")
	}
	return &Tree[T]{
		freelist: f,
		less:     less,
	}
}

func (t *Tree[T]) newNode(value T) *node[T] {
	n := t.freelist.newNode()
	n.value = value
	return n
}

func (t *Tree[T]) freeNode(n *node[T]) {
	// clear to allow GC
	*n = node[T]{}
	t.freelist.freeNode(n)
}

// insert places value in the subtree rooted at n and returns the (possibly
// new) subtree root.  A fresh node is only linked by the caller's assignment
// once it is complete.
func (t *Tree[T]) insert(n *node[T], value T) (_ *node[T], added bool) {
	if n == nil {
		return t.newNode(value), true
	}
	switch {
	case t.less(value, n.value):
		n.left, added = t.insert(n.left, value)
	case t.less(n.value, value):
		n.right, added = t.insert(n.right, value)
	}
	return n, added
}

// get finds the given key in the subtree and returns it.
func (t *Tree[T]) get(n *node[T], key T) (_ T, _ bool) {
	if n == nil {
		return
	}
	switch {
	case t.less(key, n.value):
		return t.get(n.left, key)
	case t.less(n.value, key):
		return t.get(n.right, key)
	}
	return n.value, true
}

// remove deletes key from the subtree rooted at n and returns the new
// subtree root.
func (t *Tree[T]) remove(n *node[T], key T) (_ *node[T], removed bool) {
	if n == nil {
		return nil, false
	}
	switch {
	case t.less(key, n.value):
		n.left, removed = t.remove(n.left, key)
		return n, removed
	case t.less(n.value, key):
		n.right, removed = t.remove(n.right, key)
		return n, removed
	}
	if n.left == nil {
		right := n.right
		t.freeNode(n)
		return right, true
	}
	if n.right == nil {
		left := n.left
		t.freeNode(n)
		return left, true
	}
	// Two children: take over the in-order successor's value, then remove
	// the successor, which has no left child.
	succ := leftmost(n.right)
	n.value = succ.value
	n.right, _ = t.remove(n.right, n.value)
	return n, true
}

// Insert adds the given value to the tree.  If a value in the tree already
// equals the given one, the tree is left unchanged and Insert returns false.
func (t *Tree[T]) Insert(value T) bool {
	var added bool
	t.root, added = t.insert(t.root, value)
	if added {
		t.length++
	}
	return added
}

// Delete removes the value equal to key from the tree.  It returns false, and
// leaves the tree unchanged, if no such value exists.
func (t *Tree[T]) Delete(key T) bool {
	var removed bool
	t.root, removed = t.remove(t.root, key)
	if removed {
		t.length--
	}
	return removed
}

// Get looks for the key in the tree, returning the stored value.  It returns
// (zeroValue, false) if unable to find it.
func (t *Tree[T]) Get(key T) (_ T, _ bool) {
	return t.get(t.root, key)
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest value in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	if n := leftmost(t.root); n != nil {
		return n.value, true
	}
	return
}

// Max returns the largest value in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	if n := rightmost(t.root); n != nil {
		return n.value, true
	}
	return
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of levels in the tree; 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// Clear removes all values from the tree.  If addNodesToFreeList is true,
// t's nodes are released children-first into its free list until the list
// is full.  Otherwise, the root node is simply dereferenced and the tree left
// to Go's normal GC processes.
func (t *Tree[T]) Clear(addNodesToFreeList bool) {
	if addNodesToFreeList && t.root != nil {
		t.root.release(t.freelist)
	}
	t.root, t.length = nil, 0
}

// Branch identifies which link of its parent a node hangs from.
type Branch int8

const (
	Root Branch = iota
	Left
	Right
)

func (b Branch) String() string {
	switch b {
	case Root:
		return "ROOT"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Branch(%d)", int8(b))
}

func (n *node[T]) walk(depth int, b Branch, fn func(value T, depth int, b Branch) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.value, depth, b) &&
		n.left.walk(depth+1, Left, fn) &&
		n.right.walk(depth+1, Right, fn)
}

// Walk visits every node in pre-order, reporting its value, its depth (0 for
// the root) and the branch it hangs from, until fn returns false.
func (t *Tree[T]) Walk(fn func(value T, depth int, b Branch) bool) {
	t.root.walk(0, Root, fn)
}

// Fprint writes an indented dump of the tree's shape to w.  It is meant for
// testing and debugging.
func (t *Tree[T]) Fprint(w io.Writer) {
	t.Walk(func(value T, depth int, b Branch) bool {
		fmt.Fprintf(w, "%s%s:%v\n", strings.Repeat("  ", depth), b, value)
		return true
	})
}
