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

import "sync"

// SafeTree is a Tree guarded by a single mutex.  Every operation, reads
// included, holds the lock exclusively until it returns.
//
// Traversals are only offered in materialized form (Values), so no caller
// code runs while the lock is held.
type SafeTree[T any] struct {
	mu sync.Mutex
	t  *Tree[T]
}

// NewSafe creates a new, empty SafeTree for ordered types.
func NewSafe[T Ordered]() *SafeTree[T] {
	return &SafeTree[T]{t: New[T]()}
}

// NewSafeWithLess creates a new, empty SafeTree ordered by less.
func NewSafeWithLess[T any](less LessFunc[T]) *SafeTree[T] {
	return &SafeTree[T]{t: NewWithLess(less)}
}

func (s *SafeTree[T]) Insert(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Insert(value)
}

func (s *SafeTree[T]) Delete(key T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Delete(key)
}

func (s *SafeTree[T]) Get(key T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Get(key)
}

func (s *SafeTree[T]) Has(key T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Has(key)
}

func (s *SafeTree[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Len()
}

func (s *SafeTree[T]) Min() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Min()
}

func (s *SafeTree[T]) Max() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Max()
}

// Values returns a snapshot of the tree's values in the given order.
func (s *SafeTree[T]) Values(o Order) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Values(o)
}

func (s *SafeTree[T]) Clear(addNodesToFreeList bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Clear(addNodesToFreeList)
}

// With runs fn with exclusive access to the underlying tree.  fn must not
// retain the tree after it returns.
func (s *SafeTree[T]) With(fn func(t *Tree[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.t)
}
