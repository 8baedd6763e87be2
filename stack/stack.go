// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack implements a LIFO stack on a singly linked list.
package stack

import (
	"fmt"

	"github.com/biogo/container"
	"github.com/biogo/container/list"
)

// A Stack is a last-in first-out collection. The top of the stack is the head
// of the underlying list, so Push and Pop are O(1).
type Stack[T any] struct {
	l *list.List[T]
}

// New returns an empty Stack.
func New[T any](opts ...container.Option[T]) *Stack[T] {
	return &Stack[T]{l: list.New(opts...)}
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.l.Len()
}

// Push places v on the top of the stack.
func (s *Stack[T]) Push(v T) error {
	if s == nil {
		return container.ErrInvalidArgument
	}
	return s.l.InsertAt(v, 0)
}

// Pop removes and returns the element on the top of the stack.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s == nil {
		return zero, container.ErrInvalidArgument
	}
	if s.l.Len() == 0 {
		return zero, fmt.Errorf("stack: pop: %w", container.ErrNotFound)
	}
	return s.l.RemoveAt(0)
}

// Top returns the element on the top of the stack without removing it.
func (s *Stack[T]) Top() (T, error) {
	var zero T
	if s == nil {
		return zero, container.ErrInvalidArgument
	}
	if s.l.Len() == 0 {
		return zero, fmt.Errorf("stack: top: %w", container.ErrNotFound)
	}
	return s.l.Front().Elem, nil
}

// Destroy releases every element of the stack.
func (s *Stack[T]) Destroy() {
	if s == nil {
		return
	}
	s.l.Destroy()
}
