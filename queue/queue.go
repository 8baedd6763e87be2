// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue implements a FIFO queue on a vector.
package queue

import (
	"fmt"

	"github.com/biogo/container"
	"github.com/biogo/container/vector"
)

// A Queue is a first-in first-out collection. Elements enter at the front of
// the underlying vector and leave from its back, so Push is O(n) and Pop is
// O(1).
type Queue[T any] struct {
	v *vector.Vector[T]
}

// New returns an empty Queue.
func New[T any](opts ...container.Option[T]) (*Queue[T], error) {
	v, err := vector.New(0, opts...)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{v: v}, nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.v.Len()
}

// Push adds e to the queue.
func (q *Queue[T]) Push(e T) error {
	if q == nil {
		return container.ErrInvalidArgument
	}
	return q.v.Insert(0, e)
}

// Pop removes and returns the oldest element of the queue.
func (q *Queue[T]) Pop() (T, error) {
	if q == nil {
		var zero T
		return zero, container.ErrInvalidArgument
	}
	e, ok := q.v.PopBack()
	if !ok {
		return e, fmt.Errorf("queue: pop: %w", container.ErrNotFound)
	}
	return e, nil
}

// Peek returns the oldest element of the queue without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q == nil {
		var zero T
		return zero, container.ErrInvalidArgument
	}
	e, ok := q.v.Back()
	if !ok {
		return e, fmt.Errorf("queue: peek: %w", container.ErrNotFound)
	}
	return e, nil
}

// Destroy releases the queue's storage.
func (q *Queue[T]) Destroy() {
	if q == nil {
		return
	}
	q.v.Destroy()
}
