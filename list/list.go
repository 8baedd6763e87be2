// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package list implements a generic singly linked list.
package list

import (
	"fmt"

	"github.com/biogo/container"
)

// A Node is an element of a List.
type Node[T any] struct {
	Elem T
	next *Node[T]
}

// Next returns the node following n, or nil.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// A List is a singly linked list. A List must be created with New.
type List[T any] struct {
	head  *Node[T]
	count int
	conf  container.Config[T]
}

// New returns an empty List.
func New[T any](opts ...container.Option[T]) *List[T] {
	return &List[T]{conf: container.NewConfig(opts...)}
}

// Len returns the number of elements held by the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Front returns the first node of the list, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List[T]) newNode(v T, next *Node[T]) (*Node[T], error) {
	v, err := l.conf.Clone(v)
	if err != nil {
		return nil, err
	}
	err = l.conf.Alloc.Alloc()
	if err != nil {
		return nil, err
	}
	return &Node[T]{Elem: v, next: next}, nil
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) error {
	if l == nil {
		return container.ErrInvalidArgument
	}
	return l.InsertAt(v, l.count)
}

// InsertAt inserts v so that it becomes the element at index i. Valid indexes
// are 0 through Len() inclusive.
func (l *List[T]) InsertAt(v T, i int) error {
	if l == nil {
		return container.ErrInvalidArgument
	}
	if i < 0 || i > l.count {
		return fmt.Errorf("list: insert at %d of %d: %w", i, l.count, container.ErrInvalidArgument)
	}
	link := &l.head
	for ; i > 0; i-- {
		link = &(*link).next
	}
	n, err := l.newNode(v, *link)
	if err != nil {
		return err
	}
	*link = n
	l.count++
	return nil
}

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if l == nil {
		return zero, container.ErrInvalidArgument
	}
	if l.count == 0 {
		return zero, fmt.Errorf("list: remove from empty list: %w", container.ErrNotFound)
	}
	if i < 0 || i >= l.count {
		return zero, fmt.Errorf("list: remove at %d of %d: %w", i, l.count, container.ErrInvalidArgument)
	}
	link := &l.head
	for ; i > 0; i-- {
		link = &(*link).next
	}
	n := *link
	*link = n.next
	l.count--
	l.conf.Alloc.Free()
	return n.Elem, nil
}

// RemoveLast removes and returns the last element of the list.
func (l *List[T]) RemoveLast() (T, error) {
	if l == nil {
		var zero T
		return zero, container.ErrInvalidArgument
	}
	return l.RemoveAt(l.count - 1)
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	var zero T
	if l == nil {
		return zero, container.ErrInvalidArgument
	}
	if i < 0 || i >= l.count {
		return zero, fmt.Errorf("list: index %d of %d: %w", i, l.count, container.ErrInvalidArgument)
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n.Elem, nil
}

// An Operation is a function that operates on a list element. If done is
// returned true, the Operation is indicating that no further work needs to be
// done and so the Do function should traverse no further.
type Operation[T any] func(T) (done bool)

// Do performs fn on all values stored in the list from front to back. A boolean
// is returned indicating whether the traversal was interrupted by an Operation
// returning true.
func (l *List[T]) Do(fn Operation[T]) bool {
	for n := l.Front(); n != nil; n = n.next {
		if fn(n.Elem) {
			return true
		}
	}
	return false
}

// Destroy releases every node of the list. The list is empty afterwards.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		l.conf.Alloc.Free()
		n = next
	}
	l.head = nil
	l.count = 0
}
