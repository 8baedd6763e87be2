// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

// An Iterator steps through the elements of a List. Mutating the list while
// iterating invalidates the iterator.
//
//  it := l.Iterator()
//  for it.Next() {
//  	v := it.Value()
//  	...
//  }
type Iterator[T any] struct {
	next *Node[T]
	curr *Node[T]
}

// Iterator returns an Iterator positioned before the first element of l.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.Front()}
}

// Next advances the iterator, returning false when no elements remain.
func (it *Iterator[T]) Next() bool {
	it.curr = it.next
	if it.curr == nil {
		return false
	}
	it.next = it.curr.next
	return true
}

// Value returns the element at the iterator's position. It panics if Next has
// not returned true.
func (it *Iterator[T]) Value() T {
	if it.curr == nil {
		panic("list: iterator not positioned on an element")
	}
	return it.curr.Elem
}
