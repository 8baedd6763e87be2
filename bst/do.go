// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

import "github.com/biogo/container/stack"

// workList returns the explicit stack used by the traversals. It has no
// Allocator and no copy policy, so Push cannot fail, and Pop is only called
// on a non-empty work-list.
func workList[T any]() *stack.Stack[T] {
	return stack.New[T]()
}

// An Operation is a function that operates on a stored element. If done is
// returned true, the Operation is indicating that no further work needs to be
// done and so the Do function should traverse no further.
type Operation[T any] func(T) (done bool)

// Do performs fn on all values stored in the tree in sort order. A boolean is
// returned indicating whether the Do traversal was interrupted by an Operation
// returning true. If fn alters stored values' sort relationships, future tree
// operation behaviors are undefined.
func (t *Tree[T]) Do(fn Operation[T]) bool {
	if t == nil {
		return false
	}
	work := workList[*Node[T]]()
	n := t.Root
	for n != nil || work.Len() != 0 {
		for ; n != nil; n = n.Left {
			work.Push(n)
		}
		n, _ = work.Pop()
		if fn(n.Elem) {
			return true
		}
		n = n.Right
	}
	return false
}

// DoReverse performs fn on all values stored in the tree, but in reverse of
// sort order. A boolean is returned indicating whether the Do traversal was
// interrupted by an Operation returning true.
func (t *Tree[T]) DoReverse(fn Operation[T]) bool {
	if t == nil {
		return false
	}
	work := workList[*Node[T]]()
	n := t.Root
	for n != nil || work.Len() != 0 {
		for ; n != nil; n = n.Right {
			work.Push(n)
		}
		n, _ = work.Pop()
		if fn(n.Elem) {
			return true
		}
		n = n.Left
	}
	return false
}
