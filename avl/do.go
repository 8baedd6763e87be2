// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

// An Operation is a function that operates on a stored element. If done is
// returned true, the Operation is indicating that no further work needs to be
// done and so the Do function should traverse no further.
type Operation[T any] func(T) (done bool)

// Do performs fn on all values stored in the tree in sort order. A boolean is
// returned indicating whether the Do traversal was interrupted by an Operation
// returning true. If fn alters stored values' sort relationships, future tree
// operation behaviors are undefined.
func (t *Tree[T]) Do(fn Operation[T]) bool {
	if t == nil || t.Root == nil {
		return false
	}
	return t.Root.do(fn)
}

func (n *Node[T]) do(fn Operation[T]) (done bool) {
	if n.Left != nil {
		done = n.Left.do(fn)
		if done {
			return
		}
	}
	done = fn(n.Elem)
	if done {
		return
	}
	if n.Right != nil {
		done = n.Right.do(fn)
	}
	return
}

// DoReverse performs fn on all values stored in the tree, but in reverse of sort
// order. A boolean is returned indicating whether the Do traversal was
// interrupted by an Operation returning true.
func (t *Tree[T]) DoReverse(fn Operation[T]) bool {
	if t == nil || t.Root == nil {
		return false
	}
	return t.Root.doReverse(fn)
}

func (n *Node[T]) doReverse(fn Operation[T]) (done bool) {
	if n.Right != nil {
		done = n.Right.doReverse(fn)
		if done {
			return
		}
	}
	done = fn(n.Elem)
	if done {
		return
	}
	if n.Left != nil {
		done = n.Left.doReverse(fn)
	}
	return
}

// DoRange performs fn on all values stored in the tree over the interval
// [from, to) from left to right. If to equals from the call is a no-op, and if
// to is less than from DoRange will panic. A boolean is returned indicating
// whether the Do traversal was interrupted by an Operation returning true.
func (t *Tree[T]) DoRange(fn Operation[T], from, to T) bool {
	if !t.valid() || t.Root == nil {
		return false
	}
	switch order := t.greater.Compare(from, to); {
	case order < 0:
		return t.doRange(t.Root, fn, from, to)
	case order > 0:
		panic("avl: inverted range")
	}
	return false
}

func (t *Tree[T]) doRange(n *Node[T], fn Operation[T], lo, hi T) (done bool) {
	lc, hc := t.greater.Compare(lo, n.Elem), t.greater.Compare(hi, n.Elem)
	if lc <= 0 && n.Left != nil {
		done = t.doRange(n.Left, fn, lo, hi)
		if done {
			return
		}
	}
	if lc <= 0 && hc > 0 {
		done = fn(n.Elem)
		if done {
			return
		}
	}
	if hc > 0 && n.Right != nil {
		done = t.doRange(n.Right, fn, lo, hi)
	}
	return
}
