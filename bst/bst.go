// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bst implements an unbalanced binary search tree.
//
// Elements are placed by a container.Greater: an element that is not greater
// than a node is placed in the node's right subtree, otherwise in its left
// subtree. Equal elements are kept as distinct nodes. No rebalancing is done,
// so a sorted insertion sequence degenerates the tree into a list; the
// traversals are therefore iterative.
package bst

import "github.com/biogo/container"

// A Node represents a node in the tree.
type Node[T any] struct {
	Elem        T
	Left, Right *Node[T]
}

// A Tree manages the root node of a binary search tree. A Tree must be created
// with New.
type Tree[T any] struct {
	Root  *Node[T] // Root node of the tree.
	Count int      // Number of elements stored.

	greater container.Greater[T]
	conf    container.Config[T]
}

// New returns an empty tree ordered by greater. The tree record is accounted
// for by the configured Allocator.
func New[T any](greater container.Greater[T], opts ...container.Option[T]) (*Tree[T], error) {
	if greater == nil {
		return nil, container.ErrInvalidArgument
	}
	t := &Tree[T]{greater: greater, conf: container.NewConfig(opts...)}
	err := t.conf.Alloc.Alloc()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree[T]) valid() bool {
	return t != nil && t.greater != nil
}

// Len returns the number of elements stored in the Tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.Count
}

// Insert inserts a copy of e into the Tree. If the copy or the node allocation
// fails the tree is left unchanged.
func (t *Tree[T]) Insert(e T) error {
	if !t.valid() {
		return container.ErrInvalidArgument
	}
	e, err := t.conf.Clone(e)
	if err != nil {
		return err
	}
	err = t.conf.Alloc.Alloc()
	if err != nil {
		return err
	}
	n := &Node[T]{Elem: e}
	if t.Root == nil {
		t.Root = n
	} else {
		t.Root.attach(n, t.greater)
	}
	t.Count++
	return nil
}

func (n *Node[T]) attach(c *Node[T], greater container.Greater[T]) {
	for {
		if !greater(n.Elem, c.Elem) {
			if n.Right == nil {
				n.Right = c
				return
			}
			n = n.Right
		} else {
			if n.Left == nil {
				n.Left = c
				return
			}
			n = n.Left
		}
	}
}

// Search returns the first node found on the search path for q that matches q,
// or nil if there is none.
func (t *Tree[T]) Search(q T) *Node[T] {
	if !t.valid() {
		return nil
	}
	n := t.Root
	for n != nil {
		if t.conf.Matches(t.greater, n.Elem, q) {
			return n
		}
		if !t.greater(n.Elem, q) {
			n = n.Right
		} else {
			n = n.Left
		}
	}
	return nil
}

// Get returns the element of the node found by Search. If no node matches q,
// container.ErrNotFound is returned.
func (t *Tree[T]) Get(q T) (T, error) {
	n := t.Search(q)
	if n == nil {
		var zero T
		return zero, container.ErrNotFound
	}
	return n.Elem, nil
}

// Min returns the left-most node of the tree, or nil if the tree is empty.
func (t *Tree[T]) Min() *Node[T] {
	if t == nil || t.Root == nil {
		return nil
	}
	n := t.Root
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the right-most node of the tree, or nil if the tree is empty.
func (t *Tree[T]) Max() *Node[T] {
	if t == nil || t.Root == nil {
		return nil
	}
	n := t.Root
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Height returns the number of nodes on the longest root to leaf path of the
// tree.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return Height(t.Root)
}

type level[T any] struct {
	n *Node[T]
	d int
}

// Height returns the number of nodes on the longest path from n to a leaf. The
// height of a nil node is 0.
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	var h int
	work := workList[level[T]]()
	work.Push(level[T]{n, 1})
	for work.Len() != 0 {
		l, _ := work.Pop()
		h = max(h, l.d)
		if l.n.Left != nil {
			work.Push(level[T]{l.n.Left, l.d + 1})
		}
		if l.n.Right != nil {
			work.Push(level[T]{l.n.Right, l.d + 1})
		}
	}
	return h
}

type visit[T any] struct {
	n    *Node[T]
	done bool
}

// Destroy releases every node of the tree, children before parents, and then
// the tree record. The tree may not be used afterwards.
func (t *Tree[T]) Destroy() {
	if !t.valid() {
		return
	}
	if t.Root != nil {
		work := workList[visit[T]]()
		work.Push(visit[T]{n: t.Root})
		for work.Len() != 0 {
			v, _ := work.Pop()
			if v.done {
				v.n.Left, v.n.Right = nil, nil
				t.conf.Alloc.Free()
				continue
			}
			work.Push(visit[T]{n: v.n, done: true})
			if v.n.Right != nil {
				work.Push(visit[T]{n: v.n.Right})
			}
			if v.n.Left != nil {
				work.Push(visit[T]{n: v.n.Left})
			}
		}
	}
	t.Root = nil
	t.Count = 0
	t.greater = nil
	t.conf.Alloc.Free()
}
