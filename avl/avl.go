// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avl implements an AVL balanced binary search tree with parent links.
//
// Elements are placed as in package bst: an element that is not greater than a
// node goes to the node's right subtree. After each insertion the path from the
// new node to the root is walked and every node whose subtree heights differ by
// two is restored by a single or double rotation, so that for every node
//  |height(Left) - height(Right)| <= 1
// Heights count nodes, so a leaf has height 1 and an absent subtree height 0.
//
// Deletion is not provided. A Tree is not safe for concurrent use.
package avl

import (
	"github.com/biogo/container"
)

// A Node represents a node in the AVL tree. Parent is a back link used for
// upward walks; the tree owns its nodes through the child links only.
type Node[T any] struct {
	Elem                T
	Left, Right, Parent *Node[T]

	height int
}

// A Tree manages the root node of an AVL tree. A Tree must be created with New.
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

// Height returns the height of the subtree rooted at n. The height of a nil
// node is 0 and that of a leaf is 1.
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// Height returns the height of the tree.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return Height(t.Root)
}

// fix recomputes the height of n from its children.
func (n *Node[T]) fix() {
	n.height = 1 + max(Height(n.Left), Height(n.Right))
}

// balance is positive when n is left heavy.
func (n *Node[T]) balance() int {
	return Height(n.Left) - Height(n.Right)
}

// Insert inserts a copy of e into the Tree and rebalances it. If the copy or
// the node allocation fails the tree is left unchanged.
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
	n := &Node[T]{Elem: e, height: 1}
	t.Count++
	if t.Root == nil {
		t.Root = n
		return nil
	}
	t.Root.attach(n, t.greater)
	t.rebalance(n)
	return nil
}

func (n *Node[T]) attach(c *Node[T], greater container.Greater[T]) {
	for {
		if !greater(n.Elem, c.Elem) {
			if n.Right == nil {
				n.Right = c
				break
			}
			n = n.Right
		} else {
			if n.Left == nil {
				n.Left = c
				break
			}
			n = n.Left
		}
	}
	c.Parent = n
}

// rebalance walks from n to the root restoring the AVL invariant. After a
// rotation the walk resumes from the parent of the rotated subtree's new root.
func (t *Tree[T]) rebalance(n *Node[T]) {
	for n != nil {
		n.fix()
		switch b := n.balance(); {
		case b >= 2:
			if Height(n.Left.Left) < Height(n.Left.Right) {
				t.rotateLeft(n.Left)
			}
			n = t.rotateRight(n)
		case b <= -2:
			if Height(n.Right.Right) < Height(n.Right.Left) {
				t.rotateRight(n.Right)
			}
			n = t.rotateLeft(n)
		}
		n = n.Parent
	}
}

// replace puts y in x's place under x's parent.
func (t *Tree[T]) replace(x, y *Node[T]) {
	p := x.Parent
	y.Parent = p
	switch {
	case p == nil:
		t.Root = y
	case p.Left == x:
		p.Left = y
	default:
		p.Right = y
	}
}

// (a,(c,e)d)b -rotL-> ((a,c)b,e)d
func (t *Tree[T]) rotateLeft(x *Node[T]) (root *Node[T]) {
	// Assumes: x has a right child.
	root = x.Right
	t.replace(x, root)
	x.Right = root.Left
	if x.Right != nil {
		x.Right.Parent = x
	}
	root.Left = x
	x.Parent = root
	x.fix()
	root.fix()
	return
}

// ((a,c)b,e)d -rotR-> (a,(c,e)d)b
func (t *Tree[T]) rotateRight(x *Node[T]) (root *Node[T]) {
	// Assumes: x has a left child.
	root = x.Left
	t.replace(x, root)
	x.Left = root.Right
	if x.Left != nil {
		x.Left.Parent = x
	}
	root.Right = x
	x.Parent = root
	x.fix()
	root.fix()
	return
}

// Search returns the first node found on the search path for q that matches q,
// or nil if there is none. When the match policy is stricter than the ordering,
// rotations may have moved elements equivalent to q to either side of one
// another, so both subtrees of an equivalent node that does not match are
// searched.
func (t *Tree[T]) Search(q T) *Node[T] {
	if !t.valid() {
		return nil
	}
	return t.search(t.Root, q)
}

func (t *Tree[T]) search(n *Node[T], q T) *Node[T] {
	for n != nil {
		if t.conf.Matches(t.greater, n.Elem, q) {
			return n
		}
		switch {
		case t.greater(n.Elem, q):
			n = n.Left
		case t.greater(q, n.Elem):
			n = n.Right
		default:
			if m := t.search(n.Left, q); m != nil {
				return m
			}
			n = n.Right
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

// Destroy releases every node of the tree, children before parents, and then
// the tree record. The tree may not be used afterwards.
func (t *Tree[T]) Destroy() {
	if !t.valid() {
		return
	}
	n := t.Root
	for n != nil {
		switch {
		case n.Left != nil:
			n = n.Left
		case n.Right != nil:
			n = n.Right
		default:
			p := n.Parent
			if p != nil {
				if p.Left == n {
					p.Left = nil
				} else {
					p.Right = nil
				}
			}
			n.Parent = nil
			t.conf.Alloc.Free()
			n = p
		}
	}
	t.Root = nil
	t.Count = 0
	t.greater = nil
	t.conf.Alloc.Free()
}
