// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

// First returns the node with the lowest element, or nil if the tree is empty.
func (t *Tree[T]) First() *Node[T] {
	if t == nil {
		return nil
	}
	return t.Root.first()
}

func (n *Node[T]) first() *Node[T] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Last returns the node with the highest element, or nil if the tree is empty.
func (t *Tree[T]) Last() *Node[T] {
	if t == nil {
		return nil
	}
	return t.Root.last()
}

func (n *Node[T]) last() *Node[T] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Next returns the in-order successor of n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	if n.Right != nil {
		return n.Right.first()
	}
	for p := n.Parent; p != nil; n, p = p, p.Parent {
		if p.Left == n {
			return p
		}
	}
	return nil
}

// Prev returns the in-order predecessor of n, or nil if n is the first node.
func (n *Node[T]) Prev() *Node[T] {
	if n.Left != nil {
		return n.Left.last()
	}
	for p := n.Parent; p != nil; n, p = p, p.Parent {
		if p.Right == n {
			return p
		}
	}
	return nil
}
