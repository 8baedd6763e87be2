// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

type branch int

const (
	root branch = iota
	left
	right
)

// Fprint writes an ASCII drawing of the tree to w, rotated so that the root is
// on the left and the right subtree is above it. Each node is shown with its
// element and its height.
func (t *Tree[T]) Fprint(w io.Writer) error {
	if t == nil {
		return nil
	}
	return fprint(w, t.Root, "", root)
}

func fprint[T any](w io.Writer, n *Node[T], prefix string, br branch) error {
	if n == nil {
		return nil
	}
	if n.Right != nil {
		pad := "       "
		if br == left {
			pad = "|      "
		}
		err := fprint(w, n.Right, prefix+pad, right)
		if err != nil {
			return err
		}
	}
	var edge string
	switch br {
	case root:
		edge = "|------+ "
	case left:
		edge = `\------+ `
	case right:
		edge = "/------+ "
	}
	_, err := fmt.Fprintf(w, "%s%s%v h=%d\n", prefix, edge, n.Elem, n.height)
	if err != nil {
		return err
	}
	if n.Left != nil {
		pad := "       "
		if br == right {
			pad = "|      "
		}
		return fprint(w, n.Left, prefix+pad, left)
	}
	return nil
}
