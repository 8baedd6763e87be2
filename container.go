// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package container holds the parts shared by the generic containers in its
// sub-packages: the ordering contract, the error values, the counting
// allocator and the element policies.
//
// The trees are ordered by a Greater function rather than a three-way
// comparison. Given g = Greater[T]:
//  g(a, b) == true   if a > b
//  g(a, b) == false  if a <= b
// Insertion routes elements that are not greater than a node to its right, so
// equal elements are stored as distinct nodes.
package container

import "cmp"

// Greater reports whether a is strictly greater than b. A Greater must define a
// strict total order that does not change for the lifetime of a container.
type Greater[T any] func(a, b T) bool

// Natural returns the Greater for the natural order of T.
func Natural[T cmp.Ordered]() Greater[T] {
	return func(a, b T) bool { return a > b }
}

// Equiv returns whether neither of a and b is greater than the other.
func (g Greater[T]) Equiv(a, b T) bool {
	return !g(a, b) && !g(b, a)
}

// Compare returns a three-way comparison of a and b derived from g.
func (g Greater[T]) Compare(a, b T) int {
	switch {
	case g(a, b):
		return 1
	case g(b, a):
		return -1
	}
	return 0
}
