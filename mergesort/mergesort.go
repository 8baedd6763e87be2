// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mergesort provides a stable top-down merge sort.
package mergesort

import "cmp"

// Sort sorts s in place into the order defined by compare, which must return
// a negative value when a sorts before b, a positive value when a sorts after
// b and zero otherwise. The sort is stable. Sort allocates a single scratch
// buffer the length of s.
func Sort[T any](s []T, compare func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	split(s, make([]T, len(s)), compare)
}

// Ordered sorts s into ascending order.
func Ordered[T cmp.Ordered](s []T) {
	Sort(s, cmp.Compare[T])
}

// split sorts s using tmp, which has the same length as s, as scratch space.
func split[T any](s, tmp []T, compare func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	split(s[:mid], tmp[:mid], compare)
	split(s[mid:], tmp[mid:], compare)
	if compare(s[mid-1], s[mid]) <= 0 {
		return
	}
	merge(s, mid, tmp, compare)
}

// merge merges the sorted runs s[:mid] and s[mid:]. Ties are taken from the
// left run.
func merge[T any](s []T, mid int, tmp []T, compare func(a, b T) int) {
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if compare(s[j], s[i]) < 0 {
			tmp[k] = s[j]
			j++
		} else {
			tmp[k] = s[i]
			i++
		}
		k++
	}
	k += copy(tmp[k:], s[i:mid])
	k += copy(tmp[k:], s[j:])
	copy(s, tmp[:k])
}
