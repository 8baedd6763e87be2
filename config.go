// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

import (
	"bytes"
	"fmt"
)

// Config holds the element policies of a container.
type Config[T any] struct {
	// Alloc accounts for the container's allocations. May be nil.
	Alloc *Allocator

	// Copy returns the container-owned copy of a value passed in by
	// a caller. If nil, plain assignment is the copy.
	Copy func(T) (T, error)

	// Equal is the equality used by search. If nil, equivalence under
	// the container's Greater is used.
	Equal func(a, b T) bool
}

// An Option sets an element policy.
type Option[T any] func(*Config[T])

// NewConfig returns the Config resulting from applying opts in order.
func NewConfig[T any](opts ...Option[T]) Config[T] {
	var c Config[T]
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithAllocator sets the Allocator used for a container's allocations.
func WithAllocator[T any](a *Allocator) Option[T] {
	return func(c *Config[T]) { c.Alloc = a }
}

// WithCopy sets the function used to take ownership of inserted values.
func WithCopy[T any](fn func(T) (T, error)) Option[T] {
	return func(c *Config[T]) { c.Copy = fn }
}

// WithEqual sets the equality used by search.
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(c *Config[T]) { c.Equal = fn }
}

// Blob configures a container of opaque fixed-size byte elements. Values must
// be exactly size bytes long, are deep copied on insertion and are matched by
// search using byte-for-byte equality rather than the container's ordering.
//
// When the Greater orders on only some of the bytes, elements it considers
// equivalent are told apart by search alone. Search in an unbalanced tree finds
// them on the right-hand path below the first equivalent node; the AVL tree,
// whose rotations can move them to either side, searches both subtrees of
// each equivalent node, so a search among many equivalent elements costs time
// linear in their number.
func Blob(size int) Option[[]byte] {
	return func(c *Config[[]byte]) {
		c.Copy = func(b []byte) ([]byte, error) {
			if len(b) != size {
				return nil, fmt.Errorf("blob length %d, want %d: %w", len(b), size, ErrInvalidArgument)
			}
			return append(make([]byte, 0, size), b...), nil
		}
		c.Equal = bytes.Equal
	}
}

// Clone returns the container-owned copy of v.
func (c *Config[T]) Clone(v T) (T, error) {
	if c.Copy == nil {
		return v, nil
	}
	return c.Copy(v)
}

// Matches returns whether the stored element e matches the query q. If no
// Equal policy is set, e and q match when g considers them equivalent.
func (c *Config[T]) Matches(g Greater[T], e, q T) bool {
	if c.Equal == nil {
		return g.Equiv(e, q)
	}
	return c.Equal(e, q)
}
