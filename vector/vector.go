// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements a generic growable array.
package vector

import (
	"fmt"

	"github.com/biogo/container"
)

// DefaultCapacity is the capacity of a Vector created with a non-positive
// capacity.
const DefaultCapacity = 16

// A Vector is a contiguous buffer of elements that doubles its capacity when
// a push or insertion finds it full. A Vector must be created with New.
type Vector[T any] struct {
	elems []T
	n     int
	grows int

	conf container.Config[T]
}

// New returns an empty Vector with capacity for n elements. The buffer is
// accounted for by the configured Allocator.
func New[T any](n int, opts ...container.Option[T]) (*Vector[T], error) {
	if n <= 0 {
		n = DefaultCapacity
	}
	v := &Vector[T]{conf: container.NewConfig(opts...)}
	err := v.conf.Alloc.Alloc()
	if err != nil {
		return nil, err
	}
	v.elems = make([]T, n)
	return v, nil
}

func (v *Vector[T]) valid() bool {
	return v != nil && v.elems != nil
}

// Len returns the number of elements held.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// Cap returns the number of elements the vector can hold without growing.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.elems)
}

// Grows returns the number of times the vector has grown its buffer.
func (v *Vector[T]) Grows() int {
	if v == nil {
		return 0
	}
	return v.grows
}

// reserve ensures that the buffer can hold n elements. The old buffer is
// released only after the new one has been obtained.
func (v *Vector[T]) reserve(n int) error {
	if n <= len(v.elems) {
		return nil
	}
	c := max(len(v.elems), 1)
	for c < n {
		c *= 2
	}
	err := v.conf.Alloc.Alloc()
	if err != nil {
		return err
	}
	elems := make([]T, c)
	copy(elems, v.elems[:v.n])
	v.elems = elems
	v.conf.Alloc.Free()
	v.grows++
	return nil
}

// PushBack appends a copy of e to the vector.
func (v *Vector[T]) PushBack(e T) error {
	if !v.valid() {
		return container.ErrInvalidArgument
	}
	e, err := v.conf.Clone(e)
	if err != nil {
		return err
	}
	err = v.reserve(v.n + 1)
	if err != nil {
		return err
	}
	v.elems[v.n] = e
	v.n++
	return nil
}

// PopBack removes and returns the last element. The boolean is false if the
// vector is empty.
func (v *Vector[T]) PopBack() (T, bool) {
	var zero T
	if v.Len() == 0 {
		return zero, false
	}
	v.n--
	e := v.elems[v.n]
	v.elems[v.n] = zero
	return e, true
}

// Front returns the first element. The boolean is false if the vector is empty.
func (v *Vector[T]) Front() (T, bool) {
	if v.Len() == 0 {
		var zero T
		return zero, false
	}
	return v.elems[0], true
}

// Back returns the last element. The boolean is false if the vector is empty.
func (v *Vector[T]) Back() (T, bool) {
	if v.Len() == 0 {
		var zero T
		return zero, false
	}
	return v.elems[v.n-1], true
}

// At returns the element at index i. At panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d]", i, v.Len()))
	}
	return v.elems[i]
}

// Set replaces the element at index i with a copy of e. Set panics if i is out
// of range.
func (v *Vector[T]) Set(i int, e T) error {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d]", i, v.Len()))
	}
	e, err := v.conf.Clone(e)
	if err != nil {
		return err
	}
	v.elems[i] = e
	return nil
}

// Insert inserts a copy of e at index pos, moving the elements at pos and
// beyond up by one. Valid positions are 0 through Len() inclusive.
func (v *Vector[T]) Insert(pos int, e T) error {
	if !v.valid() {
		return container.ErrInvalidArgument
	}
	if pos < 0 || pos > v.n {
		return fmt.Errorf("vector: insert at %d of %d: %w", pos, v.n, container.ErrInvalidArgument)
	}
	e, err := v.conf.Clone(e)
	if err != nil {
		return err
	}
	err = v.reserve(v.n + 1)
	if err != nil {
		return err
	}
	copy(v.elems[pos+1:v.n+1], v.elems[pos:v.n])
	v.elems[pos] = e
	v.n++
	return nil
}

// Erase removes the element at index pos, moving the elements beyond it down
// by one.
func (v *Vector[T]) Erase(pos int) error {
	if !v.valid() {
		return container.ErrInvalidArgument
	}
	if pos < 0 || pos >= v.n {
		return fmt.Errorf("vector: erase at %d of %d: %w", pos, v.n, container.ErrInvalidArgument)
	}
	copy(v.elems[pos:], v.elems[pos+1:v.n])
	v.n--
	var zero T
	v.elems[v.n] = zero
	return nil
}

// Resize sets the number of elements to n. New elements are zero values.
func (v *Vector[T]) Resize(n int) error {
	if !v.valid() || n < 0 {
		return container.ErrInvalidArgument
	}
	err := v.reserve(n)
	if err != nil {
		return err
	}
	var zero T
	for i := n; i < v.n; i++ {
		v.elems[i] = zero
	}
	v.n = n
	return nil
}

// An Operation is a function that operates on a stored element. If done is
// returned true, the Operation is indicating that no further work needs to be
// done and so the Do function should traverse no further.
type Operation[T any] func(T) (done bool)

// Do performs fn on all elements from front to back. A boolean is returned
// indicating whether the traversal was interrupted by an Operation returning
// true.
func (v *Vector[T]) Do(fn Operation[T]) bool {
	for i := 0; i < v.Len(); i++ {
		if fn(v.elems[i]) {
			return true
		}
	}
	return false
}

// Destroy releases the buffer. The vector may not be used afterwards.
func (v *Vector[T]) Destroy() {
	if !v.valid() {
		return
	}
	v.elems = nil
	v.n = 0
	v.conf.Alloc.Free()
}
