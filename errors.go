// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

// Error is a constant error value.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrOutOfMemory is returned when an Allocator refuses an allocation.
	ErrOutOfMemory Error = "container: out of memory"

	// ErrInvalidArgument is returned when an operation is given a nil or
	// destroyed container, an element of the wrong size or an index out of
	// range.
	ErrInvalidArgument Error = "container: invalid argument"

	// ErrNotFound is returned when a requested element is not held.
	ErrNotFound Error = "container: not found"
)
