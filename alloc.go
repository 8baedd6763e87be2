// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

import "fmt"

// An Allocator accounts for the allocations made by containers. Every node,
// tree record and vector buffer is obtained with Alloc and handed back with
// Free. When Limit is positive, Alloc fails with ErrOutOfMemory once Limit
// allocations are live.
//
// A nil *Allocator is valid and neither limits nor counts.
type Allocator struct {
	Limit int

	allocated int
	freed     int
}

// Alloc accounts for one allocation.
func (a *Allocator) Alloc() error {
	if a == nil {
		return nil
	}
	if a.Limit > 0 && a.Live() >= a.Limit {
		return fmt.Errorf("allocation %d exceeds limit %d: %w", a.allocated+1, a.Limit, ErrOutOfMemory)
	}
	a.allocated++
	return nil
}

// Free accounts for the release of one allocation.
func (a *Allocator) Free() {
	if a == nil {
		return
	}
	if a.freed == a.allocated {
		panic("container: free without matching allocation")
	}
	a.freed++
}

// Allocated returns the number of allocations made.
func (a *Allocator) Allocated() int {
	if a == nil {
		return 0
	}
	return a.allocated
}

// Freed returns the number of allocations released.
func (a *Allocator) Freed() int {
	if a == nil {
		return 0
	}
	return a.freed
}

// Live returns the number of allocations not yet released.
func (a *Allocator) Live() int {
	if a == nil {
		return 0
	}
	return a.allocated - a.freed
}
