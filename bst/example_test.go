// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst_test

import (
	"fmt"

	"github.com/biogo/container"
	"github.com/biogo/container/bst"
)

func Example() {
	t, err := bst.New(container.Natural[int]())
	if err != nil {
		panic(err)
	}
	defer t.Destroy()

	for _, v := range []int{12, 1, 6, 4, 3, 6, 14} {
		t.Insert(v)
	}

	fmt.Println("found 4: ", t.Search(4) != nil)
	fmt.Println("found 99:", t.Search(99) != nil)

	var sorted []int
	t.Do(func(v int) (done bool) {
		sorted = append(sorted, v)
		return
	})
	fmt.Println(sorted)

	// Output:
	// found 4:  true
	// found 99: false
	// [1 3 4 6 6 12 14]
}
