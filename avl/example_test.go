// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"math"

	"github.com/biogo/container"
	"github.com/biogo/container/avl"
	"github.com/biogo/container/bst"
)

func Example() {
	// A sorted sequence is the worst case for an unbalanced tree.
	balanced, err := avl.New(container.Natural[int]())
	if err != nil {
		panic(err)
	}
	defer balanced.Destroy()
	unbalanced, err := bst.New(container.Natural[int]())
	if err != nil {
		panic(err)
	}
	defer unbalanced.Destroy()

	const n = 16
	for i := 1; i <= n; i++ {
		balanced.Insert(i)
		unbalanced.Insert(i)
	}

	fmt.Println("ideal height:", math.Ceil(math.Log2(n)))
	fmt.Println("avl height:  ", balanced.Height())
	fmt.Println("bst height:  ", unbalanced.Height())
	fmt.Println("found 4:     ", balanced.Search(4) != nil)

	// Output:
	// ideal height: 4
	// avl height:   5
	// bst height:   16
	// found 4:      true
}

func ExampleNode_Next() {
	t, _ := avl.New(container.Natural[string]())
	for _, s := range []string{"delta", "alpha", "echo", "charlie", "bravo"} {
		t.Insert(s)
	}
	for n := t.First(); n != nil; n = n.Next() {
		fmt.Println(n.Elem)
	}

	// Output:
	// alpha
	// bravo
	// charlie
	// delta
	// echo
}
