// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biogo/container"
	"github.com/biogo/container/avl"
	"github.com/biogo/container/bst"
	"github.com/biogo/container/mergesort"
	"github.com/biogo/container/queue"
	"github.com/biogo/container/stack"
)

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q: %w", a, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (d *driver) allocator() *container.Allocator {
	return &container.Allocator{Limit: d.conf.Limit}
}

// searchTree is the part of the avl and bst trees the driver reports on.
type searchTree interface {
	Insert(int) error
	Get(int) (int, error)
	Len() int
	Height() int
	Destroy()
}

type treeFlags struct {
	search []int
	draw   bool
}

func (d *driver) treeCommand(name, short string, balanced bool) *cobra.Command {
	var f treeFlags
	cmd := &cobra.Command{
		Use:   name + " [ints...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.runTree(cmd.Name(), balanced, f, args)
		},
	}
	cmd.Flags().IntSliceVarP(&f.search, "search", "s", nil, "search for `INT` after building the tree")
	if balanced {
		cmd.Flags().BoolVarP(&f.draw, "draw", "d", false, "draw the tree")
	}
	return cmd
}

func (d *driver) runTree(name string, balanced bool, f treeFlags, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	alloc := d.allocator()
	opt := container.WithAllocator[int](alloc)

	var (
		t       searchTree
		inOrder []int
		walk    func()
		draw    func() error
	)
	collect := func(v int) (done bool) {
		inOrder = append(inOrder, v)
		return false
	}
	if balanced {
		a, err := avl.New(container.Natural[int](), opt)
		if err != nil {
			return err
		}
		t = a
		walk = func() { a.Do(collect) }
		draw = func() error { return a.Fprint(d.out) }
	} else {
		b, err := bst.New(container.Natural[int](), opt)
		if err != nil {
			return err
		}
		t = b
		walk = func() { b.Do(collect) }
	}
	defer func() {
		t.Destroy()
		d.log.Debugf("%s: allocated %d freed %d", name, alloc.Allocated(), alloc.Freed())
	}()

	for _, v := range values {
		err = t.Insert(v)
		if err != nil {
			d.log.Errorf("%s: insert %d: %v", name, v, err)
			return fmt.Errorf("insert %d: %w", v, err)
		}
	}
	d.log.Infof("%s: inserted %d values, height %d", name, t.Len(), t.Height())

	fmt.Fprintf(d.out, "count: %d\n", t.Len())
	fmt.Fprintf(d.out, "height: %d\n", t.Height())
	fmt.Fprintf(d.out, "ideal height: %d\n", idealHeight(t.Len()))
	for _, q := range f.search {
		_, err := t.Get(q)
		switch {
		case err == nil:
			fmt.Fprintf(d.out, "search %d: found\n", q)
		case errors.Is(err, container.ErrNotFound):
			fmt.Fprintf(d.out, "search %d: not found\n", q)
		default:
			return err
		}
	}
	walk()
	fmt.Fprintf(d.out, "in order: %v\n", inOrder)
	if f.draw {
		return draw()
	}
	return nil
}

// idealHeight returns ceil(log2(n)), the reference height reported beside the
// measured height of a tree holding n elements.
func idealHeight(n int) int {
	if n <= 1 {
		return n
	}
	return int(math.Ceil(math.Log2(float64(n))))
}

func (d *driver) runQueue(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	q, err := queue.New(container.WithAllocator[int](d.allocator()))
	if err != nil {
		return err
	}
	defer q.Destroy()
	for _, v := range values {
		err = q.Push(v)
		if err != nil {
			return fmt.Errorf("push %d: %w", v, err)
		}
	}
	var order []int
	for q.Len() > 0 {
		v, err := q.Pop()
		if err != nil {
			return err
		}
		order = append(order, v)
	}
	d.log.Infof("queue: %d values", len(order))
	fmt.Fprintf(d.out, "popped: %v\n", order)
	return nil
}

func (d *driver) runStack(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	s := stack.New(container.WithAllocator[int](d.allocator()))
	defer s.Destroy()
	for _, v := range values {
		err = s.Push(v)
		if err != nil {
			return fmt.Errorf("push %d: %w", v, err)
		}
	}
	var order []int
	for s.Len() > 0 {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		order = append(order, v)
	}
	d.log.Infof("stack: %d values", len(order))
	fmt.Fprintf(d.out, "popped: %v\n", order)
	return nil
}

func (d *driver) runSort(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	mergesort.Ordered(values)
	d.log.Infof("sort: %d values", len(values))
	fmt.Fprintf(d.out, "sorted: %v\n", values)
	return nil
}
