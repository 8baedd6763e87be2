// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biogo/container"
)

type order struct {
	title   string
	content string
}

func TestOrder(t *testing.T) {
	q, err := New[order]()
	require.NoError(t, err)
	defer q.Destroy()

	orders := []order{
		{"Wake up", "Get off the bed and brush your teeth"},
		{"Breakfast", "Eat eggs and drink milk"},
		{"Coding", "Open your laptop and code"},
	}
	for i, o := range orders {
		require.NoError(t, q.Push(o))
		assert.Equal(t, i+1, q.Len())
	}
	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, orders[0], head)

	for _, want := range orders {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = q.Pop()
	assert.ErrorIs(t, err, container.ErrNotFound)
	_, err = q.Peek()
	assert.ErrorIs(t, err, container.ErrNotFound)
}

func TestInterleaved(t *testing.T) {
	q, err := New[int]()
	require.NoError(t, err)
	next := 0
	for i := 0; i < 100; i++ {
		require.NoError(t, q.Push(2*i))
		require.NoError(t, q.Push(2*i+1))
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, next, got)
		next++
	}
	assert.Equal(t, 100, q.Len())
	for q.Len() > 0 {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, next, got)
		next++
	}
}

func TestAllocations(t *testing.T) {
	a := &container.Allocator{Limit: 1}
	q, err := New(container.WithAllocator[int](a))
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.ErrorIs(t, q.Push(16), container.ErrOutOfMemory)
	assert.Equal(t, 16, q.Len())
	q.Destroy()
	assert.Equal(t, 0, a.Live())
}

func TestNil(t *testing.T) {
	var q *Queue[int]
	assert.Equal(t, 0, q.Len())
	assert.ErrorIs(t, q.Push(1), container.ErrInvalidArgument)
	_, err := q.Pop()
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	q.Destroy()
}
