// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biogo/container"
)

func values[T any](l *List[T]) []T {
	var s []T
	for it := l.Iterator(); it.Next(); {
		s = append(s, it.Value())
	}
	return s
}

func TestAppend(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Append(i))
	}
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, values(l))
	for i := 0; i < 5; i++ {
		v, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	_, err := l.At(5)
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	_, err = l.At(-1)
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
}

func TestInsertAt(t *testing.T) {
	l := New[string]()
	require.NoError(t, l.InsertAt("b", 0))
	require.NoError(t, l.InsertAt("a", 0))
	require.NoError(t, l.InsertAt("d", 2))
	require.NoError(t, l.InsertAt("c", 2))
	assert.Equal(t, []string{"a", "b", "c", "d"}, values(l))
	assert.ErrorIs(t, l.InsertAt("x", 5), container.ErrInvalidArgument)
	assert.ErrorIs(t, l.InsertAt("x", -1), container.ErrInvalidArgument)
	assert.Equal(t, 4, l.Len())
}

func TestRemove(t *testing.T) {
	l := New[int]()
	for i := 0; i < 6; i++ {
		require.NoError(t, l.Append(i))
	}
	v, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	v, err = l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = l.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{1, 2, 4}, values(l))

	_, err = l.RemoveAt(3)
	assert.ErrorIs(t, err, container.ErrInvalidArgument)

	for l.Len() > 0 {
		_, err = l.RemoveLast()
		require.NoError(t, err)
	}
	assert.Nil(t, l.Front())
	_, err = l.RemoveLast()
	assert.ErrorIs(t, err, container.ErrNotFound)
	_, err = l.RemoveAt(0)
	assert.ErrorIs(t, err, container.ErrNotFound)
}

func TestDo(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, l.Append(i))
	}
	var got []int
	assert.True(t, l.Do(func(v int) bool {
		got = append(got, v)
		return v == 3
	}))
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.False(t, l.Do(func(int) bool { return false }))
}

func TestIteratorUnpositioned(t *testing.T) {
	it := New[int]().Iterator()
	assert.Panics(t, func() { it.Value() })
	assert.False(t, it.Next())
}

func TestAllocations(t *testing.T) {
	a := &container.Allocator{Limit: 3}
	l := New(container.WithAllocator[int](a))
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Append(i))
	}
	assert.ErrorIs(t, l.Append(3), container.ErrOutOfMemory)
	assert.Equal(t, []int{0, 1, 2}, values(l))

	_, err := l.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Live())
	require.NoError(t, l.Append(3))

	l.Destroy()
	assert.Equal(t, 0, a.Live())
	assert.Equal(t, 4, a.Freed())
	assert.Equal(t, 0, l.Len())
}

func TestNil(t *testing.T) {
	var l *List[int]
	assert.Equal(t, 0, l.Len())
	assert.ErrorIs(t, l.Append(1), container.ErrInvalidArgument)
	_, err := l.RemoveLast()
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	_, err = l.At(0)
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	assert.False(t, l.Iterator().Next())
	l.Destroy()
}
