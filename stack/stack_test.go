package stack_test

import (
	"slices"
	"testing"

	"github.com/kchristidis/lists/stack"
	"github.com/stretchr/testify/require"
)

func requirePop(t *testing.T, s *stack.Stack[int], want int) {
	t.Helper()
	got, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestStack(t *testing.T) {
	t.Run("basics", func(t *testing.T) {
		s := stack.New[int]()
		_, ok := s.Pop()
		require.False(t, ok)

		s.Push(1)
		s.Push(2)
		s.Push(3)
		require.Equal(t, 3, s.Len())

		requirePop(t, s, 3)
		requirePop(t, s, 2)

		s.Push(4)
		s.Push(5)

		requirePop(t, s, 5)
		requirePop(t, s, 4)
		requirePop(t, s, 1)

		_, ok = s.Pop()
		require.False(t, ok)
		require.True(t, s.IsEmpty())
	})

	t.Run("peek", func(t *testing.T) {
		s := stack.New[int]()
		_, ok := s.Peek()
		require.False(t, ok)
		p, ok := s.PeekMut()
		require.False(t, ok)
		require.Nil(t, p)

		s.Push(3)
		s.Push(2)
		s.Push(1)

		v, ok := s.Peek()
		require.True(t, ok)
		require.Equal(t, 1, v)

		p, ok = s.PeekMut()
		require.True(t, ok)
		*p = 8

		v, _ = s.Peek()
		require.Equal(t, 8, v)
		requirePop(t, s, 8)
	})

	t.Run("into iter", func(t *testing.T) {
		s := stack.New[int]()
		s.Push(1)
		s.Push(3)
		s.Push(9)

		it := s.IntoIter()
		require.True(t, s.IsEmpty())

		for _, want := range []int{9, 3, 1} {
			got, ok := it.Next()
			require.True(t, ok)
			require.Equal(t, want, got)
		}
		_, ok := it.Next()
		require.False(t, ok)
	})

	t.Run("iter", func(t *testing.T) {
		s := stack.New[int]()
		for _, v := range []int{3, 1, 10, 100, 2, 20, 200} {
			s.Push(v)
		}

		require.Equal(t, []int{200, 20, 2, 100, 10, 1, 3}, slices.Collect(s.All()))
		require.Equal(t, 7, s.Len())
	})

	t.Run("iter mut", func(t *testing.T) {
		s := stack.New[int]()
		s.Push(3)
		s.Push(1)
		s.Push(4)

		for p := range s.Mutable() {
			*p *= 10
		}
		require.Equal(t, []int{40, 10, 30}, slices.Collect(s.All()))
	})

	t.Run("clear", func(t *testing.T) {
		s := stack.New[int]()
		for i := 0; i < 100000; i++ {
			s.Push(i)
		}
		s.Clear()
		require.True(t, s.IsEmpty())
		require.Equal(t, 0, s.Len())
	})
}
