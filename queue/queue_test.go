package queue_test

import (
	"slices"
	"testing"

	"github.com/kchristidis/lists/queue"
	"github.com/stretchr/testify/require"
)

func requirePop(t *testing.T, q *queue.Queue[int], want int) {
	t.Helper()
	got, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestQueue(t *testing.T) {
	t.Run("basics", func(t *testing.T) {
		q := queue.New[int]()
		_, ok := q.Pop()
		require.False(t, ok)

		q.Push(1)
		q.Push(2)
		q.Push(3)

		requirePop(t, q, 1)
		requirePop(t, q, 2)

		q.Push(4)
		q.Push(5)

		requirePop(t, q, 3)
		requirePop(t, q, 4)
		requirePop(t, q, 5)

		_, ok = q.Pop()
		require.False(t, ok)

		// Draining must have reset the tail as well.
		q.Push(6)
		q.Push(7)

		requirePop(t, q, 6)
		requirePop(t, q, 7)
		_, ok = q.Pop()
		require.False(t, ok)
	})

	t.Run("peek", func(t *testing.T) {
		q := queue.New[string]()
		_, ok := q.Peek()
		require.False(t, ok)

		q.Push("foo")
		q.Push("bar")

		p, ok := q.PeekMut()
		require.True(t, ok)
		*p = "baz"

		v, ok := q.Peek()
		require.True(t, ok)
		require.Equal(t, "baz", v)
		require.Equal(t, 2, q.Len())
	})

	t.Run("into iter", func(t *testing.T) {
		q := queue.New[int]()
		q.Push(1)
		q.Push(3)
		q.Push(9)

		require.Equal(t, []int{1, 3, 9}, slices.Collect(q.IntoIter().All()))
		require.True(t, q.IsEmpty())
	})

	t.Run("iter", func(t *testing.T) {
		q := queue.New[int]()
		for _, v := range []int{3, 1, 10, 100, 2, 20, 200} {
			q.Push(v)
		}
		require.Equal(t, []int{3, 1, 10, 100, 2, 20, 200}, slices.Collect(q.All()))
	})

	t.Run("iter mut", func(t *testing.T) {
		q := queue.New[int]()
		q.Push(3)
		q.Push(1)
		q.Push(4)

		for p := range q.Mutable() {
			*p++
		}
		require.Equal(t, []int{4, 2, 5}, slices.Collect(q.All()))
	})

	t.Run("clear", func(t *testing.T) {
		q := queue.New[int]()
		for i := 0; i < 100000; i++ {
			q.Push(i)
		}
		q.Clear()
		require.True(t, q.IsEmpty())

		q.Push(1)
		requirePop(t, q, 1)
	})
}
