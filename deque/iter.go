package deque

import "iter"

// IntoIter is a consuming iterator over a deque. Elements are removed as they
// are yielded, from either end.
type IntoIter[T any] struct {
	list Deque[T]
}

// IntoIter moves the deque's elements into an iterator. d is left empty.
func (d *Deque[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{list: *d}
	*d = Deque[T]{}
	return it
}

// Next removes and returns the front element. ok is false once the iterator
// is exhausted.
func (it *IntoIter[T]) Next() (elem T, ok bool) {
	return it.list.PopFront()
}

// NextBack removes and returns the back element. ok is false once the
// iterator is exhausted.
func (it *IntoIter[T]) NextBack() (elem T, ok bool) {
	return it.list.PopBack()
}

// Len returns the number of elements left.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// All yields the remaining elements front to back, consuming them.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return it.seq(it.Next)
}

// Backward yields the remaining elements back to front, consuming them.
func (it *IntoIter[T]) Backward() iter.Seq[T] {
	return it.seq(it.NextBack)
}

func (it *IntoIter[T]) seq(next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := next()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}
