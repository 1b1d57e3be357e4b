// Package queue implements a FIFO queue on a singly-linked list. The queue
// owns its nodes through the head link; the tail pointer is an auxiliary
// reference that only speeds up Push and never keeps a node alive on its
// own.
package queue

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

// Queue is a FIFO queue. The zero value is an empty queue ready to use. A
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	head *node[T]
	tail *node[T] // nil iff head is nil
	len  int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return new(Queue[T])
}

// Push appends elem at the tail of the queue.
func (q *Queue[T]) Push(elem T) {
	n := &node[T]{elem: elem}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
	q.len++
}

// Pop removes and returns the element at the head of the queue. ok is false
// if the queue is empty.
func (q *Queue[T]) Pop() (elem T, ok bool) {
	if q.head == nil {
		return elem, false
	}

	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.len--

	return n.elem, true
}

// Peek returns the element at the head of the queue without removing it.
func (q *Queue[T]) Peek() (elem T, ok bool) {
	if q.head == nil {
		return elem, false
	}
	return q.head.elem, true
}

// PeekMut returns a pointer to the element at the head of the queue, for
// modification in place.
func (q *Queue[T]) PeekMut() (*T, bool) {
	if q.head == nil {
		return nil, false
	}
	return &q.head.elem, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.len
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// Clear empties the queue, unlinking one node at a time.
func (q *Queue[T]) Clear() {
	for n := q.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	q.head, q.tail, q.len = nil, nil, 0
}

// All yields the elements from head to tail without removing them. The queue
// must not be modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Mutable yields pointers to the elements from head to tail.
func (q *Queue[T]) Mutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}

// IntoIter is a consuming iterator over a queue.
type IntoIter[T any] struct {
	list Queue[T]
}

// IntoIter moves the queue's elements into an iterator. q is left empty.
func (q *Queue[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{list: *q}
	*q = Queue[T]{}
	return it
}

// Next removes and returns the head element. ok is false once the iterator
// is exhausted.
func (it *IntoIter[T]) Next() (elem T, ok bool) {
	return it.list.Pop()
}

// All yields the remaining elements, consuming them.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := it.Next()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}
