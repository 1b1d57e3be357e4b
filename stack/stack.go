// Package stack implements a LIFO stack on a singly-linked list. Every node
// has exactly one owner, the link in front of it, so no guards or owner
// counts are needed.
package stack

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

// Stack is a LIFO stack. The zero value is an empty stack ready to use. A
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	head *node[T]
	len  int
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return new(Stack[T])
}

// Push puts elem on top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.head = &node[T]{elem: elem, next: s.head}
	s.len++
}

// Pop removes and returns the top element. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (elem T, ok bool) {
	if s.head == nil {
		return elem, false
	}

	n := s.head
	s.head, n.next = n.next, nil
	s.len--

	return n.elem, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (elem T, ok bool) {
	if s.head == nil {
		return elem, false
	}
	return s.head.elem, true
}

// PeekMut returns a pointer to the top element, for modification in place.
// The pointer is only meaningful until the element is popped.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.elem, true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.len
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Clear empties the stack, unlinking one node at a time.
func (s *Stack[T]) Clear() {
	for n := s.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	s.head, s.len = nil, 0
}

// All yields the elements from top to bottom without removing them. The
// stack must not be modified during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Mutable yields pointers to the elements from top to bottom, so that they
// can be modified in place.
func (s *Stack[T]) Mutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}

// IntoIter is a consuming iterator over a stack.
type IntoIter[T any] struct {
	list Stack[T]
}

// IntoIter moves the stack's elements into an iterator. s is left empty.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{list: *s}
	*s = Stack[T]{}
	return it
}

// Next removes and returns the top element. ok is false once the iterator is
// exhausted.
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
