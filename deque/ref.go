package deque

import (
	"github.com/pkg/errors"
)

type guard[T any] struct {
	n        *node[T]
	h        link
	released bool
}

func (g *guard[T]) live(op string) *node[T] {
	if g.released {
		panic(errors.WithStack(&BorrowError{Handle: g.h, Op: op, State: unborrowed}))
	}
	return g.n
}

// Release gives the guard up. Releasing twice is a no-op, so an explicit
// Release may be followed by a deferred one.
func (g *guard[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	g.n.release()
}

// Ref is a shared guard on an element of a deque, as returned by PeekFront and
// PeekBack. While it is held, the node it guards cannot be borrowed
// exclusively: pushing or popping at that end panics.
type Ref[T any] struct {
	guard[T]
}

// Value returns the guarded element.
func (r *Ref[T]) Value() T {
	return r.live("ref value").elem
}

// RefMut is an exclusive guard on an element of a deque, as returned by
// PeekFrontMut and PeekBackMut. While it is held, the node it guards cannot be
// borrowed at all.
type RefMut[T any] struct {
	guard[T]
}

// Value returns the guarded element.
func (r *RefMut[T]) Value() T {
	return r.live("ref mut value").elem
}

// Set replaces the guarded element in place.
func (r *RefMut[T]) Set(elem T) {
	r.live("ref mut set").elem = elem
}

// Ptr returns a pointer to the guarded element. The pointer must not be used
// once the guard is released.
func (r *RefMut[T]) Ptr() *T {
	return &r.live("ref mut ptr").elem
}
