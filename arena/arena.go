// Package arena provides a slot allocator addressed by generation-checked
// handles. It lets pointer-shaped structures (lists, graphs) refer to their
// nodes by position instead of by shared pointer: the arena is the sole owner
// of every value, and a handle to a freed slot is detected instead of
// silently aliasing whatever reuses the slot.
package arena

import (
	"fmt"

	"github.com/pkg/errors"
)

// Handle addresses a slot in an Arena. The zero Handle never refers to a live
// slot and can be used as "no value".
type Handle struct {
	index int
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d@%d)", h.index, h.gen)
}

type slot[T any] struct {
	val  T
	gen  uint32
	used bool
}

// Arena owns values of type T. Slots are allocated individually so that the
// pointer returned by Get stays valid until the slot is freed, regardless of
// how many other slots are allocated in the meantime.
//
// The zero value is an empty arena ready to use. An Arena is not safe for
// concurrent use.
type Arena[T any] struct {
	slots []*slot[T]
	free  []int
	live  int
}

// Alloc stores v in a free slot and returns its handle.
func (a *Arena[T]) Alloc(v T) Handle {
	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = len(a.slots)
		a.slots = append(a.slots, &slot[T]{gen: 1})
	}

	s := a.slots[idx]
	s.val, s.used = v, true
	a.live++

	return Handle{index: idx, gen: s.gen}
}

// Get returns a pointer to the value addressed by h. It panics with a
// *StaleHandleError if h does not address a live slot.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.lookup(h, "get").val
}

// Free releases the slot addressed by h and returns the value it held. Any
// other copy of h becomes stale. It panics with a *StaleHandleError if h does
// not address a live slot.
func (a *Arena[T]) Free(h Handle) T {
	s := a.lookup(h, "free")

	v := s.val
	var zero T
	s.val, s.used = zero, false
	if s.gen++; s.gen == 0 { // wrapped around; zero is reserved
		s.gen = 1
	}

	a.free = append(a.free, h.index)
	a.live--

	return v
}

// Valid reports whether h addresses a live slot.
func (a *Arena[T]) Valid(h Handle) bool {
	if h.IsZero() || h.index < 0 || h.index >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.used && s.gen == h.gen
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.live
}

// Reset drops every slot. Handles issued before the call must not be used
// afterwards.
func (a *Arena[T]) Reset() {
	a.slots, a.free, a.live = nil, nil, 0
}

func (a *Arena[T]) lookup(h Handle, op string) *slot[T] {
	if !a.Valid(h) {
		panic(errors.WithStack(&StaleHandleError{Handle: h, Op: op}))
	}
	return a.slots[h.index]
}
