// Package deque implements a double-ended queue on top of a doubly-linked
// list whose nodes are shared between their neighbours and the deque's
// head/tail slots.
//
// Nodes live in an arena and are referenced by generation-checked handles.
// Every link is counted as an owner of the node it points at, and every read
// or write of a node's fields goes through a runtime-checked guard: any number
// of shared guards, or one exclusive guard. Breaking either discipline panics
// (*BorrowError, *OwnershipError); those panics are bugs, not conditions to
// recover from. An empty deque is reported through ok == false results.
//
// A Deque is not safe for concurrent use.
package deque

import (
	"github.com/kchristidis/lists/arena"
	"github.com/pkg/errors"
)

// Deque is a double-ended queue. The zero value is an empty deque ready to
// use.
type Deque[T any] struct {
	head, tail link
	len        int

	nodes arena.Arena[node[T]]
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return new(Deque[T])
}

type end int

const (
	front end = iota
	back
)

func (e end) opposite() end {
	return 1 - e
}

// slot returns the deque's external link for the given end.
func (d *Deque[T]) slot(e end) *link {
	if e == front {
		return &d.head
	}
	return &d.tail
}

// outward is the link that points away from the deque's body at the given
// end: prev at the front, next at the back.
func (n *node[T]) outward(e end) *link {
	if e == front {
		return &n.prev
	}
	return &n.next
}

func (n *node[T]) inward(e end) *link {
	return n.outward(e.opposite())
}

// PushFront inserts elem at the front of the deque.
func (d *Deque[T]) PushFront(elem T) {
	d.push(front, elem, "push front")
}

// PushBack inserts elem at the back of the deque.
func (d *Deque[T]) PushBack(elem T) {
	d.push(back, elem, "push back")
}

func (d *Deque[T]) push(e end, elem T, op string) {
	s := d.slot(e)
	if s.IsZero() {
		*s = d.newNode(elem)
		*d.slot(e.opposite()) = d.clone(*s)
		d.len++
		return
	}

	old := d.acquire(*s, true, op)
	defer old.release()

	l := d.newNode(elem)
	*old.outward(e) = d.clone(l)
	d.update(l, op, func(n *node[T]) {
		*n.inward(e) = take(s)
	})
	*s = l
	d.len++
}

// PopFront removes and returns the element at the front of the deque. ok is
// false if the deque is empty.
func (d *Deque[T]) PopFront() (elem T, ok bool) {
	return d.pop(front, "pop front")
}

// PopBack removes and returns the element at the back of the deque. ok is
// false if the deque is empty.
func (d *Deque[T]) PopBack() (elem T, ok bool) {
	return d.pop(back, "pop back")
}

func (d *Deque[T]) pop(e end, op string) (T, bool) {
	s := d.slot(e)
	if s.IsZero() {
		var zero T
		return zero, false
	}

	old := d.detach(e, op)
	d.len--

	return d.unwrap(old), true
}

// detach unlinks the node at end e and returns the one owning link to it
// that is left. All guards are taken before anything is rewired, so a
// conflicting guard panics with the deque intact.
func (d *Deque[T]) detach(e end, op string) link {
	s, other := d.slot(e), d.slot(e.opposite())

	n := d.acquire(*s, true, op)
	defer n.release()

	next := *n.inward(e)
	if next.IsZero() {
		// Last node: both external slots point at it.
		d.drop(take(other))
		return take(s)
	}

	m := d.acquire(next, true, op)
	defer m.release()

	old := take(s)
	*s = take(n.inward(e))
	d.drop(take(m.outward(e)))

	return old
}

// PeekFront returns a shared guard on the element at the front of the deque.
// ok is false if the deque is empty. The guard must be released.
func (d *Deque[T]) PeekFront() (r *Ref[T], ok bool) {
	return d.peek(d.head, "peek front")
}

// PeekBack returns a shared guard on the element at the back of the deque.
// ok is false if the deque is empty. The guard must be released.
func (d *Deque[T]) PeekBack() (r *Ref[T], ok bool) {
	return d.peek(d.tail, "peek back")
}

// PeekFrontMut returns an exclusive guard on the element at the front of the
// deque. ok is false if the deque is empty. The guard must be released.
func (d *Deque[T]) PeekFrontMut() (r *RefMut[T], ok bool) {
	return d.peekMut(d.head, "peek front mut")
}

// PeekBackMut returns an exclusive guard on the element at the back of the
// deque. ok is false if the deque is empty. The guard must be released.
func (d *Deque[T]) PeekBackMut() (r *RefMut[T], ok bool) {
	return d.peekMut(d.tail, "peek back mut")
}

func (d *Deque[T]) peek(l link, op string) (*Ref[T], bool) {
	if l.IsZero() {
		return nil, false
	}
	return &Ref[T]{guard: guard[T]{n: d.acquire(l, false, op), h: l}}, true
}

func (d *Deque[T]) peekMut(l link, op string) (*RefMut[T], bool) {
	if l.IsZero() {
		return nil, false
	}
	return &RefMut[T]{guard: guard[T]{n: d.acquire(l, true, op), h: l}}, true
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.len
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.head.IsZero()
}

// Clear releases every node, one at a time from the front, and leaves the
// deque empty and ready for reuse.
func (d *Deque[T]) Clear() {
	for {
		if _, ok := d.PopFront(); !ok {
			break
		}
	}
	d.nodes.Reset()
}

// Check walks the deque in both directions and reports the first broken
// structural invariant: mismatched head/tail, a forward walk that does not
// mirror the backward walk, a wrong owner count, or nodes that are allocated
// but unreachable.
func (d *Deque[T]) Check() error {
	if d.head.IsZero() != d.tail.IsZero() {
		return errors.Errorf("deque: head is %s but tail is %s", d.head, d.tail)
	}

	forward, err := d.walk(front)
	if err != nil {
		return err
	}
	backward, err := d.walk(back)
	if err != nil {
		return err
	}

	if len(forward) != d.len || len(backward) != d.len {
		return errors.Errorf("deque: walked %d nodes forward and %d backward, len is %d",
			len(forward), len(backward), d.len)
	}
	for i := range forward {
		if f, b := forward[i], backward[d.len-1-i]; f != b {
			return errors.Errorf("deque: node %d is %s walking forward but %s walking backward", i, f, b)
		}
	}
	if live := d.nodes.Len(); live != d.len {
		return errors.Errorf("deque: %d nodes allocated for %d elements", live, d.len)
	}

	return nil
}

// walk follows the inward links from the end e and returns the handles it
// visits.
func (d *Deque[T]) walk(e end) ([]link, error) {
	var (
		seen []link
		prev link
	)
	for l := *d.slot(e); !l.IsZero(); {
		if !d.nodes.Valid(l) {
			return nil, errors.Errorf("deque: dangling link %s", l)
		}
		if len(seen) > d.nodes.Len() {
			return nil, errors.Errorf("deque: cycle after %d nodes", len(seen))
		}

		n := d.nodes.Get(l)
		if got := *n.outward(e); got != prev {
			return nil, errors.Errorf("deque: %s points back to %s, want %s", l, got, prev)
		}
		if n.owners != 2 {
			return nil, errors.Errorf("deque: %s has %d owners, want 2", l, n.owners)
		}

		seen = append(seen, l)
		prev, l = l, *n.inward(e)
	}

	if prev != *d.slot(e.opposite()) {
		return nil, errors.Errorf("deque: walk ended at %s, want %s", prev, *d.slot(e.opposite()))
	}
	return seen, nil
}
