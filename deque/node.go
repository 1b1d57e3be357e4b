package deque

import (
	"github.com/kchristidis/lists/arena"
	"github.com/pkg/errors"
)

// A link is an owning reference to a node. The zero link is "no node".
type link = arena.Handle

// borrow states of a node
const (
	unborrowed = 0
	exclusive  = -1
)

// A doubly-linked list node. A node is owned jointly by every link that points
// at it (the deque's head/tail slots and its neighbours' prev/next fields);
// owners counts them.
type node[T any] struct {
	elem       T
	prev, next link

	owners int
	// unborrowed, exclusive, or the number of shared guards held.
	borrow int
}

func (d *Deque[T]) newNode(elem T) link {
	return d.nodes.Alloc(node[T]{elem: elem, owners: 1})
}

// clone returns a new owning link to the node at l.
func (d *Deque[T]) clone(l link) link {
	d.nodes.Get(l).owners++
	return l
}

// drop gives up one owning link. A node whose last owner goes away is freed;
// any links it still holds are dropped in turn, iteratively.
func (d *Deque[T]) drop(l link) {
	pending := []link{l}
	for len(pending) > 0 {
		l, pending = pending[len(pending)-1], pending[:len(pending)-1]
		if l.IsZero() {
			continue
		}

		n := d.nodes.Get(l)
		if n.owners--; n.owners > 0 {
			continue
		}
		if n.borrow != unborrowed {
			panic(errors.WithStack(&BorrowError{Handle: l, Op: "free", State: n.borrow}))
		}
		pending = append(pending, n.prev, n.next)
		d.nodes.Free(l)
	}
}

// take moves the link out of *l, leaving it empty.
func take(l *link) link {
	taken := *l
	*l = link{}
	return taken
}

// acquire takes a guard on the node at l and returns the node. Shared guards
// may coexist; an exclusive guard conflicts with every other guard.
func (d *Deque[T]) acquire(l link, mut bool, op string) *node[T] {
	n := d.nodes.Get(l)
	switch {
	case mut && n.borrow != unborrowed:
		panic(errors.WithStack(&BorrowError{Handle: l, Op: op, State: n.borrow}))
	case mut:
		n.borrow = exclusive
	case n.borrow == exclusive:
		panic(errors.WithStack(&BorrowError{Handle: l, Op: op, State: n.borrow}))
	default:
		n.borrow++
	}
	return n
}

func (n *node[T]) release() {
	if n.borrow == exclusive {
		n.borrow = unborrowed
		return
	}
	n.borrow--
}

// update runs fn with an exclusive guard held on the node at l.
func (d *Deque[T]) update(l link, op string, fn func(n *node[T])) {
	n := d.acquire(l, true, op)
	defer n.release()
	fn(n)
}

// unwrap consumes the last owning link to a node and returns its element. It
// panics with an *OwnershipError if anybody else still owns the node.
func (d *Deque[T]) unwrap(l link) T {
	n := d.nodes.Get(l)
	if n.owners != 1 {
		panic(errors.WithStack(&OwnershipError{Handle: l, Owners: n.owners}))
	}
	if n.borrow != unborrowed {
		panic(errors.WithStack(&BorrowError{Handle: l, Op: "unwrap", State: n.borrow}))
	}
	return d.nodes.Free(l).elem
}
