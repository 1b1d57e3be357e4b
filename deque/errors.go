package deque

import (
	"fmt"

	"github.com/kchristidis/lists/arena"
)

// BorrowError is the panic value raised when a guard is requested on a node
// that is already guarded in a conflicting way, or when a guard is used after
// it has been released. It always indicates a bug in the caller.
type BorrowError struct {
	Handle arena.Handle
	Op     string
	// State is the node's borrow state at the time: -1 for an exclusive
	// guard, otherwise the number of shared guards.
	State int
}

func (e *BorrowError) Error() string {
	switch {
	case e.State == exclusive:
		return fmt.Sprintf("deque: %s on %s: already exclusively borrowed", e.Op, e.Handle)
	case e.State > 0:
		return fmt.Sprintf("deque: %s on %s: already borrowed by %d shared guard(s)", e.Op, e.Handle, e.State)
	default:
		return fmt.Sprintf("deque: %s on %s: guard already released", e.Op, e.Handle)
	}
}

// OwnershipError is the panic value raised when a node that should have
// exactly one owner left is still referenced from elsewhere.
type OwnershipError struct {
	Handle arena.Handle
	Owners int
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("deque: unwrap of %s with %d owners, want 1", e.Handle, e.Owners)
}
