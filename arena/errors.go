package arena

import "fmt"

// StaleHandleError is the panic value raised when a handle that was never
// issued, or whose slot has since been freed, is dereferenced.
type StaleHandleError struct {
	Handle Handle
	Op     string
}

func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("arena: %s on stale %s", e.Op, e.Handle)
}
