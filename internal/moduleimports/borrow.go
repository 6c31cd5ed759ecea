package moduleimports

import (
	"fmt"
	"sync/atomic"
)

// BorrowError is the panic value raised when the registry is entered while
// another operation on it is still running, either re-entrantly from inside
// Finalize or from a second goroutine.
type BorrowError struct {
	Op   string // operation that was attempted
	Held string // operation holding the registry
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("module imports: %s while %s is in progress", e.Op, e.Held)
}

// borrow is a non-reentrant, non-blocking exclusive flag.
type borrow struct {
	holder atomic.Pointer[string]
}

func (b *borrow) acquire(op string) {
	if b.holder.CompareAndSwap(nil, &op) {
		return
	}
	held := "unknown operation"
	if h := b.holder.Load(); h != nil {
		held = *h
	}
	panic(&BorrowError{Op: op, Held: held})
}

func (b *borrow) release() {
	b.holder.Store(nil)
}
