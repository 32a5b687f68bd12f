package iterable

import (
	"errors"
	"fmt"
)

// ErrBorrowed is wrapped by every BorrowError.
var ErrBorrowed = errors.New("stack is borrowed")

// BorrowError is the panic value raised when a stack is used in a way that
// conflicts with a traversal that is still running over it.
type BorrowError struct {
	// Op is the operation that was refused.
	Op string
	// Exclusive is true when the refusing borrow came from AllMut or Drain.
	Exclusive bool
}

func (e *BorrowError) Error() string {
	kind := "shared"
	if e.Exclusive {
		kind = "exclusive"
	}
	return fmt.Sprintf("iterable: %s refused while a %s borrow is held: %v", e.Op, kind, ErrBorrowed)
}

func (e *BorrowError) Unwrap() error {
	return ErrBorrowed
}

// borrow tracks live traversals. Any number of shared borrows may coexist;
// an exclusive borrow excludes everything else.
type borrow struct {
	shared    int
	exclusive bool
}

// read panics if an exclusive borrow is held.
func (b *borrow) read(op string) {
	if b.exclusive {
		panic(&BorrowError{Op: op, Exclusive: true})
	}
}

// write panics if any borrow is held.
func (b *borrow) write(op string) {
	b.read(op)
	if b.shared > 0 {
		panic(&BorrowError{Op: op})
	}
}

func (b *borrow) acquireShared(op string) {
	b.read(op)
	b.shared++
}

func (b *borrow) releaseShared() {
	b.shared--
}

func (b *borrow) acquireExclusive(op string) {
	b.write(op)
	b.exclusive = true
}

func (b *borrow) releaseExclusive() {
	b.exclusive = false
}
