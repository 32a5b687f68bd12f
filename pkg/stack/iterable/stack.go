// Package iterable provides a singly-linked LIFO stack with exclusively owned
// links, in-place access to the top element, and three traversals: borrowed
// read-only, borrowed mutable, and consuming.
//
// Traversals borrow the stack for as long as the range loop runs. A read-only
// traversal forbids structural changes; a mutable or consuming traversal
// forbids every other use. Violations panic with a *BorrowError.
package iterable

import "iter"

type node[T any] struct {
	elem T
	next *node[T]
}

// Stack is a singly-linked LIFO stack. A zero value Stack is empty and ready
// to use. Stack is not safe for concurrent use.
type Stack[T any] struct {
	head   *node[T]
	borrow borrow
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places elem on top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.borrow.write("Push")
	s.head = &node[T]{elem: elem, next: s.head}
}

// Add is Push under the name used for the append shorthand.
func (s *Stack[T]) Add(elem T) {
	s.Push(elem)
}

// Pop removes the top element and returns it. The bool result is false when
// the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	s.borrow.write("Pop")
	return s.pop()
}

func (s *Stack[T]) pop() (T, bool) {
	var zero T

	n := s.head
	if n == nil {
		return zero, false
	}

	s.head = n.next
	n.next = nil

	elem := n.elem
	n.elem = zero
	return elem, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	s.borrow.read("Peek")

	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// PeekMut returns a pointer to the element stored in the top node. Writes
// through the pointer change the element in place. The pointer must not be
// used once the element has been popped.
func (s *Stack[T]) PeekMut() (*T, bool) {
	s.borrow.write("PeekMut")

	if s.head == nil {
		return nil, false
	}
	return &s.head.elem, true
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	s.borrow.read("IsEmpty")
	return s.head == nil
}

// All returns a read-only traversal from top to bottom. Each range over the
// returned sequence starts again from the current top. Push, Pop and the
// other mutators panic while the traversal is running.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.borrow.acquireShared("All")
		defer s.borrow.releaseShared()

		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// AllMut returns a mutable traversal from top to bottom yielding a pointer
// to each stored element. Only one AllMut may run at a time and no other
// method may be called on the stack while it runs.
func (s *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		s.borrow.acquireExclusive("AllMut")
		defer s.borrow.releaseExclusive()

		for n := s.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}

// Drain returns a consuming traversal: every step pops the top element and
// yields it, so a completed range leaves the stack empty. Stopping early
// keeps the elements that were not reached.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.borrow.acquireExclusive("Drain")
		defer s.borrow.releaseExclusive()

		for {
			elem, ok := s.pop()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}

// Clear tears the chain down from head to tail with a single cursor, severing
// each link and zeroing each element before moving on. It is the same
// teardown as exclusive.Stack.Clear: nodes are unlinked one at a time so that
// releasing a chain of any length needs constant call depth. The stack is
// empty and reusable afterwards. Clear panics while a traversal is running.
func (s *Stack[T]) Clear() {
	s.borrow.write("Clear")

	var zero T

	cur := s.head
	s.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur.elem = zero
		cur = next
	}
}
