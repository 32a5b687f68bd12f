// Package persistent provides an immutable stack whose instances share the
// unchanged suffixes of a common chain.
package persistent

import "iter"

// node is never written after it is built. Several chains, and several
// Stack values, may point at the same node.
type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a persistent stack based on a linked list.
//
// *Important*: Prepend and Tail never modify the receiver or any node it can
// reach. Each returns a new Stack that shares the receiver's chain, so a Stack
// is cheap to copy and safe to read from many goroutines at once. Nodes are
// reclaimed by the garbage collector once no Stack reaches them.
type Stack[T any] struct {
	head *node[T]
}

// New returns an empty stack. The zero value is also empty.
func New[T any]() Stack[T] {
	return Stack[T]{}
}

// Prepend returns a stack whose top is value and whose remainder is the
// receiver's whole chain. O(1).
func (s Stack[T]) Prepend(value T) Stack[T] {
	return Stack[T]{head: &node[T]{value: value, next: s.head}}
}

// Head returns the top element. The bool result is false when the stack is
// empty.
func (s Stack[T]) Head() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.value, true
}

// Tail returns the stack below the top element. The tail of an empty stack
// is empty. O(1).
func (s Stack[T]) Tail() Stack[T] {
	if s.head == nil {
		return s
	}
	return Stack[T]{head: s.head.next}
}

// IsEmpty reports whether the stack has no elements.
func (s Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// All returns the elements from top to bottom.
func (s Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// SharesTail reports whether s and other reach a common node, meaning the
// storage for their common suffix is the same physical chain. Two empty
// stacks share nothing.
func (s Stack[T]) SharesTail(other Stack[T]) bool {
	a, b := s.head, other.head
	la, lb := depth(a), depth(b)

	// chains that merge stay merged, so align the longer one and walk in step
	for ; la > lb; la-- {
		a = a.next
	}
	for ; lb > la; lb-- {
		b = b.next
	}
	for a != nil {
		if a == b {
			return true
		}
		a, b = a.next, b.next
	}
	return false
}

func depth[T any](n *node[T]) int {
	var d int
	for ; n != nil; n = n.next {
		d++
	}
	return d
}
