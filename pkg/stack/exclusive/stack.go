// Package exclusive provides a LIFO stack built on a singly-linked chain in
// which every node is owned by exactly one parent: the stack itself or the
// node in front of it.
package exclusive

// node is one link of the chain. next is owned by this node alone.
type node[T any] struct {
	elem T
	next *node[T]
}

// Stack is a singly-linked LIFO stack. The stack holds only the head link;
// the rest of the chain is reached through each node's next.
//
// A zero value Stack is empty and ready to use. Stack is not safe for
// concurrent use.
type Stack[T any] struct {
	head *node[T]
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places elem on top of the stack. The current chain becomes the new
// node's next.
func (s *Stack[T]) Push(elem T) {
	s.head = &node[T]{elem: elem, next: s.head}
}

// Add is Push under the name used for the append shorthand.
func (s *Stack[T]) Add(elem T) {
	s.Push(elem)
}

// Pop detaches the top node and returns its element. The bool result is
// false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
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

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Clear tears the chain down from head to tail, severing each link before
// moving past it. Only one node is held by the loop at a time, so the work
// is O(n) with constant call depth however long the chain is. The stack is
// empty and reusable afterwards.
func (s *Stack[T]) Clear() {
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
