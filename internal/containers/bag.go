package containers

import (
	"sync/atomic"
)

// node is one link of the lock-free chain behind Bag.
type node[T any] struct {
	value T
	next  *node[T]
}

// Bag collects values added from any number of goroutines. Values cannot be
// indexed or removed individually; Drain takes them all at once. The methods
// on Bag are thread safe. A zero value Bag can be used without
// initialization.
type Bag[T any] struct {
	head atomic.Pointer[node[T]]
}

// Add pushes v onto the Bag's chain with a compare-and-swap loop.
func (b *Bag[T]) Add(v T) {
	n := &node[T]{value: v}
	for {
		old := b.head.Load()
		n.next = old
		if b.head.CompareAndSwap(old, n) {
			return
		}
	}
}

// Drain detaches the whole chain and returns its values in the order they
// were added. The Bag is empty afterwards.
func (b *Bag[T]) Drain() []T {
	head := b.head.Swap(nil)

	var values []T
	for n := head; n != nil; {
		values = append(values, n.value)
		next := n.next
		n.next = nil
		n = next
	}

	// the chain is LIFO
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}
