package scenario

import (
	"fmt"
	"slices"

	"github.com/stackchain/stackchain/pkg/stack/exclusive"
	"github.com/stackchain/stackchain/pkg/stack/iterable"
	"github.com/stackchain/stackchain/pkg/stack/persistent"
)

// machine applies steps to the stack of one variant.
type machine interface {
	apply(step Step) error
	// final reports the remaining elements, top to bottom, once the run is over.
	final() []int
}

func newMachine(v Variant) (machine, error) {
	switch v {
	case VariantExclusive:
		return &exclusiveMachine{stack: exclusive.New[int]()}, nil
	case VariantIterable:
		return &iterableMachine{stack: iterable.New[int]()}, nil
	case VariantPersistent:
		return &persistentMachine{views: map[string]persistent.Stack[int]{}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

func pushValues(step Step) []int {
	if step.Value != nil {
		return append([]int{*step.Value}, step.Values...)
	}
	return step.Values
}

// checkResult compares an optional element against the step's expectation.
func checkResult(step Step, got int, ok bool) error {
	switch {
	case step.ExpectEmpty && ok:
		return fmt.Errorf("%w: expected empty, got %d", ErrExpectationFailed, got)
	case step.Expect != nil && !ok:
		return fmt.Errorf("%w: expected %d, got empty", ErrExpectationFailed, *step.Expect)
	case step.Expect != nil && got != *step.Expect:
		return fmt.Errorf("%w: expected %d, got %d", ErrExpectationFailed, *step.Expect, got)
	}
	return nil
}

// checkDrained checks drained elements only when the step states them.
func checkDrained(step Step, got []int) error {
	if step.Values == nil && !step.ExpectEmpty {
		return nil
	}
	return checkValues(step.Values, got)
}

func checkValues(want, got []int) error {
	if !slices.Equal(want, got) {
		return fmt.Errorf("%w: expected %v, got %v", ErrExpectationFailed, want, got)
	}
	return nil
}

type exclusiveMachine struct {
	stack *exclusive.Stack[int]
}

func (m *exclusiveMachine) apply(step Step) error {
	switch step.Op {
	case OpPush:
		for _, v := range pushValues(step) {
			m.stack.Push(v)
		}
	case OpAdd:
		for _, v := range pushValues(step) {
			m.stack.Add(v)
		}
	case OpPop:
		got, ok := m.stack.Pop()
		return checkResult(step, got, ok)
	case OpDrain:
		return checkDrained(step, m.drain())
	case OpClear:
		m.stack.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return nil
}

func (m *exclusiveMachine) drain() []int {
	var out []int
	for {
		v, ok := m.stack.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func (m *exclusiveMachine) final() []int {
	return m.drain()
}

type iterableMachine struct {
	stack *iterable.Stack[int]
}

func (m *iterableMachine) apply(step Step) error {
	switch step.Op {
	case OpPush:
		for _, v := range pushValues(step) {
			m.stack.Push(v)
		}
	case OpAdd:
		for _, v := range pushValues(step) {
			m.stack.Add(v)
		}
	case OpPop:
		got, ok := m.stack.Pop()
		return checkResult(step, got, ok)
	case OpPeek:
		got, ok := m.stack.Peek()
		return checkResult(step, got, ok)
	case OpSetTop:
		top, ok := m.stack.PeekMut()
		if !ok {
			if step.ExpectEmpty {
				return nil
			}
			return fmt.Errorf("%w: set-top on empty stack", ErrExpectationFailed)
		}
		*top = *step.Value
	case OpMapAdd:
		for p := range m.stack.AllMut() {
			*p += *step.Value
		}
	case OpExpect:
		return checkValues(step.Values, slices.Collect(m.stack.All()))
	case OpDrain:
		return checkDrained(step, slices.Collect(m.stack.Drain()))
	case OpClear:
		m.stack.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return nil
}

func (m *iterableMachine) final() []int {
	return slices.Collect(m.stack.All())
}

// persistentMachine keeps named views of persistent stacks. Every view that
// is derived from another shares its chain.
type persistentMachine struct {
	views map[string]persistent.Stack[int]
	last  string
}

func (m *persistentMachine) view(name string) (persistent.Stack[int], error) {
	if name == "" {
		return m.views[name], nil
	}
	s, ok := m.views[name]
	if !ok {
		return s, fmt.Errorf("%w: unknown view %q", ErrInvalidStep, name)
	}
	return s, nil
}

func (m *persistentMachine) store(name string, s persistent.Stack[int]) {
	m.views[name] = s
	m.last = name
}

func (m *persistentMachine) apply(step Step) error {
	from, err := m.view(step.From)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpPrepend:
		m.store(step.To, from.Prepend(*step.Value))
	case OpTail:
		m.store(step.To, from.Tail())
	case OpHead:
		got, ok := from.Head()
		return checkResult(step, got, ok)
	case OpExpect:
		return checkValues(step.Values, slices.Collect(from.All()))
	case OpExpectShared:
		with, err := m.view(step.With)
		if err != nil {
			return err
		}
		if !from.SharesTail(with) {
			return fmt.Errorf("%w: views %q and %q share no nodes", ErrExpectationFailed, step.From, step.With)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return nil
}

func (m *persistentMachine) final() []int {
	return slices.Collect(m.views[m.last].All())
}
