// Package scenario loads scripted stack scenarios and runs them against the
// three stack variants, checking every expectation a script states.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

var (
	ErrUnknownVariant    = errors.New("unknown stack variant")
	ErrUnknownOp         = errors.New("unknown op")
	ErrInvalidStep       = errors.New("invalid step")
	ErrExpectationFailed = errors.New("expectation failed")
)

// Variant names one of the stack implementations.
type Variant string

const (
	VariantExclusive  Variant = "exclusive"
	VariantIterable   Variant = "iterable"
	VariantPersistent Variant = "persistent"
)

// Op names a scenario step.
type Op string

const (
	OpPush         Op = "push"
	OpAdd          Op = "add"
	OpPop          Op = "pop"
	OpPeek         Op = "peek"
	OpSetTop       Op = "set-top"
	OpMapAdd       Op = "map-add"
	OpExpect       Op = "expect"
	OpDrain        Op = "drain"
	OpClear        Op = "clear"
	OpPrepend      Op = "prepend"
	OpTail         Op = "tail"
	OpHead         Op = "head"
	OpExpectShared Op = "expect-shared"
)

var supportedOps = map[Variant]map[Op]bool{
	VariantExclusive: {
		OpPush: true, OpAdd: true, OpPop: true, OpDrain: true, OpClear: true,
	},
	VariantIterable: {
		OpPush: true, OpAdd: true, OpPop: true, OpPeek: true, OpSetTop: true,
		OpMapAdd: true, OpExpect: true, OpDrain: true, OpClear: true,
	},
	VariantPersistent: {
		OpPrepend: true, OpTail: true, OpHead: true, OpExpect: true, OpExpectShared: true,
	},
}

// Step is a single operation of a scenario.
//
// Value is the element (push, add, prepend, set-top) or the delta (map-add).
// Values pushes several elements in order, or lists the expected elements
// top to bottom for expect and drain. Expect and ExpectEmpty check the result
// of pop, peek and head. From, To and With name persistent views; the empty
// name is the view every scenario starts with.
type Step struct {
	Op          Op     `json:"op"`
	Value       *int   `json:"value,omitempty"`
	Values      []int  `json:"values,omitempty"`
	Expect      *int   `json:"expect,omitempty"`
	ExpectEmpty bool   `json:"expectEmpty,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	With        string `json:"with,omitempty"`
}

// Scenario is a named script of steps for one variant.
type Scenario struct {
	Name    string  `json:"name"`
	Variant Variant `json:"variant"`
	Steps   []Step  `json:"steps"`
}

// Parse decodes a YAML or JSON scenario and validates it.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.UnmarshalStrict(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses the scenario at path. A scenario without a name is
// named after its file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Validate checks that every step is supported by the scenario's variant and
// carries the fields it needs.
func (sc *Scenario) Validate() error {
	ops, ok := supportedOps[sc.Variant]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, sc.Variant)
	}

	for i, step := range sc.Steps {
		if !ops[step.Op] {
			return fmt.Errorf("step %d: %w: %q is not supported by %s stacks", i, ErrUnknownOp, step.Op, sc.Variant)
		}
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	if s.Expect != nil && s.ExpectEmpty {
		return fmt.Errorf("%w: expect and expectEmpty are mutually exclusive", ErrInvalidStep)
	}

	switch s.Op {
	case OpPush, OpAdd:
		if s.Value == nil && len(s.Values) == 0 {
			return fmt.Errorf("%w: value or values is required", ErrInvalidStep)
		}
	case OpSetTop, OpMapAdd, OpPrepend:
		if s.Value == nil {
			return fmt.Errorf("%w: value is required", ErrInvalidStep)
		}
	case OpExpectShared:
		if s.From == s.With {
			return fmt.Errorf("%w: from and with must name different views", ErrInvalidStep)
		}
	}
	return nil
}
