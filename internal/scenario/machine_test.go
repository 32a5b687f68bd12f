package scenario

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int {
	return &v
}

func TestMachines(t *testing.T) {
	for _, tc := range []struct {
		name      string
		variant   Variant
		steps     []Step
		wantErr   error
		wantFinal []int
	}{
		{
			name:    "exclusive_lifo",
			variant: VariantExclusive,
			steps: []Step{
				{Op: OpPush, Values: []int{1, 2, 3}},
				{Op: OpPop, Expect: intp(3)},
			},
			wantFinal: []int{2, 1},
		},
		{
			name:    "exclusive_wrong_pop",
			variant: VariantExclusive,
			steps: []Step{
				{Op: OpPush, Value: intp(1)},
				{Op: OpPop, Expect: intp(2)},
			},
			wantErr: ErrExpectationFailed,
		},
		{
			name:    "exclusive_pop_empty_expected_value",
			variant: VariantExclusive,
			steps: []Step{
				{Op: OpPop, Expect: intp(2)},
			},
			wantErr: ErrExpectationFailed,
		},
		{
			name:    "exclusive_expected_empty_but_was_not",
			variant: VariantExclusive,
			steps: []Step{
				{Op: OpAdd, Value: intp(5)},
				{Op: OpPop, ExpectEmpty: true},
			},
			wantErr: ErrExpectationFailed,
		},
		{
			name:    "exclusive_clear",
			variant: VariantExclusive,
			steps: []Step{
				{Op: OpPush, Values: []int{1, 2, 3}},
				{Op: OpClear},
				{Op: OpPop, ExpectEmpty: true},
				{Op: OpPush, Value: intp(7)},
			},
			wantFinal: []int{7},
		},
		{
			name:    "exclusive_drain_unchecked",
			variant: VariantExclusive,
			steps: []Step{
				{Op: OpPush, Values: []int{1, 2}},
				{Op: OpDrain},
			},
			wantFinal: []int{},
		},
		{
			name:    "exclusive_drain_mismatch",
			variant: VariantExclusive,
			steps: []Step{
				{Op: OpPush, Values: []int{1, 2}},
				{Op: OpDrain, Values: []int{1, 2}},
			},
			wantErr: ErrExpectationFailed,
		},
		{
			name:    "iterable_value_then_values",
			variant: VariantIterable,
			steps: []Step{
				{Op: OpPush, Value: intp(1), Values: []int{2, 3}},
				{Op: OpExpect, Values: []int{3, 2, 1}},
			},
			wantFinal: []int{3, 2, 1},
		},
		{
			name:    "iterable_set_top_on_empty",
			variant: VariantIterable,
			steps: []Step{
				{Op: OpSetTop, Value: intp(1)},
			},
			wantErr: ErrExpectationFailed,
		},
		{
			name:    "iterable_set_top_on_empty_expected",
			variant: VariantIterable,
			steps: []Step{
				{Op: OpSetTop, Value: intp(1), ExpectEmpty: true},
				{Op: OpExpect},
			},
			wantFinal: []int{},
		},
		{
			name:    "iterable_drain_expect_empty",
			variant: VariantIterable,
			steps: []Step{
				{Op: OpPush, Value: intp(1)},
				{Op: OpDrain, ExpectEmpty: true},
			},
			wantErr: ErrExpectationFailed,
		},
		{
			name:    "persistent_unknown_view",
			variant: VariantPersistent,
			steps: []Step{
				{Op: OpTail, From: "missing", To: "x"},
			},
			wantErr: ErrInvalidStep,
		},
		{
			name:    "persistent_unshared_views",
			variant: VariantPersistent,
			steps: []Step{
				{Op: OpPrepend, Value: intp(1), To: "a"},
				{Op: OpPrepend, Value: intp(1), To: "b"},
				{Op: OpExpectShared, From: "a", With: "b"},
			},
			wantErr: ErrExpectationFailed,
		},
		{
			name:    "persistent_tail_of_empty",
			variant: VariantPersistent,
			steps: []Step{
				{Op: OpTail, To: "t"},
				{Op: OpHead, From: "t", ExpectEmpty: true},
			},
			wantFinal: []int{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := newMachine(tc.variant)
			require.NoError(t, err)

			for _, step := range tc.steps {
				if err = m.apply(step); err != nil {
					break
				}
			}

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			final := m.final()
			if len(tc.wantFinal) == 0 {
				require.Empty(t, final)
				return
			}
			require.Equal(t, tc.wantFinal, final)
		})
	}
}

func TestNewMachineUnknownVariant(t *testing.T) {
	_, err := newMachine("ring")
	require.ErrorIs(t, err, ErrUnknownVariant)
}
