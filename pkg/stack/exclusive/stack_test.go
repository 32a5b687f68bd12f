package exclusive

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Run("test_push_and_pop_interleaved", func(t *testing.T) {
		s := New[uint8]()

		_, ok := s.Pop()
		require.False(t, ok)

		s.Add(2)
		s.Add(4)
		s.Add(6)

		requirePop(t, s, 6)
		requirePop(t, s, 4)

		s.Add(12)
		s.Add(13)
		s.Add(14)

		requirePop(t, s, 14)
		requirePop(t, s, 13)
		requirePop(t, s, 12)
		requirePop(t, s, 2)

		_, ok = s.Pop()
		require.False(t, ok)
	})

	t.Run("test_pop_returns_reverse_push_order", func(t *testing.T) {
		s := New[int]()
		for i := 1; i <= 100; i++ {
			s.Push(i)
		}
		for i := 100; i >= 1; i-- {
			requirePop(t, s, i)
		}
		require.True(t, s.IsEmpty())
	})

	t.Run("test_pop_on_empty_stack_is_idempotent", func(t *testing.T) {
		var s Stack[string]
		for range 5 {
			v, ok := s.Pop()
			require.False(t, ok)
			require.Empty(t, v)
			require.True(t, s.IsEmpty())
		}

		s.Push("after")
		requirePop(t, &s, "after")
	})

	t.Run("test_non_comparable_elements", func(t *testing.T) {
		type payload struct {
			tags  []string
			attrs map[string]int
			fn    func() int
		}

		s := New[payload]()
		s.Push(payload{tags: []string{"a"}, attrs: map[string]int{"x": 1}, fn: func() int { return 1 }})
		s.Push(payload{tags: []string{"b", "c"}, fn: func() int { return 2 }})

		top, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, []string{"b", "c"}, top.tags)
		require.Equal(t, 2, top.fn())

		bottom, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, map[string]int{"x": 1}, bottom.attrs)
		require.Equal(t, 1, bottom.fn())
	})

	t.Run("test_clear_empties_and_allows_reuse", func(t *testing.T) {
		s := New[int]()
		s.Push(1)
		s.Push(2)
		s.Clear()
		require.True(t, s.IsEmpty())

		s.Clear()
		require.True(t, s.IsEmpty())

		s.Push(3)
		requirePop(t, s, 3)
	})
}

func TestStackMatchesLinkedListStack(t *testing.T) {
	ops := []int{5, -1, 7, 8, -1, -1, -1, 9, 10, 11, -1, 12, -1, -1, -1, -1}

	s := New[int]()
	ref := linkedliststack.New()
	for _, op := range ops {
		if op >= 0 {
			s.Push(op)
			ref.Push(op)
			continue
		}

		got, ok := s.Pop()
		want, wantOK := ref.Pop()
		require.Equal(t, wantOK, ok)
		if wantOK {
			require.Equal(t, want, got)
		}
	}
	require.Equal(t, ref.Empty(), s.IsEmpty())
}

func TestClearLongChainWithinConstrainedStack(t *testing.T) {
	old := debug.SetMaxStack(1 << 20)
	defer debug.SetMaxStack(old)

	s := New[int]()
	for i := range 1_000_000 {
		s.Push(i)
	}
	s.Clear()

	require.True(t, s.IsEmpty())
	_, ok := s.Pop()
	require.False(t, ok)
}

func TestLongChainOutOfScopeWithinConstrainedStack(t *testing.T) {
	old := debug.SetMaxStack(1 << 20)
	defer debug.SetMaxStack(old)

	func() {
		s := New[int]()
		for i := range 1_000_000 {
			s.Push(i)
		}
		requirePop(t, s, 999_999)
	}()

	runtime.GC()
}

func requirePop[T any](t *testing.T, s *Stack[T], want T) {
	t.Helper()

	got, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, want, got)
}
