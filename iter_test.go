package chunked

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	v := New[int](3)
	for i := range 5 {
		v.Push(i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(v.Values()))
}

func TestValuesRestart(t *testing.T) {
	v := New[int](2)
	for i := range 7 {
		v.Push(i * 10)
	}
	first := slices.Collect(v.Values())
	second := slices.Collect(v.Values())
	require.Equal(t, first, second)
	require.Len(t, first, v.Len())
}

func TestValuesEmpty(t *testing.T) {
	v := New[int](4)
	require.Empty(t, slices.Collect(v.Values()))
	v.Push(1)
	v.Pop()
	require.Empty(t, slices.Collect(v.Values()))
}

func TestValuesEarlyBreak(t *testing.T) {
	v := New[int](2)
	for i := range 10 {
		v.Push(i)
	}
	var got []int
	for x := range v.Values() {
		got = append(got, x)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestPointers(t *testing.T) {
	v := New[int](3)
	for i := range 5 {
		v.Push(i)
	}
	for p := range v.Pointers() {
		*p *= 2
	}
	require.Equal(t, []int{0, 2, 4, 6, 8}, slices.Collect(v.Values()))
}

func TestPointersVisitOnce(t *testing.T) {
	v := New[int](4)
	for range 5 {
		v.Push(0)
	}
	for p := range v.Pointers() {
		*p++
	}
	for _, x := range slices.Collect(v.Values()) {
		require.Equal(t, 1, x)
	}
}

func TestAll(t *testing.T) {
	v := New[string](2)
	v.Push("a")
	v.Push("b")
	v.Push("c")
	want := map[int]string{0: "a", 1: "b", 2: "c"}
	got := map[int]string{}
	for i, s := range v.All() {
		got[i] = s
	}
	require.Equal(t, want, got)
}

func TestIterCrossesChunks(t *testing.T) {
	// one full chunk, one partial, one untouched after pops
	v := New[int](3)
	for i := range 9 {
		v.Push(i)
	}
	v.Pop()
	v.Pop()
	v.Pop()
	v.Pop()
	require.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(v.Values()))
	require.Equal(t, 9, v.Cap())
}
