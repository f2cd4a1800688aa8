package sets_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"lazyseq/sets"
)

func TestValueSet_KindsNeverCollide(t *testing.T) {
	s := sets.New[any]()

	require.True(t, s.Add(1))
	require.True(t, s.Contains(1))
	require.False(t, s.Contains("1"), "text \"1\" must not match number 1")
	require.False(t, s.Contains(1.0), "float64 1 must not match int 1")
	require.False(t, s.Contains(int64(1)))

	require.True(t, s.Add("1"))
	require.Equal(t, 2, s.Len())
}

func TestValueSet_AddReportsNewMembers(t *testing.T) {
	s := sets.New[string]()

	require.True(t, s.Add("a"))
	require.False(t, s.Add("a"))
	require.True(t, s.Add("b"))
	require.Equal(t, 2, s.Len())
}

func TestValueSet_Values(t *testing.T) {
	type point struct{ X, Y int }
	type celsius float64

	tests := []struct {
		name    string
		members []any
		query   any
		want    bool
	}{
		{"Nil", []any{nil}, nil, true},
		{"NilVsZero", []any{nil}, 0, false},
		{"Bool", []any{true}, true, true},
		{"BoolVsText", []any{true}, "true", false},
		{"Float", []any{0.5}, 0.5, true},
		{"NamedFloat", []any{celsius(21.5)}, 21.5, false},
		{"NamedFloatSameType", []any{celsius(21.5)}, celsius(21.5), true},
		{"SliceByContents", []any{[]int{1, 2}}, []int{1, 2}, true},
		{"SliceDiffers", []any{[]int{1, 2}}, []int{2, 1}, false},
		{"SliceVsArray", []any{[]int{1, 2}}, [2]int{1, 2}, false},
		{"Map", []any{map[string]int{"a": 1}}, map[string]int{"a": 1}, true},
		{"Struct", []any{point{1, 2}}, point{1, 2}, true},
		{"StructDiffers", []any{point{1, 2}}, point{2, 1}, false},
		{"NegativeZero", []any{0.0}, math.Copysign(0, -1), true},
		{"NestedIntVsFloat", []any{[]any{1}}, []any{1.0}, false},
		{"NestedIntVsText", []any{[]any{1}}, []any{"1"}, false},
		{"NestedSame", []any{[]any{1, "a", nil}}, []any{1, "a", nil}, true},
		{"NestedNegativeZero", []any{[]float64{0}}, []float64{math.Copysign(0, -1)}, true},
		{"MapKeyOrder", []any{map[any]int{"b": 2, 1: 1}}, map[any]int{1: 1, "b": 2}, true},
		{"MapKeyKinds", []any{map[any]int{1: 1}}, map[any]int{"1": 1}, false},
		{"StringBoundaries", []any{[]string{"a,b"}}, []string{"a", "b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sets.Of(tt.members...)
			require.Equal(t, tt.want, s.Contains(tt.query))
		})
	}
}

func TestValueSet_PointersByIdentity(t *testing.T) {
	a, b := new(int), new(int)
	s := sets.Of(a)

	require.True(t, s.Contains(a))
	require.False(t, s.Contains(b))
}

func TestValueSet_UnexportedFields(t *testing.T) {
	type point struct{ x, y int }

	s := sets.Of([]point{{1, 2}})
	require.True(t, s.Contains([]point{{1, 2}}))
	require.False(t, s.Contains([]point{{3, 4}}))
	require.False(t, sets.Of(point{1, 2}).Contains(point{2, 1}))
}

func TestValueSet_NestedPointersByIdentity(t *testing.T) {
	a, b := new(int), new(int)
	s := sets.Of([]*int{a})

	require.True(t, s.Contains([]*int{a}))
	require.False(t, s.Contains([]*int{b}), "equal pointees are still distinct pointers")

	*a = 7
	require.True(t, s.Contains([]*int{a}), "mutating the pointee does not change membership")
}

func TestValueSet_SelfReferencingSlice(t *testing.T) {
	loop := []any{1, nil}
	loop[1] = loop

	s := sets.Of[any](loop)
	require.True(t, s.Contains(loop))
	require.False(t, s.Contains([]any{1, nil}))
}
