package seqs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"lazyseq/seqs"
)

func pairsOf[K comparable, V any](ks seqs.KeyedSequence[K, V]) []seqs.Pair[K, V] {
	return seqs.ToPairs(ks)
}

func TestFromMap_SortedKeys(t *testing.T) {
	obj := seqs.FromMap(map[string]int{"c": 3, "a": 1, "b": 2})

	want := []seqs.Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}
	for range 3 {
		require.Equal(t, want, pairsOf[string, int](obj))
	}

	v, ok := obj.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 3, obj.Len())
}

func TestPickOmit(t *testing.T) {
	obj := seqs.FromMap(map[string]int{"a": 1, "b": 2, "c": 3})

	picked := seqs.Pick[string, int](obj, "a", "c", "zz")
	require.Equal(t, map[string]int{"a": 1, "c": 3}, seqs.ToMap(picked))

	omitted := seqs.Omit[string, int](obj, "a")
	require.Equal(t, []seqs.Pair[string, int]{{"b", 2}, {"c", 3}}, seqs.ToPairs(omitted))

	require.Empty(t, seqs.ToPairs(seqs.Pick[string, int](obj)))
	require.Len(t, seqs.ToPairs(seqs.Omit[string, int](obj)), 3)
}

func TestPickOmit_CompositeKeys(t *testing.T) {
	type cell struct{ row, col any }
	pairs := seqs.FromPairs(
		seqs.Pair[cell, string]{Key: cell{1, 2}, Value: "int"},
		seqs.Pair[cell, string]{Key: cell{1.0, 2.0}, Value: "float"},
		seqs.Pair[cell, string]{Key: cell{"1", "2"}, Value: "text"},
	)

	picked := seqs.Pick(pairs, cell{1.0, 2.0})
	require.Equal(t, []string{"float"}, seqs.ToSlice[string](seqs.Values(picked)))

	omitted := seqs.Omit(pairs, cell{1, 2})
	require.Equal(t, []string{"float", "text"}, seqs.ToSlice[string](seqs.Values(omitted)))
}

func TestInvert(t *testing.T) {
	obj := seqs.FromMap(map[string]int{"one": 1, "two": 2})
	inv := seqs.Invert[string, int](obj)

	got := seqs.ToMap(inv)
	if diff := cmp.Diff(map[int]string{1: "one", 2: "two"}, got); diff != "" {
		t.Errorf("Invert mismatch (-want +got):\n%s", diff)
	}
}

func TestInvert_LaterKeyWins(t *testing.T) {
	ks := seqs.FromPairs(seqs.Pair[string, int]{"x", 1}, seqs.Pair[string, int]{"y", 1})
	require.Equal(t, map[int]string{1: "y"}, seqs.ToMap(seqs.Invert(ks)))
}

func TestKeyedHelpers(t *testing.T) {
	ks := seqs.FromPairs(
		seqs.Pair[string, int]{"a", 1},
		seqs.Pair[string, int]{"b", 2},
		seqs.Pair[string, int]{"c", 3},
	)

	require.Equal(t, []string{"a", "b", "c"}, seqs.ToSlice(seqs.Keys(ks)))
	require.Equal(t, []int{1, 2, 3}, seqs.ToSlice(seqs.Values(ks)))

	even := seqs.FilterPairs(ks, func(_ string, v int) bool { return v%2 == 0 })
	require.Equal(t, []seqs.Pair[string, int]{{"b", 2}}, seqs.ToPairs(even))

	doubled := seqs.MapValues(ks, func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4, 6}, seqs.ToSlice(seqs.Values(doubled)))

	roundTrip := seqs.Keyed(seqs.PairsOf(ks))
	require.Equal(t, seqs.ToPairs(ks), seqs.ToPairs(roundTrip))
}

func TestAll2_Break(t *testing.T) {
	obj := seqs.FromMap(map[int]string{1: "a", 2: "b", 3: "c"})

	var keys []int
	for k := range seqs.All2[int, string](obj) {
		keys = append(keys, k)
		if k == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, keys)
}

func TestKeyed_StopPropagates(t *testing.T) {
	visited := 0
	ks := seqs.MapValues[string, int](seqs.FromMap(map[string]int{"a": 1, "b": 2, "c": 3}), func(v int) int { return v })
	sig := ks.Each(func(string, int) seqs.Signal {
		visited++
		return seqs.Stop
	})
	require.Equal(t, seqs.Stop, sig)
	require.Equal(t, 1, visited)
}

func TestGroupBy(t *testing.T) {
	groups := seqs.GroupBy(seqs.Of("a", "bb", "ccc", "dd"), func(s string) int { return len(s) })

	want := []seqs.Pair[int, []string]{
		{Key: 1, Value: []string{"a"}},
		{Key: 2, Value: []string{"bb", "dd"}},
		{Key: 3, Value: []string{"ccc"}},
	}
	if diff := cmp.Diff(want, groups.Materialize()); diff != "" {
		t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, map[int][]string{1: {"a"}, 2: {"bb", "dd"}, 3: {"ccc"}}, seqs.ToMap(groups))
}

func TestCountBy(t *testing.T) {
	counts := seqs.CountBy(seqs.Of(1, 2, 3, 4, 5), func(v int) bool { return v%2 == 0 })
	require.Equal(t, []seqs.Pair[bool, int]{{false, 3}, {true, 2}}, seqs.ToPairs(counts))
}

func TestIndexBy(t *testing.T) {
	byFirst := seqs.IndexBy(seqs.Of("apple", "banana", "avocado"), func(s string) byte { return s[0] })
	require.Equal(t, []seqs.Pair[byte, string]{{'a', "avocado"}, {'b', "banana"}}, seqs.ToPairs(byFirst))
}
