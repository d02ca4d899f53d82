package collection

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type pair struct {
	Key string
	Pos int
}

func byKey(a, b pair) int { return strings.Compare(a.Key, b.Key) }

func ascending(a, b int) int { return a - b }

func TestSortStableKeepsEqualKeysInOrder(t *testing.T) {
	s := []pair{{"b", 0}, {"a", 1}, {"b", 2}, {"a", 3}, {"c", 4}}
	SortStable(s, byKey)

	want := []pair{{"a", 1}, {"a", 3}, {"b", 0}, {"b", 2}, {"c", 4}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("SortStable mismatch (-want +got):\n%s", diff)
	}

	// Sorting an already sorted slice by the same key changes nothing.
	again := slices.Clone(s)
	SortStable(again, byKey)
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("SortStable not idempotent (-want +got):\n%s", diff)
	}
}

func TestPipelineLeavesSourceUntouched(t *testing.T) {
	src := []int{5, 3, 8, 1, 9, 2}
	orig := slices.Clone(src)

	seq := Map(
		Sorted(Filter(slices.Values(src), func(n int) bool { return n > 2 }), ascending),
		func(n int) int { return n * 10 })

	assert.Equal(t, orig, src, "building the pipeline must not run it")
	assert.Equal(t, []int{30, 50, 80, 90}, slices.Collect(seq))
	assert.Equal(t, orig, src)
}

func TestFilterStopsEarly(t *testing.T) {
	pulled := 0
	src := func(yield func(int) bool) {
		for i := range 100 {
			pulled++
			if !yield(i) {
				return
			}
		}
	}
	for v := range Filter(src, func(n int) bool { return n%2 == 0 }) {
		if v == 4 {
			break
		}
	}
	assert.Equal(t, 5, pulled)
}

func TestOnceIsSinglePass(t *testing.T) {
	seq := Once(slices.Values([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, slices.Collect(seq))
	assert.Empty(t, slices.Collect(seq))
}
