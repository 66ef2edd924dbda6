package random

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsPermutation(t *testing.T) {
	src := Seeded(7)
	in := []string{"Ana", "Bea", "Cid", "Dario", "Elena", "Fabio"}

	out := Shuffle(src, in)
	require.Len(t, out, len(in))

	sortedIn := append([]string(nil), in...)
	sortedOut := append([]string(nil), out...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	assert.Equal(t, sortedIn, sortedOut, "shuffle must preserve the multiset of elements")
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	src := Seeded(7)
	in := []string{"a", "b", "c", "d", "e"}
	snapshot := append([]string(nil), in...)

	Shuffle(src, in)
	assert.Equal(t, snapshot, in)
}

func TestShuffleChangesOrderEventually(t *testing.T) {
	src := Seeded(1)
	in := []int{0, 1, 2, 3, 4, 5, 6, 7}

	moved := false
	for i := 0; i < 20 && !moved; i++ {
		out := Shuffle(src, in)
		for j := range out {
			if out[j] != in[j] {
				moved = true
				break
			}
		}
	}
	assert.True(t, moved, "20 shuffles of 8 elements should not all be identity permutations")
}

func TestShuffleTrivialInputs(t *testing.T) {
	src := Seeded(3)
	assert.Empty(t, Shuffle(src, []string{}))
	assert.Equal(t, []string{"solo"}, Shuffle(src, []string{"solo"}))
}

func TestSelectIndicesDistinctAndInRange(t *testing.T) {
	src := Seeded(11)
	for count := 0; count <= 10; count++ {
		picked := SelectIndices(src, count, 10, nil)
		require.Len(t, picked, count)

		seen := make(map[int]bool)
		for _, idx := range picked {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 10)
			require.False(t, seen[idx], "index %d drawn twice", idx)
			seen[idx] = true
		}
	}
}

func TestSelectIndicesHonorsExclusions(t *testing.T) {
	src := Seeded(13)
	exclude := map[int]struct{}{0: {}, 3: {}, 4: {}}

	for i := 0; i < 50; i++ {
		picked := SelectIndices(src, 3, 6, exclude)
		require.Len(t, picked, 3)
		for _, idx := range picked {
			_, excluded := exclude[idx]
			require.False(t, excluded, "excluded index %d was drawn", idx)
		}
	}
}

func TestSelectIndicesShortPool(t *testing.T) {
	src := Seeded(17)

	// Asking for more than the pool holds returns what the pool allows.
	picked := SelectIndices(src, 5, 3, nil)
	assert.Len(t, picked, 3)

	picked = SelectIndices(src, 2, 4, map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}})
	assert.Empty(t, picked)
}
