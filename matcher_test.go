// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runMatch(t *testing.T, previous, current []uint64, maxDistance int) []scrollRun {
	t.Helper()
	scratch := acquireMatchScratch(len(current))
	defer releaseMatchScratch(scratch)
	return append([]scrollRun(nil), matchDistances(previous, current, maxDistance, scratch)...)
}

func totalForDistance(runs []scrollRun, dist int) int {
	total := 0
	for _, r := range runs {
		if r.distance == dist {
			total += r.length
		}
	}
	return total
}

func sequence(start, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(start + i)
	}
	return out
}

func TestMatchDistancesIdentity(t *testing.T) {
	for _, n := range []int{MinLineCount + 1, 10, 100} {
		a := sequence(1, n)
		runs := runMatch(t, a, a, 1000)
		require.Equal(t, n, totalForDistance(runs, 0), "identity sequence n=%d", n)

		flat := make([]uint64, n)
		for i := range flat {
			flat[i] = 1
		}
		runs = runMatch(t, flat, flat, 1000)
		require.Equal(t, n, totalForDistance(runs, 0), "identity flat n=%d", n)
	}
}

func TestMatchDistancesShift(t *testing.T) {
	a1 := []uint64{3, 4, 5, 6, 7, 8, 9, 10}
	a2 := []uint64{1, 2, 3, 4, 5, 6, 7, 8}

	runs := runMatch(t, a1, a2, 1000)
	require.Equal(t, 6, totalForDistance(runs, 2), "a1->a2 expected shift +2")

	runsSwap := runMatch(t, a2, a1, 1000)
	require.Equal(t, 6, totalForDistance(runsSwap, -2), "a2->a1 expected shift -2")
}

func TestMatchDistancesGeneralShift(t *testing.T) {
	const n = 100
	const s = 1
	a1 := sequence(s, n)
	for _, m := range []int{MinLineCount, MinLineCount + 1, MinLineCount + 10, 90} {
		a2 := sequence(m, n)

		runs := runMatch(t, a1, a2, 1000)
		require.Equal(t, s+n-m, totalForDistance(runs, s-m), "m=%d a1->a2", m)

		runsSwap := runMatch(t, a2, a1, 1000)
		require.Equal(t, s+n-m, totalForDistance(runsSwap, m-s), "m=%d a2->a1", m)
	}
}

func TestMatchDistancesFlatBandSuppressed(t *testing.T) {
	const n = 40
	flat := make([]uint64, n)
	for i := range flat {
		flat[i] = 1
	}
	runs := runMatch(t, flat, flat, 10)
	for _, r := range runs {
		require.Zerof(t, r.distance, "non-zero distance %d survived the flat-band filter: %+v", r.distance, r)
	}
	require.Equal(t, n, totalForDistance(runs, 0))
}

func TestMatchDistancesShortRunDropped(t *testing.T) {
	// Only MinLineCount-1 rows actually match at distance 1; the rest
	// differ, so no run should survive.
	previous := []uint64{10, 20, 30, 40, 50}
	current := []uint64{0, 10, 0, 0, 0}
	runs := runMatch(t, previous, current, 4)
	require.Equal(t, 0, totalForDistance(runs, 1))
}

func TestMatchDistancesLengthMismatchReturnsNil(t *testing.T) {
	runs := runMatch(t, []uint64{1, 2}, []uint64{1, 2, 3}, 5)
	require.Nil(t, runs)
}

func TestMatchDistancesRespectsMaxDistance(t *testing.T) {
	a1 := []uint64{3, 4, 5, 6, 7, 8, 9, 10}
	a2 := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	runs := runMatch(t, a1, a2, 1)
	require.Equal(t, 0, totalForDistance(runs, 2), "distance 2 excluded by maxDistance=1")
}
