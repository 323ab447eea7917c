// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import "sort"

// aggregation is the full result of one Calculate pass, independent of any
// minHits threshold: every distance that claimed at least one row, its
// claimed sub-runs, its post-claim total, in descending-priority order,
// plus the maximal runs of rows no distance claimed. GetScrollValues and
// GetBestMatch both read from this single cached result, which also means
// they can never disagree about ranking; GetScrollValues recomputes the
// non-scroll runs only when minHits drops a distance.
type aggregation struct {
	order       []int
	perDistance map[int]map[int]int
	totals      map[int]int
	nonScroll   map[int]int
}

var emptyAggregation = &aggregation{
	perDistance: map[int]map[int]int{},
	totals:      map[int]int{},
	nonScroll:   map[int]int{},
}

// computeAggregation claims rows for each candidate distance in priority
// order and buckets what's left into non-scroll runs. runs is the flat
// match table from matchDistances; h is the rectangle height; scratch
// supplies the claim bitmap.
func computeAggregation(runs []scrollRun, h int, scratch *matchScratch) *aggregation {
	if h == 0 {
		return emptyAggregation
	}

	byDistance := map[int][]scrollRun{}
	rawTotal := map[int]int{}
	for _, r := range runs {
		byDistance[r.distance] = append(byDistance[r.distance], r)
		rawTotal[r.distance] += r.length
	}

	distances := make([]int, 0, len(byDistance))
	for d := range byDistance {
		distances = append(distances, d)
	}
	sortDistancesByPriority(distances, rawTotal)

	claimed := scratch.claimed
	perDistance := make(map[int]map[int]int, len(distances))
	totals := make(map[int]int, len(distances))
	order := make([]int, 0, len(distances))

	for _, d := range distances {
		runsForD := byDistance[d]
		sort.Slice(runsForD, func(i, j int) bool { return runsForD[i].start < runsForD[j].start })

		distMap := map[int]int{}
		distTotal := 0
		for _, r := range runsForD {
			i := r.start
			end := r.start + r.length
			for i < end {
				if claimed[i] {
					i++
					continue
				}
				subStart := i
				for i < end && !claimed[i] {
					claimed[i] = true
					i++
				}
				subLen := i - subStart
				distMap[subStart] = subLen
				distTotal += subLen
			}
		}

		if distTotal > 0 {
			perDistance[d] = distMap
			totals[d] = distTotal
			order = append(order, d)
		}
	}

	return &aggregation{
		order:       order,
		perDistance: perDistance,
		totals:      totals,
		nonScroll:   nonScrollRuns(claimed),
	}
}

// sortDistancesByPriority orders distances by descending raw (pre-claim)
// total line count, ties broken by ascending |d|, then by descending d
// (positive preferred over negative when |d| is equal).
func sortDistancesByPriority(distances []int, rawTotal map[int]int) {
	sort.Slice(distances, func(i, j int) bool {
		di, dj := distances[i], distances[j]
		ti, tj := rawTotal[di], rawTotal[dj]
		if ti != tj {
			return ti > tj
		}
		ai, aj := abs(di), abs(dj)
		if ai != aj {
			return ai < aj
		}
		return di > dj
	})
}

// nonScrollRuns returns the maximal contiguous runs of rows claimed is
// false for.
func nonScrollRuns(claimed []bool) map[int]int {
	runs := map[int]int{}
	start := -1
	for i, c := range claimed {
		if !c {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs[start] = i - start
			start = -1
		}
	}
	if start >= 0 {
		runs[start] = len(claimed) - start
	}
	return runs
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
