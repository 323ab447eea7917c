// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

// MinLineCount is the minimum run length the matcher will emit. Runs
// shorter than this are noise from single-row hash collisions rather than
// real scroll motion.
const MinLineCount = 2

// scrollRun is one maximal contiguous range of rows sharing a single scroll
// distance: current[start:start+length] matches previous[start-distance :
// start-distance+length], flattened into a list of tagged records instead
// of nested dictionaries.
type scrollRun struct {
	distance int
	start    int
	length   int
}

// matchDistances searches every candidate shift d in [-D, D] where
// D = min(maxDistance, h-1), finds the maximal contiguous runs of rows
// where current[i] == previous[i-d], drops runs shorter than MinLineCount,
// and drops "self-matching" flat-band runs at non-zero distances. previous
// and current must have equal, positive length.
func matchDistances(previous, current []uint64, maxDistance int, scratch *matchScratch) []scrollRun {
	h := len(current)
	if h == 0 || len(previous) != h {
		return nil
	}

	d := maxDistance
	if d > h-1 {
		d = h - 1
	}
	if d < 0 {
		d = 0
	}

	runs := scratch.runs[:0]
	for dist := -d; dist <= d; dist++ {
		runs = appendDistanceRuns(runs, previous, current, dist)
	}
	scratch.runs = runs
	return runs
}

// appendDistanceRuns walks i from 0 to h-1, comparing current[i] against
// previous[i-dist] — a row now at i held the content previous[i-dist] held
// one frame ago, so positive dist means that content has moved down by
// dist rows and negative dist means it moved up — and appends every
// surviving run for this one distance to runs.
func appendDistanceRuns(runs []scrollRun, previous, current []uint64, dist int) []scrollRun {
	h := len(current)
	runStart := -1

	flush := func(end int) []scrollRun {
		if runStart < 0 {
			return runs
		}
		length := end - runStart
		if length >= MinLineCount && !isSelfMatchingFlatRun(previous, runStart, length, dist) {
			runs = append(runs, scrollRun{distance: dist, start: runStart, length: length})
		}
		return runs
	}

	for i := 0; i < h; i++ {
		j := i - dist
		matches := j >= 0 && j < h && current[i] == previous[j]
		if matches {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		runs = flush(i)
		runStart = -1
	}
	runs = flush(h)
	return runs
}

// isSelfMatchingFlatRun is the flat-band filter: a non-zero distance run
// is "self-matching" (a uniform band that would trivially
// match every distance) rather than "scroll-matching" when every row the
// run covers in previous carries the same hash as its neighbour (a repeat
// run) and that hash also equals the hash at the mirror position
// previous[start-dist]. Distance 0 is never filtered — it legitimately
// represents rows that did not move.
func isSelfMatchingFlatRun(previous []uint64, start, length, dist int) bool {
	if dist == 0 {
		return false
	}
	mirror := start - dist
	if mirror < 0 || mirror >= len(previous) {
		return false
	}
	flat := previous[start]
	if previous[mirror] != flat {
		return false
	}
	for k := 1; k < length; k++ {
		if previous[start+k] != flat {
			return false
		}
	}
	return true
}
