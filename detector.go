// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import "fmt"

// ScrollDetector tracks one fixed screen rectangle across successive frames
// and reports vertical scroll motion between the two most recent frames.
// A detector is not safe for concurrent use; callers serialize
// Update/TestUpdate/Calculate/GetScrollValues/GetBestMatch the same way a
// single compressor goroutine would own its own window state.
type ScrollDetector struct {
	rect Rectangle
	hh   hashHistory
	agg  *aggregation
}

// New constructs a detector bound to the rectangle (x, y, w, h). Every
// later Update/TestUpdate call must report data for this same rectangle.
func New(x, y, w, h int) (*ScrollDetector, error) {
	rect := Rectangle{X: x, Y: y, W: w, H: h}
	if err := rect.validate(); err != nil {
		return nil, err
	}
	d := &ScrollDetector{rect: rect, agg: emptyAggregation}
	d.hh.resize(h)
	return d, nil
}

// Update hashes the rows of a new frame and ingests them, shifting the
// previous current frame into history. The geometry given here must match
// the rectangle the detector was constructed with.
func (d *ScrollDetector) Update(pixels []byte, x, y, w, h, stride, bpp int) error {
	if !d.rect.matches(x, y, w, h) {
		return errGeometryMismatch(d.rect, x, y, w, h)
	}
	log.Debug("update")
	return d.hh.update(pixels, x, y, w, h, stride, bpp)
}

// TestUpdate injects a precomputed row-hash vector directly, bypassing
// hashRows, for tests that want to drive the matcher/aggregator with plain
// integers.
func (d *ScrollDetector) TestUpdate(hashes []uint64) error {
	return d.hh.testUpdate(hashes)
}

// Calculate rebuilds the detector's internal match table and aggregation
// from the two most recently ingested frames. maxDistance caps the
// candidate shift range to [-D, D] where D = min(maxDistance, h-1); 0
// selects the default D = h-1. A negative maxDistance is rejected with
// ErrInvalidInput and leaves the detector's cached aggregation unchanged.
// Calculate is otherwise a no-op (the cached aggregation is cleared) until
// two frames have been ingested.
func (d *ScrollDetector) Calculate(maxDistance int) error {
	if maxDistance < 0 {
		return fmt.Errorf("%w: max distance %d must not be negative", ErrInvalidInput, maxDistance)
	}
	if !d.hh.ready {
		d.agg = emptyAggregation
		return nil
	}
	if maxDistance == 0 {
		maxDistance = d.rect.H - 1
	}

	scratch := acquireMatchScratch(d.rect.H)
	defer releaseMatchScratch(scratch)

	runs := matchDistances(d.hh.previous, d.hh.current, maxDistance, scratch)
	d.agg = computeAggregation(runs, d.rect.H, scratch)

	log.WithField("candidates", len(runs)).Debug("calculate")
	return nil
}

// GetScrollValues returns the scroll report from the last Calculate call:
// scrolls maps distance -> start -> run length for every distance whose
// post-claim total is at least minHits, and nonScrolls maps start -> run
// length for the maximal runs of rows no surviving distance claimed.
// Calling this before any Calculate has run returns two empty maps.
func (d *ScrollDetector) GetScrollValues(minHits int) (scrolls map[int]map[int]int, nonScrolls map[int]int) {
	scrolls = make(map[int]map[int]int, len(d.agg.order))
	for _, dist := range d.agg.order {
		if d.agg.totals[dist] < minHits {
			continue
		}
		runCopy := make(map[int]int, len(d.agg.perDistance[dist]))
		for start, length := range d.agg.perDistance[dist] {
			runCopy[start] = length
		}
		scrolls[dist] = runCopy
	}

	nonScrolls = make(map[int]int, len(d.agg.nonScroll))
	if len(scrolls) == len(d.agg.order) {
		for start, length := range d.agg.nonScroll {
			nonScrolls[start] = length
		}
		return scrolls, nonScrolls
	}
	// minHits dropped at least one distance: its rows go back to non-scroll.
	claimed := make([]bool, d.rect.H)
	for _, lineDefs := range scrolls {
		for start, length := range lineDefs {
			for i := start; i < start+length; i++ {
				claimed[i] = true
			}
		}
	}
	for start, length := range nonScrollRuns(claimed) {
		nonScrolls[start] = length
	}
	return scrolls, nonScrolls
}

// GetBestMatch returns the distance with the largest post-claim total
// matched run length from the last Calculate call, and that total. Ties
// are broken the same way as GetScrollValues' ranking (ascending |distance|,
// then descending distance). Returns (0, 0) if no run survived.
func (d *ScrollDetector) GetBestMatch() (distance, lineCount int) {
	if len(d.agg.order) == 0 {
		return 0, 0
	}
	best := d.agg.order[0]
	return best, d.agg.totals[best]
}
