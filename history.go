// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import "fmt"

// hashHistory holds the previous frame's and current frame's row hashes for
// one rectangle. Both vectors always have length h once populated; resize
// reuses the backing arrays unless h changes, never reallocating the
// window mid-life unless the geometry itself changes.
type hashHistory struct {
	h                 int
	previous, current []uint64
	hasCurrent        bool // true once at least one frame has been ingested
	ready             bool // true once two frames have been ingested
}

// resize grows/shrinks the history for a new row count. Existing contents
// are discarded and ready resets to false: a geometry change re-enters the
// not-ready state.
func (hh *hashHistory) resize(h int) {
	if hh.h == h && hh.previous != nil {
		return
	}
	hh.h = h
	hh.previous = make([]uint64, h)
	hh.current = make([]uint64, h)
	hh.hasCurrent = false
	hh.ready = false
}

// ingest shifts current into previous and installs newHashes as current.
// newHashes must already have length h; callers validate before calling.
func (hh *hashHistory) ingest(newHashes []uint64) {
	if hh.hasCurrent {
		copy(hh.previous, hh.current)
		hh.ready = true
	}
	copy(hh.current, newHashes)
	hh.hasCurrent = true
}

// update hashes a new frame via hashRows and ingests it. The geometry given
// here must equal the rectangle this history was sized for.
func (hh *hashHistory) update(pixels []byte, x, y, w, h, stride, bpp int) error {
	if h != hh.h {
		return fmt.Errorf("%w: update height %d does not match detector height %d", ErrInvalidGeometry, h, hh.h)
	}
	hashes, err := hashRows(pixels, x, y, w, h, stride, bpp)
	if err != nil {
		return err
	}
	hh.ingest(hashes)
	return nil
}

// testUpdate injects a precomputed hash vector directly, bypassing
// hashRows, for tests that want to exercise the matcher/aggregator over
// plain integers. A length mismatch fails with ErrInvalidGeometry and
// leaves the history unchanged: the detector is either unchanged or
// atomically advanced, never truncated or resized to fit.
func (hh *hashHistory) testUpdate(hashes []uint64) error {
	if hashes == nil {
		return fmt.Errorf("%w: hashes must not be nil", ErrInvalidInput)
	}
	if len(hashes) != hh.h {
		return fmt.Errorf("%w: test_update length %d does not match detector height %d", ErrInvalidGeometry, len(hashes), hh.h)
	}
	hh.ingest(hashes)
	return nil
}
