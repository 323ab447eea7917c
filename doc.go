// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

/*
Package scrollmotion detects vertical scroll motion between two successive
raster images of the same rectangle. It hashes each row of pixel content,
compares the new frame's row hashes against the previous frame's at a range
of candidate vertical shifts, and groups the matching rows into contiguous
runs the caller can emit as cheap "scroll region" wire instructions instead
of re-encoding the affected pixels.

The detector is a pure, single-threaded, in-process library: no image
decoding, no compression, no network framing, no I/O. Its only inputs are
raw pixel rows (or precomputed row hashes, for tests); its only outputs are
row-level scroll decisions.

# Usage

	d, err := scrollmotion.New(0, 0, 1920, 1080)
	if err != nil {
		// invalid rectangle
	}
	if err := d.Update(frameA, 0, 0, 1920, 1080, 1920*4, 4); err != nil {
		// invalid geometry
	}
	if err := d.Update(frameB, 0, 0, 1920, 1080, 1920*4, 4); err != nil {
		// invalid geometry
	}
	if err := d.Calculate(1000); err != nil {
		// negative max distance
	}
	scrolls, nonScrolls := d.GetScrollValues(2)

scrolls maps scroll distance to {start line -> line count}; nonScrolls maps
start line to line count for rows no reported distance claimed, which must be
re-encoded. Rows that did not move are reported in scrolls under distance 0.

# Test hooks

Unit tests that want to exercise the matcher/aggregator without synthesizing
pixel buffers can inject row hashes directly:

	d, _ := scrollmotion.New(0, 0, 1, 4)
	d.TestUpdate([]uint64{1, 2, 3, 4})
	d.TestUpdate([]uint64{2, 3, 4, 5})
	_ = d.Calculate(0)
	scrolls, _ := d.GetScrollValues(0) // scrolls[-1] sums to 3
*/
package scrollmotion
