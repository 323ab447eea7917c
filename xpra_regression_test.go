// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/scrollmotion/internal/fixtures"
)

// TestXpraRegressionFlatBandNotOverclaimed replays a real two-frame capture
// whose window is dominated by long runs of one repeated hash (flat,
// unscrolled chrome). The flat-band filter must keep most of those rows out
// of every non-zero-distance run, leaving them to surface as non_scrolls,
// while genuinely distinct rows can still be claimed by a real scroll
// distance.
func TestXpraRegressionFlatBandNotOverclaimed(t *testing.T) {
	h := len(fixtures.PreviousFrameHashes)
	require.Equal(t, len(fixtures.CurrentFrameHashes), h)

	d := &ScrollDetector{rect: Rectangle{W: 1050, H: h}}
	d.hh.resize(h)
	require.NoError(t, d.TestUpdate(fixtures.PreviousFrameHashes))
	require.NoError(t, d.TestUpdate(fixtures.CurrentFrameHashes))
	require.NoError(t, d.Calculate(1000))

	bestDist, bestCount := d.GetBestMatch()
	t.Logf("best match: distance=%d count=%d", bestDist, bestCount)

	scrolls, nonScrolls := d.GetScrollValues(0)
	require.NotEmpty(t, nonScrolls, "expected at least one unclaimed run")

	for dist, lineDefs := range scrolls {
		for start, length := range lineDefs {
			require.GreaterOrEqualf(t, start-dist, 0, "distance %d run at %d would read before row 0", dist, start)
			require.LessOrEqualf(t, start+length-dist, h, "distance %d run at %d would read past row %d", dist, start, h)
		}
	}
}
