// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import "sync"

// matchScratch holds the transient buffers one Calculate call needs: the
// flat run table built by matchDistances and the claim bitmap the
// aggregator fills in. Reusing these across calls on the same detector
// bounds the O(h*(2D+1)) peak transient storage down to O(h) amortized
// allocation, adapting an acquire/release pooled-dictionary pattern to
// this package's scratch state instead of a byte-compressor's dictionary.
type matchScratch struct {
	runs    []scrollRun
	claimed []bool
}

var matchScratchPool = sync.Pool{
	New: func() any {
		return &matchScratch{}
	},
}

// acquireMatchScratch gets a matchScratch from the pool, resized for h rows.
func acquireMatchScratch(h int) *matchScratch {
	s := matchScratchPool.Get().(*matchScratch)
	s.runs = s.runs[:0]
	if cap(s.claimed) < h {
		s.claimed = make([]bool, h)
	} else {
		s.claimed = s.claimed[:h]
		for i := range s.claimed {
			s.claimed[i] = false
		}
	}
	return s
}

// releaseMatchScratch returns s to the pool for reuse by a later Calculate.
func releaseMatchScratch(s *matchScratch) {
	if s == nil {
		return
	}
	matchScratchPool.Put(s)
}
