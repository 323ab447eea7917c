// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import (
	"errors"
	"fmt"
)

// Sentinel errors for the detector. Every failure the detector can produce
// wraps one of these two kinds; callers use errors.Is to branch.
var (
	// ErrInvalidGeometry is returned for an invalid rectangle, dimension
	// mismatches, strides too small for the declared width/bpp, pixel
	// buffers too short for the rectangle, and hash-vector length
	// mismatches. Claimed runs are not bounds-checked at report time; the
	// matcher only emits runs inside [0, h].
	ErrInvalidGeometry = errors.New("scrollmotion: invalid geometry")
	// ErrInvalidInput is returned for a nil hash vector passed to the test
	// hook or a negative max distance.
	ErrInvalidInput = errors.New("scrollmotion: invalid input")
)

// errGeometryMismatch reports a call whose (x, y, w, h) disagrees with the
// rectangle the detector was constructed for.
func errGeometryMismatch(rect Rectangle, x, y, w, h int) error {
	return fmt.Errorf("%w: call geometry (%d,%d,%d,%d) does not match detector rectangle (%d,%d,%d,%d)",
		ErrInvalidGeometry, x, y, w, h, rect.X, rect.Y, rect.W, rect.H)
}
