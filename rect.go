// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import "fmt"

// Rectangle is the fixed window a ScrollDetector is bound to at
// construction. All four fields are non-negative; W and H are at least 1.
type Rectangle struct {
	X, Y, W, H int
}

// validate checks the invariants a rectangle must hold: w >= 1, h >= 1,
// and all fields non-negative.
func (r Rectangle) validate() error {
	if r.X < 0 || r.Y < 0 {
		return fmt.Errorf("%w: negative origin (%d, %d)", ErrInvalidGeometry, r.X, r.Y)
	}
	if r.W < 1 {
		return fmt.Errorf("%w: width %d must be >= 1", ErrInvalidGeometry, r.W)
	}
	if r.H < 1 {
		return fmt.Errorf("%w: height %d must be >= 1", ErrInvalidGeometry, r.H)
	}
	return nil
}

// matches reports whether the per-call geometry given to Update equals the
// construction-time rectangle: the per-call geometry arguments must equal
// the construction-time values, or the call fails with ErrInvalidGeometry.
func (r Rectangle) matches(x, y, w, h int) bool {
	return r.X == x && r.Y == y && r.W == w && r.H == h
}
