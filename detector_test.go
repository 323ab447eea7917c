// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidatesRectangle(t *testing.T) {
	_, err := New(0, 0, 0, 5)
	require.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = New(-1, 0, 5, 5)
	require.ErrorIs(t, err, ErrInvalidGeometry)

	d, err := New(0, 0, 5, 5)
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestUpdateRejectsGeometryMismatch(t *testing.T) {
	d, err := New(0, 0, 4, 4)
	require.NoError(t, err)

	pixels := make([]byte, 64)
	err = d.Update(pixels, 0, 0, 3, 4, 4, 1)
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

// rollPixels builds a W*H*BPP byte buffer of random pixels and a second
// buffer whose row r holds the original's row r+n (mod h) — the same
// wraparound roll the reference implementation this is grounded on uses,
// which reports the resulting motion as distance -n.
func rollPixels(w, h, bpp, n int, rng *rand.Rand) (original, rolled []byte) {
	stride := w * bpp
	original = make([]byte, stride*h)
	rng.Read(original)

	rolled = make([]byte, stride*h)
	for row := 0; row < h; row++ {
		srcRow := (row + n) % h
		copy(rolled[row*stride:(row+1)*stride], original[srcRow*stride:(srcRow+1)*stride])
	}
	return original, rolled
}

func TestDetectMotionRollShift(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const bpp = 4

	for _, dims := range []struct{ w, h int }{{5, 5}, {64, 40}} {
		for _, n := range []int{1, 2, 20} {
			if n > dims.h/2 {
				continue
			}
			original, rolled := rollPixels(dims.w, dims.h, bpp, n, rng)

			d, err := New(0, 0, dims.w, dims.h)
			require.NoError(t, err)
			require.NoError(t, d.Update(original, 0, 0, dims.w, dims.h, dims.w*bpp, bpp))
			require.NoError(t, d.Update(rolled, 0, 0, dims.w, dims.h, dims.w*bpp, bpp))

			require.NoError(t, d.Calculate(0))
			scrolls, _ := d.GetScrollValues(1)
			lineDefs := scrolls[-n]
			total := 0
			for _, length := range lineDefs {
				total += length
			}
			require.Greaterf(t, total, 0, "w=%d h=%d n=%d: distance -%d not found", dims.w, dims.h, n, n)
			require.Equalf(t, dims.h-n, total, "w=%d h=%d n=%d", dims.w, dims.h, n)
		}
	}
}

func TestCalculateRejectsNegativeMaxDistance(t *testing.T) {
	d, err := New(0, 0, 1, 4)
	require.NoError(t, err)
	require.NoError(t, d.TestUpdate([]uint64{1, 2, 3, 4}))
	require.NoError(t, d.TestUpdate([]uint64{1, 2, 3, 4}))

	err = d.Calculate(-1)
	require.ErrorIs(t, err, ErrInvalidInput)

	// A rejected call leaves the previously cached aggregation in place.
	dist, count := d.GetBestMatch()
	require.Zero(t, dist)
	require.Zero(t, count)
}

func TestTestUpdateRejectsLengthMismatch(t *testing.T) {
	d, err := New(0, 0, 1, 4)
	require.NoError(t, err)
	require.NoError(t, d.TestUpdate([]uint64{1, 2, 3, 4}))
	err = d.TestUpdate([]uint64{1, 2, 3})
	require.True(t, errors.Is(err, ErrInvalidGeometry))
}
