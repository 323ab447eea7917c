// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// hashRows turns the h rows of a w*bpp-byte-wide rectangle, read out of a
// caller-owned buffer at the given stride, into h content-only 64-bit
// hashes. The returned slice never aliases pixels: each row is summed
// through xxhash.Sum64 and only the digest is kept.
//
// Bytes past x+w*bpp within a stride row are not part of a row's content
// and never reach the hasher — each row's span is pixels[rowStart :
// rowStart+w*bpp], never the full stride.
func hashRows(pixels []byte, x, y, w, h, stride, bpp int) ([]uint64, error) {
	rowBytes := w * bpp
	if stride < rowBytes {
		return nil, fmt.Errorf("%w: stride %d shorter than row width %d*%d", ErrInvalidGeometry, stride, w, bpp)
	}

	// The rectangle's rows live at byte offset (y+i)*stride + x*bpp within
	// pixels; the last row's content must fit inside the buffer.
	lastRowStart := (y+h-1)*stride + x*bpp
	if lastRowStart < 0 || lastRowStart+rowBytes > len(pixels) {
		return nil, fmt.Errorf("%w: buffer of %d bytes too small for %d rows at stride %d", ErrInvalidGeometry, len(pixels), h, stride)
	}

	hashes := make([]uint64, h)
	for i := 0; i < h; i++ {
		rowStart := (y+i)*stride + x*bpp
		hashes[i] = xxhash.Sum64(pixels[rowStart : rowStart+rowBytes])
	}
	return hashes, nil
}
