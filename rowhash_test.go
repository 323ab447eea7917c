// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import (
	"errors"
	"testing"
)

func TestHashRowsContentOnly(t *testing.T) {
	// 2 rows, 4 bytes wide, stride 6 (2 padding bytes per row). The
	// padding bytes must never influence the hash.
	pixels := []byte{
		1, 2, 3, 4, 0xAA, 0xAA,
		5, 6, 7, 8, 0xBB, 0xBB,
	}
	h1, err := hashRows(pixels, 0, 0, 4, 2, 6, 1)
	if err != nil {
		t.Fatalf("hashRows: %v", err)
	}

	padded := []byte{
		1, 2, 3, 4, 0x11, 0x22,
		5, 6, 7, 8, 0x33, 0x44,
	}
	h2, err := hashRows(padded, 0, 0, 4, 2, 6, 1)
	if err != nil {
		t.Fatalf("hashRows: %v", err)
	}

	if h1[0] != h2[0] || h1[1] != h2[1] {
		t.Fatalf("padding bytes changed the hash: %v vs %v", h1, h2)
	}
	if h1[0] == h1[1] {
		t.Fatalf("distinct row content hashed to the same value")
	}
}

func TestHashRowsRejectsShortStride(t *testing.T) {
	pixels := make([]byte, 100)
	_, err := hashRows(pixels, 0, 0, 10, 2, 5, 1)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestHashRowsRejectsUndersizedBuffer(t *testing.T) {
	pixels := make([]byte, 8)
	_, err := hashRows(pixels, 0, 0, 4, 4, 4, 1)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestHashRowsOriginOffset(t *testing.T) {
	pixels := make([]byte, 40)
	for i := range pixels {
		pixels[i] = byte(i)
	}
	full, err := hashRows(pixels, 2, 1, 3, 2, 10, 1)
	if err != nil {
		t.Fatalf("hashRows: %v", err)
	}
	if len(full) != 2 {
		t.Fatalf("expected 2 hashes, got %d", len(full))
	}
	if full[0] == full[1] {
		t.Fatalf("rows at different origin offsets must differ")
	}
}
