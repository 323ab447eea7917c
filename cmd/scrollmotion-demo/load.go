// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// bpp is the byte depth the detector hashes against: one RGBA pixel.
const bpp = 4

// frame is a decoded image flattened into the tightly packed RGBA row
// layout the detector's hashRows expects (stride == w*bpp, no padding).
type frame struct {
	w, h   int
	stride int
	pixels []byte
}

// loadFrame opens path, decodes it with the standard library's registered
// image formats (gif/jpeg/png — the same decode path a progjpeg-based CLI
// uses via image.Decode), and flattens it to raw RGBA rows.
func loadFrame(path string) (*frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	return decodeFrame(file, path)
}

// decodeFrame is the io.Reader-based core loadFrame builds on, generalizing
// a reader-to-buffer convenience shape from an LZO bitstream source to an
// arbitrary image source.
func decodeFrame(r io.Reader, sourceName string) (*frame, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", sourceName)
	}
	log.WithFields(logrus.Fields{"source": sourceName, "format": format}).Debug("decoded frame")

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("decoded image %s has empty bounds %v", sourceName, bounds)
	}

	stride := w * bpp
	pixels := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r32, g32, b32, a32 := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := y*stride + x*bpp
			pixels[off+0] = byte(r32 >> 8)
			pixels[off+1] = byte(g32 >> 8)
			pixels[off+2] = byte(b32 >> 8)
			pixels[off+3] = byte(a32 >> 8)
		}
	}

	return &frame{w: w, h: h, stride: stride, pixels: pixels}, nil
}
