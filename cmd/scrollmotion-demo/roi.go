// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*roiFlag)(nil)

// roiFlag is a pflag.Value for a "x,y,w,h" sub-rectangle flag, letting the
// demo track a window smaller than the full decoded frame the way a real
// server only ever tracks one damaged screen region at a time.
type roiFlag struct {
	set  bool
	x, y int
	w, h int
}

func (r *roiFlag) String() string {
	if !r.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", r.x, r.y, r.w, r.h)
}

func (r *roiFlag) Type() string { return "x,y,w,h" }

func (r *roiFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return fmt.Errorf("roi must be \"x,y,w,h\", got %q", value)
	}
	fields := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("roi field %d (%q) is not an integer: %w", i, p, err)
		}
		fields[i] = n
	}
	r.x, r.y, r.w, r.h = fields[0], fields[1], fields[2], fields[3]
	r.set = true
	return nil
}

// rectangle returns the tracked sub-rectangle, defaulting to the full frame
// when the flag was never set.
func (r *roiFlag) rectangle(f *frame) (x, y, w, h int) {
	if !r.set {
		return 0, 0, f.w, f.h
	}
	return r.x, r.y, r.w, r.h
}
