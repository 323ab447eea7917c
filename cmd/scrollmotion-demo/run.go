// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package main

import (
	"fmt"
	"image"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dlecorfec/progjpeg"
	"github.com/woozymasta/scrollmotion"
)

// detectOptions threads the whole flag set through, including the two
// bundled option structs the library exposes specifically for callers like
// this one (scrollmotion.CalculateOptions / scrollmotion.ReportOptions),
// rather than the bare-int Calculate/GetScrollValues signatures the hot
// path uses.
type detectOptions struct {
	prev           string
	curr           string
	roi            roiFlag
	calc           *scrollmotion.CalculateOptions
	report         *scrollmotion.ReportOptions
	progressiveOut string
}

func newDetectCommand() *cobra.Command {
	opts := &detectOptions{
		calc:   scrollmotion.DefaultCalculateOptions(),
		report: scrollmotion.DefaultReportOptions(),
	}
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect scroll motion between two frame images",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.prev, "prev", "", "path to the previous frame image (required)")
	flags.StringVar(&opts.curr, "curr", "", "path to the current frame image (required)")
	flags.IntVar(&opts.calc.MaxDistance, "max-distance", opts.calc.MaxDistance, "max scroll distance to search; 0 uses the tracked rectangle's height minus one")
	flags.IntVar(&opts.report.MinHits, "min-hits", opts.report.MinHits, "minimum total claimed line count (summed over its runs) to report a distance")
	flags.StringVar(&opts.progressiveOut, "progressive-out", "", "optional path to re-encode the current frame as a progressive JPEG")
	flags.Var(&opts.roi, "roi", "sub-rectangle \"x,y,w,h\" to track (default: full frame)")
	_ = cmd.MarkFlagRequired("prev")
	_ = cmd.MarkFlagRequired("curr")

	return cmd
}

func runDetect(opts *detectOptions) error {
	prev, err := loadFrame(opts.prev)
	if err != nil {
		return err
	}
	curr, err := loadFrame(opts.curr)
	if err != nil {
		return err
	}
	if prev.w != curr.w || prev.h != curr.h {
		return fmt.Errorf("frame size mismatch: prev %dx%d, curr %dx%d", prev.w, prev.h, curr.w, curr.h)
	}

	x, y, w, h := opts.roi.rectangle(curr)
	detector, err := scrollmotion.New(x, y, w, h)
	if err != nil {
		return errors.Wrap(err, "construct detector")
	}
	if err := detector.Update(prev.pixels, x, y, w, h, prev.stride, bpp); err != nil {
		return errors.Wrap(err, "ingest previous frame")
	}
	if err := detector.Update(curr.pixels, x, y, w, h, curr.stride, bpp); err != nil {
		return errors.Wrap(err, "ingest current frame")
	}

	if err := detector.Calculate(opts.calc.MaxDistance); err != nil {
		return errors.Wrap(err, "calculate")
	}
	scrolls, nonScrolls := detector.GetScrollValues(opts.report.MinHits)
	bestDistance, bestCount := detector.GetBestMatch()

	fmt.Printf("best match: distance=%d lines=%d\n", bestDistance, bestCount)
	for distance, lineDefs := range scrolls {
		for start, length := range lineDefs {
			fmt.Printf("scroll distance=%d rows=[%d,%d)\n", distance, start, start+length)
		}
	}

	reportNonScrollSavings(w, nonScrolls)

	if opts.progressiveOut != "" {
		if err := writeProgressiveJPEG(curr, opts.progressiveOut); err != nil {
			return errors.Wrap(err, "re-encode current frame")
		}
	}
	return nil
}

// reportNonScrollSavings logs the row count and byte count of every
// non-scroll run: the rows a real server still has to re-encode and ship
// after scroll motion has been factored out of a frame's update region.
// w is the tracked rectangle's width, in pixels.
func reportNonScrollSavings(w int, nonScrolls map[int]int) {
	rowBytes := w * bpp
	for start, length := range nonScrolls {
		log.WithFields(logrus.Fields{
			"start":     start,
			"rows":      length,
			"raw_bytes": length * rowBytes,
		}).Info("non-scroll run still needs re-encoding")
	}
}

// writeProgressiveJPEG re-encodes the current frame's RGBA buffer as a
// progressive JPEG, used for the still image a client would request once
// scrolling stops.
func writeProgressiveJPEG(f *frame, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	copy(img.Pix, f.pixels)

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer out.Close()

	return progjpeg.Encode(out, img, &progjpeg.Options{
		Quality:     90,
		Progressive: true,
		ScanScript:  progjpeg.DefaultColorScanScript(),
	})
}
