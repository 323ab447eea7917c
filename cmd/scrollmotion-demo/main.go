// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

// Command scrollmotion-demo runs the scroll-motion detector over two real
// image frames and prints the resulting scroll/non-scroll report, the same
// way a remote-desktop server would between two captured screen updates.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("scrollmotion-demo failed")
		os.Exit(1)
	}
}
