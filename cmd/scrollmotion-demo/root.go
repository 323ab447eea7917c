// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     = logrus.WithField("component", "scrollmotion-demo")
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "scrollmotion-demo",
		Short: "Run the scroll-motion detector over two captured frames",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newDetectCommand())
	return root
}
