// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

import "github.com/sirupsen/logrus"

// log is the package-level debug-only logger. The detector never logs above
// Debug; a caller that never configures logrus output sees nothing from
// this package at all, since logrus defaults to Info.
var log = logrus.WithField("component", "scrollmotion")
