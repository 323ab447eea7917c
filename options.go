// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/scrollmotion

package scrollmotion

// CalculateOptions bundles the knobs Calculate takes, for callers (notably
// the CLI collaborator) that thread a whole option set through one flag set
// rather than call Calculate directly with a bare int.
type CalculateOptions struct {
	// MaxDistance caps the candidate shift range to [-D, D] where
	// D = min(MaxDistance, h-1). 0 selects the default D = h-1.
	MaxDistance int
}

// DefaultCalculateOptions returns options that search the full [-(h-1), h-1]
// distance range.
func DefaultCalculateOptions() *CalculateOptions {
	return &CalculateOptions{MaxDistance: 0}
}

// ReportOptions bundles the knobs GetScrollValues takes.
type ReportOptions struct {
	// MinHits discards any distance whose post-claim total run length
	// falls below this threshold.
	MinHits int
}

// DefaultReportOptions returns options using MinLineCount as the minimum
// hit threshold, matching the matcher's own minimum run length.
func DefaultReportOptions() *ReportOptions {
	return &ReportOptions{MinHits: MinLineCount}
}
