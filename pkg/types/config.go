// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat is the pandoc writer name passed to the filter
// (e.g. "latex", "beamer", "html").
type OutputFormat string

const (
	OutputLaTeX  OutputFormat = "latex"
	OutputBeamer OutputFormat = "beamer"
)

// FilterConfig holds settings for the filter command.
type FilterConfig struct {
	// Format is the output format used when pandoc passes none on the
	// command line. Empty means every node passes through unchanged.
	Format OutputFormat `json:"format" yaml:"format"`

	// Verbose prints a per-filter rewrite summary to stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
