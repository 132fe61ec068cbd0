// Package prune provides a library to find and remove empty pages from
// DOCX files. Detection runs one of two heuristic policies over the
// document body; which elements actually get removed is decided by a
// pluggable Selector, so the same pipeline serves both the interactive
// CLI and programmatic callers.
package prune

import (
	"log/slog"

	"github.com/tenebris-tech/docxprune/prune/scan"
)

// Options holds configuration for a Pruner.
type Options struct {
	// Policy detects empty regions (default: threshold policy with
	// scan.DefaultMinRun).
	Policy scan.Policy

	// Selector decides which detected regions are removed. The default
	// accepts nothing, so a misconfigured run never deletes content.
	Selector Selector

	// Logger receives debug and progress messages (default: slog.Default()).
	Logger *slog.Logger

	// OnRegionsFound is called with the detected regions before the
	// selector runs.
	OnRegionsFound func(regions []scan.Region)
}

// Option is a functional option for configuring the pruner
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() *Options {
	return &Options{
		Policy:   scan.NewThresholdPolicy(scan.DefaultMinRun),
		Selector: AcceptNone(),
	}
}

// WithPolicy sets the region detection policy
func WithPolicy(p scan.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithThreshold is shorthand for the threshold policy with the given
// minimum run length.
func WithThreshold(min int) Option {
	return func(o *Options) {
		o.Policy = scan.NewThresholdPolicy(min)
	}
}

// WithSelector sets the region selection strategy
func WithSelector(s Selector) Option {
	return func(o *Options) {
		o.Selector = s
	}
}

// WithLogger sets the logger for debug output
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnRegionsFound sets the callback for detected regions
func WithOnRegionsFound(callback func(regions []scan.Region)) Option {
	return func(o *Options) {
		o.OnRegionsFound = callback
	}
}

// Pruner processes one DOCX file per Run call.
type Pruner struct {
	options *Options
}

// New creates a new Pruner with the given options
func New(opts ...Option) *Pruner {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Pruner{options: options}
}

// Result contains the outcome of one processing run.
type Result struct {
	// Path is the processed input file.
	Path string

	// Regions lists everything the policy detected, accepted or not.
	Regions []scan.Region

	// Selected is the number of regions accepted for deletion.
	Selected int

	// Removed is the number of elements actually removed.
	Removed int

	// BackupPath is the backup copy location; set only when Applied.
	BackupPath string

	// Applied reports whether the input file was rewritten. False both
	// when nothing was found and when the selector declined everything;
	// check len(Regions) to tell the two apart.
	Applied bool
}
