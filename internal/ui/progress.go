// Package ui wraps progressbar/v3 for cmd/gasm's batch verification
// command, in the themed-bar shape bisibesi-spec-recon/internal/ui uses
// for its own multi-phase pipeline, trimmed to the single "Verifying"
// phase batch mode actually needs.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps a themed progressbar.ProgressBar.
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	label string
}

// NewProgressBar creates a progress bar with total steps, writing to stdout.
func NewProgressBar(label string, total int) *ProgressBar {
	return NewProgressBarWithOutput(label, total, os.Stdout)
}

// NewProgressBarWithOutput creates a progress bar writing to output.
func NewProgressBarWithOutput(label string, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", label)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(true),
	)
	return &ProgressBar{bar: bar, label: label}
}

// Add increments the bar by n.
func (pb *ProgressBar) Add(n int) error { return pb.bar.Add(n) }

// Describe updates the bar's trailing description, e.g. the current file name.
func (pb *ProgressBar) Describe(description string) {
	pb.bar.Describe(fmt.Sprintf("[%s] %s", pb.label, description))
}

// Finish completes the bar.
func (pb *ProgressBar) Finish() error { return pb.bar.Finish() }
