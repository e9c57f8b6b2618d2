// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunSummary is the per-run record handed to presentation and to the run
// history store after processing completes.
type RunSummary struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`

	InputSize  int64 `json:"input_size" yaml:"input_size"`
	OutputSize int64 `json:"output_size" yaml:"output_size"`

	// TotalPages is the source document page count; SelectedPages the
	// resolved page selector in ascending order.
	TotalPages    int   `json:"total_pages" yaml:"total_pages"`
	SelectedPages []int `json:"selected_pages" yaml:"selected_pages"`

	PagesEmitted int `json:"pages_emitted" yaml:"pages_emitted"`
	PagesSkipped int `json:"pages_skipped" yaml:"pages_skipped"`

	// RequestedMode is what the caller asked for; EffectiveMode what the
	// run actually used after capability checks.
	RequestedMode QualityMode `json:"requested_mode" yaml:"requested_mode"`
	EffectiveMode QualityMode `json:"effective_mode" yaml:"effective_mode"`

	// First-page resolved geometry, for the settings report.
	OutputWidthPt  float64 `json:"output_width_pt" yaml:"output_width_pt"`
	OutputHeightPt float64 `json:"output_height_pt" yaml:"output_height_pt"`

	Duration time.Duration `json:"duration" yaml:"duration"`

	// Warnings are non-fatal: capability downgrades, style substitutions.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// PageErrors lists pages that failed and were skipped.
	PageErrors []PageError `json:"-" yaml:"-"`
}

// Failed returns the number of pages that failed during the run.
func (s *RunSummary) Failed() int { return len(s.PageErrors) }
