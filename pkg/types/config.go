// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration surface and shared value types for
// pdf-works: the YAML configuration tree, the resolved processing request,
// and the error taxonomy used across the pipeline.
package types

// BorderConfig configures the drawn border.
type BorderConfig struct {
	// Style is one of solid, rounded, dashed, dotted.
	Style string `json:"style" yaml:"style" mapstructure:"style"`

	// Width is the border line width in points.
	Width float64 `json:"width" yaml:"width" mapstructure:"width"`

	// Color is the border color as "R,G,B" with each channel 0-255.
	Color string `json:"color" yaml:"color" mapstructure:"color"`

	// CornerRadius is the corner radius in points, used only by the
	// rounded style.
	CornerRadius float64 `json:"corner_radius" yaml:"corner_radius" mapstructure:"corner_radius"`
}

// SpacingConfig configures the space added around the source content.
type SpacingConfig struct {
	// OuterMargin is the space from the page edge to the border,
	// expressed in Unit.
	OuterMargin float64 `json:"outer_margin" yaml:"outer_margin" mapstructure:"outer_margin"`

	// InnerPadding is the space from the border to the content,
	// expressed in Unit.
	InnerPadding float64 `json:"inner_padding" yaml:"inner_padding" mapstructure:"inner_padding"`

	// Unit is the measurement unit for margins: inch, mm, or pt.
	Unit string `json:"unit" yaml:"unit" mapstructure:"unit"`
}

// QualityConfig configures the content-transfer strategy.
type QualityConfig struct {
	// Mode selects the strategy: original, high, medium, or standard.
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`

	// DPI is the render resolution for the high and medium modes.
	DPI int `json:"dpi" yaml:"dpi" mapstructure:"dpi"`

	// PreserveRatio keeps the content aspect ratio when scaling.
	PreserveRatio bool `json:"preserve_ratio" yaml:"preserve_ratio" mapstructure:"preserve_ratio"`
}

// PageNumberConfig configures the page-number overlay.
type PageNumberConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Format is the number template. {n} expands to the displayed number
	// and {total} to the count of numbered pages. Unrecognized tokens
	// pass through literally.
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Position is one of the nine anchors, e.g. "bottom-center".
	Position string `json:"position" yaml:"position" mapstructure:"position"`

	// Location places the text inside or outside the border.
	Location string `json:"location" yaml:"location" mapstructure:"location"`

	FontSize   float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size"`
	FontColor  string  `json:"font_color" yaml:"font_color" mapstructure:"font_color"`
	FontFamily string  `json:"font_family" yaml:"font_family" mapstructure:"font_family"`

	// Margin is the distance in points from the anchoring edge.
	Margin float64 `json:"margin" yaml:"margin" mapstructure:"margin"`

	// StartNumber is the number displayed on the first numbered page.
	StartNumber int `json:"start_number" yaml:"start_number" mapstructure:"start_number"`

	// SkipFirst and SkipLast leave that many pages unnumbered at the
	// start and end of the selection.
	SkipFirst int `json:"skip_first" yaml:"skip_first" mapstructure:"skip_first"`
	SkipLast  int `json:"skip_last" yaml:"skip_last" mapstructure:"skip_last"`
}

// TitleConfig configures the title overlay.
type TitleConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Text is the title to draw. When empty, the document metadata title
	// is used; when that is empty too, the overlay is suppressed.
	Text string `json:"text" yaml:"text" mapstructure:"text"`

	Position   string  `json:"position" yaml:"position" mapstructure:"position"`
	Location   string  `json:"location" yaml:"location" mapstructure:"location"`
	FontSize   float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size"`
	FontColor  string  `json:"font_color" yaml:"font_color" mapstructure:"font_color"`
	FontFamily string  `json:"font_family" yaml:"font_family" mapstructure:"font_family"`
	Margin     float64 `json:"margin" yaml:"margin" mapstructure:"margin"`

	// OnlyFirstPage draws the title on the first processed page only.
	OnlyFirstPage bool `json:"only_first_page" yaml:"only_first_page" mapstructure:"only_first_page"`
}

// ProcessingConfig configures run-level behavior.
type ProcessingConfig struct {
	// Pages is the page selector: "all" or a comma-separated list of
	// single pages and lo-hi ranges, e.g. "1-3,7,9-10".
	Pages string `json:"pages" yaml:"pages" mapstructure:"pages"`

	// Confirm asks for a keypress before processing starts.
	Confirm bool `json:"confirm" yaml:"confirm" mapstructure:"confirm"`
}

// Config is the full pdf-works configuration tree as it appears in the YAML
// config file. Built-in defaults are layered under the file, environment,
// and CLI flags by viper.
type Config struct {
	Border      BorderConfig     `json:"border" yaml:"border" mapstructure:"border"`
	Spacing     SpacingConfig    `json:"spacing" yaml:"spacing" mapstructure:"spacing"`
	Quality     QualityConfig    `json:"quality" yaml:"quality" mapstructure:"quality"`
	PageNumbers PageNumberConfig `json:"page_numbers" yaml:"page_numbers" mapstructure:"page_numbers"`
	Title       TitleConfig      `json:"title" yaml:"title" mapstructure:"title"`
	Processing  ProcessingConfig `json:"processing" yaml:"processing" mapstructure:"processing"`
}

// DefaultConfig returns the built-in defaults: a one-point rounded black
// border half an inch from the page edge with a quarter inch of padding,
// original quality, overlays disabled, all pages, confirmation on.
func DefaultConfig() Config {
	return Config{
		Border: BorderConfig{
			Style:        "rounded",
			Width:        1,
			Color:        "0,0,0",
			CornerRadius: 10,
		},
		Spacing: SpacingConfig{
			OuterMargin:  0.5,
			InnerPadding: 0.25,
			Unit:         "inch",
		},
		Quality: QualityConfig{
			Mode:          "original",
			DPI:           300,
			PreserveRatio: true,
		},
		PageNumbers: PageNumberConfig{
			Enabled:     false,
			Format:      "Page {n} of {total}",
			Position:    "bottom-center",
			Location:    "outside",
			FontSize:    10,
			FontColor:   "0,0,0",
			FontFamily:  "Helvetica",
			Margin:      20,
			StartNumber: 1,
		},
		Title: TitleConfig{
			Enabled:       false,
			Position:      "top-center",
			Location:      "inside",
			FontSize:      12,
			FontColor:     "0,0,0",
			FontFamily:    "Helvetica-Bold",
			Margin:        25,
			OnlyFirstPage: true,
		},
		Processing: ProcessingConfig{
			Pages:   "all",
			Confirm: true,
		},
	}
}
