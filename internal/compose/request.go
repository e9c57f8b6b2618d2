// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"errors"
	"fmt"

	"github.com/kchsrinadh/pdf-works/internal/units"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// BuildRequest resolves the layered configuration into an immutable request:
// enums parsed, lengths converted to points, defaults applied. Invalid
// colors degrade to black with a warning; everything else invalid is a
// fatal configuration error.
func BuildRequest(cfg types.Config) (*types.Request, []string, error) {
	var warnings []string

	unit, err := types.ParseUnit(cfg.Spacing.Unit)
	if err != nil {
		return nil, nil, err
	}
	outerPt, err := units.ToPoints(cfg.Spacing.OuterMargin, unit)
	if err != nil {
		return nil, nil, err
	}
	innerPt, err := units.ToPoints(cfg.Spacing.InnerPadding, unit)
	if err != nil {
		return nil, nil, err
	}

	mode, err := types.ParseQualityMode(cfg.Quality.Mode)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Quality.DPI <= 0 {
		return nil, nil, &types.ConfigError{Field: "quality.dpi", Reason: fmt.Sprintf("must be positive, got %d", cfg.Quality.DPI)}
	}

	borderSpec, err := buildBorderSpec(cfg.Border, &warnings)
	if err != nil {
		return nil, nil, err
	}

	numbers, err := buildNumberSpec(cfg.PageNumbers, &warnings)
	if err != nil {
		return nil, nil, err
	}

	title, err := buildTitleSpec(cfg.Title, &warnings)
	if err != nil {
		return nil, nil, err
	}

	req := &types.Request{
		PageExpr:       cfg.Processing.Pages,
		Mode:           mode,
		DPI:            cfg.Quality.DPI,
		PreserveAspect: cfg.Quality.PreserveRatio,
		Unit:           unit,
		OuterMarginPt:  outerPt,
		InnerPaddingPt: innerPt,
		Border:         borderSpec,
		Numbers:        numbers,
		Title:          title,
		Confirm:        cfg.Processing.Confirm,
	}
	return req, warnings, nil
}

func buildBorderSpec(cfg types.BorderConfig, warnings *[]string) (types.BorderSpec, error) {
	style, err := types.ParseBorderStyle(cfg.Style)
	if err != nil {
		return types.BorderSpec{}, err
	}
	if cfg.Width < 0 {
		return types.BorderSpec{}, &types.ConfigError{Field: "border.width", Reason: fmt.Sprintf("must be >= 0, got %v", cfg.Width)}
	}
	if cfg.CornerRadius < 0 {
		return types.BorderSpec{}, &types.ConfigError{Field: "border.corner_radius", Reason: fmt.Sprintf("must be >= 0, got %v", cfg.CornerRadius)}
	}

	return types.BorderSpec{
		Style:        style,
		WidthPt:      cfg.Width,
		Color:        colorOrBlack(cfg.Color, "border.color", warnings),
		CornerRadius: cfg.CornerRadius,
	}, nil
}

func buildNumberSpec(cfg types.PageNumberConfig, warnings *[]string) (types.NumberSpec, error) {
	if !cfg.Enabled {
		return types.NumberSpec{}, nil
	}

	core, err := buildOverlaySpec("page_numbers", cfg.Format, cfg.Position, cfg.Location,
		cfg.FontSize, cfg.FontColor, cfg.FontFamily, cfg.Margin, warnings)
	if err != nil {
		return types.NumberSpec{}, err
	}

	if cfg.SkipFirst < 0 {
		return types.NumberSpec{}, &types.ConfigError{Field: "page_numbers.skip_first", Reason: "must be >= 0"}
	}
	if cfg.SkipLast < 0 {
		return types.NumberSpec{}, &types.ConfigError{Field: "page_numbers.skip_last", Reason: "must be >= 0"}
	}

	return types.NumberSpec{
		OverlaySpec: core,
		StartNumber: cfg.StartNumber,
		SkipFirst:   cfg.SkipFirst,
		SkipLast:    cfg.SkipLast,
	}, nil
}

func buildTitleSpec(cfg types.TitleConfig, warnings *[]string) (types.TitleSpec, error) {
	if !cfg.Enabled {
		return types.TitleSpec{}, nil
	}

	core, err := buildOverlaySpec("title", cfg.Text, cfg.Position, cfg.Location,
		cfg.FontSize, cfg.FontColor, cfg.FontFamily, cfg.Margin, warnings)
	if err != nil {
		return types.TitleSpec{}, err
	}

	return types.TitleSpec{
		OverlaySpec:   core,
		OnlyFirstPage: cfg.OnlyFirstPage,
	}, nil
}

func buildOverlaySpec(field, format, position, location string, fontSize float64, fontColor, fontFamily string, margin float64, warnings *[]string) (types.OverlaySpec, error) {
	pos, err := types.ParsePosition(position)
	if err != nil {
		return types.OverlaySpec{}, refield(err, field+".position")
	}
	loc, err := types.ParseLocation(location)
	if err != nil {
		return types.OverlaySpec{}, refield(err, field+".location")
	}
	if fontSize <= 0 {
		return types.OverlaySpec{}, &types.ConfigError{Field: field + ".font_size", Reason: fmt.Sprintf("must be positive, got %v", fontSize)}
	}
	if margin < 0 {
		return types.OverlaySpec{}, &types.ConfigError{Field: field + ".margin", Reason: fmt.Sprintf("must be >= 0, got %v", margin)}
	}

	return types.OverlaySpec{
		Enabled:    true,
		Format:     format,
		Position:   pos,
		Location:   loc,
		FontSize:   fontSize,
		FontColor:  colorOrBlack(fontColor, field+".font_color", warnings),
		FontFamily: fontFamily,
		MarginPt:   margin,
	}, nil
}

// refield requalifies a configuration error with the full field path.
func refield(err error, field string) error {
	var ce *types.ConfigError
	if errors.As(err, &ce) {
		return &types.ConfigError{Field: field, Reason: ce.Reason}
	}
	return err
}

// colorOrBlack parses an "R,G,B" color, substituting black with a warning
// when the value is malformed.
func colorOrBlack(s, field string, warnings *[]string) types.Color {
	c, err := types.ParseColor(s)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("invalid %s %q, using black", field, s))
		return types.Color{}
	}
	return c
}
