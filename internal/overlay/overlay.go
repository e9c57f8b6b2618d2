// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package overlay computes the text and absolute coordinates of the
// page-number and title overlays, including per-page inclusion rules.
//
// Placements are pure values in PDF user space (points, lower-left origin,
// y at the text baseline); drawing is the compositor's job.
package overlay

import (
	"strconv"
	"strings"

	"github.com/kchsrinadh/pdf-works/internal/geometry"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// Measurer returns the rendered width of text in points for a font and
// size. The compositor passes the canvas's string metrics; tests pass
// EstimateWidth.
type Measurer func(text, fontFamily string, fontSize float64) float64

// EstimateWidth approximates text width at half the font size per rune.
// Good enough for previews and tests when no canvas metrics exist.
func EstimateWidth(text string, _ string, fontSize float64) float64 {
	return float64(len([]rune(text))) * fontSize * 0.5
}

// TextPlacement is one piece of overlay text resolved to a page position.
type TextPlacement struct {
	Text       string
	X, Y       float64
	FontSize   float64
	Color      types.Color
	FontFamily string
}

// FormatNumber expands the page-number template: every {n} becomes the
// displayed number, every {total} the count of numbered pages. Anything
// else, including unrecognized {tokens}, passes through literally.
func FormatNumber(format string, displayed, totalNumbered int) string {
	s := strings.ReplaceAll(format, "{n}", strconv.Itoa(displayed))
	return strings.ReplaceAll(s, "{total}", strconv.Itoa(totalNumbered))
}

// NumberPlacement resolves the page-number overlay for one page, or nil
// when the overlay is suppressed. pageIndex is the 1-based position within
// the processed selection and totalPages the selection size.
func NumberPlacement(spec types.NumberSpec, pageIndex, totalPages int, geo geometry.PageGeometry, measure Measurer) *TextPlacement {
	if !spec.Enabled {
		return nil
	}
	if pageIndex <= spec.SkipFirst || pageIndex > totalPages-spec.SkipLast {
		return nil
	}

	displayed := spec.StartNumber + pageIndex - spec.SkipFirst - 1
	totalNumbered := totalPages - spec.SkipFirst - spec.SkipLast
	text := FormatNumber(spec.Format, displayed, totalNumbered)
	if text == "" {
		return nil
	}

	return place(spec.OverlaySpec, text, geo, measure)
}

// TitlePlacement resolves the title overlay for one page, or nil when
// suppressed. Text resolution order: configured text, then the document
// metadata title, else nothing is drawn.
func TitlePlacement(spec types.TitleSpec, pageIndex int, docTitle string, geo geometry.PageGeometry, measure Measurer) *TextPlacement {
	if !spec.Enabled {
		return nil
	}
	if spec.OnlyFirstPage && pageIndex != 1 {
		return nil
	}

	text := spec.Format
	if text == "" {
		text = docTitle
	}
	if text == "" {
		return nil
	}

	return place(spec.OverlaySpec, text, geo, measure)
}

// place anchors text on the border rectangle (inside) or the page
// rectangle (outside), inset by the overlay margin, with extent-aware
// alignment on both axes.
func place(spec types.OverlaySpec, text string, geo geometry.PageGeometry, measure Measurer) *TextPlacement {
	if measure == nil {
		measure = EstimateWidth
	}

	anchor := geo.PageRect
	if spec.Location == types.LocationInside {
		anchor = geo.BorderRect
	}
	anchor = anchor.Inset(spec.MarginPt)

	textW := measure(text, spec.FontFamily, spec.FontSize)
	textH := spec.FontSize

	var x float64
	switch spec.Position.H {
	case types.HLeft:
		x = anchor.X
	case types.HRight:
		x = anchor.X + anchor.W - textW
	default:
		x = anchor.CenterX() - textW/2
	}

	var y float64
	switch spec.Position.V {
	case types.VTop:
		y = anchor.Y + anchor.H - textH
	case types.VBottom:
		y = anchor.Y
	default:
		y = anchor.CenterY() - textH/2
	}

	return &TextPlacement{
		Text:       text,
		X:          x,
		Y:          y,
		FontSize:   spec.FontSize,
		Color:      spec.FontColor,
		FontFamily: spec.FontFamily,
	}
}
