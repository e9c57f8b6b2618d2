// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package border draws the page border onto the output canvas.
package border

import (
	"fmt"

	"github.com/kchsrinadh/pdf-works/internal/geometry"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// maxCornerRadiusPt caps rounded corners regardless of page size.
const maxCornerRadiusPt = 50

// Dash patterns in points: on-length, off-length.
var (
	dashPattern  = []float64{6, 3}
	dotPattern   = []float64{2, 2}
	solidPattern = []float64{}
)

// Canvas is the drawing surface the renderer needs. *gofpdf.Fpdf satisfies
// it; its coordinate origin is the top-left corner with y growing down.
type Canvas interface {
	SetLineWidth(width float64)
	SetDrawColor(r, g, b int)
	SetDashPattern(dashArray []float64, dashPhase float64)
	Rect(x, y, w, h float64, styleStr string)
	RoundedRect(x, y, w, h, r float64, corners string, stylestr string)
}

// Normalize applies the documented style restriction: dashed and dotted
// need a strategy whose canvas supports dash patterns. When it does not,
// the style falls back to solid and a warning is returned.
func Normalize(spec types.BorderSpec, dashCapable bool) (types.BorderSpec, string) {
	if dashCapable || (spec.Style != types.StyleDashed && spec.Style != types.StyleDotted) {
		return spec, ""
	}
	warning := fmt.Sprintf("%s style unavailable, used solid", spec.Style)
	spec.Style = types.StyleSolid
	return spec, warning
}

// ClampRadius keeps the corner radius from self-intersecting: at most half
// of either border side, and never above the fixed cap.
func ClampRadius(radius, w, h float64) float64 {
	if radius < 0 {
		return 0
	}
	for _, limit := range []float64{w / 2, h / 2, maxCornerRadiusPt} {
		if radius > limit {
			radius = limit
		}
	}
	return radius
}

// Draw strokes the border at the geometry's border rectangle. It is a
// side effect on the canvas; a zero width draws nothing.
func Draw(c Canvas, geo geometry.PageGeometry, spec types.BorderSpec) {
	if spec.WidthPt <= 0 {
		return
	}

	r := geo.BorderRect
	// Flip to the canvas origin (top-left, y down).
	x := r.X
	y := geo.OutputHeight - r.Y - r.H

	c.SetLineWidth(spec.WidthPt)
	c.SetDrawColor(spec.Color.RGB())

	switch spec.Style {
	case types.StyleRounded:
		radius := ClampRadius(spec.CornerRadius, r.W, r.H)
		c.RoundedRect(x, y, r.W, r.H, radius, "1234", "D")
	case types.StyleDashed:
		c.SetDashPattern(dashPattern, 0)
		c.Rect(x, y, r.W, r.H, "D")
		c.SetDashPattern(solidPattern, 0)
	case types.StyleDotted:
		c.SetDashPattern(dotPattern, 0)
		c.Rect(x, y, r.W, r.H, "D")
		c.SetDashPattern(solidPattern, 0)
	default:
		c.Rect(x, y, r.W, r.H, "D")
	}
}
