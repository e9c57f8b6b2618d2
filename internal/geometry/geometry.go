// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geometry computes the placement of source content, border, and
// output page for a single page: the grown output canvas, the border and
// content rectangles, and the content scale and offset.
//
// Coordinates are PDF user space: points, origin at the lower-left corner.
package geometry

import (
	"fmt"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Inset returns the rectangle shrunk by d on all four sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Contains reports whether o lies fully inside r, within tolerance.
func (r Rect) Contains(o Rect) bool {
	const eps = 1e-9
	return o.X >= r.X-eps && o.Y >= r.Y-eps &&
		o.X+o.W <= r.X+r.W+eps && o.Y+o.H <= r.Y+r.H+eps
}

// CenterX and CenterY return the rectangle midpoints.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// PageGeometry is the derived placement for one source page. It is
// recomputed per page because page sizes may vary within a document.
type PageGeometry struct {
	SourceWidth  float64
	SourceHeight float64

	OutputWidth  float64
	OutputHeight float64

	// PageRect is the full output page; BorderRect the border path inset
	// by the outer margin; ContentRect the content area inset further by
	// the inner padding.
	PageRect    Rect
	BorderRect  Rect
	ContentRect Rect

	// ScaleX and ScaleY map source units to placed units. The canvas
	// grows to fit the border, so both are 1.0 under the current layout;
	// they diverge only if a fixed target canvas is ever introduced and
	// the aspect ratio is not preserved.
	ScaleX float64
	ScaleY float64

	// OffsetX and OffsetY are the placement origin of the (scaled) source
	// content on the output page, letterbox remainder centered.
	OffsetX float64
	OffsetY float64
}

// Scale returns the uniform scale factor. With aspect ratio preserved the
// two axis factors are equal by construction.
func (g PageGeometry) Scale() float64 {
	if g.ScaleX < g.ScaleY {
		return g.ScaleX
	}
	return g.ScaleY
}

// Compute derives the geometry for a source page. The output page grows by
// outer+inner on every side; content is never cropped. Source dimensions
// must be positive; a violation rejects the page, not the run.
func Compute(srcW, srcH, outerPt, innerPt float64, preserveAspect bool) (PageGeometry, error) {
	if srcW <= 0 || srcH <= 0 {
		return PageGeometry{}, fmt.Errorf("invalid source page size %.2fx%.2f pt", srcW, srcH)
	}
	if outerPt < 0 || innerPt < 0 {
		return PageGeometry{}, &types.ConfigError{Field: "spacing", Reason: "margins must be >= 0"}
	}

	total := outerPt + innerPt
	outW := srcW + 2*total
	outH := srcH + 2*total

	page := Rect{X: 0, Y: 0, W: outW, H: outH}
	border := page.Inset(outerPt)
	content := border.Inset(innerPt)

	sx := content.W / srcW
	sy := content.H / srcH

	g := PageGeometry{
		SourceWidth:  srcW,
		SourceHeight: srcH,
		OutputWidth:  outW,
		OutputHeight: outH,
		PageRect:     page,
		BorderRect:   border,
		ContentRect:  content,
	}

	if preserveAspect {
		s := sx
		if sy < s {
			s = sy
		}
		g.ScaleX, g.ScaleY = s, s
		g.OffsetX = content.X + (content.W-srcW*s)/2
		g.OffsetY = content.Y + (content.H-srcH*s)/2
	} else {
		g.ScaleX, g.ScaleY = sx, sy
		g.OffsetX = content.X
		g.OffsetY = content.Y
	}

	return g, nil
}
