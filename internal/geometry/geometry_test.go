// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestComputeGrowsCanvas(t *testing.T) {
	g, err := Compute(612, 792, 36, 18, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(g.OutputWidth, 612+2*54) || !almostEqual(g.OutputHeight, 792+2*54) {
		t.Errorf("output size = %vx%v, want %vx%v", g.OutputWidth, g.OutputHeight, 612+2*54, 792+2*54)
	}
	if !almostEqual(g.ScaleX, 1) || !almostEqual(g.ScaleY, 1) {
		t.Errorf("scale = %v,%v, want 1,1", g.ScaleX, g.ScaleY)
	}
	if !almostEqual(g.OffsetX, 54) || !almostEqual(g.OffsetY, 54) {
		t.Errorf("offset = %v,%v, want 54,54", g.OffsetX, g.OffsetY)
	}
}

func TestComputeContainment(t *testing.T) {
	g, err := Compute(595, 842, 20, 10, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !g.PageRect.Contains(g.BorderRect) {
		t.Error("border rect must lie inside the page rect")
	}
	if !g.BorderRect.Contains(g.ContentRect) {
		t.Error("content rect must lie inside the border rect")
	}

	placed := Rect{X: g.OffsetX, Y: g.OffsetY, W: g.SourceWidth * g.ScaleX, H: g.SourceHeight * g.ScaleY}
	if !g.ContentRect.Contains(placed) {
		t.Error("placed content must lie inside the content rect")
	}
}

func TestComputeZeroMargins(t *testing.T) {
	g, err := Compute(200, 100, 0, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(g.OutputWidth, 200) || !almostEqual(g.OutputHeight, 100) {
		t.Errorf("zero margins must not grow the page, got %vx%v", g.OutputWidth, g.OutputHeight)
	}
	if g.PageRect != g.BorderRect || g.BorderRect != g.ContentRect {
		t.Error("zero margins must collapse all three rects")
	}
}

func TestComputeStretch(t *testing.T) {
	g, err := Compute(100, 200, 10, 5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The canvas grows to exactly fit, so even stretch mode works out to 1.
	if !almostEqual(g.ScaleX, 1) || !almostEqual(g.ScaleY, 1) {
		t.Errorf("scale = %v,%v, want 1,1", g.ScaleX, g.ScaleY)
	}
	if !almostEqual(g.OffsetX, g.ContentRect.X) || !almostEqual(g.OffsetY, g.ContentRect.Y) {
		t.Errorf("stretch offsets must sit at the content origin, got %v,%v", g.OffsetX, g.OffsetY)
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   float64
		outer, inner float64
	}{
		{name: "zero width", srcW: 0, srcH: 100, outer: 10, inner: 5},
		{name: "negative height", srcW: 100, srcH: -1, outer: 10, inner: 5},
		{name: "negative outer", srcW: 100, srcH: 100, outer: -1, inner: 5},
		{name: "negative inner", srcW: 100, srcH: 100, outer: 10, inner: -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.srcW, tt.srcH, tt.outer, tt.inner, true); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	in := r.Inset(5)
	want := Rect{X: 15, Y: 25, W: 90, H: 40}
	if in != want {
		t.Errorf("Inset(5) = %+v, want %+v", in, want)
	}
}
