// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package overlay

import (
	"math"
	"testing"

	"github.com/kchsrinadh/pdf-works/internal/geometry"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

func testGeometry(t *testing.T) geometry.PageGeometry {
	t.Helper()
	g, err := geometry.Compute(500, 700, 40, 20, true)
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	return g
}

func numberSpec() types.NumberSpec {
	return types.NumberSpec{
		OverlaySpec: types.OverlaySpec{
			Enabled:    true,
			Format:     "Page {n} of {total}",
			Position:   types.Position{V: types.VBottom, H: types.HCenter},
			Location:   types.LocationOutside,
			FontSize:   10,
			FontFamily: "Helvetica",
			MarginPt:   20,
		},
		StartNumber: 1,
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		displayed int
		total     int
		want      string
	}{
		{name: "default template", format: "Page {n} of {total}", displayed: 5, total: 10, want: "Page 5 of 10"},
		{name: "slash template", format: "{n}/{total}", displayed: 5, total: 10, want: "5/10"},
		{name: "bare number", format: "{n}", displayed: 3, total: 9, want: "3"},
		{name: "repeated tokens", format: "{n}{n}", displayed: 2, total: 4, want: "22"},
		{name: "unknown token passes through", format: "{page} {n}", displayed: 1, total: 2, want: "{page} 1"},
		{name: "no tokens", format: "draft", displayed: 1, total: 2, want: "draft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.format, tt.displayed, tt.total); got != tt.want {
				t.Errorf("FormatNumber(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestNumberPlacementSkipRules(t *testing.T) {
	spec := numberSpec()
	spec.SkipFirst = 2
	spec.SkipLast = 1
	geo := testGeometry(t)

	// 10 pages, skip 2 front and 1 back: pages 3..9 numbered 1..7 of 7.
	total := 10
	wantText := map[int]string{
		3: "Page 1 of 7",
		5: "Page 3 of 7",
		9: "Page 7 of 7",
	}
	for _, suppressed := range []int{1, 2, 10} {
		if p := NumberPlacement(spec, suppressed, total, geo, nil); p != nil {
			t.Errorf("page %d should be suppressed, got %q", suppressed, p.Text)
		}
	}
	for page, want := range wantText {
		p := NumberPlacement(spec, page, total, geo, nil)
		if p == nil {
			t.Fatalf("page %d: placement is nil", page)
		}
		if p.Text != want {
			t.Errorf("page %d: text = %q, want %q", page, p.Text, want)
		}
	}
}

func TestNumberPlacementDisabled(t *testing.T) {
	spec := numberSpec()
	spec.Enabled = false
	if p := NumberPlacement(spec, 1, 5, testGeometry(t), nil); p != nil {
		t.Errorf("disabled overlay produced %q", p.Text)
	}
}

func TestNumberPlacementStartNumber(t *testing.T) {
	spec := numberSpec()
	spec.StartNumber = 100
	p := NumberPlacement(spec, 3, 5, testGeometry(t), nil)
	if p == nil {
		t.Fatal("placement is nil")
	}
	if p.Text != "Page 102 of 5" {
		t.Errorf("text = %q, want Page 102 of 5", p.Text)
	}
}

func TestNumberPlacementOutsideBorder(t *testing.T) {
	spec := numberSpec()
	geo := testGeometry(t)

	p := NumberPlacement(spec, 1, 5, geo, nil)
	if p == nil {
		t.Fatal("placement is nil")
	}

	// bottom-center outside: anchored on the page rect inset by the
	// margin, centered horizontally.
	wantY := geo.PageRect.Y + spec.MarginPt
	if math.Abs(p.Y-wantY) > 1e-9 {
		t.Errorf("y = %v, want %v", p.Y, wantY)
	}
	textW := EstimateWidth(p.Text, spec.FontFamily, spec.FontSize)
	wantX := geo.PageRect.CenterX() - textW/2
	if math.Abs(p.X-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v", p.X, wantX)
	}
	// Outside means below the border path.
	if p.Y >= geo.BorderRect.Y {
		t.Error("outside bottom placement should sit under the border rect")
	}
}

func TestTitlePlacement(t *testing.T) {
	spec := types.TitleSpec{
		OverlaySpec: types.OverlaySpec{
			Enabled:    true,
			Position:   types.Position{V: types.VTop, H: types.HCenter},
			Location:   types.LocationInside,
			FontSize:   12,
			FontFamily: "Helvetica-Bold",
			MarginPt:   25,
		},
		OnlyFirstPage: true,
	}
	geo := testGeometry(t)

	t.Run("metadata fallback", func(t *testing.T) {
		p := TitlePlacement(spec, 1, "Annual Report", geo, nil)
		if p == nil || p.Text != "Annual Report" {
			t.Fatalf("got %+v, want metadata title", p)
		}
	})

	t.Run("configured text wins", func(t *testing.T) {
		s := spec
		s.Format = "Override"
		p := TitlePlacement(s, 1, "Annual Report", geo, nil)
		if p == nil || p.Text != "Override" {
			t.Fatalf("got %+v, want configured text", p)
		}
	})

	t.Run("no text suppresses", func(t *testing.T) {
		if p := TitlePlacement(spec, 1, "", geo, nil); p != nil {
			t.Errorf("got %q, want suppressed", p.Text)
		}
	})

	t.Run("only first page", func(t *testing.T) {
		if p := TitlePlacement(spec, 2, "Annual Report", geo, nil); p != nil {
			t.Errorf("page 2 got %q, want suppressed", p.Text)
		}
	})

	t.Run("every page when allowed", func(t *testing.T) {
		s := spec
		s.OnlyFirstPage = false
		if p := TitlePlacement(s, 2, "Annual Report", geo, nil); p == nil {
			t.Error("page 2 suppressed with OnlyFirstPage off")
		}
	})

	t.Run("inside top below border", func(t *testing.T) {
		p := TitlePlacement(spec, 1, "Annual Report", geo, nil)
		if p == nil {
			t.Fatal("placement is nil")
		}
		anchor := geo.BorderRect.Inset(spec.MarginPt)
		wantY := anchor.Y + anchor.H - spec.FontSize
		if math.Abs(p.Y-wantY) > 1e-9 {
			t.Errorf("y = %v, want %v", p.Y, wantY)
		}
	})
}

func TestPlaceCorners(t *testing.T) {
	geo := testGeometry(t)
	base := types.OverlaySpec{
		Enabled:  true,
		Location: types.LocationInside,
		FontSize: 10,
		MarginPt: 0,
	}

	tests := []struct {
		name string
		pos  types.Position
		getX func(anchor geometry.Rect, textW float64) float64
		getY func(anchor geometry.Rect) float64
	}{
		{
			name: "top-left",
			pos:  types.Position{V: types.VTop, H: types.HLeft},
			getX: func(a geometry.Rect, _ float64) float64 { return a.X },
			getY: func(a geometry.Rect) float64 { return a.Y + a.H - 10 },
		},
		{
			name: "bottom-right",
			pos:  types.Position{V: types.VBottom, H: types.HRight},
			getX: func(a geometry.Rect, w float64) float64 { return a.X + a.W - w },
			getY: func(a geometry.Rect) float64 { return a.Y },
		},
		{
			name: "middle-center",
			pos:  types.Position{V: types.VMiddle, H: types.HCenter},
			getX: func(a geometry.Rect, w float64) float64 { return a.CenterX() - w/2 },
			getY: func(a geometry.Rect) float64 { return a.CenterY() - 5 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			spec.Position = tt.pos
			p := place(spec, "hello", geo, nil)
			anchor := geo.BorderRect
			textW := EstimateWidth("hello", "", 10)
			if math.Abs(p.X-tt.getX(anchor, textW)) > 1e-9 {
				t.Errorf("x = %v, want %v", p.X, tt.getX(anchor, textW))
			}
			if math.Abs(p.Y-tt.getY(anchor)) > 1e-9 {
				t.Errorf("y = %v, want %v", p.Y, tt.getY(anchor))
			}
		})
	}
}
