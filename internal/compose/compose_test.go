// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/kchsrinadh/pdf-works/internal/geometry"
	"github.com/kchsrinadh/pdf-works/internal/pdfio"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// stubStrategy draws nothing and can be told to fail specific pages.
type stubStrategy struct {
	failPage map[int]bool
	placed   []int
}

func (s *stubStrategy) Mode() types.QualityMode { return types.ModeStandard }

func (s *stubStrategy) DashCapable() bool { return true }

func (s *stubStrategy) Place(_ *gofpdf.Fpdf, srcPage int, _ geometry.PageGeometry) (Placement, error) {
	if s.failPage[srcPage] {
		return nil, errors.New("content transfer failed")
	}
	return func(_ *gofpdf.Fpdf, _ int) {
		s.placed = append(s.placed, srcPage)
	}, nil
}

func (s *stubStrategy) Finish(tmpPath string) (string, error) { return tmpPath, nil }

func testDoc() *pdfio.DocumentInfo {
	return &pdfio.DocumentInfo{
		Path:      "in.pdf",
		FileSize:  1024,
		PageCount: 3,
		PageDims: []pdfio.PageDim{
			{Width: 612, Height: 792},
			{Width: 612, Height: 792},
			{Width: 300, Height: 300},
		},
		Title: "Test Document",
	}
}

func testRequest(t *testing.T) *types.Request {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.Processing.Confirm = false
	req, _, err := BuildRequest(cfg)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return req
}

func TestRunWritesOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	req := testRequest(t)
	strategy := &stubStrategy{}

	comp := New(req, testDoc(), []int{1, 2, 3}, strategy, []string{"carried warning"})

	var progress []int
	comp.OnPage = func(done, total int) { progress = append(progress, done) }

	summary, results, err := comp.Run(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if summary.PagesEmitted != 3 || summary.PagesSkipped != 0 {
		t.Errorf("emitted/skipped = %d/%d, want 3/0", summary.PagesEmitted, summary.PagesSkipped)
	}
	if summary.OutputSize <= 0 {
		t.Error("output size not recorded")
	}
	if summary.OutputWidthPt != 612+2*54 || summary.OutputHeightPt != 792+2*54 {
		t.Errorf("first page size = %vx%v", summary.OutputWidthPt, summary.OutputHeightPt)
	}
	if len(summary.Warnings) != 1 || summary.Warnings[0] != "carried warning" {
		t.Errorf("warnings = %v", summary.Warnings)
	}
	if summary.EffectiveMode != types.ModeStandard {
		t.Errorf("effective mode = %v, want standard", summary.EffectiveMode)
	}

	for i, r := range results {
		if r.State != StateEmitted {
			t.Errorf("page %d state = %v, want emitted", i+1, r.State)
		}
	}
	if len(strategy.placed) != 3 {
		t.Errorf("placed %d pages, want 3", len(strategy.placed))
	}
	if len(progress) != 3 || progress[2] != 3 {
		t.Errorf("progress callbacks = %v, want [1 2 3]", progress)
	}
}

func TestRunSkipsFailedPage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	strategy := &stubStrategy{failPage: map[int]bool{2: true}}

	comp := New(testRequest(t), testDoc(), []int{1, 2, 3}, strategy, nil)
	summary, results, err := comp.Run(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.PagesEmitted != 2 || summary.PagesSkipped != 1 {
		t.Errorf("emitted/skipped = %d/%d, want 2/1", summary.PagesEmitted, summary.PagesSkipped)
	}
	if summary.Failed() != 1 || summary.PageErrors[0].Page != 2 {
		t.Errorf("page errors = %v", summary.PageErrors)
	}
	if results[1].State != StateSkipped {
		t.Errorf("page 2 state = %v, want skipped", results[1].State)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRunAllPagesFail(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	strategy := &stubStrategy{failPage: map[int]bool{1: true, 2: true, 3: true}}

	comp := New(testRequest(t), testDoc(), []int{1, 2, 3}, strategy, nil)
	summary, _, err := comp.Run(out)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if summary.PagesSkipped != 3 {
		t.Errorf("skipped = %d, want 3", summary.PagesSkipped)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("failed run must not leave an output file")
	}
}

func TestRunWithOverlays(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")

	cfg := types.DefaultConfig()
	cfg.Processing.Confirm = false
	cfg.PageNumbers.Enabled = true
	cfg.Title.Enabled = true
	req, _, err := BuildRequest(cfg)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	comp := New(req, testDoc(), []int{1, 2, 3}, &stubStrategy{}, nil)
	summary, _, err := comp.Run(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.PagesEmitted != 3 {
		t.Errorf("emitted = %d, want 3", summary.PagesEmitted)
	}
}

func TestPageStateString(t *testing.T) {
	states := map[PageState]string{
		StateSelected:         "selected",
		StateGeometryComputed: "geometry-computed",
		StateContentPlaced:    "content-placed",
		StateBorderDrawn:      "border-drawn",
		StateOverlaysPlaced:   "overlays-placed",
		StateEmitted:          "emitted",
		StateSkipped:          "skipped",
	}
	for state, want := range states {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
