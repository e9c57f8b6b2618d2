// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose builds the output document: one grown page per selected
// source page with the content placed by the selected strategy, the border
// stroked on top, and overlays drawn last.
package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/kchsrinadh/pdf-works/internal/border"
	"github.com/kchsrinadh/pdf-works/internal/geometry"
	"github.com/kchsrinadh/pdf-works/internal/overlay"
	"github.com/kchsrinadh/pdf-works/internal/pdfio"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// PageState tracks how far a page got through the pipeline. A page that
// fails at any stage is skipped; the run continues.
type PageState int

const (
	StateSelected PageState = iota
	StateGeometryComputed
	StateContentPlaced
	StateBorderDrawn
	StateOverlaysPlaced
	StateEmitted
	StateSkipped
)

func (s PageState) String() string {
	switch s {
	case StateSelected:
		return "selected"
	case StateGeometryComputed:
		return "geometry-computed"
	case StateContentPlaced:
		return "content-placed"
	case StateBorderDrawn:
		return "border-drawn"
	case StateOverlaysPlaced:
		return "overlays-placed"
	case StateEmitted:
		return "emitted"
	case StateSkipped:
		return "skipped"
	}
	return "unknown"
}

// PageResult records the outcome for one selected source page.
type PageResult struct {
	SourcePage int
	State      PageState
	Err        error
}

// Compositor runs the per-page pipeline and writes the output document.
type Compositor struct {
	req      *types.Request
	doc      *pdfio.DocumentInfo
	pages    []int
	strategy Strategy
	warnings []string

	// OnPage, when set, is called after each selected page is handled.
	OnPage func(done, total int)
}

// New assembles a compositor over an ascending page selection. warnings
// carries anything already collected upstream (mode downgrades, color
// substitutions) into the run summary.
func New(req *types.Request, doc *pdfio.DocumentInfo, pages []int, strategy Strategy, warnings []string) *Compositor {
	return &Compositor{
		req:      req,
		doc:      doc,
		pages:    pages,
		strategy: strategy,
		warnings: warnings,
	}
}

// Run processes every selected page and commits the result to outPath. The
// output is written to a temporary file in the destination directory,
// validated, and renamed into place; a failing run leaves no partial file.
func (c *Compositor) Run(outPath string) (*types.RunSummary, []PageResult, error) {
	start := time.Now()

	summary := &types.RunSummary{
		Input:         c.doc.Path,
		Output:        outPath,
		InputSize:     c.doc.FileSize,
		TotalPages:    c.doc.PageCount,
		SelectedPages: c.pages,
		RequestedMode: c.req.Mode,
		EffectiveMode: c.strategy.Mode(),
		Warnings:      c.warnings,
	}

	borderSpec, warn := border.Normalize(c.req.Border, c.strategy.DashCapable())
	if warn != "" {
		summary.Warnings = append(summary.Warnings, warn)
	}

	canvas := newCanvas()
	measure := func(text, fontFamily string, fontSize float64) float64 {
		fam, style := FontForFamily(fontFamily)
		canvas.SetFont(fam, style, fontSize)
		return canvas.GetStringWidth(text)
	}

	results := make([]PageResult, 0, len(c.pages))
	emitted := 0

	for i, src := range c.pages {
		res := c.composePage(canvas, src, i+1, borderSpec, measure, &emitted, summary)
		results = append(results, res)
		if res.State == StateSkipped {
			summary.PagesSkipped++
			if res.Err != nil {
				summary.PageErrors = append(summary.PageErrors, types.PageError{Page: src, Err: res.Err})
			}
		} else {
			summary.PagesEmitted++
		}
		if c.OnPage != nil {
			c.OnPage(i+1, len(c.pages))
		}
	}

	summary.Duration = time.Since(start)

	if emitted == 0 {
		return summary, results, fmt.Errorf("no pages processed: all %d selected pages failed", len(c.pages))
	}
	if canvas.Err() {
		return summary, results, &types.OutputWriteError{Path: outPath, Err: canvas.Error()}
	}

	tmp := filepath.Join(filepath.Dir(outPath), "."+filepath.Base(outPath)+".tmp")
	if err := canvas.OutputFileAndClose(tmp); err != nil {
		return summary, results, &types.OutputWriteError{Path: outPath, Err: err}
	}

	finished, err := c.strategy.Finish(tmp)
	if err != nil {
		os.Remove(tmp)
		return summary, results, &types.OutputWriteError{Path: outPath, Err: err}
	}

	if err := pdfio.Commit(finished, outPath); err != nil {
		return summary, results, err
	}

	if fi, err := os.Stat(outPath); err == nil {
		summary.OutputSize = fi.Size()
	}
	summary.Duration = time.Since(start)
	return summary, results, nil
}

// composePage runs the page state machine for a single source page. On
// success one output page has been appended to the canvas.
func (c *Compositor) composePage(canvas *gofpdf.Fpdf, src, pageIndex int, borderSpec types.BorderSpec, measure overlay.Measurer, emitted *int, summary *types.RunSummary) PageResult {
	res := PageResult{SourcePage: src, State: StateSelected}

	if src < 1 || src > len(c.doc.PageDims) {
		res.State = StateSkipped
		res.Err = fmt.Errorf("page %d outside document", src)
		return res
	}
	dim := c.doc.PageDims[src-1]

	geo, err := geometry.Compute(dim.Width, dim.Height, c.req.OuterMarginPt, c.req.InnerPaddingPt, c.req.PreserveAspect)
	if err != nil {
		res.State = StateSkipped
		res.Err = err
		return res
	}
	res.State = StateGeometryComputed

	// Prepare the content transfer before the page exists so a failing
	// page is skipped, not emitted blank.
	placement, err := c.strategy.Place(canvas, src, geo)
	if err != nil {
		res.State = StateSkipped
		res.Err = err
		return res
	}

	canvas.AddPageFormat("P", gofpdf.SizeType{Wd: geo.OutputWidth, Ht: geo.OutputHeight})
	*emitted++
	if summary.OutputWidthPt == 0 {
		summary.OutputWidthPt = geo.OutputWidth
		summary.OutputHeightPt = geo.OutputHeight
	}

	// Content first so the border ink stays on top where the two touch.
	placement(canvas, *emitted)
	res.State = StateContentPlaced

	border.Draw(canvas, geo, borderSpec)
	res.State = StateBorderDrawn

	drawText(canvas, geo, overlay.NumberPlacement(c.req.Numbers, pageIndex, len(c.pages), geo, measure))
	drawText(canvas, geo, overlay.TitlePlacement(c.req.Title, pageIndex, c.doc.Title, geo, measure))
	res.State = StateOverlaysPlaced

	res.State = StateEmitted
	return res
}

// drawText renders one resolved overlay placement. The placement's y is the
// baseline in lower-left user space; the canvas wants it from the top.
func drawText(canvas *gofpdf.Fpdf, geo geometry.PageGeometry, p *overlay.TextPlacement) {
	if p == nil {
		return
	}
	fam, style := FontForFamily(p.FontFamily)
	canvas.SetFont(fam, style, p.FontSize)
	canvas.SetTextColor(p.Color.RGB())
	canvas.Text(p.X, geo.OutputHeight-p.Y, p.Text)
}
