// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/kchsrinadh/pdf-works/internal/geometry"
	"github.com/kchsrinadh/pdf-works/internal/render"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// Placement finishes a prepared content transfer onto the current output
// page. outPage is the 1-based page number in the output document.
type Placement func(canvas *gofpdf.Fpdf, outPage int)

// Strategy transfers source page content into the content rectangle. One
// strategy is selected per run and reused for every page.
type Strategy interface {
	// Mode returns the quality mode the strategy implements.
	Mode() types.QualityMode

	// DashCapable reports whether the border may use dash patterns under
	// this strategy.
	DashCapable() bool

	// Place prepares the transfer of srcPage and returns the placement
	// to apply once the output page exists. Preparation does the
	// fallible work so a failing page can be skipped before it is
	// emitted.
	Place(canvas *gofpdf.Fpdf, srcPage int, geo geometry.PageGeometry) (Placement, error)

	// Finish post-processes the written document at tmpPath and returns
	// the path holding the completed result (possibly tmpPath itself).
	Finish(tmpPath string) (string, error)
}

// Capabilities describes what the environment can do for this input.
type Capabilities struct {
	// VectorEmbed is true when the source pages can be re-embedded as
	// form objects (template import succeeded on a probe page).
	VectorEmbed bool

	// Rasterize is true when an external page renderer is on PATH.
	Rasterize    bool
	RendererName string
}

// Select maps the requested quality mode onto what the capabilities
// support. It is a pure function; every downgrade yields exactly one
// warning naming the missing capability.
func Select(requested types.QualityMode, caps Capabilities) (types.QualityMode, []string) {
	switch requested {
	case types.ModeOriginal:
		if caps.VectorEmbed {
			return types.ModeOriginal, nil
		}
		ce := &types.CapabilityError{Requested: requested, Missing: "content-stream embedding failed for this document"}
		return types.ModeStandard, []string{ce.Error() + "; using standard"}
	case types.ModeHigh, types.ModeMedium:
		if caps.Rasterize {
			return requested, nil
		}
		ce := &types.CapabilityError{Requested: requested, Missing: "no PDF renderer (pdftoppm or mutool) on PATH"}
		return types.ModeStandard, []string{ce.Error() + "; using standard"}
	default:
		return types.ModeStandard, nil
	}
}

// Detect probes the environment and the input document.
func Detect(srcPath string, probePage int) Capabilities {
	caps := Capabilities{
		VectorEmbed: probeVectorEmbed(srcPath, probePage),
	}
	if r, err := render.Detect(); err == nil {
		caps.Rasterize = true
		caps.RendererName = r.Name()
	}
	return caps
}

// probeVectorEmbed attempts a template import of one page into a throwaway
// canvas. The importer signals unsupported documents by panicking, so the
// probe recovers.
func probeVectorEmbed(srcPath string, page int) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	doc := newCanvas()
	doc.AddPage()
	imp := gofpdi.NewImporter()
	imp.ImportPage(doc, srcPath, page, "/MediaBox")
	return doc.Ok()
}

// newCanvas creates an empty point-unit document with layout automation
// disabled; every page is placed at absolute coordinates.
func newCanvas() *gofpdf.Fpdf {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: 595.28, Ht: 841.89},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	return doc
}

// NewStrategy constructs the strategy for an already-selected effective
// mode.
func NewStrategy(effective types.QualityMode, srcPath string, dpi int, renderer render.Renderer) (Strategy, error) {
	switch effective {
	case types.ModeOriginal:
		return &vectorStrategy{srcPath: srcPath, importer: gofpdi.NewImporter()}, nil
	case types.ModeHigh, types.ModeMedium:
		if renderer == nil {
			var err error
			renderer, err = render.Detect()
			if err != nil {
				return nil, err
			}
		}
		workDir, err := os.MkdirTemp("", "pdf-works-render-")
		if err != nil {
			return nil, fmt.Errorf("creating render scratch directory: %w", err)
		}
		return &rasterStrategy{
			mode:     effective,
			srcPath:  srcPath,
			renderer: renderer,
			dpi:      effectiveDPI(effective, dpi),
			workDir:  workDir,
		}, nil
	case types.ModeStandard:
		return &fallbackStrategy{srcPath: srcPath, stamps: map[int]*model.Watermark{}}, nil
	}
	return nil, fmt.Errorf("unknown quality mode %q", effective)
}

// effectiveDPI clamps the configured DPI to a sane render range and caps
// the medium mode at 150.
func effectiveDPI(mode types.QualityMode, dpi int) int {
	if dpi < 72 {
		dpi = 72
	}
	if dpi > 600 {
		dpi = 600
	}
	if mode == types.ModeMedium && dpi > 150 {
		dpi = 150
	}
	return dpi
}

// vectorStrategy re-embeds the source content stream as a scaled and
// translated form object. No rasterization happens; text and vectors stay
// intact.
type vectorStrategy struct {
	srcPath  string
	importer *gofpdi.Importer
}

func (s *vectorStrategy) Mode() types.QualityMode { return types.ModeOriginal }

func (s *vectorStrategy) DashCapable() bool { return true }

func (s *vectorStrategy) Place(canvas *gofpdf.Fpdf, srcPage int, geo geometry.PageGeometry) (p Placement, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("importing page %d of %s: %v", srcPage, s.srcPath, r)
		}
	}()

	tpl := s.importer.ImportPage(canvas, s.srcPath, srcPage, "/MediaBox")

	w := geo.SourceWidth * geo.ScaleX
	h := geo.SourceHeight * geo.ScaleY
	x := geo.OffsetX
	yTop := geo.OutputHeight - geo.OffsetY - h

	return func(canvas *gofpdf.Fpdf, _ int) {
		s.importer.UseImportedTemplate(canvas, tpl, x, yTop, w, h)
	}, nil
}

func (s *vectorStrategy) Finish(tmpPath string) (string, error) { return tmpPath, nil }

// rasterStrategy renders each source page to a pixel buffer at a fixed DPI
// and places the bitmap. Deterministic for a given DPI and source page.
type rasterStrategy struct {
	mode     types.QualityMode
	srcPath  string
	renderer render.Renderer
	dpi      int
	workDir  string
}

func (s *rasterStrategy) Mode() types.QualityMode { return s.mode }

func (s *rasterStrategy) DashCapable() bool { return true }

func (s *rasterStrategy) Place(canvas *gofpdf.Fpdf, srcPage int, geo geometry.PageGeometry) (Placement, error) {
	png, err := s.renderer.RenderPage(s.srcPath, srcPage, s.dpi, s.workDir)
	if err != nil {
		return nil, err
	}

	w := geo.SourceWidth * geo.ScaleX
	h := geo.SourceHeight * geo.ScaleY
	x := geo.OffsetX
	yTop := geo.OutputHeight - geo.OffsetY - h
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	return func(canvas *gofpdf.Fpdf, _ int) {
		canvas.ImageOptions(png, x, yTop, w, h, false, opts, 0, "")
	}, nil
}

func (s *rasterStrategy) Finish(tmpPath string) (string, error) {
	os.RemoveAll(s.workDir)
	return tmpPath, nil
}

// fallbackStrategy merges the source pages into the written frame document
// with pdfcpu's page stamping, the baseline capability that is always
// available. Content goes underneath the frame ink.
type fallbackStrategy struct {
	srcPath string
	stamps  map[int]*model.Watermark
}

func (s *fallbackStrategy) Mode() types.QualityMode { return types.ModeStandard }

func (s *fallbackStrategy) DashCapable() bool { return true }

func (s *fallbackStrategy) Place(_ *gofpdf.Fpdf, srcPage int, geo geometry.PageGeometry) (Placement, error) {
	desc := fmt.Sprintf("pos:bl, off:%.2f %.2f, scale:%.4f abs, rot:0", geo.OffsetX, geo.OffsetY, geo.Scale())
	wm, err := pdfapi.PDFWatermark(fmt.Sprintf("%s:%d", s.srcPath, srcPage), desc, false, false, pdftypes.POINTS)
	if err != nil {
		return nil, fmt.Errorf("preparing content stamp for page %d: %w", srcPage, err)
	}

	return func(_ *gofpdf.Fpdf, outPage int) {
		s.stamps[outPage] = wm
	}, nil
}

func (s *fallbackStrategy) Finish(tmpPath string) (string, error) {
	if len(s.stamps) == 0 {
		return tmpPath, nil
	}

	stamped := tmpPath + ".stamped"
	if err := pdfapi.AddWatermarksMapFile(tmpPath, stamped, s.stamps, nil); err != nil {
		return "", fmt.Errorf("merging source content: %w", err)
	}
	os.Remove(tmpPath)
	return stamped, nil
}
