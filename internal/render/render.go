// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rasterizes single PDF pages to PNG through an external
// renderer binary. Detection and execution go through an executor seam so
// tests can run without the tools installed.
package render

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

const (
	binPdftoppm = "pdftoppm"
	binMutool   = "mutool"
)

// Renderer renders one source page to a PNG file at a given DPI.
type Renderer interface {
	// Name returns the backing binary name.
	Name() string

	// Available reports whether the binary exists on PATH.
	Available() bool

	// RenderPage renders the 1-based page of the PDF at dpi into outDir
	// and returns the path of the PNG it produced.
	RenderPage(pdfPath string, page, dpi int, outDir string) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
}

type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

var defaultExec executor = &osExecutor{}

// pdftoppmRenderer drives poppler's pdftoppm.
type pdftoppmRenderer struct {
	exec executor
}

func (r *pdftoppmRenderer) Name() string { return binPdftoppm }

func (r *pdftoppmRenderer) Available() bool {
	_, err := r.exec.LookPath(binPdftoppm)
	return err == nil
}

func (r *pdftoppmRenderer) RenderPage(pdfPath string, page, dpi int, outDir string) (string, error) {
	prefix := filepath.Join(outDir, fmt.Sprintf("page-%d", page))
	args := []string{
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		"-singlefile",
		pdfPath,
		prefix,
	}
	if err := r.exec.RunSilent(binPdftoppm, args...); err != nil {
		return "", fmt.Errorf("rendering page %d of %s with %s: %w", page, pdfPath, binPdftoppm, err)
	}
	return prefix + ".png", nil
}

// mutoolRenderer drives MuPDF's mutool draw.
type mutoolRenderer struct {
	exec executor
}

func (r *mutoolRenderer) Name() string { return binMutool }

func (r *mutoolRenderer) Available() bool {
	_, err := r.exec.LookPath(binMutool)
	return err == nil
}

func (r *mutoolRenderer) RenderPage(pdfPath string, page, dpi int, outDir string) (string, error) {
	out := filepath.Join(outDir, fmt.Sprintf("page-%d.png", page))
	args := []string{
		"draw",
		"-o", out,
		"-r", strconv.Itoa(dpi),
		pdfPath,
		strconv.Itoa(page),
	}
	if err := r.exec.RunSilent(binMutool, args...); err != nil {
		return "", fmt.Errorf("rendering page %d of %s with %s: %w", page, pdfPath, binMutool, err)
	}
	return out, nil
}

// Detect tries pdftoppm first, then mutool. It returns an error when
// neither renderer is on PATH; callers treat that as a missing capability,
// not a fatal condition.
func Detect() (Renderer, error) {
	return detect(defaultExec)
}

func detect(exec executor) (Renderer, error) {
	poppler := &pdftoppmRenderer{exec: exec}
	if poppler.Available() {
		return poppler, nil
	}

	mupdf := &mutoolRenderer{exec: exec}
	if mupdf.Available() {
		return mupdf, nil
	}

	return nil, fmt.Errorf("no PDF renderer available: neither %s nor %s found on PATH", binPdftoppm, binMutool)
}
