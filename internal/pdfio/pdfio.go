// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfio reads source document facts (page count, per-page sizes,
// metadata) through pdfcpu and commits finished output atomically.
package pdfio

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// PageDim is one page's media box size in points.
type PageDim struct {
	Width  float64
	Height float64
}

// DocumentInfo holds the source document facts the pipeline needs.
type DocumentInfo struct {
	Path      string
	FileSize  int64
	PageCount int
	PageDims  []PageDim

	// Title is the metadata title, empty when the document has none.
	Title string
}

// ReadInfo opens the PDF at path and collects page count, per-page
// dimensions, and the metadata title.
func ReadInfo(path string) (*DocumentInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("reading page dimensions of %s: %w", path, err)
	}

	info := &DocumentInfo{
		Path:      path,
		FileSize:  fi.Size(),
		PageCount: ctx.PageCount,
		PageDims:  make([]PageDim, len(dims)),
		Title:     ctx.Title,
	}
	for i, d := range dims {
		info.PageDims[i] = PageDim{Width: d.Width, Height: d.Height}
	}
	return info, nil
}

// Commit validates the finished document at tmpPath and renames it into
// place at finalPath. On any failure the temporary file is removed so no
// partially-written output is left behind.
func Commit(tmpPath, finalPath string) error {
	if err := api.ValidateFile(tmpPath, model.NewDefaultConfiguration()); err != nil {
		os.Remove(tmpPath)
		return &types.OutputWriteError{Path: finalPath, Err: fmt.Errorf("output failed validation: %w", err)}
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return &types.OutputWriteError{Path: finalPath, Err: err}
	}
	return nil
}

// FileSizeString formats a byte count for humans.
func FileSizeString(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f%s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1fTB", size)
}
