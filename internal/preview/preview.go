// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders the pre-run terminal report: the resolved
// settings and an ASCII sketch of the border layout.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kchsrinadh/pdf-works/internal/pdfio"
	"github.com/kchsrinadh/pdf-works/internal/units"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// Sketch grid size in characters.
const (
	gridWidth  = 60
	gridHeight = 30
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Settings formats the resolved run settings for display before processing
// starts.
func Settings(req *types.Request, doc *pdfio.DocumentInfo, pages []int, output string) string {
	var b strings.Builder
	rule := strings.Repeat("=", gridWidth)

	b.WriteString(rule + "\n")
	b.WriteString(headingStyle.Render("pdf-works: settings to be applied") + "\n")
	b.WriteString(rule + "\n")

	b.WriteString(sectionStyle.Render("Files") + "\n")
	fmt.Fprintf(&b, "  input:  %s (%s)\n", doc.Path, pdfio.FileSizeString(doc.FileSize))
	fmt.Fprintf(&b, "  output: %s\n", output)

	b.WriteString(sectionStyle.Render("Pages") + "\n")
	fmt.Fprintf(&b, "  %s\n", describePages(pages, doc.PageCount))

	b.WriteString(sectionStyle.Render("Spacing") + "\n")
	fmt.Fprintf(&b, "  outer margin:  %.2f %s (%.1f pt)\n",
		units.FromPoints(req.OuterMarginPt, req.Unit), req.Unit, req.OuterMarginPt)
	fmt.Fprintf(&b, "  inner padding: %.2f %s (%.1f pt)\n",
		units.FromPoints(req.InnerPaddingPt, req.Unit), req.Unit, req.InnerPaddingPt)

	b.WriteString(sectionStyle.Render("Border") + "\n")
	fmt.Fprintf(&b, "  style: %s\n", req.Border.Style)
	fmt.Fprintf(&b, "  width: %g pt\n", req.Border.WidthPt)
	if req.Border.Style == types.StyleRounded {
		fmt.Fprintf(&b, "  corner radius: %g pt\n", req.Border.CornerRadius)
	}
	fmt.Fprintf(&b, "  color: RGB(%s)\n", req.Border.Color)

	if req.Numbers.Enabled {
		b.WriteString(sectionStyle.Render("Page numbers") + "\n")
		fmt.Fprintf(&b, "  format:   %s\n", req.Numbers.Format)
		fmt.Fprintf(&b, "  position: %s (%s border)\n", req.Numbers.Position, req.Numbers.Location)
		fmt.Fprintf(&b, "  font:     %s, %gpt\n", req.Numbers.FontFamily, req.Numbers.FontSize)
	}

	if req.Title.Enabled {
		b.WriteString(sectionStyle.Render("Title") + "\n")
		text := req.Title.Format
		if text == "" {
			text = "[from PDF metadata]"
		}
		fmt.Fprintf(&b, "  text:     %s\n", text)
		fmt.Fprintf(&b, "  position: %s (%s border)\n", req.Title.Position, req.Title.Location)
		fmt.Fprintf(&b, "  font:     %s, %gpt\n", req.Title.FontFamily, req.Title.FontSize)
		if req.Title.OnlyFirstPage {
			b.WriteString("  display:  first page only\n")
		}
	}

	b.WriteString(sectionStyle.Render("Quality") + "\n")
	fmt.Fprintf(&b, "  mode: %s\n", req.Mode)
	if req.Mode == types.ModeHigh || req.Mode == types.ModeMedium {
		fmt.Fprintf(&b, "  dpi:  %d\n", req.DPI)
	}
	fmt.Fprintf(&b, "  preserve aspect ratio: %s\n", yesNo(req.PreserveAspect))

	b.WriteString(rule + "\n")
	return b.String()
}

// describePages summarizes the selection, eliding long explicit lists.
func describePages(pages []int, totalPages int) string {
	if len(pages) == totalPages {
		return fmt.Sprintf("all pages (1-%d)", totalPages)
	}

	strs := make([]string, len(pages))
	for i, p := range pages {
		strs[i] = strconv.Itoa(p)
	}
	if len(strs) > 10 {
		strs = append(append(strs[:3:3], "..."), strs[len(strs)-3:]...)
	}
	return fmt.Sprintf("%s (%d of %d pages)", strings.Join(strs, ", "), len(pages), totalPages)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Sketch draws a character-grid preview of the border layout, scaled from
// the first selected page's dimensions.
func Sketch(req *types.Request, first pdfio.PageDim) string {
	minDim := first.Width
	if first.Height < minDim {
		minDim = first.Height
	}
	if minDim <= 0 {
		minDim = 1
	}

	outerRatio := req.OuterMarginPt / minDim
	innerRatio := req.InnerPaddingPt / minDim

	outer := int(outerRatio * gridHeight)
	if outer < 2 {
		outer = 2
	}
	if outer > 8 {
		outer = 8
	}
	pad := int(innerRatio * 20)
	if pad < 1 {
		pad = 1
	}
	if pad > 4 {
		pad = 4
	}
	inner := outer + pad

	colorName, borderChar := describeColor(req.Border.Color)
	grid := buildGrid(outer, inner, req.Border.Style, borderChar, req.PreserveAspect)

	var b strings.Builder
	b.WriteString(headingStyle.Render("Preview of border layout") + "\n\n")
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(req.Border.Color.Hex()))
	for _, line := range grid {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + faintStyle.Render("legend:") + "\n")
	b.WriteString("  ─│ page edges\n")
	if req.Border.Style == types.StyleRounded {
		fmt.Fprintf(&b, "  %s border (%s, rounded corners)\n", borderStyle.Render(borderChar), colorName)
	} else {
		fmt.Fprintf(&b, "  %s border (%s, %s)\n", borderStyle.Render(borderChar), colorName, req.Border.Style)
	}
	b.WriteString("  · content area boundary\n")
	b.WriteString("  outer margin: from page edge to border\n")
	b.WriteString("  inner padding: from border to content\n")
	return b.String()
}

// buildGrid renders the sketch rows. outer is the border inset and inner
// the content inset, both in grid cells.
func buildGrid(outer, inner int, style types.BorderStyle, borderChar string, preserveAspect bool) []string {
	hDash, vDash := "─", "┆"
	if style == types.StyleDotted {
		hDash, vDash = "·", "·"
	}

	contentCaption := "PDF CONTENT"
	scaleCaption := "← preserved →"
	if !preserveAspect {
		scaleCaption = "← scaled →"
	}

	lines := make([]string, 0, gridHeight)
	for y := 0; y < gridHeight; y++ {
		var line strings.Builder
		for x := 0; x < gridWidth; x++ {
			line.WriteString(cellAt(x, y, outer, inner, style, borderChar, hDash, vDash, contentCaption, scaleCaption))
		}
		lines = append(lines, line.String())
	}
	return lines
}

func cellAt(x, y, outer, inner int, style types.BorderStyle, borderChar, hDash, vDash, contentCaption, scaleCaption string) string {
	onHBorder := (y == outer || y == gridHeight-outer-1) && x > outer && x < gridWidth-outer-1
	onVBorder := (x == outer || x == gridWidth-outer-1) && y > outer && y < gridHeight-outer-1

	switch {
	case y == 0 || y == gridHeight-1:
		return "─"
	case x == 0 || x == gridWidth-1:
		return "│"

	case style == types.StyleRounded && y == outer && x == outer:
		return "╭"
	case style == types.StyleRounded && y == outer && x == gridWidth-outer-1:
		return "╮"
	case style == types.StyleRounded && y == gridHeight-outer-1 && x == outer:
		return "╰"
	case style == types.StyleRounded && y == gridHeight-outer-1 && x == gridWidth-outer-1:
		return "╯"

	case onHBorder:
		if style == types.StyleDashed || style == types.StyleDotted {
			if x%2 == 0 {
				return hDash
			}
			return " "
		}
		return borderChar
	case onVBorder:
		if style == types.StyleDashed || style == types.StyleDotted {
			if y%2 == 0 {
				return vDash
			}
			return " "
		}
		return borderChar

	case (y == inner || y == gridHeight-inner-1) && x >= inner && x < gridWidth-inner:
		return "·"
	case (x == inner || x == gridWidth-inner-1) && y >= inner && y < gridHeight-inner:
		return "·"

	case y > inner && y < gridHeight-inner-1 && x > inner && x < gridWidth-inner-1:
		if y == gridHeight/2 {
			return captionChar(x, contentCaption)
		}
		if y == gridHeight/2+1 {
			return captionChar(x, scaleCaption)
		}
		return " "
	}
	return " "
}

// captionChar returns the caption rune occupying column x when the caption
// is centered on the grid, else a space.
func captionChar(x int, caption string) string {
	runes := []rune(caption)
	start := (gridWidth - len(runes)) / 2
	if x >= start && x < start+len(runes) {
		return string(runes[x-start])
	}
	return " "
}

// describeColor names a color for the legend and picks the fill character.
func describeColor(c types.Color) (string, string) {
	switch {
	case c.R > 200 && c.G < 100 && c.B < 100:
		return "red", "█"
	case c.R < 100 && c.G > 200 && c.B < 100:
		return "green", "█"
	case c.R < 100 && c.G < 100 && c.B > 200:
		return "blue", "█"
	case c.R > 200 && c.G > 200 && c.B > 200:
		return "white", "░"
	case c.R < 50 && c.G < 50 && c.B < 50:
		return "black", "█"
	}
	return fmt.Sprintf("RGB(%s)", c), "█"
}
