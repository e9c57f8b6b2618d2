// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kchsrinadh/pdf-works/internal/compose"
	"github.com/kchsrinadh/pdf-works/internal/confirm"
	"github.com/kchsrinadh/pdf-works/internal/history"
	"github.com/kchsrinadh/pdf-works/internal/pagerange"
	"github.com/kchsrinadh/pdf-works/internal/pdfio"
	"github.com/kchsrinadh/pdf-works/internal/preview"
	"github.com/kchsrinadh/pdf-works/pkg/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply <input.pdf> <output.pdf>",
	Short: "Grow pages and draw the border, writing a new PDF",
	Long: `Apply processes the input document: every selected page is placed
unscaled on a larger canvas with a border drawn around it, and the
result is written to the output path. The output appears only after
the whole document succeeds; a failed run leaves no partial file.`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	addLayoutFlags(applyCmd)
	applyCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	applyCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(applyCmd)
}

// addLayoutFlags registers the flags shared by apply and preview. Defaults
// mirror the built-in configuration so --help shows effective values.
func addLayoutFlags(cmd *cobra.Command) {
	def := types.DefaultConfig()
	f := cmd.Flags()

	f.String("pages", def.Processing.Pages, `pages to process: "all" or e.g. "1-3,7,9-10"`)
	f.Float64("outer", def.Spacing.OuterMargin, "outer margin from page edge to border")
	f.Float64("inner", def.Spacing.InnerPadding, "inner padding from border to content")
	f.String("unit", def.Spacing.Unit, "unit for margins: inch, mm, or pt")
	f.String("border-style", def.Border.Style, "border style: solid, rounded, dashed, or dotted")
	f.Float64("border-width", def.Border.Width, "border line width in points")
	f.String("border-color", def.Border.Color, `border color as "R,G,B"`)
	f.Float64("corner-radius", def.Border.CornerRadius, "corner radius in points for the rounded style")
	f.String("quality", def.Quality.Mode, "quality mode: original, high, medium, or standard")
	f.Int("dpi", def.Quality.DPI, "render resolution for the high and medium modes")
	f.Bool("no-preserve-ratio", false, "stretch content instead of preserving the aspect ratio")
	f.Bool("page-numbers", def.PageNumbers.Enabled, "draw page numbers in the margin")
	f.Bool("title", def.Title.Enabled, "draw the document title")
}

// bindLayoutFlags layers the executing command's flags over the file and
// environment configuration.
func bindLayoutFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	viper.BindPFlag("processing.pages", f.Lookup("pages"))
	viper.BindPFlag("spacing.outer_margin", f.Lookup("outer"))
	viper.BindPFlag("spacing.inner_padding", f.Lookup("inner"))
	viper.BindPFlag("spacing.unit", f.Lookup("unit"))
	viper.BindPFlag("border.style", f.Lookup("border-style"))
	viper.BindPFlag("border.width", f.Lookup("border-width"))
	viper.BindPFlag("border.color", f.Lookup("border-color"))
	viper.BindPFlag("border.corner_radius", f.Lookup("corner-radius"))
	viper.BindPFlag("quality.mode", f.Lookup("quality"))
	viper.BindPFlag("quality.dpi", f.Lookup("dpi"))
	viper.BindPFlag("page_numbers.enabled", f.Lookup("page-numbers"))
	viper.BindPFlag("title.enabled", f.Lookup("title"))
}

func runApply(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	bindLayoutFlags(cmd)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	req, warnings, err := compose.BuildRequest(cfg)
	if err != nil {
		return err
	}

	doc, err := pdfio.ReadInfo(input)
	if err != nil {
		return err
	}

	pages, err := pagerange.Parse(req.PageExpr, doc.PageCount)
	if err != nil {
		return err
	}

	fmt.Print(preview.Settings(req, doc, pages, output))
	fmt.Print(preview.Sketch(req, doc.PageDims[pages[0]-1]))
	printWarnings(os.Stderr, warnings)

	if req.Confirm {
		ok, err := confirm.Proceed(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	started := time.Now()

	caps := compose.Detect(input, pages[0])
	effective, modeWarnings := compose.Select(req.Mode, caps)
	printWarnings(os.Stderr, modeWarnings)
	warnings = append(warnings, modeWarnings...)

	strategy, err := compose.NewStrategy(effective, input, req.DPI, nil)
	if err != nil {
		return err
	}

	comp := compose.New(req, doc, pages, strategy, warnings)
	comp.OnPage = progressPrinter(os.Stderr)

	summary, _, err := comp.Run(output)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, summary)

	if noHist, _ := cmd.Flags().GetBool("no-history"); !noHist {
		recordHistory(started, summary)
	}

	if summary.Failed() > 0 {
		return fmt.Errorf("%d page(s) failed and were skipped", summary.Failed())
	}
	return nil
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintln(w, "warning:", warning)
	}
}

// progressPrinter returns a per-page callback drawing a terminal progress
// bar on w.
func progressPrinter(w io.Writer) func(done, total int) {
	const width = 40
	return func(done, total int) {
		filled := done * width / total
		fmt.Fprintf(w, "\r[%s%s] %d/%d pages",
			strings.Repeat("█", filled), strings.Repeat("░", width-filled), done, total)
		if done == total {
			fmt.Fprintln(w)
		}
	}
}

func printSummary(w io.Writer, sum *types.RunSummary) {
	fmt.Fprintf(w, "\noutput written: %s (%s)\n", sum.Output, pdfio.FileSizeString(sum.OutputSize))
	fmt.Fprintf(w, "pages: %d emitted, %d skipped (%d selected of %d)\n",
		sum.PagesEmitted, sum.PagesSkipped, len(sum.SelectedPages), sum.TotalPages)
	if sum.EffectiveMode != sum.RequestedMode {
		fmt.Fprintf(w, "quality: requested %s, used %s\n", sum.RequestedMode, sum.EffectiveMode)
	} else {
		fmt.Fprintf(w, "quality: %s\n", sum.EffectiveMode)
	}
	fmt.Fprintf(w, "page size: %.1f x %.1f pt\n", sum.OutputWidthPt, sum.OutputHeightPt)
	fmt.Fprintf(w, "time: %s\n", sum.Duration.Round(time.Millisecond))

	for _, pe := range sum.PageErrors {
		fmt.Fprintf(w, "skipped %v\n", &pe)
	}
}

// recordHistory appends the run to the local history database. History is
// best effort; a failure warns and never fails the run.
func recordHistory(started time.Time, sum *types.RunSummary) {
	path, err := history.DefaultPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: history disabled:", err)
		return
	}

	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: history disabled:", err)
		return
	}
	defer store.Close()

	if err := store.Record(started, sum); err != nil {
		fmt.Fprintln(os.Stderr, "warning: recording history:", err)
	}
}
