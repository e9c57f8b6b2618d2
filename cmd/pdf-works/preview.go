// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kchsrinadh/pdf-works/internal/compose"
	"github.com/kchsrinadh/pdf-works/internal/pagerange"
	"github.com/kchsrinadh/pdf-works/internal/pdfio"
	"github.com/kchsrinadh/pdf-works/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview <input.pdf>",
	Short: "Show the resolved settings and layout sketch without processing",
	Long: `Preview resolves the configuration exactly as apply would and prints
the settings report and the border layout sketch, then exits. Nothing
is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	addLayoutFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	input := args[0]

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

	fmt.Print(preview.Settings(req, doc, pages, "(not written)"))
	fmt.Print(preview.Sketch(req, doc.PageDims[pages[0]-1]))
	printWarnings(cmd.ErrOrStderr(), warnings)
	return nil
}
