// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kchsrinadh/pdf-works/internal/pdfio"
)

var infoCmd = &cobra.Command{
	Use:   "info <input.pdf>",
	Short: "Print document facts: page count, page sizes, metadata title",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := pdfio.ReadInfo(args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	fmt.Printf("file:  %s (%s)\n", doc.Path, pdfio.FileSizeString(doc.FileSize))
	fmt.Printf("pages: %d\n", doc.PageCount)
	if doc.Title != "" {
		fmt.Printf("title: %s\n", doc.Title)
	}

	for i, d := range doc.PageDims {
		fmt.Printf("  page %d: %.1f x %.1f pt\n", i+1, d.Width, d.Height)
		if i == 9 && len(doc.PageDims) > 10 {
			fmt.Printf("  ... %d more pages\n", len(doc.PageDims)-10)
			break
		}
	}
	return nil
}
