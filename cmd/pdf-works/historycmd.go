// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kchsrinadh/pdf-works/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past runs recorded in the history database",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-20s  %-30s  %-8s  %-10s  %s\n", "Started", "Output", "Pages", "Mode", "Time")
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range entries {
		output := e.Output
		if len(output) > 30 {
			output = "..." + output[len(output)-27:]
		}
		fmt.Printf("%-20s  %-30s  %-8s  %-10s  %s\n",
			e.StartedAt.Local().Format("2006-01-02 15:04:05"),
			output,
			fmt.Sprintf("%d/%d", e.PagesEmitted, e.TotalPages),
			e.EffectiveMode,
			e.Duration.Round(time.Millisecond))
	}
	return nil
}
