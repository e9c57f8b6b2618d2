// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-works CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf-works CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-works",
	Short: "Add borders and margins to PDF pages without scaling content",
	Long: `pdf-works grows each PDF page outward and frames the original content
with a configurable border. Content is never scaled down or cropped;
the page canvas expands to make room for the margin and border.
Optional page numbers and a title can be drawn in the added space.

Settings layer from built-in defaults, a YAML config file, environment
variables, and command-line flags.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-works.yaml or ~/.config/pdf-works/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-works")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-works"))
		}
	}

	viper.SetEnvPrefix("PDF_WORKS")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setConfigDefaults registers the built-in defaults as viper's lowest
// configuration layer.
func setConfigDefaults() {
	def := types.DefaultConfig()

	viper.SetDefault("border.style", def.Border.Style)
	viper.SetDefault("border.width", def.Border.Width)
	viper.SetDefault("border.color", def.Border.Color)
	viper.SetDefault("border.corner_radius", def.Border.CornerRadius)

	viper.SetDefault("spacing.outer_margin", def.Spacing.OuterMargin)
	viper.SetDefault("spacing.inner_padding", def.Spacing.InnerPadding)
	viper.SetDefault("spacing.unit", def.Spacing.Unit)

	viper.SetDefault("quality.mode", def.Quality.Mode)
	viper.SetDefault("quality.dpi", def.Quality.DPI)
	viper.SetDefault("quality.preserve_ratio", def.Quality.PreserveRatio)

	viper.SetDefault("page_numbers.enabled", def.PageNumbers.Enabled)
	viper.SetDefault("page_numbers.format", def.PageNumbers.Format)
	viper.SetDefault("page_numbers.position", def.PageNumbers.Position)
	viper.SetDefault("page_numbers.location", def.PageNumbers.Location)
	viper.SetDefault("page_numbers.font_size", def.PageNumbers.FontSize)
	viper.SetDefault("page_numbers.font_color", def.PageNumbers.FontColor)
	viper.SetDefault("page_numbers.font_family", def.PageNumbers.FontFamily)
	viper.SetDefault("page_numbers.margin", def.PageNumbers.Margin)
	viper.SetDefault("page_numbers.start_number", def.PageNumbers.StartNumber)
	viper.SetDefault("page_numbers.skip_first", def.PageNumbers.SkipFirst)
	viper.SetDefault("page_numbers.skip_last", def.PageNumbers.SkipLast)

	viper.SetDefault("title.enabled", def.Title.Enabled)
	viper.SetDefault("title.text", def.Title.Text)
	viper.SetDefault("title.position", def.Title.Position)
	viper.SetDefault("title.location", def.Title.Location)
	viper.SetDefault("title.font_size", def.Title.FontSize)
	viper.SetDefault("title.font_color", def.Title.FontColor)
	viper.SetDefault("title.font_family", def.Title.FontFamily)
	viper.SetDefault("title.margin", def.Title.Margin)
	viper.SetDefault("title.only_first_page", def.Title.OnlyFirstPage)

	viper.SetDefault("processing.pages", def.Processing.Pages)
	viper.SetDefault("processing.confirm", def.Processing.Confirm)
}

// loadConfig materializes the layered configuration, applying the flags
// that cannot bind to a key directly.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("loading configuration: %w", err)
	}

	if f := cmd.Flags().Lookup("no-preserve-ratio"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("no-preserve-ratio")
		cfg.Quality.PreserveRatio = !v
	}
	if f := cmd.Flags().Lookup("yes"); f != nil {
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			cfg.Processing.Confirm = false
		}
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
