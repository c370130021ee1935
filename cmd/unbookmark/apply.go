// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/unbookmark/internal/strip"
	"github.com/pdiddy/unbookmark/internal/toc"
	"github.com/pdiddy/unbookmark/pkg/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply <path_to_pdf> <toc.yaml>",
	Short: "Replace the bookmark tree of a PDF with a table of contents",
	Long: `Apply reads a table of contents from a YAML or JSON file and writes it into
a copy of the PDF as the document outline, replacing any existing bookmarks.
Given book.pdf it writes book_bookmarked.pdf in the same directory.

The TOC file is a list of entries with a title, a 1-based page and an
optional level (1 for top-level entries):

  - title: Chapter 1
    page: 1
  - title: 1.1 Background
    page: 2

Entries without a level get one from their numbering ("第一章" and
"Chapter 2" are level 1, "1.2" is level 2, "1.2.3" is level 3). Use
--offset when printed page numbers differ from physical pages.`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().String("suffix", types.DefaultApplySuffix, "text inserted before the extension of the output file")
	applyCmd.Flags().Int("offset", 0, "added to every TOC page number to get the physical page")

	_ = viper.BindPFlag("apply.suffix", applyCmd.Flags().Lookup("suffix"))
	_ = viper.BindPFlag("apply.offset", applyCmd.Flags().Lookup("offset"))

	rootCmd.AddCommand(applyCmd)
}

// applyConfig assembles the apply settings. Overwrite and validate are
// shared with the strip run.
func applyConfig() types.ApplyConfig {
	return types.ApplyConfig{
		StripConfig: types.StripConfig{
			Suffix:    viper.GetString("apply.suffix"),
			Overwrite: viper.GetBool("overwrite"),
			Validate:  viper.GetBool("validate"),
		},
		Offset: viper.GetInt("apply.offset"),
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	items, err := toc.Load(args[1])
	if err != nil {
		return err
	}
	_, err = strip.RunApply(args[0], items, applyConfig(), cmd.OutOrStdout())
	return err
}
