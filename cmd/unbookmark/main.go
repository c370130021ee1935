// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the unbookmark CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/unbookmark/internal/strip"
	"github.com/pdiddy/unbookmark/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	usageLine   = "Usage: unbookmark <path_to_pdf>"
	exampleLine = "Example: unbookmark my_book.pdf"
)

// rootCmd strips the outline from the PDF named by its first argument.
var rootCmd = &cobra.Command{
	Use:   "unbookmark <path_to_pdf>",
	Short: "Remove the bookmark tree from a PDF",
	Long: `unbookmark copies every page of a PDF into a new file without the
document outline (bookmarks). Given book.pdf it writes book_cleaned.pdf in
the same directory, replacing any previous output.

Arguments after the first are ignored. A file whose name matches a
subcommand (apply, completion, help, inspect, version) is taken as that subcommand;
give it with a path prefix instead, for example "unbookmark ./version".`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runStrip,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./unbookmark.yaml or ~/.config/unbookmark/config.yaml)")
	rootCmd.PersistentFlags().Bool("validate", false, "validate the input structure before processing")
	rootCmd.Flags().String("suffix", types.DefaultSuffix, "text inserted before the extension of the output file")
	rootCmd.Flags().Bool("overwrite", true, "replace an existing output file")

	_ = viper.BindPFlag("validate", rootCmd.PersistentFlags().Lookup("validate"))
	_ = viper.BindPFlag("suffix", rootCmd.Flags().Lookup("suffix"))
	_ = viper.BindPFlag("overwrite", rootCmd.Flags().Lookup("overwrite"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("unbookmark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "unbookmark"))
		}
	}

	viper.SetEnvPrefix("UNBOOKMARK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stripConfig assembles the run settings from flags, environment and config file.
func stripConfig() types.StripConfig {
	return types.StripConfig{
		Suffix:    viper.GetString("suffix"),
		Overwrite: viper.GetBool("overwrite"),
		Validate:  viper.GetBool("validate"),
	}
}

func runStrip(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		fmt.Fprintln(cmd.OutOrStdout(), exampleLine)
		return nil
	}

	_, err := strip.Run(args[0], stripConfig(), cmd.OutOrStdout())
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
