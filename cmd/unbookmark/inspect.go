package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/unbookmark/internal/document"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path_to_pdf>",
	Short: "Show page and bookmark counts of a PDF",
	Long: `Inspect reads a PDF and prints its version, page count, page sizes and
the number of outline (bookmark) entries. Use it to check a file before and
after stripping.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	doc, err := document.Open(args[0], document.Options{Validate: viper.GetBool("validate")})
	if err != nil {
		return err
	}
	summary, err := doc.Summary()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(summary)
	case "json":
		data, err = json.MarshalIndent(summary, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
