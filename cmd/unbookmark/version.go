package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const pdfcpuModule = "github.com/pdfcpu/pdfcpu"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of unbookmark and its PDF library",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "unbookmark %s (pdfcpu %s)\n", version, pdfcpuVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// pdfcpuVersion returns the pdfcpu module version linked into the binary.
func pdfcpuVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == pdfcpuModule {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "unknown"
}
