package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptatlas",
	Short: "Browse and analyze AI image generation prompt metadata",
	Long: `promptatlas turns a raw export of AI image generation metadata into a
categorized dataset and serves an interactive browser over it.

Run "promptatlas analyze" once to build the dataset, then
"promptatlas serve" to explore it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
