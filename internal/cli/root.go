// Package cli implements the scitokens command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sciencestack-ai/sciencestack-tokens/internal/config"
)

var version = "dev"

var (
	rootVerbose    bool
	rootConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "scitokens",
	Short: "Render scientific document trees and locate excerpts in their output",
	Long: `scitokens renders scientific document trees (tagged JSON node data) to
LaTeX, Markdown or plain copy text, tracks the character span every node
occupies in the output, and locates quoted excerpts back to the nodes that
produced them.

Examples:
  scitokens render paper.json --format latex
  scitokens render paper.json --format markdown --spans spans.json
  scitokens locate paper.json --excerpt "the dominated convergence theorem"
  scitokens kinds`,
	SilenceUsage: true,
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file path (default: ~/.scitokens/config.yaml)")
}

// loadConfig loads the configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	if rootConfigPath != "" {
		return config.NewLoaderWithPath(rootConfigPath).Load()
	}
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("scitokens %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
