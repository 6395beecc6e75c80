package hgx

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// rootCmd is the base Cobra command for the hgx CLI.
var rootCmd = &cobra.Command{
	Use:           "hgx",
	Short:         "Mercurial-compatible source control tooling",
	Long:          "hgx is a Mercurial-compatible client. It reads hgrc configuration from the platform's system and user locations, bundled default.d fragments, HGRCPATH overrides, and a small set of environment variables.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the hgx CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
