package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagwright",
		Short: "Typed, streaming HTML writer tooling",
		Long: `Tagwright builds well-formed HTML through a typed writer:
open element, set attributes, write content, close element. Escaping
is applied at the point of writing, and structurally invalid sequences
are rejected before they can emit broken markup.

This CLI renders the demo document to stdout, a file, or S3, and runs
a live-reloading preview server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
