// Package cmd implements the redart command-line interface as a
// Cobra command tree: lex, parse, test, and testfail.
package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/redart/internal/errors"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "redart",
	Short: "redart is a tree-walking interpreter for a Dart-subset scripting language",
	Long: `redart parses and evaluates a small Dart-like language: typed
top-level functions and variables, classes with field-init
constructors, lists, string interpolation, and a handful of builtins
(print, assert, File, List, math).`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		errors.Debug, _ = cmd.Flags().GetBool("debug")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "panic with a call trace on fatal errors instead of exiting")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
